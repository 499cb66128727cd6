package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays_FullMonth(t *testing.T) {
	t.Parallel()

	// June 2025: 30 days, 21 weekdays
	assert.Equal(t, 21, WorkingDays(date(2025, time.June, 1), date(2025, time.June, 30)))
}

func TestWorkingDays_SingleWeek(t *testing.T) {
	t.Parallel()

	// Monday through Sunday counts 5
	assert.Equal(t, 5, WorkingDays(date(2025, time.June, 2), date(2025, time.June, 8)))
}

func TestWorkingDays_SingleDay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, WorkingDays(date(2025, time.June, 4), date(2025, time.June, 4)))
	assert.Equal(t, 0, WorkingDays(date(2025, time.June, 7), date(2025, time.June, 7)))
}

func TestWorkingDays_WeekendOnlyRange(t *testing.T) {
	t.Parallel()

	// Saturday and Sunday only
	assert.Equal(t, 0, WorkingDays(date(2025, time.June, 7), date(2025, time.June, 8)))
}

func TestWorkingDays_IgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.June, 2, 23, 30, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 6, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 5, WorkingDays(start, end))
}
