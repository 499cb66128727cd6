package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// Overtime is one submission per (employee, period, date), capped at 3 hours.
// Once IsLocked is set by a payroll run it stays set for the record's life.
type Overtime struct {
	ID                 string
	EmployeeID         string
	AttendancePeriodID string
	OvertimeDate       time.Time
	Hours              decimal.Decimal
	IsLocked           bool
	CreatedBy          *string
	UpdatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MaxHoursPerDay is the daily overtime cap.
var MaxHoursPerDay = decimal.NewFromInt(3)

func (o Overtime) CanBeModified() bool {
	return !o.IsLocked
}
