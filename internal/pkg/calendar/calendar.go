package calendar

import "time"

// WorkingDays counts the business days in the inclusive range [start, end].
// Saturdays and Sundays are excluded; there is no holiday calendar.
func WorkingDays(start, end time.Time) int {
	start = truncateToDate(start)
	end = truncateToDate(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
