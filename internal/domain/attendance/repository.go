package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// GetByEmployeePeriodDate backs the overtime prerequisite check.
	GetByEmployeePeriodDate(ctx context.Context, employeeID, periodID string, date time.Time) (Attendance, error)

	// ListByEmployeePeriod is the read contract of the payslip generator:
	// days worked is a function of the rows that exist, missing days are
	// implicitly absent.
	ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]Attendance, error)
}
