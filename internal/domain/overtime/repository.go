package overtime

import (
	"context"
	"time"
)

type OvertimeRepository interface {
	Create(ctx context.Context, o Overtime) (Overtime, error)
	GetByID(ctx context.Context, id string) (Overtime, error)
	GetByEmployeePeriodDate(ctx context.Context, employeeID, periodID string, date time.Time) (Overtime, error)
	ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]Overtime, error)

	// UpdateHours and Delete must refuse locked records.
	UpdateHours(ctx context.Context, o Overtime) error
	Delete(ctx context.Context, id string) error

	// LockByPeriod sets is_locked on every record of the period in one
	// statement. Runs inside the payroll transaction.
	LockByPeriod(ctx context.Context, periodID string) error
}
