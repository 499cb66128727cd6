package reimbursement

import "context"

type ReimbursementRepository interface {
	Create(ctx context.Context, r Reimbursement) (Reimbursement, error)
	GetByID(ctx context.Context, id string) (Reimbursement, error)
	ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]Reimbursement, error)

	// Update and Delete must refuse locked records.
	Update(ctx context.Context, r Reimbursement) error
	Delete(ctx context.Context, id string) error

	// LockByPeriod sets is_locked on every record of the period in one
	// statement. Runs inside the payroll transaction.
	LockByPeriod(ctx context.Context, periodID string) error
}
