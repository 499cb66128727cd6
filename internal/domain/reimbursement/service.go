package reimbursement

import "context"

type ReimbursementService interface {
	Submit(ctx context.Context, req SubmitReimbursementRequest) (Reimbursement, error)

	// Update and Delete enforce ownership before the lock check.
	Update(ctx context.Context, req UpdateReimbursementRequest, employeeID string) (Reimbursement, error)
	Delete(ctx context.Context, id string, employeeID string) error

	ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]Reimbursement, error)
}
