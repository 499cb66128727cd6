package overtime

import "context"

type OvertimeService interface {
	Submit(ctx context.Context, req SubmitOvertimeRequest) (Overtime, error)

	// Update and Delete enforce ownership before the lock check.
	Update(ctx context.Context, req UpdateOvertimeRequest, employeeID string) (Overtime, error)
	Delete(ctx context.Context, id string, employeeID string) error

	ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]Overtime, error)
}
