package user

import "context"

// UserRepository is the employee directory contract consumed by payroll.
type UserRepository interface {
	// ListEmployees returns every user with the employee role, administrators
	// excluded, ordered by name ascending.
	ListEmployees(ctx context.Context) ([]User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
