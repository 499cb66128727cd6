package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User covers both administrators and employees. Employees carry the monthly
// salary that payroll prorates; administrators are excluded from payroll runs.
type User struct {
	ID            string
	Username      string
	Name          string
	PasswordHash  string
	Role          Role
	MonthlySalary decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
