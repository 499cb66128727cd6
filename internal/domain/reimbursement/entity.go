package reimbursement

import (
	"time"

	"github.com/shopspring/decimal"
)

type Reimbursement struct {
	ID                 string
	EmployeeID         string
	AttendancePeriodID string
	Amount             decimal.Decimal
	Description        string
	IsLocked           bool
	CreatedBy          *string
	UpdatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (r Reimbursement) CanBeModified() bool {
	return !r.IsLocked
}
