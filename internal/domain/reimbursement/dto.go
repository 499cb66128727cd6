package reimbursement

import (
	"github.com/payrollhq/payslip-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	descriptionMinLen = 10
	descriptionMaxLen = 1000
)

type SubmitReimbursementRequest struct {
	EmployeeID         string          `json:"-"`
	AttendancePeriodID string          `json:"attendance_period_id"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
}

func (r *SubmitReimbursementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendancePeriodID) {
		errs = append(errs, validator.ValidationError{Field: "attendance_period_id", Message: "is required"})
	}
	errs = append(errs, validateAmount(r.Amount)...)
	errs = append(errs, validateDescription(r.Description)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateReimbursementRequest struct {
	ID          string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r *UpdateReimbursementRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateAmount(r.Amount)...)
	errs = append(errs, validateDescription(r.Description)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateAmount(amount decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than 0"})
	}
	if amount.Exponent() < -2 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must have at most two decimal places"})
	}
	return errs
}

func validateDescription(description string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	} else if len(description) < descriptionMinLen || len(description) > descriptionMaxLen {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "must be between 10 and 1000 characters"})
	}
	return errs
}

type ReimbursementResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	AttendancePeriodID string          `json:"attendance_period_id"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	IsLocked           bool            `json:"is_locked"`
}
