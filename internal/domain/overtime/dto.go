package overtime

import (
	"github.com/payrollhq/payslip-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SubmitOvertimeRequest struct {
	EmployeeID         string          `json:"-"`
	AttendancePeriodID string          `json:"attendance_period_id"`
	OvertimeDate       string          `json:"overtime_date"`
	Hours              decimal.Decimal `json:"hours"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendancePeriodID) {
		errs = append(errs, validator.ValidationError{Field: "attendance_period_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.OvertimeDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "overtime_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	errs = append(errs, validateHours(r.Hours)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOvertimeRequest struct {
	ID    string          `json:"-"`
	Hours decimal.Decimal `json:"hours"`
}

func (r *UpdateOvertimeRequest) Validate() error {
	errs := validateHours(r.Hours)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateHours(hours decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !hours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be greater than 0"})
	}
	if hours.GreaterThan(MaxHoursPerDay) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "cannot be more than 3 hours per day"})
	}
	if hours.Exponent() < -2 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must have at most two decimal places"})
	}
	return errs
}

type OvertimeResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	AttendancePeriodID string          `json:"attendance_period_id"`
	OvertimeDate       string          `json:"overtime_date"`
	Hours              decimal.Decimal `json:"hours"`
	IsLocked           bool            `json:"is_locked"`
}
