package attendance

import (
	"github.com/payrollhq/payslip-backend-go/internal/pkg/validator"
)

type SubmitAttendanceRequest struct {
	EmployeeID         string  `json:"-"`
	AttendancePeriodID string  `json:"attendance_period_id"`
	Date               string  `json:"date"`
	CheckIn            *string `json:"check_in,omitempty"`
	CheckOut           *string `json:"check_out,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}

func (r *SubmitAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendancePeriodID) {
		errs = append(errs, validator.ValidationError{Field: "attendance_period_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be a valid time (HH:MM or HH:MM:SS)"})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be a valid time (HH:MM or HH:MM:SS)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	AttendancePeriodID string  `json:"attendance_period_id"`
	Date               string  `json:"date"`
	CheckIn            *string `json:"check_in,omitempty"`
	CheckOut           *string `json:"check_out,omitempty"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
}
