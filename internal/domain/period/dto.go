package period

import (
	"github.com/payrollhq/payslip-backend-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be after start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	IsPayrollProcessed bool    `json:"is_payroll_processed"`
	ProcessedAt        *string `json:"processed_at,omitempty"`
}
