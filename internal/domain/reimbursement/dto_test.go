package reimbursement

import (
	"strings"
	"testing"

	"github.com/payrollhq/payslip-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReimbursementRequestValidate(t *testing.T) {
	valid := SubmitReimbursementRequest{
		AttendancePeriodID: "period-id",
		Amount:             decimal.NewFromFloat(150000.50),
		Description:        "transport for client meeting",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(r *SubmitReimbursementRequest)
		wantKey string
	}{
		{"missing period", func(r *SubmitReimbursementRequest) { r.AttendancePeriodID = "" }, "attendance_period_id"},
		{"zero amount", func(r *SubmitReimbursementRequest) { r.Amount = decimal.Zero }, "amount"},
		{"negative amount", func(r *SubmitReimbursementRequest) { r.Amount = decimal.NewFromInt(-100) }, "amount"},
		{"fractional cents", func(r *SubmitReimbursementRequest) { r.Amount = decimal.NewFromFloat(10.005) }, "amount"},
		{"empty description", func(r *SubmitReimbursementRequest) { r.Description = "" }, "description"},
		{"short description", func(r *SubmitReimbursementRequest) { r.Description = "too short" }, "description"},
		{"long description", func(r *SubmitReimbursementRequest) { r.Description = strings.Repeat("a", 1001) }, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantKey)
		})
	}
}

func TestSubmitReimbursementRequestValidate_BoundaryLengths(t *testing.T) {
	req := SubmitReimbursementRequest{
		AttendancePeriodID: "period-id",
		Amount:             decimal.NewFromInt(100),
		Description:        strings.Repeat("a", 10),
	}
	assert.NoError(t, req.Validate())

	req.Description = strings.Repeat("a", 1000)
	assert.NoError(t, req.Validate())
}
