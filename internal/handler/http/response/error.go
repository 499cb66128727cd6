package response

import (
	"errors"
	"net/http"

	"github.com/payrollhq/payslip-backend-go/internal/domain/auth"
	"github.com/payrollhq/payslip-backend-go/internal/domain/user"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/apperror"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. The mapping is driven by
// the error kind, so new domain errors get the right status without touching
// this switch.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A few errors carry auth semantics that the kind alone cannot express.
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
		return
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())
		return
	}

	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		NotFound(w, err.Error())
	case apperror.KindConflict:
		Conflict(w, err.Error())
	case apperror.KindFailedPrecondition:
		BadRequest(w, err.Error(), nil)
	case apperror.KindValidation:
		BadRequest(w, err.Error(), nil)
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
