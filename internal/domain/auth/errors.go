package auth

import "github.com/payrollhq/payslip-backend-go/internal/pkg/apperror"

var (
	ErrInvalidCredentials = apperror.New(apperror.KindValidation, "invalid username or password")
	ErrInvalidToken       = apperror.New(apperror.KindValidation, "invalid or expired token")
)
