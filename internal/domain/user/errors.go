package user

import "github.com/payrollhq/payslip-backend-go/internal/pkg/apperror"

var (
	ErrUserNotFound           = apperror.New(apperror.KindNotFound, "user not found")
	ErrAdminPrivilegeRequired = apperror.New(apperror.KindFailedPrecondition, "admin privilege required")
)
