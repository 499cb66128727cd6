package period

import "github.com/payrollhq/payslip-backend-go/internal/pkg/apperror"

var (
	ErrPeriodNotFound  = apperror.New(apperror.KindNotFound, "attendance period not found")
	ErrPeriodProcessed = apperror.New(apperror.KindFailedPrecondition, "attendance period has already been processed")
)
