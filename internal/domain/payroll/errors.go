package payroll

import "github.com/payrollhq/payslip-backend-go/internal/pkg/apperror"

var (
	ErrPayrollAlreadyProcessed = apperror.New(apperror.KindConflict, "payroll has already been processed for this attendance period")
	ErrPayrollNotProcessed     = apperror.New(apperror.KindFailedPrecondition, "payroll has not been processed for this attendance period yet")
	ErrPayrollNotFound         = apperror.New(apperror.KindNotFound, "payroll record not found")
	ErrPayslipNotFound         = apperror.New(apperror.KindNotFound, "payslip not found for this employee and attendance period")
	ErrPayslipExists           = apperror.New(apperror.KindConflict, "payslip already exists for this employee and attendance period")
	ErrPayslipNumberTaken      = apperror.New(apperror.KindConflict, "payslip number collision, retry the payroll run")
	ErrNoWorkingDays           = apperror.New(apperror.KindFailedPrecondition, "attendance period contains no working days")
)
