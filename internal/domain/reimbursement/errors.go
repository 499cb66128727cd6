package reimbursement

import "github.com/payrollhq/payslip-backend-go/internal/pkg/apperror"

var (
	ErrReimbursementNotFound = apperror.New(apperror.KindNotFound, "reimbursement record not found")
	ErrReimbursementLocked   = apperror.New(apperror.KindFailedPrecondition, "reimbursement record is locked and can no longer be modified")
	ErrNotReimbursementOwner = apperror.New(apperror.KindFailedPrecondition, "reimbursement record belongs to another employee")
)
