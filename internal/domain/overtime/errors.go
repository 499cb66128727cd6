package overtime

import "github.com/payrollhq/payslip-backend-go/internal/pkg/apperror"

var (
	ErrOvertimeNotFound    = apperror.New(apperror.KindNotFound, "overtime record not found")
	ErrOvertimeExists      = apperror.New(apperror.KindConflict, "overtime record already exists for this date")
	ErrOvertimeLocked      = apperror.New(apperror.KindFailedPrecondition, "overtime record is locked and can no longer be modified")
	ErrNoAttendanceForDate = apperror.New(apperror.KindFailedPrecondition, "an attendance record for this date is required before submitting overtime")
	ErrDateOutsidePeriod   = apperror.New(apperror.KindValidation, "overtime date must be within the attendance period")
	ErrNotOvertimeOwner    = apperror.New(apperror.KindFailedPrecondition, "overtime record belongs to another employee")
)
