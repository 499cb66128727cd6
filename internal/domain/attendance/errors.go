package attendance

import "github.com/payrollhq/payslip-backend-go/internal/pkg/apperror"

var (
	ErrAttendanceNotFound = apperror.New(apperror.KindNotFound, "attendance record not found")
	ErrAttendanceExists   = apperror.New(apperror.KindConflict, "attendance record already exists for this employee on this date within the period")
)
