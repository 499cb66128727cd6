package attendance

import (
	"context"
	"time"

	"github.com/payrollhq/payslip-backend-go/internal/domain/attendance"
	"github.com/payrollhq/payslip-backend-go/internal/domain/period"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	periodRepo     period.PeriodRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	periodRepo period.PeriodRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		periodRepo:     periodRepo,
	}
}

// Submit records one attendance day for the calling employee. The status is
// derived from the check-in/check-out times at submission; it is never
// recomputed afterwards.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, req attendance.SubmitAttendanceRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	p, err := s.periodRepo.GetByID(ctx, req.AttendancePeriodID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if p.IsPayrollProcessed {
		return attendance.Attendance{}, period.ErrPeriodProcessed
	}

	date, _ := validator.IsValidDate(req.Date)
	checkIn := combineDateTime(date, req.CheckIn)
	checkOut := combineDateTime(date, req.CheckOut)

	record := attendance.Attendance{
		EmployeeID:         req.EmployeeID,
		AttendancePeriodID: req.AttendancePeriodID,
		Date:               date,
		CheckIn:            checkIn,
		CheckOut:           checkOut,
		Status:             attendance.DeriveStatus(checkIn, checkOut),
		Notes:              req.Notes,
		CreatedBy:          &req.EmployeeID,
		UpdatedBy:          &req.EmployeeID,
	}

	return s.attendanceRepo.Create(ctx, record)
}

func (s *AttendanceServiceImpl) ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]attendance.Attendance, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListByEmployeePeriod(ctx, employeeID, periodID)
}

// combineDateTime anchors a validated time-of-day string on the attendance
// date. A nil or absent time stays nil.
func combineDateTime(date time.Time, timeStr *string) *time.Time {
	if timeStr == nil {
		return nil
	}
	t, ok := validator.IsValidTimeOfDay(*timeStr)
	if !ok {
		return nil
	}
	combined := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return &combined
}
