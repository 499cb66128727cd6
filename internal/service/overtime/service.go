package overtime

import (
	"context"
	"errors"

	"github.com/payrollhq/payslip-backend-go/internal/domain/attendance"
	"github.com/payrollhq/payslip-backend-go/internal/domain/overtime"
	"github.com/payrollhq/payslip-backend-go/internal/domain/period"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/validator"
)

type OvertimeServiceImpl struct {
	overtimeRepo   overtime.OvertimeRepository
	attendanceRepo attendance.AttendanceRepository
	periodRepo     period.PeriodRepository
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	attendanceRepo attendance.AttendanceRepository,
	periodRepo period.PeriodRepository,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		overtimeRepo:   overtimeRepo,
		attendanceRepo: attendanceRepo,
		periodRepo:     periodRepo,
	}
}

// Submit records overtime hours for one day. The date must fall inside the
// period and be backed by an attendance record for the same day. The duplicate
// pre-check gives a clean conflict error; the unique index on
// (employee_id, attendance_period_id, overtime_date) catches the race.
func (s *OvertimeServiceImpl) Submit(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.Overtime, error) {
	if err := req.Validate(); err != nil {
		return overtime.Overtime{}, err
	}

	p, err := s.periodRepo.GetByID(ctx, req.AttendancePeriodID)
	if err != nil {
		return overtime.Overtime{}, err
	}
	if p.IsPayrollProcessed {
		return overtime.Overtime{}, period.ErrPeriodProcessed
	}

	date, _ := validator.IsValidDate(req.OvertimeDate)
	if date.Before(p.StartDate) || date.After(p.EndDate) {
		return overtime.Overtime{}, overtime.ErrDateOutsidePeriod
	}

	if _, err := s.attendanceRepo.GetByEmployeePeriodDate(ctx, req.EmployeeID, req.AttendancePeriodID, date); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return overtime.Overtime{}, overtime.ErrNoAttendanceForDate
		}
		return overtime.Overtime{}, err
	}

	_, err = s.overtimeRepo.GetByEmployeePeriodDate(ctx, req.EmployeeID, req.AttendancePeriodID, date)
	if err == nil {
		return overtime.Overtime{}, overtime.ErrOvertimeExists
	}
	if !errors.Is(err, overtime.ErrOvertimeNotFound) {
		return overtime.Overtime{}, err
	}

	record := overtime.Overtime{
		EmployeeID:         req.EmployeeID,
		AttendancePeriodID: req.AttendancePeriodID,
		OvertimeDate:       date,
		Hours:              req.Hours,
		CreatedBy:          &req.EmployeeID,
		UpdatedBy:          &req.EmployeeID,
	}

	return s.overtimeRepo.Create(ctx, record)
}

func (s *OvertimeServiceImpl) Update(ctx context.Context, req overtime.UpdateOvertimeRequest, employeeID string) (overtime.Overtime, error) {
	if err := req.Validate(); err != nil {
		return overtime.Overtime{}, err
	}

	record, err := s.overtimeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return overtime.Overtime{}, err
	}
	if record.EmployeeID != employeeID {
		return overtime.Overtime{}, overtime.ErrNotOvertimeOwner
	}
	if !record.CanBeModified() {
		return overtime.Overtime{}, overtime.ErrOvertimeLocked
	}

	record.Hours = req.Hours
	record.UpdatedBy = &employeeID
	if err := s.overtimeRepo.UpdateHours(ctx, record); err != nil {
		return overtime.Overtime{}, err
	}

	return record, nil
}

func (s *OvertimeServiceImpl) Delete(ctx context.Context, id string, employeeID string) error {
	record, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.EmployeeID != employeeID {
		return overtime.ErrNotOvertimeOwner
	}
	if !record.CanBeModified() {
		return overtime.ErrOvertimeLocked
	}

	return s.overtimeRepo.Delete(ctx, id)
}

func (s *OvertimeServiceImpl) ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]overtime.Overtime, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}
	return s.overtimeRepo.ListByEmployeePeriod(ctx, employeeID, periodID)
}
