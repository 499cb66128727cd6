package period

import (
	"context"

	"github.com/payrollhq/payslip-backend-go/internal/domain/period"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/validator"
)

type PeriodServiceImpl struct {
	periodRepo period.PeriodRepository
}

func NewPeriodService(periodRepo period.PeriodRepository) period.PeriodService {
	return &PeriodServiceImpl{periodRepo: periodRepo}
}

func (s *PeriodServiceImpl) Create(ctx context.Context, req period.CreatePeriodRequest, createdBy string) (period.AttendancePeriod, error) {
	if err := req.Validate(); err != nil {
		return period.AttendancePeriod{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	return s.periodRepo.Create(ctx, period.AttendancePeriod{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedBy: &createdBy,
		UpdatedBy: &createdBy,
	})
}

func (s *PeriodServiceImpl) GetByID(ctx context.Context, id string) (period.AttendancePeriod, error) {
	return s.periodRepo.GetByID(ctx, id)
}

func (s *PeriodServiceImpl) List(ctx context.Context) ([]period.AttendancePeriod, error) {
	return s.periodRepo.List(ctx)
}
