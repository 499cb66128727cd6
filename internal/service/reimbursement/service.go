package reimbursement

import (
	"context"

	"github.com/payrollhq/payslip-backend-go/internal/domain/period"
	"github.com/payrollhq/payslip-backend-go/internal/domain/reimbursement"
)

type ReimbursementServiceImpl struct {
	reimbursementRepo reimbursement.ReimbursementRepository
	periodRepo        period.PeriodRepository
}

func NewReimbursementService(
	reimbursementRepo reimbursement.ReimbursementRepository,
	periodRepo period.PeriodRepository,
) reimbursement.ReimbursementService {
	return &ReimbursementServiceImpl{
		reimbursementRepo: reimbursementRepo,
		periodRepo:        periodRepo,
	}
}

func (s *ReimbursementServiceImpl) Submit(ctx context.Context, req reimbursement.SubmitReimbursementRequest) (reimbursement.Reimbursement, error) {
	if err := req.Validate(); err != nil {
		return reimbursement.Reimbursement{}, err
	}

	p, err := s.periodRepo.GetByID(ctx, req.AttendancePeriodID)
	if err != nil {
		return reimbursement.Reimbursement{}, err
	}
	if p.IsPayrollProcessed {
		return reimbursement.Reimbursement{}, period.ErrPeriodProcessed
	}

	record := reimbursement.Reimbursement{
		EmployeeID:         req.EmployeeID,
		AttendancePeriodID: req.AttendancePeriodID,
		Amount:             req.Amount,
		Description:        req.Description,
		CreatedBy:          &req.EmployeeID,
		UpdatedBy:          &req.EmployeeID,
	}

	return s.reimbursementRepo.Create(ctx, record)
}

func (s *ReimbursementServiceImpl) Update(ctx context.Context, req reimbursement.UpdateReimbursementRequest, employeeID string) (reimbursement.Reimbursement, error) {
	if err := req.Validate(); err != nil {
		return reimbursement.Reimbursement{}, err
	}

	record, err := s.reimbursementRepo.GetByID(ctx, req.ID)
	if err != nil {
		return reimbursement.Reimbursement{}, err
	}
	if record.EmployeeID != employeeID {
		return reimbursement.Reimbursement{}, reimbursement.ErrNotReimbursementOwner
	}
	if !record.CanBeModified() {
		return reimbursement.Reimbursement{}, reimbursement.ErrReimbursementLocked
	}

	record.Amount = req.Amount
	record.Description = req.Description
	record.UpdatedBy = &employeeID
	if err := s.reimbursementRepo.Update(ctx, record); err != nil {
		return reimbursement.Reimbursement{}, err
	}

	return record, nil
}

func (s *ReimbursementServiceImpl) Delete(ctx context.Context, id string, employeeID string) error {
	record, err := s.reimbursementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.EmployeeID != employeeID {
		return reimbursement.ErrNotReimbursementOwner
	}
	if !record.CanBeModified() {
		return reimbursement.ErrReimbursementLocked
	}

	return s.reimbursementRepo.Delete(ctx, id)
}

func (s *ReimbursementServiceImpl) ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]reimbursement.Reimbursement, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}
	return s.reimbursementRepo.ListByEmployeePeriod(ctx, employeeID, periodID)
}
