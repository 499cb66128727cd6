package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/payrollhq/payslip-backend-go/internal/domain/reimbursement"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/database"
)

type reimbursementRepository struct {
	db *database.DB
}

func NewReimbursementRepository(db *database.DB) reimbursement.ReimbursementRepository {
	return &reimbursementRepository{db: db}
}

const reimbursementColumns = `id, employee_id, attendance_period_id, amount, description, is_locked,
	created_by, updated_by, created_at, updated_at`

func (r *reimbursementRepository) Create(ctx context.Context, rec reimbursement.Reimbursement) (reimbursement.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reimbursement (employee_id, attendance_period_id, amount, description, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + reimbursementColumns

	var created reimbursement.Reimbursement
	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.AttendancePeriodID, rec.Amount, rec.Description, rec.CreatedBy, rec.UpdatedBy,
	).Scan(
		&created.ID, &created.EmployeeID, &created.AttendancePeriodID,
		&created.Amount, &created.Description, &created.IsLocked,
		&created.CreatedBy, &created.UpdatedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return reimbursement.Reimbursement{}, fmt.Errorf("failed to create reimbursement: %w", err)
	}

	return created, nil
}

func (r *reimbursementRepository) GetByID(ctx context.Context, id string) (reimbursement.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reimbursementColumns + `
		FROM reimbursement
		WHERE id = $1
	`

	var rec reimbursement.Reimbursement
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.AttendancePeriodID,
		&rec.Amount, &rec.Description, &rec.IsLocked,
		&rec.CreatedBy, &rec.UpdatedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return reimbursement.Reimbursement{}, reimbursement.ErrReimbursementNotFound
		}
		return reimbursement.Reimbursement{}, fmt.Errorf("failed to get reimbursement: %w", err)
	}

	return rec, nil
}

func (r *reimbursementRepository) ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]reimbursement.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reimbursementColumns + `
		FROM reimbursement
		WHERE employee_id = $1 AND attendance_period_id = $2
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reimbursements: %w", err)
	}
	defer rows.Close()

	var records []reimbursement.Reimbursement
	for rows.Next() {
		var rec reimbursement.Reimbursement
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.AttendancePeriodID,
			&rec.Amount, &rec.Description, &rec.IsLocked,
			&rec.CreatedBy, &rec.UpdatedBy, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reimbursement: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *reimbursementRepository) Update(ctx context.Context, rec reimbursement.Reimbursement) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reimbursement
		SET amount = $2, description = $3, updated_by = $4, updated_at = NOW()
		WHERE id = $1 AND is_locked = false
	`

	tag, err := q.Exec(ctx, query, rec.ID, rec.Amount, rec.Description, rec.UpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update reimbursement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return reimbursement.ErrReimbursementLocked
	}

	return nil
}

func (r *reimbursementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM reimbursement WHERE id = $1 AND is_locked = false`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete reimbursement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return reimbursement.ErrReimbursementLocked
	}

	return nil
}

func (r *reimbursementRepository) LockByPeriod(ctx context.Context, periodID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE reimbursement SET is_locked = true, updated_at = NOW() WHERE attendance_period_id = $1`

	if _, err := q.Exec(ctx, query, periodID); err != nil {
		return fmt.Errorf("failed to lock reimbursement records: %w", err)
	}

	return nil
}
