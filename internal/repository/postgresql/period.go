package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/payrollhq/payslip-backend-go/internal/domain/period"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/database"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) period.PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) Create(ctx context.Context, p period.AttendancePeriod) (period.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_period (name, start_date, end_date, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, start_date, end_date, is_payroll_processed, processed_at, processed_by,
			created_by, updated_by, created_at, updated_at
	`

	var created period.AttendancePeriod
	err := q.QueryRow(ctx, query,
		p.Name, p.StartDate, p.EndDate, p.CreatedBy, p.UpdatedBy,
	).Scan(
		&created.ID, &created.Name, &created.StartDate, &created.EndDate,
		&created.IsPayrollProcessed, &created.ProcessedAt, &created.ProcessedBy,
		&created.CreatedBy, &created.UpdatedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return period.AttendancePeriod{}, fmt.Errorf("failed to create attendance period: %w", err)
	}

	return created, nil
}

func (r *periodRepository) GetByID(ctx context.Context, id string) (period.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, is_payroll_processed, processed_at, processed_by,
			created_by, updated_by, created_at, updated_at
		FROM attendance_period
		WHERE id = $1
	`

	var p period.AttendancePeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate,
		&p.IsPayrollProcessed, &p.ProcessedAt, &p.ProcessedBy,
		&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.AttendancePeriod{}, period.ErrPeriodNotFound
		}
		return period.AttendancePeriod{}, fmt.Errorf("failed to get attendance period: %w", err)
	}

	return p, nil
}

func (r *periodRepository) List(ctx context.Context) ([]period.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, is_payroll_processed, processed_at, processed_by,
			created_by, updated_by, created_at, updated_at
		FROM attendance_period
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance periods: %w", err)
	}
	defer rows.Close()

	var periods []period.AttendancePeriod
	for rows.Next() {
		var p period.AttendancePeriod
		if err := rows.Scan(
			&p.ID, &p.Name, &p.StartDate, &p.EndDate,
			&p.IsPayrollProcessed, &p.ProcessedAt, &p.ProcessedBy,
			&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

func (r *periodRepository) MarkProcessed(ctx context.Context, id string, processedBy string, processedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_period
		SET is_payroll_processed = true, processed_at = $2, processed_by = $3, updated_by = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, processedAt, processedBy)
	if err != nil {
		return fmt.Errorf("failed to mark attendance period processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return period.ErrPeriodNotFound
	}

	return nil
}
