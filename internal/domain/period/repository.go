package period

import (
	"context"
	"time"
)

type PeriodRepository interface {
	Create(ctx context.Context, p AttendancePeriod) (AttendancePeriod, error)
	GetByID(ctx context.Context, id string) (AttendancePeriod, error)
	List(ctx context.Context) ([]AttendancePeriod, error)

	// MarkProcessed flips the processed flag. Called exactly once per period,
	// inside the payroll run transaction.
	MarkProcessed(ctx context.Context, id string, processedBy string, processedAt time.Time) error
}
