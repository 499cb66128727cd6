package period

import "context"

type PeriodService interface {
	Create(ctx context.Context, req CreatePeriodRequest, createdBy string) (AttendancePeriod, error)
	GetByID(ctx context.Context, id string) (AttendancePeriod, error)
	List(ctx context.Context) ([]AttendancePeriod, error)
}
