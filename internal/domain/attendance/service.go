package attendance

import "context"

type AttendanceService interface {
	Submit(ctx context.Context, req SubmitAttendanceRequest) (Attendance, error)
	ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]Attendance, error)
}
