package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
)

type Attendance struct {
	ID                 string
	EmployeeID         string
	AttendancePeriodID string
	Date               time.Time
	CheckIn            *time.Time // time of day, date part ignored
	CheckOut           *time.Time
	Status             Status
	Notes              *string
	CreatedBy          *string
	UpdatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// lateThreshold is 09:15; a check-in strictly after it marks the day late.
var lateThreshold = time.Date(0, 1, 1, 9, 15, 0, 0, time.UTC)

// DeriveStatus computes the day status from check-in/check-out times. Both
// rules apply against the present baseline in a fixed order: the late check
// first, then the under-4-hours check, which may override late to half_day.
func DeriveStatus(checkIn, checkOut *time.Time) Status {
	status := StatusPresent

	if checkIn != nil {
		in := timeOfDay(*checkIn)
		if in.After(lateThreshold) {
			status = StatusLate
		}
	}

	if checkIn != nil && checkOut != nil {
		worked := timeOfDay(*checkOut).Sub(timeOfDay(*checkIn))
		if worked < 4*time.Hour {
			status = StatusHalfDay
		}
	}

	return status
}

// WorkedDayValue is the contribution of a record to days worked: present and
// late count a full day, half_day counts half, absent counts nothing.
func (a Attendance) WorkedDayValue() float64 {
	switch a.Status {
	case StatusPresent, StatusLate:
		return 1
	case StatusHalfDay:
		return 0.5
	default:
		return 0
	}
}

func timeOfDay(t time.Time) time.Time {
	return time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
