package model

// Attendance statuses. The backend only ever moves PLANNED forward into
// one of the terminal states; the client may cancel only while PLANNED.
const (
	AttendancePlanned  = "PLANNED"
	AttendanceAttended = "ATTENDED"
	AttendanceMissed   = "MISSED"
	AttendanceCanceled = "CANCELED"
)

// Attendance is a client's booking on a specific dated occurrence of a
// ClassSession.
type Attendance struct {
	AttendanceID   int64  `json:"attendance_id"`
	ClassSessionID int64  `json:"class_session_id"`
	ClassDate      string `json:"class_date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Status         string `json:"status"`
}

// CanCancel reports whether the booking is still cancelable by the client.
func (a Attendance) CanCancel() bool {
	return a.Status == AttendancePlanned
}

// AttendanceStatusLabel maps a booking status to its Russian display text.
func AttendanceStatusLabel(status string) string {
	switch status {
	case AttendancePlanned:
		return "Запланировано"
	case AttendanceAttended:
		return "Посетил"
	case AttendanceMissed:
		return "Не пришёл"
	case AttendanceCanceled:
		return "Отменено"
	default:
		return status
	}
}

// AttendanceBadgeClass picks the CSS badge modifier for a booking status.
func AttendanceBadgeClass(status string) string {
	switch status {
	case AttendancePlanned:
		return "badge badge--blue"
	case AttendanceAttended:
		return "badge badge--green"
	case AttendanceMissed:
		return "badge badge--red"
	case AttendanceCanceled:
		return "badge badge--gray"
	default:
		return "badge"
	}
}

// MyClasses is the /me/classes response shape: bookings split by the
// backend into upcoming and past.
type MyClasses struct {
	Upcoming []Attendance `json:"upcoming"`
	History  []Attendance `json:"history"`
}
