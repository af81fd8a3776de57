package model

// CalendarDay is one bucket of the /me/calendar response: a date with the
// client's classes on that date.
type CalendarDay struct {
	Date    string       `json:"date"`
	Classes []Attendance `json:"classes"`
}

// Calendar is the /me/calendar response shape.
type Calendar struct {
	Days []CalendarDay `json:"days"`
}
