package model

import (
	"fmt"
	"strings"
)

// ClassSession is a recurring weekly slot in the studio timetable, not a
// single dated occurrence. Weekday is 0-based starting from Monday, the
// times are backend-formatted strings ("18:00" or "18:00:00").
type ClassSession struct {
	ID              int64  `json:"id"`
	Weekday         int    `json:"weekday"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Capacity        int    `json:"capacity"`
	LocationID      int64  `json:"location_id"`
	ProgramTypeID   int64  `json:"program_type_id"`
	TrainerID       int64  `json:"trainer_id"`
	IsActive        bool   `json:"is_active"`
}

var weekdayNames = []string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

// WeekdayName returns the Russian weekday label for a 0-based weekday
// index, or a numeric placeholder for out-of-range values.
func WeekdayName(d int) string {
	if d >= 0 && d < len(weekdayNames) {
		return weekdayNames[d]
	}
	return fmt.Sprintf("День %d", d)
}

// ShortTime trims seconds from a backend time string: "18:30:00" → "18:30".
// Unrecognised values pass through untouched.
func ShortTime(t string) string {
	parts := strings.SplitN(t, ":", 3)
	if len(parts) < 2 {
		return t
	}
	return parts[0] + ":" + parts[1]
}
