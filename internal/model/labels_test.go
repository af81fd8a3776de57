package model

import "testing"

func TestProgramLabel(t *testing.T) {
	types := []ProgramType{{ID: 2, Name: "Здоровая спина"}, {ID: 7, Name: "Стретчинг"}}

	if got := ProgramLabel(types, 7); got != "Стретчинг" {
		t.Errorf("ProgramLabel known id = %q", got)
	}
	if got := ProgramLabel(types, 99); got != "Программа #99" {
		t.Errorf("ProgramLabel unknown id = %q, want numeric fallback", got)
	}
	if got := ProgramLabel(nil, 2); got != "Программа #2" {
		t.Errorf("ProgramLabel with no reference data = %q", got)
	}
}

func TestLocationLabel(t *testing.T) {
	locs := []Location{{ID: 1, Name: "Центральная"}}
	if got := LocationLabel(locs, 1); got != "Центральная" {
		t.Errorf("LocationLabel known id = %q", got)
	}
	if got := LocationLabel(locs, 4); got != "#4" {
		t.Errorf("LocationLabel unknown id = %q", got)
	}
}

func TestShortTime(t *testing.T) {
	cases := map[string]string{
		"18:30:00": "18:30",
		"18:30":    "18:30",
		"9:05:59":  "9:05",
		"":         "",
		"oddball":  "oddball",
	}
	for in, want := range cases {
		if got := ShortTime(in); got != want {
			t.Errorf("ShortTime(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(0); got != "Понедельник" {
		t.Errorf("WeekdayName(0) = %q", got)
	}
	if got := WeekdayName(6); got != "Воскресенье" {
		t.Errorf("WeekdayName(6) = %q", got)
	}
	if got := WeekdayName(9); got != "День 9" {
		t.Errorf("WeekdayName(9) = %q, want placeholder", got)
	}
}

func TestCanCancel(t *testing.T) {
	for status, want := range map[string]bool{
		AttendancePlanned:  true,
		AttendanceAttended: false,
		AttendanceMissed:   false,
		AttendanceCanceled: false,
	} {
		a := Attendance{Status: status}
		if a.CanCancel() != want {
			t.Errorf("CanCancel(%s) = %v, want %v", status, !want, want)
		}
	}
}
