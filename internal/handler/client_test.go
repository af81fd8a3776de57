package handler

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/cohai/studio-web/internal/model"
	"github.com/cohai/studio-web/internal/session"
)

func clientSession() session.State {
	return session.State{
		ID:    "sid",
		Token: "tok",
		User:  &model.UserProfile{ID: 1, Email: "u@e.x", Role: model.RoleClient, FullName: "Ана", Phone: "+373"},
	}
}

const myClassesJSON = `{
	"upcoming":[
		{"attendance_id":11,"class_session_id":5,"class_date":"2026-09-01","start_time":"18:00:00","end_time":"19:00:00","status":"PLANNED"},
		{"attendance_id":12,"class_session_id":6,"class_date":"2026-09-02","start_time":"10:00:00","end_time":"11:00:00","status":"ATTENDED"}
	],
	"history":[
		{"attendance_id":9,"class_session_id":5,"class_date":"2026-08-20","start_time":"18:00:00","end_time":"19:00:00","status":"MISSED"}
	]
}`

func TestClassesRendersCancelOnlyForPlanned(t *testing.T) {
	e := newEcho(t)
	h := &ClientHandler{API: newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(myClassesJSON))
	}), Log: discardLogger()}

	c, rec := getContext(e, "/client/classes")
	c.Set(sessionKey, clientSession())
	if err := h.Classes(c); err != nil {
		t.Fatalf("Classes: %v", err)
	}
	body := rec.Body.String()

	// The PLANNED booking gets a cancel form, the ATTENDED one does not.
	if strings.Count(body, `name="attendance_id"`) != 1 {
		t.Error("want exactly one cancel form")
	}
	if !strings.Contains(body, `value="11"`) {
		t.Error("cancel form targets the wrong booking")
	}
	if !strings.Contains(body, "Отмена недоступна для этого занятия.") {
		t.Error("non-cancelable booking missing its hint")
	}
	if !strings.Contains(body, "Не пришёл") {
		t.Error("history status label missing")
	}
}

func TestCancelClassRedirectsToReload(t *testing.T) {
	e := newEcho(t)
	var cancelHits int
	h := &ClientHandler{API: newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/me/classes/cancel" {
			cancelHits++
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(myClassesJSON))
	}), Log: discardLogger()}

	c, rec := postFormContext(e, "/client/classes/cancel", url.Values{"attendance_id": {"11"}})
	c.Set(sessionKey, clientSession())
	if err := h.CancelClass(c); err != nil {
		t.Fatalf("CancelClass: %v", err)
	}
	if cancelHits != 1 {
		t.Errorf("cancel endpoint hit %d times, want 1", cancelHits)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/client/classes" {
		t.Errorf("want 303 to /client/classes, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestCancelClassFailureKeepsListWithMessage(t *testing.T) {
	e := newEcho(t)
	h := &ClientHandler{API: newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/me/classes/cancel" {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"detail":"Занятие уже началось"}`))
			return
		}
		_, _ = w.Write([]byte(myClassesJSON))
	}), Log: discardLogger()}

	c, rec := postFormContext(e, "/client/classes/cancel", url.Values{"attendance_id": {"11"}})
	c.Set(sessionKey, clientSession())
	if err := h.CancelClass(c); err != nil {
		t.Fatalf("CancelClass: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Занятие уже началось") {
		t.Error("backend refusal text not shown")
	}
	if !strings.Contains(body, `value="11"`) {
		t.Error("booking list must still render after a failed cancel")
	}
}

func TestProfileUpdateIndependentOfPassword(t *testing.T) {
	e := newEcho(t)
	h := &ClientHandler{
		API: nil,
		Store: newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPatch && r.URL.Path == "/api/v1/me/profile" {
				_, _ = w.Write([]byte(`{"id":1,"email":"u@e.x","role":"CLIENT","full_name":"Новая","phone":"+37360000000"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}).Store,
		Log: discardLogger(),
	}

	// The store has no token for this sid, so the update must fail with the
	// generic message rather than panic.
	c, rec := postFormContext(e, "/client/profile", url.Values{"full_name": {"Новая"}})
	c.Set(sessionKey, clientSession())
	if err := h.ProfileUpdate(c); err != nil {
		t.Fatalf("ProfileUpdate: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Не удалось сохранить профиль") {
		t.Error("profile error not rendered")
	}
	if strings.Contains(body, "PasswordError") || strings.Contains(body, "Не удалось изменить пароль") {
		t.Error("password state must be untouched by a profile failure")
	}
}

func TestCalendarDefaultsToTwoWeeks(t *testing.T) {
	e := newEcho(t)
	var gotStart, gotEnd string
	h := &ClientHandler{API: newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotStart = r.URL.Query().Get("start_date")
		gotEnd = r.URL.Query().Get("end_date")
		_, _ = w.Write([]byte(`{"days":[{"date":"2026-08-30","classes":[]}]}`))
	}), Log: discardLogger()}

	c, _ := getContext(e, "/client/calendar")
	c.Set(sessionKey, clientSession())
	if err := h.Calendar(c); err != nil {
		t.Fatalf("Calendar: %v", err)
	}

	start, err := time.Parse("2006-01-02", gotStart)
	if err != nil {
		t.Fatalf("start_date %q not a date: %v", gotStart, err)
	}
	end, err := time.Parse("2006-01-02", gotEnd)
	if err != nil {
		t.Fatalf("end_date %q not a date: %v", gotEnd, err)
	}
	if d := end.Sub(start); d != 14*24*time.Hour {
		t.Errorf("default range = %v, want 14 days", d)
	}
}
