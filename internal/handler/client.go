package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/api"
	mw "github.com/cohai/studio-web/internal/middleware"
	"github.com/cohai/studio-web/internal/model"
	"github.com/cohai/studio-web/internal/session"
)

// ClientHandler serves the client cabinet: bookings, memberships, leads,
// profile and the calendar. Every page fetches fresh from the backend with
// the session's token.
type ClientHandler struct {
	API   *api.Client
	Store *session.Store
	Log   *slog.Logger
}

// Home renders the cabinet overview with booking and membership counts.
func (h *ClientHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	st := mw.SessionFrom(c)
	data := pageData(c, "Личный кабинет")
	data["UpcomingCount"] = 0
	data["ActiveMemberships"] = 0

	classes, err := h.API.MyClasses(ctx, st.Token)
	if err != nil {
		h.Log.Warn("load my classes", "error", err)
		data["Error"] = "Не удалось загрузить данные кабинета."
	} else {
		data["UpcomingCount"] = len(classes.Upcoming)
	}

	mem, err := h.API.MyMemberships(ctx, st.Token)
	if err != nil {
		h.Log.Warn("load my memberships", "error", err)
		data["Error"] = "Не удалось загрузить данные кабинета."
	} else {
		data["ActiveMemberships"] = len(mem.Active)
	}
	return c.Render(http.StatusOK, "client_home.html", data)
}

// Classes renders the booking list, upcoming and history.
func (h *ClientHandler) Classes(c echo.Context) error {
	return h.renderClasses(c, "")
}

// CancelClass cancels one booking and reloads the list. On success the page
// is re-fetched via redirect, so the shown status is always the backend's;
// on failure the list renders unchanged with the error above it.
func (h *ClientHandler) CancelClass(c echo.Context) error {
	st := mw.SessionFrom(c)
	attID := formID(c, "attendance_id")
	if attID == 0 {
		return h.renderClasses(c, "Не удалось отменить запись.")
	}
	if err := h.API.CancelClass(c.Request().Context(), st.Token, attID); err != nil {
		h.Log.Warn("cancel class", "attendance_id", attID, "error", err)
		msg := backendMessage(err)
		if msg == "" {
			msg = "Не удалось отменить запись. Попробуйте ещё раз."
		}
		return h.renderClasses(c, msg)
	}
	return c.Redirect(http.StatusSeeOther, "/client/classes")
}

func (h *ClientHandler) renderClasses(c echo.Context, cancelErr string) error {
	st := mw.SessionFrom(c)
	data := pageData(c, "Мои занятия")
	if cancelErr != "" {
		data["CancelError"] = cancelErr
	}
	classes, err := h.API.MyClasses(c.Request().Context(), st.Token)
	if err != nil {
		h.Log.Warn("load my classes", "error", err)
		data["Error"] = "Не удалось загрузить занятия."
	}
	data["Classes"] = classes
	return c.Render(http.StatusOK, "client_classes.html", data)
}

// Memberships renders active and past memberships.
func (h *ClientHandler) Memberships(c echo.Context) error {
	st := mw.SessionFrom(c)
	data := pageData(c, "Мои абонементы")
	mem, err := h.API.MyMemberships(c.Request().Context(), st.Token)
	if err != nil {
		h.Log.Warn("load my memberships", "error", err)
		data["Error"] = "Не удалось загрузить абонементы."
	}
	data["Memberships"] = mem
	return c.Render(http.StatusOK, "client_memberships.html", data)
}

// Leads renders the user's trial-visit requests.
func (h *ClientHandler) Leads(c echo.Context) error {
	st := mw.SessionFrom(c)
	data := pageData(c, "Мои заявки")
	leads, err := h.API.MyLeads(c.Request().Context(), st.Token)
	if err != nil {
		h.Log.Warn("load my leads", "error", err)
		data["Error"] = "Не удалось загрузить заявки."
	}
	data["Leads"] = leads
	return c.Render(http.StatusOK, "client_leads.html", data)
}

// Profile renders the contact-details and password forms, prefilled from
// the hydrated session profile.
func (h *ClientHandler) Profile(c echo.Context) error {
	st := mw.SessionFrom(c)
	data := pageData(c, "Профиль")
	if st.User != nil {
		data["FullName"] = st.User.FullName
		data["Phone"] = st.User.Phone
		data["Email"] = st.User.Email
	}
	return c.Render(http.StatusOK, "client_profile.html", data)
}

// ProfileUpdate saves contact details. Password state on the page is
// untouched either way.
func (h *ClientHandler) ProfileUpdate(c echo.Context) error {
	st := mw.SessionFrom(c)
	upd := model.ProfileUpdate{
		FullName: c.FormValue("full_name"),
		Phone:    c.FormValue("phone"),
	}
	data := pageData(c, "Профиль")
	data["FullName"] = upd.FullName
	data["Phone"] = upd.Phone
	if st.User != nil {
		data["Email"] = st.User.Email
	}

	user, err := h.Store.UpdateProfile(c.Request().Context(), st.ID, upd)
	if err != nil {
		h.Log.Warn("update profile", "error", err)
		msg := backendMessage(err)
		if msg == "" {
			msg = "Не удалось сохранить профиль. Попробуйте ещё раз."
		}
		data["ProfileError"] = msg
		return c.Render(http.StatusOK, "client_profile.html", data)
	}
	data["FullName"] = user.FullName
	data["Phone"] = user.Phone
	data["Email"] = user.Email
	data["ProfileSaved"] = true
	return c.Render(http.StatusOK, "client_profile.html", data)
}

// PasswordChange submits a password change. Contact-details state on the
// page is untouched either way.
func (h *ClientHandler) PasswordChange(c echo.Context) error {
	st := mw.SessionFrom(c)
	ch := model.PasswordChange{
		CurrentPassword: c.FormValue("current_password"),
		NewPassword:     c.FormValue("new_password"),
	}
	data := pageData(c, "Профиль")
	if st.User != nil {
		data["FullName"] = st.User.FullName
		data["Phone"] = st.User.Phone
		data["Email"] = st.User.Email
	}

	if _, err := h.Store.ChangePassword(c.Request().Context(), st.ID, ch); err != nil {
		h.Log.Warn("change password", "error", err)
		msg := backendMessage(err)
		if msg == "" {
			msg = "Не удалось изменить пароль. Попробуйте ещё раз."
		}
		data["PasswordError"] = msg
		return c.Render(http.StatusOK, "client_profile.html", data)
	}
	data["PasswordSaved"] = true
	return c.Render(http.StatusOK, "client_profile.html", data)
}

// Calendar renders the booking calendar. Without an explicit range the
// page shows two weeks starting today.
func (h *ClientHandler) Calendar(c echo.Context) error {
	st := mw.SessionFrom(c)
	data := pageData(c, "Календарь")

	start := c.QueryParam("start_date")
	end := c.QueryParam("end_date")
	if start == "" || end == "" {
		today := time.Now()
		start = today.Format("2006-01-02")
		end = today.AddDate(0, 0, 14).Format("2006-01-02")
	}
	data["StartDate"] = start
	data["EndDate"] = end

	cal, err := h.API.MyCalendar(c.Request().Context(), st.Token, start, end)
	if err != nil {
		h.Log.Warn("load calendar", "error", err)
		data["Error"] = "Не удалось загрузить календарь."
	} else {
		data["Days"] = cal.Days
	}
	return c.Render(http.StatusOK, "client_calendar.html", data)
}
