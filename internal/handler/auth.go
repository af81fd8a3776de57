package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	mw "github.com/cohai/studio-web/internal/middleware"
	"github.com/cohai/studio-web/internal/model"
	"github.com/cohai/studio-web/internal/session"
)

// AuthHandler owns login, logout and the post-login role dispatch.
type AuthHandler struct {
	Store  *session.Store
	Secret string
	TTL    time.Duration
	Secure bool
	Log    *slog.Logger
}

// LoginPage renders the login form. An already-resolved session skips the
// form and goes straight to its dashboard.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	st := mw.SessionFrom(c)
	if st.LoggedIn() && st.User != nil {
		return c.Redirect(http.StatusSeeOther, roleHome(st.User))
	}
	data := pageData(c, "Вход")
	data["Next"] = safeNext(c.QueryParam("next"))
	return c.Render(http.StatusOK, "login.html", data)
}

// Login exchanges the submitted credentials for a session. Success sets the
// signed cookie and redirects to the preserved target (or the cabinet
// dispatcher); failure re-renders the form with the backend's message and
// the email kept.
func (h *AuthHandler) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	next := safeNext(c.FormValue("next"))

	sid, err := h.Store.Login(c.Request().Context(), email, password)
	if err != nil {
		h.Log.Warn("login rejected", "email", email, "error", err)
		data := pageData(c, "Вход")
		data["Next"] = next
		data["Email"] = email
		data["Error"] = loginErrorMessage(err)
		return c.Render(http.StatusOK, "login.html", data)
	}

	cookie, err := mw.IssueCookie(h.Secret, sid, h.TTL, h.Secure)
	if err != nil {
		h.Log.Error("issue session cookie", "error", err)
		return c.Render(http.StatusInternalServerError, "error.html", map[string]any{
			"Title": "Ошибка", "Message": "Не удалось создать сессию. Попробуйте ещё раз.",
		})
	}
	c.SetCookie(cookie)

	if next == "" {
		next = "/cabinet"
	}
	return c.Redirect(http.StatusSeeOther, next)
}

// Logout destroys the session and clears the cookie. POST-only so a page
// prefetch cannot log the user out.
func (h *AuthHandler) Logout(c echo.Context) error {
	st := mw.SessionFrom(c)
	if st.ID != "" {
		h.Store.Logout(c.Request().Context(), st.ID)
	}
	c.SetCookie(mw.ClearCookie(h.Secure))
	return c.Redirect(http.StatusSeeOther, "/")
}

// Cabinet dispatches an authenticated session to the dashboard matching its
// role. The route sits behind RequireAuth, so an anonymous request never
// reaches here; a still-hydrating one renders the placeholder.
func (h *AuthHandler) Cabinet(c echo.Context) error {
	st := mw.SessionFrom(c)
	if st.User == nil {
		return c.Render(http.StatusOK, "authenticating.html", map[string]any{
			"Title": "Загрузка профиля",
			"Err":   st.Err,
		})
	}
	return c.Redirect(http.StatusSeeOther, roleHome(st.User))
}

// TrainerHome is the trainer area. The trainer tooling lives in a separate
// application; this page only confirms the login and points there.
func (h *AuthHandler) TrainerHome(c echo.Context) error {
	return c.Render(http.StatusOK, "trainer_home.html", pageData(c, "Кабинет тренера"))
}

// roleHome maps a resolved profile to its dashboard entry point.
func roleHome(u *model.UserProfile) string {
	switch {
	case u.IsAdmin():
		return "/admin"
	case u.Role == model.RoleTrainer:
		return "/trainer"
	default:
		return "/client"
	}
}

// loginErrorMessage keeps backend rejection text but papers over transport
// failures with a generic message.
func loginErrorMessage(err error) string {
	if msg := backendMessage(err); msg != "" {
		return msg
	}
	return "Не удалось войти. Проверьте соединение и попробуйте ещё раз."
}
