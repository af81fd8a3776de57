package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/cohai/studio-web/internal/api"
	mw "github.com/cohai/studio-web/internal/middleware"
	"github.com/cohai/studio-web/internal/model"
	"github.com/cohai/studio-web/internal/session"
)

const testCookieSecret = "0123456789abcdef0123456789abcdef"

// sessionKey mirrors the context key the session middleware uses.
const sessionKey = "session"

func authStub(t *testing.T, role string, loginStatus int) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			if loginStatus != 0 {
				w.WriteHeader(loginStatus)
				_, _ = w.Write([]byte(`{"detail":"Неверный логин или пароль"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
		case "/api/v1/me/profile":
			_ = json.NewEncoder(w).Encode(model.UserProfile{ID: 1, Email: "u@e.x", Role: role})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newAuthHandler(t *testing.T, backend http.HandlerFunc) *AuthHandler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	log := discardLogger()
	client := api.New(srv.URL, 2*time.Second, log)
	store := session.NewStore(client, nil, time.Hour, log)
	return &AuthHandler{Store: store, Secret: testCookieSecret, TTL: time.Hour, Log: log}
}

func TestLoginSuccessSetsCookieAndRedirects(t *testing.T) {
	e := newEcho(t)
	h := newAuthHandler(t, authStub(t, model.RoleClient, 0))

	c, rec := postFormContext(e, "/login", url.Values{
		"email":    {"u@e.x"},
		"password": {"pw"},
	})
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/cabinet" {
		t.Errorf("redirect = %q, want /cabinet", got)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != mw.CookieName {
		t.Fatalf("cookies = %v, want one session cookie", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
}

func TestLoginPreservesNextTarget(t *testing.T) {
	e := newEcho(t)
	h := newAuthHandler(t, authStub(t, model.RoleClient, 0))

	c, rec := postFormContext(e, "/login", url.Values{
		"email":    {"u@e.x"},
		"password": {"pw"},
		"next":     {"/client/classes"},
	})
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := rec.Header().Get("Location"); got != "/client/classes" {
		t.Errorf("redirect = %q, want preserved next target", got)
	}
}

func TestLoginRejectsOffsiteNext(t *testing.T) {
	e := newEcho(t)
	h := newAuthHandler(t, authStub(t, model.RoleClient, 0))

	c, rec := postFormContext(e, "/login", url.Values{
		"email":    {"u@e.x"},
		"password": {"pw"},
		"next":     {"https://evil.example"},
	})
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := rec.Header().Get("Location"); got != "/cabinet" {
		t.Errorf("redirect = %q, want /cabinet for offsite next", got)
	}
}

func TestLoginFailureShowsBackendMessage(t *testing.T) {
	e := newEcho(t)
	h := newAuthHandler(t, authStub(t, model.RoleClient, http.StatusUnauthorized))

	c, rec := postFormContext(e, "/login", url.Values{
		"email":    {"u@e.x"},
		"password": {"bad"},
	})
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Неверный логин или пароль") {
		t.Error("backend rejection text not shown")
	}
	if !strings.Contains(body, `value="u@e.x"`) {
		t.Error("email not kept after failed login")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("failed login must not set a cookie")
	}
}

func TestCabinetDispatchesByRole(t *testing.T) {
	cases := []struct {
		role string
		want string
	}{
		{model.RoleClient, "/client"},
		{model.RoleTrainer, "/trainer"},
		{model.RoleAdmin, "/admin"},
		{model.RoleSuperadmin, "/admin"},
	}
	e := newEcho(t)
	h := newAuthHandler(t, authStub(t, model.RoleClient, 0))
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			c, rec := getContext(e, "/cabinet")
			c.Set(sessionKey, session.State{
				ID:    "sid",
				Token: "tok",
				User:  &model.UserProfile{ID: 1, Role: tc.role},
			})
			if err := h.Cabinet(c); err != nil {
				t.Fatalf("Cabinet: %v", err)
			}
			if got := rec.Header().Get("Location"); got != tc.want {
				t.Errorf("redirect = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCabinetRendersPlaceholderWhileHydrating(t *testing.T) {
	e := newEcho(t)
	h := newAuthHandler(t, authStub(t, model.RoleClient, 0))

	c, rec := getContext(e, "/cabinet")
	c.Set(sessionKey, session.State{ID: "sid", Token: "tok", Hydrating: true})
	if err := h.Cabinet(c); err != nil {
		t.Fatalf("Cabinet: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 placeholder, not a redirect", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Загрузка профиля") {
		t.Error("placeholder page not rendered")
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	e := newEcho(t)
	h := newAuthHandler(t, authStub(t, model.RoleClient, 0))

	c, rec := postFormContext(e, "/logout", url.Values{})
	c.Set(sessionKey, session.State{ID: "sid", Token: "tok"})
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if got := rec.Header().Get("Location"); got != "/" {
		t.Errorf("redirect = %q, want /", got)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Errorf("cookies = %v, want one expired session cookie", cookies)
	}
}
