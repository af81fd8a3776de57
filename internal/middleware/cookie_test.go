package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func contextWithCookie(t *testing.T, ck *http.Cookie) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if ck != nil {
		req.AddCookie(ck)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestCookieRoundTrip(t *testing.T) {
	ck, err := IssueCookie(testSecret, "sid-42", time.Hour, false)
	if err != nil {
		t.Fatalf("IssueCookie: %v", err)
	}
	if !ck.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	got := sidFromCookie(contextWithCookie(t, ck), testSecret)
	if got != "sid-42" {
		t.Errorf("sid = %q, want sid-42", got)
	}
}

func TestCookieRejectsWrongSecret(t *testing.T) {
	ck, err := IssueCookie(testSecret, "sid-42", time.Hour, false)
	if err != nil {
		t.Fatalf("IssueCookie: %v", err)
	}
	if got := sidFromCookie(contextWithCookie(t, ck), "another-secret-value-entirely!!"); got != "" {
		t.Errorf("sid = %q, want empty for wrong secret", got)
	}
}

func TestCookieRejectsExpired(t *testing.T) {
	ck, err := IssueCookie(testSecret, "sid-42", -time.Minute, false)
	if err != nil {
		t.Fatalf("IssueCookie: %v", err)
	}
	if got := sidFromCookie(contextWithCookie(t, ck), testSecret); got != "" {
		t.Errorf("sid = %q, want empty for expired token", got)
	}
}

func TestMissingCookieReadsAnonymous(t *testing.T) {
	if got := sidFromCookie(contextWithCookie(t, nil), testSecret); got != "" {
		t.Errorf("sid = %q, want empty without cookie", got)
	}
}
