// Package middleware holds the session cookie plumbing, the route guard
// and the lead-form throttle.
package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/session"
)

// CookieName is the session cookie. Its value is an HS256 JWT whose only
// payload is the session id; the backend token itself never reaches the
// browser.
const CookieName = "cohai_session"

// ctxSessionKey is where WithSession stores the resolved session.State.
const ctxSessionKey = "session"

// IssueCookie signs sid into a session cookie valid for ttl.
func IssueCookie(secret, sid string, ttl time.Duration, secure bool) (*http.Cookie, error) {
	exp := time.Now().UTC().Add(ttl)
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// ClearCookie expires the session cookie immediately.
func ClearCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// sidFromCookie verifies the cookie JWT and extracts the session id. Any
// verification problem (missing cookie, bad signature, wrong algorithm,
// expired) yields "" — the request simply proceeds as anonymous.
func sidFromCookie(c echo.Context, secret string) string {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return ""
	}
	tok, err := jwt.Parse(ck.Value, func(t *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC so a crafted token cannot downgrade
		// the verification.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return ""
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

// WithSession resolves the session for every request and stores the state
// in the Echo context. It never rejects a request itself; the guards below
// make the access decision.
func WithSession(store *session.Store, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := sidFromCookie(c, secret)
			st := store.Resolve(c.Request().Context(), sid)
			c.Set(ctxSessionKey, st)
			return next(c)
		}
	}
}

// SessionFrom returns the session state placed by WithSession. A missing
// value (routes outside the middleware) reads as anonymous.
func SessionFrom(c echo.Context) session.State {
	if st, ok := c.Get(ctxSessionKey).(session.State); ok {
		return st
	}
	return session.State{}
}
