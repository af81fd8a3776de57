package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/session"
)

// Decision is the route guard's verdict for one request.
type Decision int

const (
	// DecisionAllow renders the guarded content.
	DecisionAllow Decision = iota
	// DecisionLoading renders the "authenticating" placeholder: a token
	// exists but the profile is not resolved yet. Never a redirect —
	// redirecting here would bounce a genuinely logged-in user to /login.
	DecisionLoading
	// DecisionLogin redirects to the login page, carrying the original
	// path so login can return the user afterwards.
	DecisionLogin
	// DecisionHome redirects an authenticated but unauthorized user to
	// the home page. Deliberately not /login: they have a valid session,
	// just the wrong role.
	DecisionHome
)

// Decide is the pure guard rule. With no roles it answers "requires any
// authenticated session"; with roles it additionally requires a resolved
// user whose role is in the set.
func Decide(st session.State, roles ...string) Decision {
	if st.Hydrating {
		return DecisionLoading
	}
	if st.Token == "" {
		return DecisionLogin
	}
	if len(roles) == 0 {
		return DecisionAllow
	}
	if st.User == nil {
		// Token present, profile unresolved: still authenticating.
		return DecisionLoading
	}
	for _, r := range roles {
		if st.User.Role == r {
			return DecisionAllow
		}
	}
	return DecisionHome
}

// RequireAuth guards routes that need any authenticated session.
func RequireAuth() echo.MiddlewareFunc {
	return requireDecision()
}

// RequireRole guards routes that need a session whose user holds one of
// the given roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return requireDecision(roles...)
}

func requireDecision(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			st := SessionFrom(c)
			switch Decide(st, roles...) {
			case DecisionAllow:
				return next(c)
			case DecisionLoading:
				return c.Render(http.StatusOK, "authenticating.html", map[string]any{
					"Title": "Загрузка профиля",
					"Err":   st.Err,
				})
			case DecisionLogin:
				return c.Redirect(http.StatusSeeOther, LoginURL(c.Request().RequestURI))
			default:
				return c.Redirect(http.StatusSeeOther, "/")
			}
		}
	}
}

// LoginURL builds the login redirect target, preserving the originally
// requested location in ?next= so a successful login can return there.
// Useless targets ("/", "/login" itself) are dropped.
func LoginURL(from string) string {
	if from == "" || from == "/" || from == "/login" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(from)
}
