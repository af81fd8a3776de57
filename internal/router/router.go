// Package router wires URLs to handlers. Public pages, the client cabinet
// and the admin dashboard register separately so the role guards sit in
// exactly one place each.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/cohai/studio-web/internal/handler"
	mw "github.com/cohai/studio-web/internal/middleware"
)

// leadsPerMinute caps guest lead submissions per client IP.
const leadsPerMinute = 5

// RegisterPublic registers the marketing pages, the guest lead form, login
// and logout. Everything here renders for anonymous visitors.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, a *handler.AuthHandler, rdb *redis.Client) {
	e.GET("/", p.Home)
	e.GET("/newbie", p.Newbie)
	e.GET("/formats", p.Formats)
	e.GET("/schedule", p.Schedule)
	e.GET("/prices", p.Prices)
	e.GET("/trainers", p.Trainers)
	e.GET("/contacts", p.Contacts)
	e.POST("/lead", p.SubmitLead, mw.LeadThrottle(rdb, leadsPerMinute))

	e.GET("/login", a.LoginPage)
	e.POST("/login", a.Login)
	e.POST("/logout", a.Logout)

	e.GET("/healthz", handler.Healthz)
}
