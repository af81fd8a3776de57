package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/handler"
	mw "github.com/cohai/studio-web/internal/middleware"
	"github.com/cohai/studio-web/internal/model"
)

// RegisterCabinet registers the post-login areas. /cabinet only needs an
// authenticated session (it dispatches by role); /client/* requires the
// CLIENT role and /trainer the TRAINER role.
func RegisterCabinet(e *echo.Echo, a *handler.AuthHandler, cl *handler.ClientHandler) {
	e.GET("/cabinet", a.Cabinet, mw.RequireAuth())
	e.GET("/trainer", a.TrainerHome, mw.RequireRole(model.RoleTrainer))

	g := e.Group("/client", mw.RequireRole(model.RoleClient))
	g.GET("", cl.Home)
	g.GET("/classes", cl.Classes)
	g.POST("/classes/cancel", cl.CancelClass)
	g.GET("/memberships", cl.Memberships)
	g.GET("/leads", cl.Leads)
	g.GET("/calendar", cl.Calendar)
	g.GET("/profile", cl.Profile)
	g.POST("/profile", cl.ProfileUpdate)
	g.POST("/profile/password", cl.PasswordChange)
}
