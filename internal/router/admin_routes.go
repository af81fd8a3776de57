package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/handler"
	mw "github.com/cohai/studio-web/internal/middleware"
	"github.com/cohai/studio-web/internal/model"
)

// RegisterAdmin registers the admin dashboard. ADMIN and SUPERADMIN enter
// the same area; finer distinctions belong to the backend.
func RegisterAdmin(e *echo.Echo, ad *handler.AdminHandler) {
	g := e.Group("/admin", mw.RequireRole(model.RoleAdmin, model.RoleSuperadmin))
	g.GET("", ad.Home)

	g.GET("/locations", ad.Locations)
	g.POST("/locations", ad.CreateLocation)
	g.POST("/locations/:id", ad.UpdateLocation)
	g.GET("/locations/:id/delete", ad.ConfirmDeleteLocation)
	g.POST("/locations/:id/delete", ad.DeleteLocation)

	g.GET("/memberships", ad.Memberships)
	g.POST("/memberships", ad.CreateMembershipPlan)
	g.POST("/memberships/:id", ad.RenameMembershipPlan)
	g.GET("/memberships/:id/delete", ad.ConfirmDeleteMembershipPlan)
	g.POST("/memberships/:id/delete", ad.DeleteMembershipPlan)

	g.GET("/classes", ad.Classes)

	g.GET("/leads", ad.Leads)
	g.POST("/leads/:id/process", ad.ProcessLead)
}
