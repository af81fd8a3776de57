package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/api"
	mw "github.com/cohai/studio-web/internal/middleware"
)

// Classes renders the admin timetable listing with filters. Unlike the
// public schedule this one can include inactive slots.
func (h *AdminHandler) Classes(c echo.Context) error {
	ctx := c.Request().Context()
	st := mw.SessionFrom(c)
	data := pageData(c, "Занятия")

	filter := api.ClassSessionFilter{
		LocationID:      formID(c, "location_id"),
		ProgramTypeID:   formID(c, "program_type_id"),
		TrainerID:       formID(c, "trainer_id"),
		IncludeInactive: c.QueryParam("include_inactive") == "on",
	}
	data["Filter"] = filter

	locs, err := h.API.AdminLocations(ctx, st.Token)
	if err != nil {
		h.Log.Warn("load admin locations", "error", err)
		data["Error"] = "Не удалось загрузить данные."
	}
	data["Locations"] = locs

	// Program types have no admin variant; the public list is the same data.
	types, err := h.API.ProgramTypes(ctx)
	if err != nil {
		h.Log.Warn("load program types", "error", err)
	}
	data["ProgramTypes"] = types

	items, err := h.API.AdminClassSessions(ctx, st.Token, filter)
	if err != nil {
		h.Log.Warn("load admin class sessions", "error", err)
		data["Error"] = "Не удалось загрузить занятия."
	}
	data["Items"] = items
	return c.Render(http.StatusOK, "admin_classes.html", data)
}
