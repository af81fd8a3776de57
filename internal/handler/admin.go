package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/api"
	mw "github.com/cohai/studio-web/internal/middleware"
	"github.com/cohai/studio-web/internal/model"
)

// AdminHandler serves the admin dashboard: overview counters, location and
// membership management, the timetable listing and the lead inbox.
type AdminHandler struct {
	API *api.Client
	Log *slog.Logger
}

// Home renders the overview. The four listings are independent, so they are
// fetched concurrently; any single failure degrades to zero counters plus a
// banner rather than failing the page.
func (h *AdminHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	st := mw.SessionFrom(c)
	data := pageData(c, "Админ-панель")

	var (
		wg       sync.WaitGroup
		leads    []model.Lead
		locs     []model.Location
		plans    []model.MembershipPlan
		sessions []model.ClassSession
		errs     [4]error
	)
	wg.Add(4)
	go func() { defer wg.Done(); leads, errs[0] = h.API.AdminLeads(ctx, st.Token, api.LeadFilter{}) }()
	go func() { defer wg.Done(); locs, errs[1] = h.API.AdminLocations(ctx, st.Token) }()
	go func() { defer wg.Done(); plans, errs[2] = h.API.AdminMemberships(ctx, st.Token) }()
	go func() {
		defer wg.Done()
		sessions, errs[3] = h.API.AdminClassSessions(ctx, st.Token, api.ClassSessionFilter{})
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			h.Log.Warn("load admin overview", "error", err)
			data["Error"] = "Часть данных не загрузилась."
			break
		}
	}

	unprocessed := 0
	for _, l := range leads {
		if !l.IsProcessed {
			unprocessed++
		}
	}
	data["TotalLeads"] = len(leads)
	data["UnprocessedLeads"] = unprocessed
	data["LocationsCount"] = len(locs)
	data["PlansCount"] = len(plans)
	data["ActiveSessions"] = len(sessions)
	return c.Render(http.StatusOK, "admin_home.html", data)
}
