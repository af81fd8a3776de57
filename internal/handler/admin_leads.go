package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/api"
	mw "github.com/cohai/studio-web/internal/middleware"
)

// Leads renders the lead inbox with a text search and a tri-state processed
// filter ("" = all, "true", "false").
func (h *AdminHandler) Leads(c echo.Context) error {
	return h.renderLeads(c, strings.TrimSpace(c.QueryParam("q")), c.QueryParam("is_processed"), "")
}

// ProcessLead marks one lead handled and returns to the inbox with the
// caller's filters intact. A backend refusal re-renders the inbox with the
// refusal shown and the listing unchanged.
func (h *AdminHandler) ProcessLead(c echo.Context) error {
	id := paramID(c, "id")
	st := mw.SessionFrom(c)
	query := strings.TrimSpace(c.FormValue("q"))
	processed := c.FormValue("is_processed")

	if id != 0 {
		if _, err := h.API.ProcessLead(c.Request().Context(), st.Token, id); err != nil {
			h.Log.Warn("process lead", "id", id, "error", err)
			return h.renderLeads(c, query, processed, adminFormError(err, "Не удалось отметить заявку обработанной."))
		}
	}

	back := url.Values{}
	if query != "" {
		back.Set("q", query)
	}
	if processed == "true" || processed == "false" {
		back.Set("is_processed", processed)
	}
	target := "/admin/leads"
	if enc := back.Encode(); enc != "" {
		target += "?" + enc
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (h *AdminHandler) renderLeads(c echo.Context, query, processed, actionErr string) error {
	st := mw.SessionFrom(c)
	data := pageData(c, "Заявки")
	data["Query"] = query
	if actionErr != "" {
		data["Error"] = actionErr
	}

	filter := api.LeadFilter{Query: query}
	switch processed {
	case "true":
		t := true
		filter.Processed = &t
		data["Processed"] = "true"
	case "false":
		f := false
		filter.Processed = &f
		data["Processed"] = "false"
	default:
		data["Processed"] = ""
	}

	items, err := h.API.AdminLeads(c.Request().Context(), st.Token, filter)
	if err != nil {
		h.Log.Warn("load admin leads", "error", err)
		data["Error"] = "Не удалось загрузить заявки."
	}
	data["Items"] = items
	return c.Render(http.StatusOK, "admin_leads.html", data)
}
