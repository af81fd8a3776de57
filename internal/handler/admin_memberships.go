package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/api"
	mw "github.com/cohai/studio-web/internal/middleware"
)

// planForm carries the create-plan form state across a failed submit.
type planForm struct {
	Name        string
	Description string
	Price       string
	LocationID  int64
	Error       string
}

// Memberships lists plans with the create form; ?edit= switches one row to
// the inline rename form.
func (h *AdminHandler) Memberships(c echo.Context) error {
	var editing int64
	if id, err := strconv.ParseInt(c.QueryParam("edit"), 10, 64); err == nil && id > 0 {
		editing = id
	}
	return h.renderMemberships(c, planForm{}, editing, "")
}

// CreateMembershipPlan validates and submits the create form. Price must be
// a non-negative number; the backend owns every other rule.
func (h *AdminHandler) CreateMembershipPlan(c echo.Context) error {
	form := planForm{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Price:       strings.TrimSpace(c.FormValue("price")),
		LocationID:  formID(c, "location_id"),
	}
	price, priceErr := strconv.ParseFloat(form.Price, 64)
	switch {
	case form.Name == "":
		form.Error = "Название абонемента обязательно."
	case priceErr != nil || price < 0:
		form.Error = "Цена должна быть неотрицательным числом."
	case form.LocationID == 0:
		form.Error = "Выберите локацию."
	}
	if form.Error != "" {
		return h.renderMemberships(c, form, 0, "")
	}

	st := mw.SessionFrom(c)
	draft := api.PlanDraft{
		Name:        form.Name,
		Description: optString(form.Description),
		Price:       price,
		LocationID:  form.LocationID,
	}
	if _, err := h.API.CreateMembershipPlan(c.Request().Context(), st.Token, draft); err != nil {
		h.Log.Warn("create membership plan", "error", err)
		form.Error = adminFormError(err, "Не удалось создать абонемент.")
		return h.renderMemberships(c, form, 0, "")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/memberships")
}

// RenameMembershipPlan submits the inline rename form.
func (h *AdminHandler) RenameMembershipPlan(c echo.Context) error {
	id := paramID(c, "id")
	name := strings.TrimSpace(c.FormValue("name"))
	if id == 0 {
		return c.Redirect(http.StatusSeeOther, "/admin/memberships")
	}
	if name == "" {
		return h.renderMemberships(c, planForm{}, id, "Название абонемента обязательно.")
	}

	st := mw.SessionFrom(c)
	if _, err := h.API.RenameMembershipPlan(c.Request().Context(), st.Token, id, name); err != nil {
		h.Log.Warn("rename membership plan", "id", id, "error", err)
		return h.renderMemberships(c, planForm{}, id, adminFormError(err, "Не удалось переименовать абонемент."))
	}
	return c.Redirect(http.StatusSeeOther, "/admin/memberships")
}

// ConfirmDeleteMembershipPlan renders the delete confirmation page.
func (h *AdminHandler) ConfirmDeleteMembershipPlan(c echo.Context) error {
	id := paramID(c, "id")
	if id == 0 {
		return c.Redirect(http.StatusSeeOther, "/admin/memberships")
	}
	data := pageData(c, "Удаление абонемента")
	data["Prompt"] = "Удалить абонемент #" + strconv.FormatInt(id, 10) + "? Действие необратимо."
	data["Action"] = "/admin/memberships/" + strconv.FormatInt(id, 10) + "/delete"
	data["CancelURL"] = "/admin/memberships"
	return c.Render(http.StatusOK, "confirm_delete.html", data)
}

// DeleteMembershipPlan performs the confirmed delete. A refusal (a plan
// with purchased instances, say) keeps the plan in the re-fetched listing
// with the backend's message shown.
func (h *AdminHandler) DeleteMembershipPlan(c echo.Context) error {
	id := paramID(c, "id")
	if id == 0 {
		return c.Redirect(http.StatusSeeOther, "/admin/memberships")
	}
	st := mw.SessionFrom(c)
	if err := h.API.DeleteMembershipPlan(c.Request().Context(), st.Token, id); err != nil {
		h.Log.Warn("delete membership plan", "id", id, "error", err)
		return h.renderMemberships(c, planForm{}, 0, adminFormError(err, "Не удалось удалить абонемент."))
	}
	return c.Redirect(http.StatusSeeOther, "/admin/memberships")
}

func (h *AdminHandler) renderMemberships(c echo.Context, form planForm, editingID int64, listErr string) error {
	ctx := c.Request().Context()
	st := mw.SessionFrom(c)
	data := pageData(c, "Абонементы")
	data["EditingID"] = editingID
	data["FormName"] = form.Name
	data["FormDescription"] = form.Description
	data["FormPrice"] = form.Price
	data["FormLocationID"] = form.LocationID
	data["FormError"] = form.Error
	if listErr != "" {
		data["Error"] = listErr
	}

	items, err := h.API.AdminMemberships(ctx, st.Token)
	if err != nil {
		h.Log.Warn("load admin memberships", "error", err)
		data["Error"] = "Не удалось загрузить абонементы."
	}
	data["Items"] = items

	locs, err := h.API.AdminLocations(ctx, st.Token)
	if err != nil {
		h.Log.Warn("load admin locations", "error", err)
	}
	data["Locations"] = locs
	return c.Render(http.StatusOK, "admin_memberships.html", data)
}
