package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/api"
	mw "github.com/cohai/studio-web/internal/middleware"
)

// locationsForm carries the create/edit form state between a failed submit
// and the re-rendered page.
type locationsForm struct {
	EditingID int64
	Name      string
	Address   string
	Error     string
}

// Locations lists locations with the create form, or the edit form when
// ?edit= names an existing row.
func (h *AdminHandler) Locations(c echo.Context) error {
	form := locationsForm{}
	if id, err := strconv.ParseInt(c.QueryParam("edit"), 10, 64); err == nil && id > 0 {
		form.EditingID = id
	}
	return h.renderLocations(c, form, "")
}

// CreateLocation validates and submits the create form. The list shown
// afterwards is always re-fetched, so a successful create appears exactly
// as the backend stored it.
func (h *AdminHandler) CreateLocation(c echo.Context) error {
	form := locationsForm{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Address: strings.TrimSpace(c.FormValue("address")),
	}
	if form.Name == "" {
		form.Error = "Название локации обязательно."
		return h.renderLocations(c, form, "")
	}

	st := mw.SessionFrom(c)
	draft := api.LocationDraft{Name: form.Name, Address: optString(form.Address)}
	if _, err := h.API.CreateLocation(c.Request().Context(), st.Token, draft); err != nil {
		h.Log.Warn("create location", "error", err)
		form.Error = adminFormError(err, "Не удалось создать локацию.")
		return h.renderLocations(c, form, "")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/locations")
}

// UpdateLocation submits the edit form for one location.
func (h *AdminHandler) UpdateLocation(c echo.Context) error {
	id := paramID(c, "id")
	form := locationsForm{
		EditingID: id,
		Name:      strings.TrimSpace(c.FormValue("name")),
		Address:   strings.TrimSpace(c.FormValue("address")),
	}
	if id == 0 {
		return c.Redirect(http.StatusSeeOther, "/admin/locations")
	}
	if form.Name == "" {
		form.Error = "Название локации обязательно."
		return h.renderLocations(c, form, "")
	}

	st := mw.SessionFrom(c)
	draft := api.LocationDraft{Name: form.Name, Address: optString(form.Address)}
	if _, err := h.API.UpdateLocation(c.Request().Context(), st.Token, id, draft); err != nil {
		h.Log.Warn("update location", "id", id, "error", err)
		form.Error = adminFormError(err, "Не удалось сохранить локацию.")
		return h.renderLocations(c, form, "")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/locations")
}

// ConfirmDeleteLocation renders the interstitial confirmation page. Deletes
// are never triggered by a bare link.
func (h *AdminHandler) ConfirmDeleteLocation(c echo.Context) error {
	id := paramID(c, "id")
	if id == 0 {
		return c.Redirect(http.StatusSeeOther, "/admin/locations")
	}
	data := pageData(c, "Удаление локации")
	data["Prompt"] = "Удалить локацию #" + strconv.FormatInt(id, 10) + "? Действие необратимо."
	data["Action"] = "/admin/locations/" + strconv.FormatInt(id, 10) + "/delete"
	data["CancelURL"] = "/admin/locations"
	return c.Render(http.StatusOK, "confirm_delete.html", data)
}

// DeleteLocation performs the confirmed delete. A backend refusal (for
// example a location still referenced by class sessions) leaves the listing
// unchanged with the refusal shown.
func (h *AdminHandler) DeleteLocation(c echo.Context) error {
	id := paramID(c, "id")
	if id == 0 {
		return c.Redirect(http.StatusSeeOther, "/admin/locations")
	}
	st := mw.SessionFrom(c)
	if err := h.API.DeleteLocation(c.Request().Context(), st.Token, id); err != nil {
		h.Log.Warn("delete location", "id", id, "error", err)
		return h.renderLocations(c, locationsForm{}, adminFormError(err, "Не удалось удалить локацию."))
	}
	return c.Redirect(http.StatusSeeOther, "/admin/locations")
}

func (h *AdminHandler) renderLocations(c echo.Context, form locationsForm, listErr string) error {
	st := mw.SessionFrom(c)
	data := pageData(c, "Локации")
	data["EditingID"] = form.EditingID
	data["FormName"] = form.Name
	data["FormAddress"] = form.Address
	data["FormError"] = form.Error
	if listErr != "" {
		data["Error"] = listErr
	}

	items, err := h.API.AdminLocations(c.Request().Context(), st.Token)
	if err != nil {
		h.Log.Warn("load admin locations", "error", err)
		data["Error"] = "Не удалось загрузить локации."
	}
	data["Items"] = items

	// Prefill the edit form from the fetched row unless the user already
	// typed something.
	if form.EditingID != 0 && form.Name == "" && form.Error == "" {
		for _, l := range items {
			if l.ID == form.EditingID {
				data["FormName"] = l.Name
				data["FormAddress"] = l.Address
				break
			}
		}
	}
	return c.Render(http.StatusOK, "admin_locations.html", data)
}

// adminFormError prefers the backend's explanation over the fallback.
func adminFormError(err error, fallback string) string {
	if msg := backendMessage(err); msg != "" {
		return msg
	}
	return fallback
}
