package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/model"
	"github.com/cohai/studio-web/internal/notify"
)

// leadFormState is the lead form's render state. The form appears on
// several pages; each call site only supplies the page it should return
// to, the submission logic is shared.
type leadFormState struct {
	FullName      string
	Phone         string
	Email         string
	Notes         string
	LocationID    int64
	ProgramTypeID int64
	Return        string
	Error         string
	Success       bool
}

// renderLeadPage renders one of the lead-form-bearing pages with the given
// form state, loading the reference data the form needs.
func (h *PublicHandler) renderLeadPage(c echo.Context, tmpl, title string, lf leadFormState) error {
	data := pageData(c, title)
	h.loadLeadRefs(c.Request().Context(), data)

	// Default the location select to the first studio when nothing is
	// chosen yet.
	if lf.LocationID == 0 {
		if locs, ok := data["Locations"].([]model.Location); ok && len(locs) > 0 {
			lf.LocationID = locs[0].ID
		}
	}
	data["LeadForm"] = lf
	data["LeadError"] = lf.Error
	data["LeadSuccess"] = lf.Success
	return c.Render(http.StatusOK, tmpl, data)
}

// SubmitLead handles the guest-visit form from any page carrying it.
// Validation failures short-circuit before any backend submission. On
// success the contact fields are cleared but the name is kept, so a
// follow-up request for a friend does not need retyping; on failure the
// whole form is preserved alongside the server's message.
func (h *PublicHandler) SubmitLead(c echo.Context) error {
	lf := leadFormState{
		FullName:      strings.TrimSpace(c.FormValue("full_name")),
		Phone:         strings.TrimSpace(c.FormValue("phone")),
		Email:         strings.TrimSpace(c.FormValue("email")),
		Notes:         strings.TrimSpace(c.FormValue("notes")),
		LocationID:    formID(c, "location_id"),
		ProgramTypeID: formID(c, "program_type_id"),
		Return:        c.FormValue("return"),
	}
	tmpl, title := leadReturnPage(lf.Return)

	if lf.FullName == "" {
		lf.Error = "Пожалуйста, укажите имя."
		return h.renderLeadPage(c, tmpl, title, lf)
	}
	if lf.LocationID == 0 {
		lf.Error = "Пожалуйста, выберите локацию."
		return h.renderLeadPage(c, tmpl, title, lf)
	}

	draft := model.LeadDraft{
		FullName:   lf.FullName,
		Phone:      optString(lf.Phone),
		Email:      optString(lf.Email),
		LocationID: lf.LocationID,
		Notes:      optString(lf.Notes),
	}
	if lf.ProgramTypeID != 0 {
		id := lf.ProgramTypeID
		draft.ProgramTypeID = &id
	}

	lead, err := h.API.CreateGuestLead(c.Request().Context(), draft)
	if err != nil {
		h.Log.Warn("submit lead", "error", err)
		lf.Error = backendMessage(err)
		if lf.Error == "" {
			lf.Error = "Не удалось отправить заявку. Попробуйте ещё раз."
		}
		return h.renderLeadPage(c, tmpl, title, lf)
	}

	if h.Notifier != nil {
		// Notification is best-effort; a broker outage must not fail
		// the visitor's submission.
		h.Notifier.LeadSubmitted(c.Request().Context(), notify.LeadSubmittedEvent{
			LeadID:        lead.ID,
			FullName:      lead.FullName,
			Phone:         lead.Phone,
			Email:         lead.Email,
			LocationID:    lead.LocationID,
			ProgramTypeID: lead.ProgramTypeID,
			Notes:         lead.Notes,
			CreatedAt:     lead.CreatedAt,
		})
	}

	lf = leadFormState{FullName: lf.FullName, LocationID: lf.LocationID, Return: lf.Return, Success: true}
	return h.renderLeadPage(c, tmpl, title, lf)
}

// leadReturnPage maps the form's origin marker back to a page template.
func leadReturnPage(ret string) (tmpl, title string) {
	if ret == "/contacts" {
		return "contacts.html", "Контакты"
	}
	return "home.html", "Главная"
}
