package handler

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/cohai/studio-web/internal/api"
	"github.com/cohai/studio-web/internal/notify"
)

//go:embed content/*.md
var contentFS embed.FS

// mdRenderer converts the embedded marketing copy to HTML. The sources are
// ours, so raw HTML passthrough is acceptable.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
		goldmarkHTML.WithUnsafe(),
	),
)

// PublicHandler serves the unauthenticated pages and the guest lead form.
type PublicHandler struct {
	API      *api.Client
	Notifier *notify.Publisher // may be nil when the broker is not configured
	Log      *slog.Logger
}

// Trainer cards are static marketing content, not backend data.
type trainerCard struct {
	Name      string
	Specialty string
	Bio       string
}

var trainerCards = []trainerCard{
	{"Анна К.", "Стретчинг, шпагаты", "Хореограф, 8 лет преподавания. Ведёт группы начального уровня."},
	{"Мария Д.", "Здоровая спина", "Реабилитолог. Мягкие форматы для восстановления после травм."},
	{"Виктория С.", "Аэростретчинг", "Гимнастка, мастер спорта. Полотна и воздушная растяжка."},
}

// Home renders the landing page: hero, lead form, studio list.
func (h *PublicHandler) Home(c echo.Context) error {
	return h.renderLeadPage(c, "home.html", "Главная", leadFormState{})
}

// Contacts renders the contact page with a second lead form entry point.
func (h *PublicHandler) Contacts(c echo.Context) error {
	return h.renderLeadPage(c, "contacts.html", "Контакты", leadFormState{Return: "/contacts"})
}

// Newbie renders the first-visit guide from embedded markdown.
func (h *PublicHandler) Newbie(c echo.Context) error {
	content, err := h.markdown("content/newbie.md")
	if err != nil {
		h.Log.Error("render newbie guide", "error", err)
		return c.Render(http.StatusInternalServerError, "error.html", map[string]any{
			"Title": "Ошибка", "Message": "Страница временно недоступна.",
		})
	}
	data := pageData(c, "Новичку")
	data["Content"] = content
	return c.Render(http.StatusOK, "markdown_page.html", data)
}

// Formats renders the class-format overview: markdown intro plus the live
// program-type list from the backend.
func (h *PublicHandler) Formats(c echo.Context) error {
	data := pageData(c, "Форматы")
	content, err := h.markdown("content/formats.md")
	if err != nil {
		h.Log.Error("render formats page", "error", err)
		content = ""
	}
	data["Content"] = content

	types, err := h.API.ProgramTypes(c.Request().Context())
	if err != nil {
		h.Log.Warn("load program types", "error", err)
		data["Error"] = "Не удалось загрузить данные."
	}
	data["ProgramTypes"] = types
	return c.Render(http.StatusOK, "formats.html", data)
}

// Trainers renders the static trainer cards.
func (h *PublicHandler) Trainers(c echo.Context) error {
	data := pageData(c, "Тренеры")
	data["Trainers"] = trainerCards
	return c.Render(http.StatusOK, "trainers.html", data)
}

// Schedule renders the public timetable. Filters arrive as query
// parameters; changing either select resubmits the form, so every request
// carries the full filter state and stale responses cannot outrun fresh
// ones.
func (h *PublicHandler) Schedule(c echo.Context) error {
	ctx := c.Request().Context()
	data := pageData(c, "Расписание")

	locs, err := h.API.Locations(ctx)
	if err != nil {
		h.Log.Warn("load locations", "error", err)
		data["Error"] = "Не удалось загрузить данные."
		data["Locations"] = locs
		return c.Render(http.StatusOK, "schedule.html", data)
	}
	types, err := h.API.ProgramTypes(ctx)
	if err != nil {
		h.Log.Warn("load program types", "error", err)
		data["Error"] = "Не удалось загрузить данные."
	}

	locID := formID(c, "location_id")
	if locID == 0 && len(locs) > 0 {
		locID = locs[0].ID
	}
	ptID := formID(c, "program_type_id")

	data["Locations"] = locs
	data["ProgramTypes"] = types
	data["SelectedLocationID"] = locID
	data["SelectedProgramTypeID"] = ptID

	if locID != 0 {
		schedule, err := h.API.Schedule(ctx, locID, ptID)
		if err != nil {
			h.Log.Warn("load schedule", "error", err)
			data["Error"] = "Не удалось загрузить расписание."
		} else {
			data["Schedule"] = schedule
		}
	}
	return c.Render(http.StatusOK, "schedule.html", data)
}

// Prices renders membership plans for the selected location.
func (h *PublicHandler) Prices(c echo.Context) error {
	ctx := c.Request().Context()
	data := pageData(c, "Цены")

	locs, err := h.API.Locations(ctx)
	if err != nil {
		h.Log.Warn("load locations", "error", err)
		data["Error"] = "Не удалось загрузить данные."
		return c.Render(http.StatusOK, "prices.html", data)
	}
	locID := formID(c, "location_id")
	if locID == 0 && len(locs) > 0 {
		locID = locs[0].ID
	}
	data["Locations"] = locs
	data["SelectedLocationID"] = locID

	if locID != 0 {
		plans, err := h.API.PublicMemberships(ctx, locID)
		if err != nil {
			h.Log.Warn("load memberships", "error", err)
			data["Error"] = "Не удалось загрузить абонементы."
		} else {
			data["Plans"] = plans
		}
	}
	return c.Render(http.StatusOK, "prices.html", data)
}

func (h *PublicHandler) markdown(path string) (template.HTML, error) {
	src, err := contentFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := mdRenderer.Convert(src, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// loadLeadRefs fetches the reference data the lead form needs.
func (h *PublicHandler) loadLeadRefs(ctx context.Context, data map[string]any) {
	locs, err := h.API.Locations(ctx)
	if err != nil {
		h.Log.Warn("load locations", "error", err)
		data["LocationsError"] = "Не удалось загрузить данные. Попробуйте позже."
	}
	data["Locations"] = locs

	types, err := h.API.ProgramTypes(ctx)
	if err != nil {
		h.Log.Warn("load program types", "error", err)
	}
	data["ProgramTypes"] = types
}
