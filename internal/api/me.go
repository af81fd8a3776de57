package api

// Self-service endpoints under /api/v1/me. All of them require the bearer
// token of the logged-in user.

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cohai/studio-web/internal/model"
)

// Profile fetches the authenticated user's profile. The session store calls
// this on every token change; its failure semantics drive forced logout.
func (c *Client) Profile(ctx context.Context, token string) (model.UserProfile, error) {
	var out model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/v1/me/profile", token, nil, nil, &out); err != nil {
		return model.UserProfile{}, err
	}
	return out, nil
}

// UpdateProfile patches the user's contact details and returns the
// backend's authoritative echo of the profile.
func (c *Client) UpdateProfile(ctx context.Context, token string, upd model.ProfileUpdate) (model.UserProfile, error) {
	return c.patchProfile(ctx, token, upd)
}

// ChangePassword goes through the same PATCH endpoint with a different
// payload shape; the backend dispatches on the fields present.
func (c *Client) ChangePassword(ctx context.Context, token string, ch model.PasswordChange) (model.UserProfile, error) {
	return c.patchProfile(ctx, token, ch)
}

func (c *Client) patchProfile(ctx context.Context, token string, body any) (model.UserProfile, error) {
	var out model.UserProfile
	if err := c.do(ctx, http.MethodPatch, "/api/v1/me/profile", token, nil, body, &out); err != nil {
		return model.UserProfile{}, err
	}
	return out, nil
}

// MyClasses returns the user's bookings split into upcoming and history.
func (c *Client) MyClasses(ctx context.Context, token string) (model.MyClasses, error) {
	var out model.MyClasses
	if err := c.do(ctx, http.MethodGet, "/api/v1/me/classes", token, nil, nil, &out); err != nil {
		return model.MyClasses{}, err
	}
	return out, nil
}

type cancelReq struct {
	AttendanceID int64 `json:"attendance_id"`
}

// CancelClass cancels one PLANNED booking. Callers reload the full booking
// list afterwards instead of patching local state, so the rendered status
// is always the backend's.
func (c *Client) CancelClass(ctx context.Context, token string, attendanceID int64) error {
	return c.do(ctx, http.MethodPost, "/api/v1/me/classes/cancel", token, nil, cancelReq{AttendanceID: attendanceID}, nil)
}

// MyMemberships returns the user's purchased memberships split into active
// and history.
func (c *Client) MyMemberships(ctx context.Context, token string) (model.MyMemberships, error) {
	var out model.MyMemberships
	if err := c.do(ctx, http.MethodGet, "/api/v1/me/memberships", token, nil, nil, &out); err != nil {
		return model.MyMemberships{}, err
	}
	return out, nil
}

// MyLeads returns the leads associated with the user's contact details.
func (c *Client) MyLeads(ctx context.Context, token string) ([]model.Lead, error) {
	var out []model.Lead
	if err := c.do(ctx, http.MethodGet, "/api/v1/me/leads", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyCalendar returns the user's bookings bucketed by date over an inclusive
// date range (YYYY-MM-DD).
func (c *Client) MyCalendar(ctx context.Context, token, startDate, endDate string) (model.Calendar, error) {
	q := params{"start_date": startDate, "end_date": endDate}
	var out model.Calendar
	if err := c.do(ctx, http.MethodGet, "/api/v1/me/calendar", token, q, nil, &out); err != nil {
		return model.Calendar{}, err
	}
	return out, nil
}

// pathID appends a numeric id to a path prefix.
func pathID(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}
