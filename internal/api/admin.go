package api

// Admin endpoints under /api/v1/admin. The backend enforces the role; this
// side only forwards the bearer token and shapes the payloads.

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cohai/studio-web/internal/model"
)

// LocationDraft is the create/update payload for a location. Address is a
// pointer so "no address" serializes as null rather than "".
type LocationDraft struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// PlanDraft is the create payload for a membership plan.
type PlanDraft struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	LocationID  int64   `json:"location_id"`
}

// ClassSessionFilter narrows the admin timetable listing. Zero ids mean
// "any"; IncludeInactive widens the listing to disabled slots.
type ClassSessionFilter struct {
	LocationID      int64
	ProgramTypeID   int64
	TrainerID       int64
	IncludeInactive bool
}

// LeadFilter narrows the admin lead listing. Query matches name/phone;
// Processed is tri-state (nil = both).
type LeadFilter struct {
	Query     string
	Processed *bool
}

func (c *Client) AdminLocations(ctx context.Context, token string) ([]model.Location, error) {
	var out []model.Location
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/locations", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateLocation(ctx context.Context, token string, draft LocationDraft) (model.Location, error) {
	var out model.Location
	if err := c.do(ctx, http.MethodPost, "/api/v1/admin/locations", token, nil, draft, &out); err != nil {
		return model.Location{}, err
	}
	return out, nil
}

func (c *Client) UpdateLocation(ctx context.Context, token string, id int64, draft LocationDraft) (model.Location, error) {
	var out model.Location
	if err := c.do(ctx, http.MethodPatch, pathID("/api/v1/admin/locations", id), token, nil, draft, &out); err != nil {
		return model.Location{}, err
	}
	return out, nil
}

func (c *Client) DeleteLocation(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, pathID("/api/v1/admin/locations", id), token, nil, nil, nil)
}

func (c *Client) AdminMemberships(ctx context.Context, token string) ([]model.MembershipPlan, error) {
	var out []model.MembershipPlan
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/memberships", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMembershipPlan(ctx context.Context, token string, draft PlanDraft) (model.MembershipPlan, error) {
	var out model.MembershipPlan
	if err := c.do(ctx, http.MethodPost, "/api/v1/admin/memberships", token, nil, draft, &out); err != nil {
		return model.MembershipPlan{}, err
	}
	return out, nil
}

type planRename struct {
	Name string `json:"name"`
}

// RenameMembershipPlan patches a plan. The backend's update schema is
// name-only for now, so that is all this client offers.
func (c *Client) RenameMembershipPlan(ctx context.Context, token string, id int64, name string) (model.MembershipPlan, error) {
	var out model.MembershipPlan
	if err := c.do(ctx, http.MethodPatch, pathID("/api/v1/admin/memberships", id), token, nil, planRename{Name: name}, &out); err != nil {
		return model.MembershipPlan{}, err
	}
	return out, nil
}

func (c *Client) DeleteMembershipPlan(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, pathID("/api/v1/admin/memberships", id), token, nil, nil, nil)
}

func (c *Client) AdminClassSessions(ctx context.Context, token string, f ClassSessionFilter) ([]model.ClassSession, error) {
	q := params{
		"location_id":     idParam(f.LocationID),
		"program_type_id": idParam(f.ProgramTypeID),
		"trainer_id":      idParam(f.TrainerID),
	}
	if f.IncludeInactive {
		q["include_inactive"] = "true"
	}
	var out []model.ClassSession
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/class-sessions", token, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminLeads(ctx context.Context, token string, f LeadFilter) ([]model.Lead, error) {
	q := params{"q": f.Query}
	if f.Processed != nil {
		q["is_processed"] = strconv.FormatBool(*f.Processed)
	}
	var out []model.Lead
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/leads", token, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessLead marks a lead handled (is_processed false → true) and returns
// the backend's echo of the updated row.
func (c *Client) ProcessLead(ctx context.Context, token string, id int64) (model.Lead, error) {
	var out model.Lead
	if err := c.do(ctx, http.MethodPatch, pathID("/api/v1/admin/leads", id)+"/process", token, nil, nil, &out); err != nil {
		return model.Lead{}, err
	}
	return out, nil
}
