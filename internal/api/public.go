package api

// Public endpoints live under /public and require no authentication. They
// serve the marketing pages and the guest-visit lead form.

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cohai/studio-web/internal/model"
)

// Locations returns all studio venues.
func (c *Client) Locations(ctx context.Context) ([]model.Location, error) {
	var out []model.Location
	if err := c.do(ctx, http.MethodGet, "/public/locations", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProgramTypes returns all training directions.
func (c *Client) ProgramTypes(ctx context.Context) ([]model.ProgramType, error) {
	var out []model.ProgramType
	if err := c.do(ctx, http.MethodGet, "/public/program-types", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Schedule returns the weekly timetable for a location, optionally narrowed
// to one program type. A zero programTypeID means "all programs".
func (c *Client) Schedule(ctx context.Context, locationID, programTypeID int64) ([]model.ClassSession, error) {
	q := params{"location_id": idParam(locationID), "program_type_id": idParam(programTypeID)}
	var out []model.ClassSession
	if err := c.do(ctx, http.MethodGet, "/public/schedule", "", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PublicMemberships returns the tariff plans sold at a location. A zero
// locationID returns plans for all locations.
func (c *Client) PublicMemberships(ctx context.Context, locationID int64) ([]model.MembershipPlan, error) {
	q := params{"location_id": idParam(locationID)}
	var out []model.MembershipPlan
	if err := c.do(ctx, http.MethodGet, "/public/memberships", "", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGuestLead submits a trial-class signup request on behalf of an
// anonymous visitor.
func (c *Client) CreateGuestLead(ctx context.Context, draft model.LeadDraft) (model.Lead, error) {
	var out model.Lead
	if err := c.do(ctx, http.MethodPost, "/public/leads/guest-visit", "", nil, draft, &out); err != nil {
		return model.Lead{}, err
	}
	return out, nil
}

// idParam renders a positive id for the query string and maps zero (the
// "not selected" value) to the empty string so it gets omitted.
func idParam(id int64) string {
	if id <= 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
