// Package model declares the records exchanged with the studio backend.
// The site does not own the lifecycle of any of these entities; it only
// holds them in per-request view state between a backend fetch and the
// rendered page. JSON tags follow the backend's snake_case contract.
package model

// Location is a studio venue. Referenced by schedule slots, membership
// plans and leads via location_id.
type Location struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
