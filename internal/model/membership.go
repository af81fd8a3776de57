package model

// MembershipPlan is a purchasable tariff definition tied to a location.
type MembershipPlan struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days,omitempty"`
	LocationID   int64   `json:"location_id"`
}

// Membership instance statuses as reported by the backend.
const (
	MembershipActive   = "ACTIVE"
	MembershipExpired  = "EXPIRED"
	MembershipFrozen   = "FROZEN"
	MembershipCanceled = "CANCELED"
)

// MembershipInstance is a client's purchased, time-boxed grant against a
// plan. Visit counters are optional: unlimited plans report zeroes.
type MembershipInstance struct {
	ID               int64  `json:"id"`
	MembershipPlanID int64  `json:"membership_plan_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Status           string `json:"status"`
	VisitsTotal      int    `json:"visits_total,omitempty"`
	VisitsUsed       int    `json:"visits_used,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
}

// MembershipStatusLabel maps an instance status to its Russian display text.
func MembershipStatusLabel(status string) string {
	switch status {
	case MembershipActive:
		return "Активен"
	case MembershipExpired:
		return "Истёк"
	case MembershipFrozen:
		return "Заморожен"
	case MembershipCanceled:
		return "Отменён"
	default:
		return status
	}
}

// MyMemberships is the /me/memberships response shape.
type MyMemberships struct {
	Active  []MembershipInstance `json:"active"`
	History []MembershipInstance `json:"history"`
}
