package model

// Access roles as issued by the backend. The role on the resolved profile
// decides which dashboard area a session may enter.
const (
	RoleClient     = "CLIENT"
	RoleTrainer    = "TRAINER"
	RoleAdmin      = "ADMIN"
	RoleSuperadmin = "SUPERADMIN"
)

// UserProfile is the authenticated user's profile as returned by
// GET /api/v1/me/profile.
type UserProfile struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// IsAdmin reports whether the profile may enter the admin dashboard.
func (u *UserProfile) IsAdmin() bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleSuperadmin)
}

// ProfileUpdate carries a contact-details update. PasswordChange carries a
// password change. Both go to the same PATCH endpoint; the backend tells
// them apart by payload shape.
type ProfileUpdate struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
