package model

// Lead is a prospective client's contact request, created by public
// visitors through the guest-visit form and mutated by admins (mark
// processed).
type Lead struct {
	ID            int64  `json:"id"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	LocationID    int64  `json:"location_id"`
	ProgramTypeID int64  `json:"program_type_id,omitempty"`
	Notes         string `json:"notes,omitempty"`
	IsProcessed   bool   `json:"is_processed"`
	Status        string `json:"status,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// LeadDraft is the outbound guest-visit payload. Optional fields are
// pointers so that empty values serialize as JSON null, matching what the
// backend expects for "not provided".
type LeadDraft struct {
	FullName      string  `json:"full_name"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	LocationID    int64   `json:"location_id"`
	ProgramTypeID *int64  `json:"program_type_id"`
	Notes         *string `json:"notes"`
}
