// Package notify publishes lead-submitted events to the message broker so
// the sales side (a separate consumer, or the bundled log writer) learns
// about new trial-class requests without polling the backend.
package notify

// LeadSubmittedEvent is published after the backend accepts a guest-visit
// lead. It carries everything a notifier needs to reach out to the
// visitor without querying the backend again.
type LeadSubmittedEvent struct {
	LeadID        int64  `json:"lead_id"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	LocationID    int64  `json:"location_id"`
	ProgramTypeID int64  `json:"program_type_id,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// leadQueueName is the durable queue both the publisher and the consumer
// agree on.
const leadQueueName = "lead.submitted"
