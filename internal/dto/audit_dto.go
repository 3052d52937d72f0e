package dto

// AuditEntry is the fire-and-forget payload services hand to the audit sink.
type AuditEntry struct {
	ParkID      string         `json:"park_id"`
	UserID      string         `json:"user_id"`
	UserName    string         `json:"user_name"`
	Action      string         `json:"action"`
	EntityType  string         `json:"entity_type"`
	EntityID    string         `json:"entity_id,omitempty"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type AuditLogResponse struct {
	ID          string `json:"id"`
	ParkID      string `json:"park_id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Action      string `json:"action"`
	EntityType  string `json:"entity_type"`
	EntityID    string `json:"entity_id,omitempty"`
	Description string `json:"description"`
	Metadata    string `json:"metadata,omitempty"`
	CreatedAt   string `json:"created_at"`
}
