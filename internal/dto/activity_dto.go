package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateActivityRequest struct {
	CategoryID    string  `json:"category_id"    validate:"required,uuid"`
	Amount        int64   `json:"amount"         validate:"required,gt=0"`
	Quantity      int     `json:"quantity"       validate:"required,min=1"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash wave orange_money"`
	Comment       *string `json:"comment"`
}

type CancelActivityRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

// ActivityFilter narrows listing to a park and an optional calendar day.
type ActivityFilter struct {
	Date   string `form:"date"` // YYYY-MM-DD, defaults to today
	Status string `form:"status" validate:"omitempty,oneof=active cancelled"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ActivityResponse struct {
	ID            string  `json:"id"`
	ParkID        string  `json:"park_id"`
	CategoryID    string  `json:"category_id"`
	CategoryName  string  `json:"category_name,omitempty"`
	Amount        int64   `json:"amount"`
	Quantity      int     `json:"quantity"`
	PaymentMethod string  `json:"payment_method"`
	Comment       *string `json:"comment,omitempty"`
	CreatedBy     string  `json:"created_by"`
	ActivityDate  string  `json:"activity_date"`
	Status        string  `json:"status"`

	CancelledReason *string `json:"cancelled_reason,omitempty"`
	CancelledBy     *string `json:"cancelled_by,omitempty"`
	CancelledAt     *string `json:"cancelled_at,omitempty"`
}
