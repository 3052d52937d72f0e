package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateExpenseRequest struct {
	CategoryID    string `json:"category_id"    validate:"required,uuid"`
	Amount        int64  `json:"amount"         validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash wave orange_money"`
	// Comment is mandatory: every expense must carry a justification.
	Comment string `json:"comment" validate:"required,min=3"`
}

type ExpenseFilter struct {
	Date string `form:"date"` // YYYY-MM-DD, defaults to today
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ExpenseResponse struct {
	ID            string `json:"id"`
	ParkID        string `json:"park_id"`
	CategoryID    string `json:"category_id"`
	CategoryName  string `json:"category_name,omitempty"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	Comment       string `json:"comment"`
	CreatedBy     string `json:"created_by"`
	ExpenseDate   string `json:"expense_date"`
}
