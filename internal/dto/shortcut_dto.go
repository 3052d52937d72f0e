package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateShortcutRequest struct {
	Name          string  `json:"name"           validate:"required,min=2,max=100"`
	Amount        int64   `json:"amount"         validate:"required,gt=0"`
	Quantity      int     `json:"quantity"       validate:"required,gt=0"`
	CategoryID    string  `json:"category_id"    validate:"required,uuid"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash wave orange_money"`
	Icon          *string `json:"icon"`
	Color         *string `json:"color"`
}

type UpdateShortcutRequest struct {
	Name          *string `json:"name"           validate:"omitempty,min=2,max=100"`
	Amount        *int64  `json:"amount"         validate:"omitempty,gt=0"`
	Quantity      *int    `json:"quantity"       validate:"omitempty,gt=0"`
	CategoryID    *string `json:"category_id"    validate:"omitempty,uuid"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,oneof=cash wave orange_money"`
	Icon          *string `json:"icon"`
	Color         *string `json:"color"`
	IsActive      *bool   `json:"is_active"`
}

// ReorderShortcutsRequest lists the park's shortcut IDs in the desired till
// order. IDs absent from the list keep their current position.
type ReorderShortcutsRequest struct {
	ShortcutIDs []string `json:"shortcut_ids" validate:"required,min=1,dive,uuid"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ShortcutResponse struct {
	ID            string  `json:"id"`
	ParkID        string  `json:"park_id"`
	Name          string  `json:"name"`
	Amount        int64   `json:"amount"`
	Quantity      int     `json:"quantity"`
	CategoryID    string  `json:"category_id"`
	PaymentMethod string  `json:"payment_method"`
	Icon          *string `json:"icon,omitempty"`
	Color         *string `json:"color,omitempty"`
	SortOrder     int     `json:"sort_order"`
	IsActive      bool    `json:"is_active"`
}
