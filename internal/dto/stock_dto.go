package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateStockItemRequest struct {
	Name         string  `json:"name"          validate:"required,min=2,max=100"`
	Category     *string `json:"category"`
	Quantity     int     `json:"quantity"      validate:"min=0"`
	MinThreshold int     `json:"min_threshold" validate:"min=0"`
	Unit         string  `json:"unit"          validate:"required"`
}

type UpdateStockItemRequest struct {
	Name         *string `json:"name"          validate:"omitempty,min=2,max=100"`
	Category     *string `json:"category"`
	MinThreshold *int    `json:"min_threshold" validate:"omitempty,min=0"`
	Unit         *string `json:"unit"`
	IsActive     *bool   `json:"is_active"`
}

// StockEntryRequest adds stock (a delivery, a restock).
type StockEntryRequest struct {
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Reason   string `json:"reason"   validate:"required,min=3"`
}

// StockAdjustRequest sets the absolute quantity after a physical inventory.
type StockAdjustRequest struct {
	NewQuantity int    `json:"new_quantity" validate:"min=0"`
	Reason      string `json:"reason"       validate:"required,min=3"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type StockItemResponse struct {
	ID           string  `json:"id"`
	ParkID       string  `json:"park_id"`
	Name         string  `json:"name"`
	Category     *string `json:"category,omitempty"`
	Quantity     int     `json:"quantity"`
	MinThreshold int     `json:"min_threshold"`
	Unit         string  `json:"unit"`
	IsActive     bool    `json:"is_active"`
	LowStock     bool    `json:"low_stock"`
}

type StockMovementResponse struct {
	ID          string  `json:"id"`
	StockItemID string  `json:"stock_item_id"`
	Type        string  `json:"type"`
	Quantity    int     `json:"quantity"`
	Reason      *string `json:"reason,omitempty"`
	ActivityID  *string `json:"activity_id,omitempty"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
}
