package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name         string  `json:"name"          validate:"required,min=2,max=100"`
	Type         string  `json:"type"          validate:"required,oneof=revenue expense"`
	Icon         *string `json:"icon"`
	Color        *string `json:"color"`
	ImpactsStock bool    `json:"impacts_stock"`
	StockItemID  *string `json:"stock_item_id" validate:"omitempty,uuid"`
	SortOrder    int     `json:"sort_order"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name"          validate:"omitempty,min=2,max=100"`
	Icon         *string `json:"icon"`
	Color        *string `json:"color"`
	ImpactsStock *bool   `json:"impacts_stock"`
	StockItemID  *string `json:"stock_item_id" validate:"omitempty,uuid"`
	SortOrder    *int    `json:"sort_order"`
	IsActive     *bool   `json:"is_active"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID           string  `json:"id"`
	ParkID       string  `json:"park_id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Icon         *string `json:"icon,omitempty"`
	Color        *string `json:"color,omitempty"`
	ImpactsStock bool    `json:"impacts_stock"`
	StockItemID  *string `json:"stock_item_id,omitempty"`
	IsActive     bool    `json:"is_active"`
	SortOrder    int     `json:"sort_order"`
}
