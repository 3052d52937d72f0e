package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateParkRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Country  string `json:"country"  validate:"required"`
	City     string `json:"city"     validate:"required"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

type UpdateParkRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2,max=100"`
	Country  *string `json:"country"`
	City     *string `json:"city"`
	IsActive *bool   `json:"is_active"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ParkResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Currency string `json:"currency"`
	IsActive bool   `json:"is_active"`
}
