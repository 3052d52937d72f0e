package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateTeamMemberRequest struct {
	Name  string  `json:"name"  validate:"required,min=2,max=100"`
	Role  string  `json:"role"  validate:"required,oneof=manager staff"`
	Phone *string `json:"phone" validate:"omitempty,max=30"`
}

type UpdateTeamMemberRequest struct {
	Name     *string `json:"name"  validate:"omitempty,min=2,max=100"`
	Role     *string `json:"role"  validate:"omitempty,oneof=manager staff"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	IsActive *bool   `json:"is_active"`
}

type CreateShiftRequest struct {
	MemberID  string  `json:"member_id"  validate:"required,uuid"`
	Date      string  `json:"date"       validate:"required,datetime=2006-01-02"`
	StartTime string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string  `json:"end_time"   validate:"required,datetime=15:04"`
	Notes     *string `json:"notes"      validate:"omitempty,max=500"`
}

type UpdateShiftRequest struct {
	MemberID  *string `json:"member_id"  validate:"omitempty,uuid"`
	Date      *string `json:"date"       validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time"   validate:"omitempty,datetime=15:04"`
	Notes     *string `json:"notes"      validate:"omitempty,max=500"`
}

// ShiftFilter selects shifts for a single day or for the week starting at
// WeekStart. Exactly one of the two is used; Date wins when both are set.
type ShiftFilter struct {
	Date      string
	WeekStart string
	MemberID  string
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type TeamMemberResponse struct {
	ID       string  `json:"id"`
	ParkID   string  `json:"park_id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Phone    *string `json:"phone,omitempty"`
	IsActive bool    `json:"is_active"`
}

type ShiftResponse struct {
	ID         string  `json:"id"`
	ParkID     string  `json:"park_id"`
	MemberID   string  `json:"member_id"`
	MemberName string  `json:"member_name,omitempty"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Notes      *string `json:"notes,omitempty"`
}
