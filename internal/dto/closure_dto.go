package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

// DenominationLine is one row of the physical till count: how many notes or
// coins of a given face value were counted. Values are integer XOF.
type DenominationLine struct {
	Value int64 `json:"value" validate:"required,gt=0"`
	Count int   `json:"count"`
}

// CashCountRequest tallies a physical count against the day's expected cash.
type CashCountRequest struct {
	Date          string             `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Denominations []DenominationLine `json:"denominations" validate:"required,dive"`
}

// CreateClosureRequest freezes the day's aggregates into a closure record.
// CashCounted is the optional confirmed till count — a closure can be created
// without ever running a cash count.
type CreateClosureRequest struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Notes       *string `json:"notes"`
	CashCounted *int64  `json:"cash_counted" validate:"omitempty,min=0"`
}

// MutateClosureRequest carries the optimistic-concurrency token read by the
// client; a mismatch on write surfaces as a stale-write error.
type MutateClosureRequest struct {
	RowVersion int `json:"row_version" validate:"required,min=1"`
}

type UpdateClosureNotesRequest struct {
	Notes      string `json:"notes" validate:"required"`
	RowVersion int    `json:"row_version" validate:"required,min=1"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CashCountResponse struct {
	TotalCounted   int64           `json:"total_counted"`
	ExpectedAmount int64           `json:"expected_amount"`
	Difference     int64           `json:"difference"`
	Reconciled     bool            `json:"reconciled"`
	DifferencePct  decimal.Decimal `json:"difference_pct"`
	Classification string          `json:"classification"` // normal | warning | critical
}

type ClosureResponse struct {
	ID          string `json:"id"`
	ParkID      string `json:"park_id"`
	ClosureDate string `json:"closure_date"`
	Status      string `json:"status"`

	TotalRevenue     int64 `json:"total_revenue"`
	TotalExpenses    int64 `json:"total_expenses"`
	NetResult        int64 `json:"net_result"`
	CashTotal        int64 `json:"cash_total"`
	WaveTotal        int64 `json:"wave_total"`
	OrangeMoneyTotal int64 `json:"orange_money_total"`
	ActivitiesCount  int   `json:"activities_count"`
	ExpensesCount    int   `json:"expenses_count"`

	CashCounted    *int64 `json:"cash_counted,omitempty"`
	CashExpected   *int64 `json:"cash_expected,omitempty"`
	CashDifference *int64 `json:"cash_difference,omitempty"`

	CreatedBy   string  `json:"created_by"`
	ValidatedBy *string `json:"validated_by,omitempty"`
	ValidatedAt *string `json:"validated_at,omitempty"`
	Notes       *string `json:"notes,omitempty"`

	RowVersion int    `json:"row_version"`
	CreatedAt  string `json:"created_at"`
}

// ClosureDiffResponse is the recompute-and-compare diagnostic: the frozen
// snapshot next to what the live ledgers would produce today. It never
// mutates the closure.
type ClosureDiffResponse struct {
	ClosureID string          `json:"closure_id"`
	Frozen    ClosureSnapshot `json:"frozen"`
	Live      ClosureSnapshot `json:"live"`
	InSync    bool            `json:"in_sync"`
}

// ClosureSnapshot is one side of the diff.
type ClosureSnapshot struct {
	TotalRevenue     int64 `json:"total_revenue"`
	TotalExpenses    int64 `json:"total_expenses"`
	NetResult        int64 `json:"net_result"`
	CashTotal        int64 `json:"cash_total"`
	WaveTotal        int64 `json:"wave_total"`
	OrangeMoneyTotal int64 `json:"orange_money_total"`
	ActivitiesCount  int   `json:"activities_count"`
	ExpensesCount    int   `json:"expenses_count"`
}
