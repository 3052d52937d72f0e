package model

import (
	"time"

	"github.com/google/uuid"
)

// Closure statuses. Transitions are strictly forward:
// pending → validated → locked. No skip, no reversal.
const (
	ClosurePending   = "pending"
	ClosureValidated = "validated"
	ClosureLocked    = "locked"
)

// DailyClosure is the authoritative financial summary for one park and one
// calendar day — at most one row per (park_id, closure_date), enforced by a
// unique index.
//
// All totals are frozen at creation time from the live ledgers and are NEVER
// recomputed on validate/lock: the record documents what was agreed for that
// day even if underlying transactions are corrected later. Use the
// recompute-and-compare diagnostic to detect drift.
type DailyClosure struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ParkID      uuid.UUID `gorm:"type:uuid;not null;index:idx_closures_park_date,unique"`
	ClosureDate string    `gorm:"type:date;not null;index:idx_closures_park_date,unique"`
	Status      string    `gorm:"type:varchar(10);not null;default:'pending'"`

	// Frozen snapshot of the day's aggregates.
	TotalRevenue     int64 `gorm:"not null"`
	TotalExpenses    int64 `gorm:"not null"`
	NetResult        int64 `gorm:"not null"`
	CashTotal        int64 `gorm:"not null"`
	WaveTotal        int64 `gorm:"not null"`
	OrangeMoneyTotal int64 `gorm:"not null"`
	ActivitiesCount  int   `gorm:"not null"`
	ExpensesCount    int   `gorm:"not null"`

	// Cash counting (optional; filled when a physical count was confirmed).
	CashCounted    *int64
	CashExpected   *int64
	CashDifference *int64

	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	ValidatedBy *uuid.UUID `gorm:"type:uuid"`
	ValidatedAt *time.Time
	Notes       *string

	// RowVersion is the optimistic-concurrency token: every lifecycle write
	// must carry the version it read, and the persistence layer rejects the
	// write when the stored version moved on.
	RowVersion int `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the table aligned with the rest of the schema.
func (DailyClosure) TableName() string { return "daily_closures" }
