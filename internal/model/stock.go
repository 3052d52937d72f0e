package model

import (
	"time"

	"github.com/google/uuid"
)

// Stock movement types.
const (
	MovementEntry      = "entry"
	MovementExit       = "exit"
	MovementAdjustment = "adjustment"
)

// StockItem tracks quantity-on-hand for one consumable per park.
// Quantity never goes negative — sale-driven exits clamp at zero.
// Low-stock when Quantity <= MinThreshold.
type StockItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ParkID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"not null"`
	Category     *string
	Quantity     int    `gorm:"not null;default:0"`
	MinThreshold int    `gorm:"not null;default:5"`
	Unit         string `gorm:"not null;default:'unités'"`
	IsActive     bool   `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StockMovement is an immutable record of an inventory quantity change.
// Movements are NEVER modified or deleted; the signed sum of movements since
// item creation reconstructs the current quantity (entry +, exit −,
// adjustment carries the absolute delta in its reason).
type StockMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StockItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	ParkID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(15);not null"` // "entry" | "exit" | "adjustment"
	Quantity    int       `gorm:"not null"`
	Reason      *string
	// ActivityID links a sale-driven exit back to the originating activity.
	ActivityID *uuid.UUID `gorm:"type:uuid"`
	CreatedBy  uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt  time.Time

	StockItem *StockItem `gorm:"foreignKey:StockItemID"`
}
