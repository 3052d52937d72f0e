package model

import (
	"time"

	"github.com/google/uuid"
)

// Category types.
const (
	CategoryTypeRevenue = "revenue"
	CategoryTypeExpense = "expense"
)

// Category classifies activities and expenses for a park.
// A revenue category with ImpactsStock=true must reference a valid stock item
// of the same park; recording an activity on it then drives a stock exit of
// equal quantity.
type Category struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ParkID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name        string     `gorm:"not null"`
	Type        string     `gorm:"type:varchar(10);not null"` // "revenue" | "expense"
	Icon        *string    `gorm:"type:varchar(50)"`
	Color       *string    `gorm:"type:varchar(20)"`
	ImpactsStock bool      `gorm:"not null;default:false"`
	StockItemID *uuid.UUID `gorm:"type:uuid"`
	IsActive    bool       `gorm:"not null;default:true"`
	SortOrder   int        `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	StockItem *StockItem `gorm:"foreignKey:StockItemID"`
}

// TableName overrides GORM's default pluralization (categories, not categorys).
func (Category) TableName() string { return "categories" }
