package model

import (
	"time"

	"github.com/google/uuid"
)

// QuickShortcut is a one-tap till button: tapping it records an activity with
// this preset amount, quantity, category and payment method. Shortcuts are
// per park, ordered by SortOrder on the till screen.
type QuickShortcut struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ParkID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"not null"`
	Amount        int64     `gorm:"not null"`
	Quantity      int       `gorm:"not null;default:1"`
	CategoryID    uuid.UUID `gorm:"type:uuid;not null"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`
	Icon          *string   `gorm:"type:varchar(50)"`
	Color         *string   `gorm:"type:varchar(20)"`
	SortOrder     int       `gorm:"not null;default:0"`
	IsActive      bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}
