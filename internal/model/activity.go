package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment methods accepted at the till.
const (
	PaymentCash        = "cash"
	PaymentWave        = "wave"
	PaymentOrangeMoney = "orange_money"
)

// PaymentMethods lists every method, in reporting order. Aggregates are
// zero-filled over this list so callers never receive a partial map.
var PaymentMethods = []string{PaymentCash, PaymentWave, PaymentOrangeMoney}

// Activity statuses.
const (
	ActivityActive    = "active"
	ActivityCancelled = "cancelled"
)

// Activity is a recorded sale (revenue event). Amounts are integer XOF —
// the currency has no minor unit.
//
// Activities are never hard-deleted in normal operation: cancellation is a
// one-way soft state that retains the amount for audit while excluding it
// from every revenue aggregate.
type Activity struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ParkID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        int64     `gorm:"not null"`
	Quantity      int       `gorm:"not null;default:1"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`
	Comment       *string
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null"`
	ActivityDate  time.Time `gorm:"not null;index"`
	Status        string    `gorm:"type:varchar(10);not null;default:'active'"`

	CancelledReason *string
	CancelledBy     *uuid.UUID `gorm:"type:uuid"`
	CancelledAt     *time.Time

	CreatedAt time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
	User     *User     `gorm:"foreignKey:CreatedBy"`
}
