package model

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a recorded outgoing payment. Append-only: there is no cancel
// flow and no update in practice. The comment is mandatory — an expense
// without a justification is rejected before it reaches the database.
type Expense struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ParkID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        int64     `gorm:"not null"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`
	Comment       string    `gorm:"not null"`
	AttachmentURL *string
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null"`
	ExpenseDate   time.Time `gorm:"not null;index"`

	CreatedAt time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
	User     *User     `gorm:"foreignKey:CreatedBy"`
}
