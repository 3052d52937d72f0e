package model

import (
	"time"

	"github.com/google/uuid"
)

// Park is a physical venue and the tenancy boundary for all data.
// Every other entity belongs to exactly one park; only the super_admin
// sees across parks.
type Park struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"not null;uniqueIndex"`
	Country  string    `gorm:"not null"`
	City     string    `gorm:"not null"`
	Currency string    `gorm:"type:varchar(3);not null;default:'XOF'"`
	IsActive bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
