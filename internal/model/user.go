package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles, from least to most privileged.
const (
	RoleStaff      = "staff"
	RoleManager    = "manager"
	RoleSuperAdmin = "super_admin"
)

// User is an operator account. ParkID is nil only for super_admin, whose view
// is unrestricted.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string     `gorm:"uniqueIndex;not null"`
	PasswordHash string     `gorm:"not null"`
	FullName     string     `gorm:"not null"`
	Role         string     `gorm:"type:varchar(20);not null;default:'staff'"`
	ParkID       *uuid.UUID `gorm:"type:uuid;index"`
	IsActive     bool       `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Park *Park `gorm:"foreignKey:ParkID"`
}
