package model

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is an employee on a park's duty roster. Members are planning
// records only — they do not log in and carry no credentials; a member who
// also operates the till has a separate User account.
type TeamMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ParkID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"not null"`
	Role     string    `gorm:"type:varchar(20);not null;default:'staff'"` // "manager" | "staff"
	Phone    *string   `gorm:"type:varchar(30)"`
	IsActive bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Shift schedules one team member for a time slot on one day.
// Start and end are wall-clock times in the park's timezone; a shift never
// crosses midnight.
type Shift struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ParkID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MemberID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ShiftDate time.Time `gorm:"not null;index"`
	StartTime string    `gorm:"type:varchar(5);not null"` // "HH:MM"
	EndTime   string    `gorm:"type:varchar(5);not null"`
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Member *TeamMember `gorm:"foreignKey:MemberID"`
}
