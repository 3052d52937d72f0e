package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions and entity types are free-form strings; the common values
// are "create" | "update" | "delete" | "cancel" | "closure" | "stock_movement"
// over "activity" | "expense" | "stock" | "category" | "user" | "closure".

// AuditLogEntry records who did what, for traceability. Append-only, bounded:
// the worker prunes each park's log to a fixed ring size, oldest first.
type AuditLogEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ParkID      uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	UserName    string    `gorm:"not null"`
	Action      string    `gorm:"type:varchar(30);not null"`
	EntityType  string    `gorm:"type:varchar(30);not null"`
	EntityID    *uuid.UUID `gorm:"type:uuid"`
	Description string     `gorm:"not null"`
	// Metadata is a free-form JSON blob (totals, reasons, …).
	Metadata  string    `gorm:"type:jsonb;default:'{}'"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides the default (audit_log_entries → audit_logs).
func (AuditLogEntry) TableName() string { return "audit_logs" }
