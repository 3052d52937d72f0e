package repository

import (
	"context"
	"time"

	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(ctx context.Context, e *model.AuditLogEntry) error
	ListRecent(ctx context.Context, parkID uuid.UUID, limit int) ([]model.AuditLogEntry, error)
	ListByDate(ctx context.Context, parkID uuid.UUID, from, to time.Time) ([]model.AuditLogEntry, error)
	// PruneToCap deletes the oldest entries of a park beyond cap, keeping the
	// audit table a bounded ring.
	PruneToCap(ctx context.Context, parkID uuid.UUID, cap int) error
}

type auditRepo struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) AuditRepository { return &auditRepo{db: db} }

func (r *auditRepo) Create(ctx context.Context, e *model.AuditLogEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *auditRepo) ListRecent(ctx context.Context, parkID uuid.UUID, limit int) ([]model.AuditLogEntry, error) {
	if limit < 1 || limit > 500 {
		limit = 50
	}
	var logs []model.AuditLogEntry
	err := r.db.WithContext(ctx).
		Where("park_id = ?", parkID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (r *auditRepo) ListByDate(ctx context.Context, parkID uuid.UUID, from, to time.Time) ([]model.AuditLogEntry, error) {
	var logs []model.AuditLogEntry
	err := r.db.WithContext(ctx).
		Where("park_id = ?", parkID).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *auditRepo) PruneToCap(ctx context.Context, parkID uuid.UUID, cap int) error {
	if cap < 1 {
		return nil
	}
	// Delete everything older than the cap-th newest entry.
	return r.db.WithContext(ctx).Exec(`
		DELETE FROM audit_logs
		WHERE park_id = ?
		  AND id NOT IN (
			SELECT id FROM audit_logs
			WHERE park_id = ?
			ORDER BY created_at DESC
			LIMIT ?
		  )`, parkID, parkID, cap).Error
}
