package repository

import (
	"context"
	"errors"
	"time"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityFilter narrows listings to a park, a time window and a status.
type ActivityFilter struct {
	ParkID uuid.UUID
	From   time.Time
	To     time.Time
	Status string // "" = any
}

type ActivityRepository interface {
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
	Create(ctx context.Context, tx *gorm.DB, a *model.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	List(ctx context.Context, filter ActivityFilter) ([]model.Activity, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string, by uuid.UUID, at time.Time) error
}

type activityRepo struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) ActivityRepository { return &activityRepo{db: db} }

func (r *activityRepo) DB() *gorm.DB { return r.db }

func (r *activityRepo) Create(ctx context.Context, tx *gorm.DB, a *model.Activity) error {
	if tx == nil {
		tx = r.db.WithContext(ctx)
	}
	return tx.Create(a).Error
}

func (r *activityRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	var a model.Activity
	err := r.db.WithContext(ctx).Preload("Category").First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	return &a, err
}

func (r *activityRepo) List(ctx context.Context, filter ActivityFilter) ([]model.Activity, error) {
	q := r.db.WithContext(ctx).
		Preload("Category").
		Where("park_id = ?", filter.ParkID).
		Where("activity_date >= ? AND activity_date <= ?", filter.From, filter.To)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var activities []model.Activity
	err := q.Order("activity_date DESC").Find(&activities).Error
	return activities, err
}

func (r *activityRepo) Cancel(ctx context.Context, id uuid.UUID, reason string, by uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Activity{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           model.ActivityCancelled,
			"cancelled_reason": reason,
			"cancelled_by":     by,
			"cancelled_at":     at,
		}).Error
}
