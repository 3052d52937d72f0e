package repository

import (
	"context"
	"errors"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShortcutRepository interface {
	Create(ctx context.Context, s *model.QuickShortcut) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.QuickShortcut, error)
	ListByPark(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]model.QuickShortcut, error)
	MaxSortOrder(ctx context.Context, parkID uuid.UUID) (int, error)
	Update(ctx context.Context, s *model.QuickShortcut) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error
}

type shortcutRepo struct{ db *gorm.DB }

func NewShortcutRepository(db *gorm.DB) ShortcutRepository { return &shortcutRepo{db: db} }

func (r *shortcutRepo) Create(ctx context.Context, s *model.QuickShortcut) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shortcutRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.QuickShortcut, error) {
	var s model.QuickShortcut
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	return &s, err
}

func (r *shortcutRepo) ListByPark(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]model.QuickShortcut, error) {
	q := r.db.WithContext(ctx).Where("park_id = ?", parkID)
	if !includeInactive {
		q = q.Where("is_active = true")
	}
	var shortcuts []model.QuickShortcut
	err := q.Order("sort_order ASC, created_at ASC").Find(&shortcuts).Error
	return shortcuts, err
}

func (r *shortcutRepo) MaxSortOrder(ctx context.Context, parkID uuid.UUID) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.QuickShortcut{}).
		Where("park_id = ?", parkID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	return max, err
}

func (r *shortcutRepo) Update(ctx context.Context, s *model.QuickShortcut) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *shortcutRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.QuickShortcut{}, "id = ?", id).Error
}

func (r *shortcutRepo) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	return r.db.WithContext(ctx).Model(&model.QuickShortcut{}).
		Where("id = ?", id).
		Update("sort_order", sortOrder).Error
}
