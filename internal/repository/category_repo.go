package repository

import (
	"context"
	"errors"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	FindByParkAndName(ctx context.Context, parkID uuid.UUID, name string) (*model.Category, error)
	ListByPark(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	return &c, err
}

func (r *categoryRepo) FindByParkAndName(ctx context.Context, parkID uuid.UUID, name string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("park_id = ? AND name = ?", parkID, name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) ListByPark(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]model.Category, error) {
	q := r.db.WithContext(ctx).Where("park_id = ?", parkID)
	if !includeInactive {
		q = q.Where("is_active = true")
	}
	var categories []model.Category
	err := q.Order("sort_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) Update(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoryRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).
		Update("is_active", false).Error
}
