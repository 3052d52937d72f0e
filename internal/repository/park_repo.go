package repository

import (
	"context"
	"errors"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParkRepository interface {
	Create(ctx context.Context, p *model.Park) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Park, error)
	List(ctx context.Context, includeInactive bool) ([]model.Park, error)
	Update(ctx context.Context, p *model.Park) error
}

type parkRepo struct{ db *gorm.DB }

func NewParkRepository(db *gorm.DB) ParkRepository { return &parkRepo{db: db} }

func (r *parkRepo) Create(ctx context.Context, p *model.Park) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *parkRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Park, error) {
	var p model.Park
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	return &p, err
}

func (r *parkRepo) List(ctx context.Context, includeInactive bool) ([]model.Park, error) {
	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("is_active = true")
	}
	var parks []model.Park
	err := q.Order("name ASC").Find(&parks).Error
	return parks, err
}

func (r *parkRepo) Update(ctx context.Context, p *model.Park) error {
	return r.db.WithContext(ctx).Save(p).Error
}
