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

type PlanningRepository interface {
	CreateMember(ctx context.Context, m *model.TeamMember) error
	FindMemberByID(ctx context.Context, id uuid.UUID) (*model.TeamMember, error)
	ListMembersByPark(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]model.TeamMember, error)
	UpdateMember(ctx context.Context, m *model.TeamMember) error

	CreateShift(ctx context.Context, s *model.Shift) error
	FindShiftByID(ctx context.Context, id uuid.UUID) (*model.Shift, error)
	ListShifts(ctx context.Context, parkID uuid.UUID, from, to time.Time) ([]model.Shift, error)
	ListShiftsByMember(ctx context.Context, memberID uuid.UUID) ([]model.Shift, error)
	UpdateShift(ctx context.Context, s *model.Shift) error
	DeleteShift(ctx context.Context, id uuid.UUID) error
}

type planningRepo struct{ db *gorm.DB }

func NewPlanningRepository(db *gorm.DB) PlanningRepository { return &planningRepo{db: db} }

func (r *planningRepo) CreateMember(ctx context.Context, m *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *planningRepo) FindMemberByID(ctx context.Context, id uuid.UUID) (*model.TeamMember, error) {
	var m model.TeamMember
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	return &m, err
}

func (r *planningRepo) ListMembersByPark(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]model.TeamMember, error) {
	q := r.db.WithContext(ctx).Where("park_id = ?", parkID)
	if !includeInactive {
		q = q.Where("is_active = true")
	}
	var members []model.TeamMember
	err := q.Order("name ASC").Find(&members).Error
	return members, err
}

func (r *planningRepo) UpdateMember(ctx context.Context, m *model.TeamMember) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *planningRepo) CreateShift(ctx context.Context, s *model.Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *planningRepo) FindShiftByID(ctx context.Context, id uuid.UUID) (*model.Shift, error) {
	var s model.Shift
	err := r.db.WithContext(ctx).Preload("Member").First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	return &s, err
}

func (r *planningRepo) ListShifts(ctx context.Context, parkID uuid.UUID, from, to time.Time) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("park_id = ?", parkID).
		Where("shift_date >= ? AND shift_date <= ?", from, to).
		Order("shift_date ASC, start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *planningRepo) ListShiftsByMember(ctx context.Context, memberID uuid.UUID) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("member_id = ?", memberID).
		Order("shift_date ASC, start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *planningRepo) UpdateShift(ctx context.Context, s *model.Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *planningRepo) DeleteShift(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Shift{}, "id = ?", id).Error
}
