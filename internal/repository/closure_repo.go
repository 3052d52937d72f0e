package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClosureRepository interface {
	Create(ctx context.Context, c *model.DailyClosure) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DailyClosure, error)
	FindByParkAndDate(ctx context.Context, parkID uuid.UUID, date string) (*model.DailyClosure, error)
	ListByPark(ctx context.Context, parkID uuid.UUID, limit int) ([]model.DailyClosure, error)
	// UpdateVersioned applies the given column updates only when the stored
	// row_version still matches expectedVersion, bumping the version in the
	// same statement. A zero-row update means another writer got there first.
	UpdateVersioned(ctx context.Context, id uuid.UUID, expectedVersion int, updates map[string]interface{}) error
}

type closureRepo struct{ db *gorm.DB }

func NewClosureRepository(db *gorm.DB) ClosureRepository { return &closureRepo{db: db} }

func (r *closureRepo) Create(ctx context.Context, c *model.DailyClosure) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if err != nil && isUniqueViolation(err) {
		// The (park_id, closure_date) unique index fired: a concurrent writer
		// created the closure between our existence check and this insert.
		return apperrors.ErrDuplicateClosure
	}
	return err
}

func (r *closureRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DailyClosure, error) {
	var c model.DailyClosure
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	return &c, err
}

func (r *closureRepo) FindByParkAndDate(ctx context.Context, parkID uuid.UUID, date string) (*model.DailyClosure, error) {
	var c model.DailyClosure
	err := r.db.WithContext(ctx).
		Where("park_id = ? AND closure_date = ?", parkID, date).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	return &c, err
}

func (r *closureRepo) ListByPark(ctx context.Context, parkID uuid.UUID, limit int) ([]model.DailyClosure, error) {
	if limit < 1 || limit > 365 {
		limit = 90
	}
	var closures []model.DailyClosure
	err := r.db.WithContext(ctx).
		Where("park_id = ?", parkID).
		Order("closure_date DESC").
		Limit(limit).
		Find(&closures).Error
	return closures, err
}

func (r *closureRepo) UpdateVersioned(ctx context.Context, id uuid.UUID, expectedVersion int, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.DailyClosure{}).
		Where("id = ? AND row_version = ?", id, expectedVersion).
		Updates(withBumpedVersion(updates, expectedVersion))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either the row is gone or the version moved on; disambiguate so the
		// caller can report stale writes distinctly from missing records.
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.DailyClosure{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrStaleWrite
	}
	return nil
}

// withBumpedVersion copies the update set and adds the incremented
// row_version. The caller's map is left untouched.
func withBumpedVersion(updates map[string]interface{}, expectedVersion int) map[string]interface{} {
	out := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		out[k] = v
	}
	out["row_version"] = expectedVersion + 1
	return out
}

// isUniqueViolation reports whether err is a postgres duplicate-key error
// (SQLSTATE 23505) without importing the driver's error types.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
