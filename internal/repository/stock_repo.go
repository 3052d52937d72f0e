package repository

import (
	"context"
	"errors"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockRepository interface {
	DB() *gorm.DB
	CreateItem(ctx context.Context, item *model.StockItem) error
	FindItemByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error)
	ListItemsByPark(ctx context.Context, parkID uuid.UUID) ([]model.StockItem, error)
	ListLowStock(ctx context.Context, parkID uuid.UUID) ([]model.StockItem, error)
	UpdateItem(ctx context.Context, item *model.StockItem) error
	// SetQuantityTx writes the new absolute quantity inside a transaction so
	// the item update and its movement record commit together.
	SetQuantityTx(tx *gorm.DB, id uuid.UUID, quantity int) error
	DeactivateItem(ctx context.Context, id uuid.UUID) error

	CreateMovementTx(tx *gorm.DB, m *model.StockMovement) error
	ListMovements(ctx context.Context, stockItemID uuid.UUID, limit int) ([]model.StockMovement, error)
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) DB() *gorm.DB { return r.db }

func (r *stockRepo) CreateItem(ctx context.Context, item *model.StockItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *stockRepo) FindItemByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error) {
	var item model.StockItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	return &item, err
}

func (r *stockRepo) ListItemsByPark(ctx context.Context, parkID uuid.UUID) ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.WithContext(ctx).
		Where("park_id = ? AND is_active = true", parkID).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *stockRepo) ListLowStock(ctx context.Context, parkID uuid.UUID) ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.WithContext(ctx).
		Where("park_id = ? AND is_active = true AND quantity <= min_threshold", parkID).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *stockRepo) UpdateItem(ctx context.Context, item *model.StockItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *stockRepo) SetQuantityTx(tx *gorm.DB, id uuid.UUID, quantity int) error {
	return tx.Model(&model.StockItem{}).Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *stockRepo) DeactivateItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.StockItem{}).Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *stockRepo) CreateMovementTx(tx *gorm.DB, m *model.StockMovement) error {
	return tx.Create(m).Error
}

func (r *stockRepo) ListMovements(ctx context.Context, stockItemID uuid.UUID, limit int) ([]model.StockMovement, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	var movements []model.StockMovement
	err := r.db.WithContext(ctx).
		Where("stock_item_id = ?", stockItemID).
		Order("created_at DESC").
		Limit(limit).
		Find(&movements).Error
	return movements, err
}
