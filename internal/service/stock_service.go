package service

import (
	"context"
	"fmt"
	"time"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockService manages quantity-on-hand per park. Every quantity change,
// whatever its origin, leaves an immutable movement record; the item update
// and its movement always commit in the same transaction.
type StockService interface {
	CreateItem(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateStockItemRequest) (*dto.StockItemResponse, error)
	UpdateItem(ctx context.Context, actor Actor, itemID uuid.UUID, req dto.UpdateStockItemRequest) (*dto.StockItemResponse, error)
	DeactivateItem(ctx context.Context, actor Actor, itemID uuid.UUID) error
	ListByPark(ctx context.Context, parkID uuid.UUID) ([]dto.StockItemResponse, error)
	ListLowStock(ctx context.Context, parkID uuid.UUID) ([]dto.StockItemResponse, error)

	Entry(ctx context.Context, actor Actor, itemID uuid.UUID, req dto.StockEntryRequest) (*dto.StockItemResponse, error)
	Adjust(ctx context.Context, actor Actor, itemID uuid.UUID, req dto.StockAdjustRequest) (*dto.StockItemResponse, error)
	Movements(ctx context.Context, itemID uuid.UUID, limit int) ([]dto.StockMovementResponse, error)
}

type stockService struct {
	stock repository.StockRepository
	audit AuditService
}

func NewStockService(stock repository.StockRepository, audit AuditService) StockService {
	return &stockService{stock: stock, audit: audit}
}

// ── Items ─────────────────────────────────────────────────────────────────────

func (s *stockService) CreateItem(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	item := &model.StockItem{
		ParkID:       parkID,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		MinThreshold: req.MinThreshold,
		Unit:         req.Unit,
		IsActive:     true,
	}
	if err := s.stock.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      parkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "create",
		EntityType:  "stock_item",
		EntityID:    item.ID.String(),
		Description: fmt.Sprintf("Article de stock créé : %s (%d %s)", item.Name, item.Quantity, item.Unit),
	})
	resp := stockItemToResponse(item)
	return &resp, nil
}

func (s *stockService) UpdateItem(ctx context.Context, actor Actor, itemID uuid.UUID, req dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := s.stock.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = req.Category
	}
	if req.MinThreshold != nil {
		item.MinThreshold = *req.MinThreshold
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.stock.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	resp := stockItemToResponse(item)
	return &resp, nil
}

func (s *stockService) DeactivateItem(ctx context.Context, actor Actor, itemID uuid.UUID) error {
	item, err := s.stock.FindItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.stock.DeactivateItem(ctx, itemID); err != nil {
		return err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      item.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "delete",
		EntityType:  "stock_item",
		EntityID:    itemID.String(),
		Description: fmt.Sprintf("Article de stock désactivé : %s", item.Name),
	})
	return nil
}

func (s *stockService) ListByPark(ctx context.Context, parkID uuid.UUID) ([]dto.StockItemResponse, error) {
	items, err := s.stock.ListItemsByPark(ctx, parkID)
	if err != nil {
		return nil, err
	}
	return stockItemsToResponses(items), nil
}

func (s *stockService) ListLowStock(ctx context.Context, parkID uuid.UUID) ([]dto.StockItemResponse, error) {
	items, err := s.stock.ListLowStock(ctx, parkID)
	if err != nil {
		return nil, err
	}
	return stockItemsToResponses(items), nil
}

// ── Movements ─────────────────────────────────────────────────────────────────

// Entry adds stock (delivery, restock). Quantity is strictly positive.
func (s *stockService) Entry(ctx context.Context, actor Actor, itemID uuid.UUID, req dto.StockEntryRequest) (*dto.StockItemResponse, error) {
	item, err := s.stock.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	newQty := item.Quantity + req.Quantity
	reason := req.Reason
	err = runTx(ctx, s.stock.DB(), func(tx *gorm.DB) error {
		if err := s.stock.SetQuantityTx(tx, itemID, newQty); err != nil {
			return err
		}
		return s.stock.CreateMovementTx(tx, &model.StockMovement{
			StockItemID: itemID,
			ParkID:      item.ParkID,
			Type:        model.MovementEntry,
			Quantity:    req.Quantity,
			Reason:      &reason,
			CreatedBy:   actor.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	item.Quantity = newQty

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      item.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "create",
		EntityType:  "stock_movement",
		EntityID:    itemID.String(),
		Description: fmt.Sprintf("Entrée de stock : %s +%d", item.Name, req.Quantity),
	})
	resp := stockItemToResponse(item)
	return &resp, nil
}

// Adjust sets the absolute quantity after a physical inventory. The movement
// records the delta so the ledger stays reconstructible.
func (s *stockService) Adjust(ctx context.Context, actor Actor, itemID uuid.UUID, req dto.StockAdjustRequest) (*dto.StockItemResponse, error) {
	if req.NewQuantity < 0 {
		return nil, fmt.Errorf("%w: quantité négative", apperrors.ErrValidation)
	}

	item, err := s.stock.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	delta := req.NewQuantity - item.Quantity
	reason := fmt.Sprintf("%s (delta %+d)", req.Reason, delta)
	err = runTx(ctx, s.stock.DB(), func(tx *gorm.DB) error {
		if err := s.stock.SetQuantityTx(tx, itemID, req.NewQuantity); err != nil {
			return err
		}
		return s.stock.CreateMovementTx(tx, &model.StockMovement{
			StockItemID: itemID,
			ParkID:      item.ParkID,
			Type:        model.MovementAdjustment,
			Quantity:    abs(delta),
			Reason:      &reason,
			CreatedBy:   actor.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	item.Quantity = req.NewQuantity

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      item.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "update",
		EntityType:  "stock_movement",
		EntityID:    itemID.String(),
		Description: fmt.Sprintf("Ajustement de stock : %s → %d", item.Name, req.NewQuantity),
	})
	resp := stockItemToResponse(item)
	return &resp, nil
}

func (s *stockService) Movements(ctx context.Context, itemID uuid.UUID, limit int) ([]dto.StockMovementResponse, error) {
	movements, err := s.stock.ListMovements(ctx, itemID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for i := range movements {
		out = append(out, *movementToResponse(&movements[i]))
	}
	return out, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func stockItemToResponse(item *model.StockItem) dto.StockItemResponse {
	return dto.StockItemResponse{
		ID:           item.ID.String(),
		ParkID:       item.ParkID.String(),
		Name:         item.Name,
		Category:     item.Category,
		Quantity:     item.Quantity,
		MinThreshold: item.MinThreshold,
		Unit:         item.Unit,
		IsActive:     item.IsActive,
		LowStock:     item.Quantity <= item.MinThreshold,
	}
}

func stockItemsToResponses(items []model.StockItem) []dto.StockItemResponse {
	out := make([]dto.StockItemResponse, 0, len(items))
	for i := range items {
		out = append(out, stockItemToResponse(&items[i]))
	}
	return out
}

func movementToResponse(m *model.StockMovement) *dto.StockMovementResponse {
	resp := &dto.StockMovementResponse{
		ID:          m.ID.String(),
		StockItemID: m.StockItemID.String(),
		Type:        m.Type,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		CreatedBy:   m.CreatedBy.String(),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
	if m.ActivityID != nil {
		v := m.ActivityID.String()
		resp.ActivityID = &v
	}
	return resp
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
