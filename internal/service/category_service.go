package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/repository"

	"github.com/google/uuid"
)

type CategoryService interface {
	Create(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, actor Actor, categoryID uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Deactivate(ctx context.Context, actor Actor, categoryID uuid.UUID) error
	ListByPark(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]dto.CategoryResponse, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	stock      repository.StockRepository
	audit      AuditService
}

func NewCategoryService(categories repository.CategoryRepository, stock repository.StockRepository, audit AuditService) CategoryService {
	return &categoryService{categories: categories, stock: stock, audit: audit}
}

func (s *categoryService) Create(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if existing, err := s.categories.FindByParkAndName(ctx, parkID, req.Name); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: catégorie déjà existante", apperrors.ErrValidation)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	stockItemID, err := s.resolveStockLink(ctx, parkID, req.Type, req.ImpactsStock, req.StockItemID)
	if err != nil {
		return nil, err
	}

	category := &model.Category{
		ParkID:       parkID,
		Name:         req.Name,
		Type:         req.Type,
		Icon:         req.Icon,
		Color:        req.Color,
		ImpactsStock: req.ImpactsStock,
		StockItemID:  stockItemID,
		IsActive:     true,
		SortOrder:    req.SortOrder,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      parkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "create",
		EntityType:  "category",
		EntityID:    category.ID.String(),
		Description: fmt.Sprintf("Catégorie créée : %s", category.Name),
	})
	return categoryToResponse(category), nil
}

func (s *categoryService) Update(ctx context.Context, actor Actor, categoryID uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = req.Icon
	}
	if req.Color != nil {
		category.Color = req.Color
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.ImpactsStock != nil {
		category.ImpactsStock = *req.ImpactsStock
	}
	if req.StockItemID != nil || req.ImpactsStock != nil {
		link := req.StockItemID
		if link == nil && category.StockItemID != nil {
			v := category.StockItemID.String()
			link = &v
		}
		stockItemID, err := s.resolveStockLink(ctx, category.ParkID, category.Type, category.ImpactsStock, link)
		if err != nil {
			return nil, err
		}
		category.StockItemID = stockItemID
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      category.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "update",
		EntityType:  "category",
		EntityID:    category.ID.String(),
		Description: fmt.Sprintf("Catégorie modifiée : %s", category.Name),
	})
	return categoryToResponse(category), nil
}

// Deactivate soft-disables the category. Existing activities and expenses
// keep their reference; only new recordings are blocked.
func (s *categoryService) Deactivate(ctx context.Context, actor Actor, categoryID uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if err := s.categories.Deactivate(ctx, categoryID); err != nil {
		return err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      category.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "delete",
		EntityType:  "category",
		EntityID:    categoryID.String(),
		Description: fmt.Sprintf("Catégorie désactivée : %s", category.Name),
	})
	return nil
}

func (s *categoryService) ListByPark(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]dto.CategoryResponse, error) {
	categories, err := s.categories.ListByPark(ctx, parkID, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *categoryToResponse(&categories[i]))
	}
	return out, nil
}

// resolveStockLink enforces the stock-link invariant: impacts_stock requires
// a revenue category and a valid stock item of the same park. When the link
// is off, any stock item reference is dropped.
func (s *categoryService) resolveStockLink(ctx context.Context, parkID uuid.UUID, categoryType string, impactsStock bool, stockItemID *string) (*uuid.UUID, error) {
	if !impactsStock {
		return nil, nil
	}
	if categoryType != model.CategoryTypeRevenue {
		return nil, fmt.Errorf("%w: seule une catégorie de vente peut impacter le stock", apperrors.ErrValidation)
	}
	if stockItemID == nil {
		return nil, fmt.Errorf("%w: article de stock requis", apperrors.ErrValidation)
	}
	id, err := uuid.Parse(*stockItemID)
	if err != nil {
		return nil, fmt.Errorf("%w: stock_item_id invalide", apperrors.ErrValidation)
	}
	item, err := s.stock.FindItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.ParkID != parkID {
		return nil, fmt.Errorf("%w: article de stock d'un autre parc", apperrors.ErrValidation)
	}
	return &id, nil
}

func categoryToResponse(c *model.Category) *dto.CategoryResponse {
	resp := &dto.CategoryResponse{
		ID:           c.ID.String(),
		ParkID:       c.ParkID.String(),
		Name:         c.Name,
		Type:         c.Type,
		Icon:         c.Icon,
		Color:        c.Color,
		ImpactsStock: c.ImpactsStock,
		IsActive:     c.IsActive,
		SortOrder:    c.SortOrder,
	}
	if c.StockItemID != nil {
		v := c.StockItemID.String()
		resp.StockItemID = &v
	}
	return resp
}
