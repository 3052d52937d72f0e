package service

import (
	"context"
	"fmt"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/repository"

	"github.com/google/uuid"
)

type ShortcutService interface {
	Create(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateShortcutRequest) (*dto.ShortcutResponse, error)
	Update(ctx context.Context, actor Actor, shortcutID uuid.UUID, req dto.UpdateShortcutRequest) (*dto.ShortcutResponse, error)
	Delete(ctx context.Context, actor Actor, shortcutID uuid.UUID) error
	Reorder(ctx context.Context, actor Actor, parkID uuid.UUID, shortcutIDs []string) error
	ListByPark(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]dto.ShortcutResponse, error)
}

type shortcutService struct {
	shortcuts  repository.ShortcutRepository
	categories repository.CategoryRepository
	audit      AuditService
}

func NewShortcutService(shortcuts repository.ShortcutRepository, categories repository.CategoryRepository, audit AuditService) ShortcutService {
	return &shortcutService{shortcuts: shortcuts, categories: categories, audit: audit}
}

// Create appends the shortcut at the end of the park's till order.
func (s *shortcutService) Create(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateShortcutRequest) (*dto.ShortcutResponse, error) {
	categoryID, err := s.resolveCategory(ctx, parkID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	maxOrder, err := s.shortcuts.MaxSortOrder(ctx, parkID)
	if err != nil {
		return nil, err
	}

	shortcut := &model.QuickShortcut{
		ParkID:        parkID,
		Name:          req.Name,
		Amount:        req.Amount,
		Quantity:      req.Quantity,
		CategoryID:    categoryID,
		PaymentMethod: req.PaymentMethod,
		Icon:          req.Icon,
		Color:         req.Color,
		SortOrder:     maxOrder + 1,
		IsActive:      true,
	}
	if err := s.shortcuts.Create(ctx, shortcut); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      parkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "create",
		EntityType:  "shortcut",
		EntityID:    shortcut.ID.String(),
		Description: fmt.Sprintf("Raccourci créé : %s (%d FCFA)", shortcut.Name, shortcut.Amount),
	})
	return shortcutToResponse(shortcut), nil
}

func (s *shortcutService) Update(ctx context.Context, actor Actor, shortcutID uuid.UUID, req dto.UpdateShortcutRequest) (*dto.ShortcutResponse, error) {
	shortcut, err := s.shortcuts.FindByID(ctx, shortcutID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		shortcut.Name = *req.Name
	}
	if req.Amount != nil {
		shortcut.Amount = *req.Amount
	}
	if req.Quantity != nil {
		shortcut.Quantity = *req.Quantity
	}
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, shortcut.ParkID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		shortcut.CategoryID = categoryID
	}
	if req.PaymentMethod != nil {
		shortcut.PaymentMethod = *req.PaymentMethod
	}
	if req.Icon != nil {
		shortcut.Icon = req.Icon
	}
	if req.Color != nil {
		shortcut.Color = req.Color
	}
	if req.IsActive != nil {
		shortcut.IsActive = *req.IsActive
	}

	if err := s.shortcuts.Update(ctx, shortcut); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      shortcut.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "update",
		EntityType:  "shortcut",
		EntityID:    shortcut.ID.String(),
		Description: fmt.Sprintf("Raccourci modifié : %s", shortcut.Name),
	})
	return shortcutToResponse(shortcut), nil
}

// Delete removes the shortcut for good. Unlike categories there is nothing
// referencing a shortcut, so a hard delete is safe.
func (s *shortcutService) Delete(ctx context.Context, actor Actor, shortcutID uuid.UUID) error {
	shortcut, err := s.shortcuts.FindByID(ctx, shortcutID)
	if err != nil {
		return err
	}
	if err := s.shortcuts.Delete(ctx, shortcutID); err != nil {
		return err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      shortcut.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "delete",
		EntityType:  "shortcut",
		EntityID:    shortcutID.String(),
		Description: fmt.Sprintf("Raccourci supprimé : %s", shortcut.Name),
	})
	return nil
}

// Reorder assigns sort order by position in shortcutIDs. IDs of other parks
// and unknown IDs are ignored; park shortcuts absent from the list keep
// their current position.
func (s *shortcutService) Reorder(ctx context.Context, actor Actor, parkID uuid.UUID, shortcutIDs []string) error {
	existing, err := s.shortcuts.ListByPark(ctx, parkID, true)
	if err != nil {
		return err
	}
	mine := make(map[uuid.UUID]bool, len(existing))
	for i := range existing {
		mine[existing[i].ID] = true
	}

	for pos, raw := range shortcutIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("%w: identifiant de raccourci invalide", apperrors.ErrValidation)
		}
		if !mine[id] {
			continue
		}
		if err := s.shortcuts.UpdateSortOrder(ctx, id, pos); err != nil {
			return err
		}
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      parkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "update",
		EntityType:  "shortcut",
		Description: "Raccourcis réordonnés",
	})
	return nil
}

func (s *shortcutService) ListByPark(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]dto.ShortcutResponse, error) {
	shortcuts, err := s.shortcuts.ListByPark(ctx, parkID, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShortcutResponse, 0, len(shortcuts))
	for i := range shortcuts {
		out = append(out, *shortcutToResponse(&shortcuts[i]))
	}
	return out, nil
}

// resolveCategory enforces that a shortcut records revenue: the category must
// exist, belong to the park, be active, and be a revenue category.
func (s *shortcutService) resolveCategory(ctx context.Context, parkID uuid.UUID, rawID string) (uuid.UUID, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: category_id invalide", apperrors.ErrValidation)
	}
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	if category.ParkID != parkID {
		return uuid.Nil, fmt.Errorf("%w: catégorie d'un autre parc", apperrors.ErrValidation)
	}
	if !category.IsActive {
		return uuid.Nil, fmt.Errorf("%w: catégorie désactivée", apperrors.ErrValidation)
	}
	if category.Type != model.CategoryTypeRevenue {
		return uuid.Nil, fmt.Errorf("%w: un raccourci doit pointer une catégorie de vente", apperrors.ErrValidation)
	}
	return id, nil
}

func shortcutToResponse(s *model.QuickShortcut) *dto.ShortcutResponse {
	return &dto.ShortcutResponse{
		ID:            s.ID.String(),
		ParkID:        s.ParkID.String(),
		Name:          s.Name,
		Amount:        s.Amount,
		Quantity:      s.Quantity,
		CategoryID:    s.CategoryID.String(),
		PaymentMethod: s.PaymentMethod,
		Icon:          s.Icon,
		Color:         s.Color,
		SortOrder:     s.SortOrder,
		IsActive:      s.IsActive,
	}
}
