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
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ActivityService records sales and their one-way cancellation. When the
// category impacts stock, the sale and its stock exit commit in the same
// transaction.
type ActivityService interface {
	Create(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	Cancel(ctx context.Context, actor Actor, activityID uuid.UUID, reason string) error
	List(ctx context.Context, parkID uuid.UUID, filter dto.ActivityFilter) ([]dto.ActivityResponse, error)
}

type activityService struct {
	activities repository.ActivityRepository
	categories repository.CategoryRepository
	stock      repository.StockRepository
	audit      AuditService
	loc        *time.Location
}

func NewActivityService(
	activities repository.ActivityRepository,
	categories repository.CategoryRepository,
	stock repository.StockRepository,
	audit AuditService,
	loc *time.Location,
) ActivityService {
	if loc == nil {
		loc = time.Local
	}
	return &activityService{activities: activities, categories: categories, stock: stock, audit: audit, loc: loc}
}

func (s *activityService) Create(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: category_id invalide", apperrors.ErrValidation)
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.ParkID != parkID || !category.IsActive {
		return nil, fmt.Errorf("%w: catégorie indisponible", apperrors.ErrValidation)
	}
	if category.Type != model.CategoryTypeRevenue {
		return nil, fmt.Errorf("%w: catégorie de dépense, pas de vente", apperrors.ErrValidation)
	}

	activity := &model.Activity{
		ParkID:        parkID,
		CategoryID:    categoryID,
		Amount:        req.Amount,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
		Comment:       req.Comment,
		CreatedBy:     actor.ID,
		ActivityDate:  time.Now().In(s.loc),
		Status:        model.ActivityActive,
	}

	err = runTx(ctx, s.activities.DB(), func(tx *gorm.DB) error {
		if err := s.activities.Create(ctx, tx, activity); err != nil {
			return err
		}
		if category.ImpactsStock && category.StockItemID != nil {
			return s.consumeStock(ctx, tx, actor, *category.StockItemID, activity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      parkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "create",
		EntityType:  "activity",
		EntityID:    activity.ID.String(),
		Description: fmt.Sprintf("Vente %s : %d FCFA", category.Name, req.Amount),
	})

	resp := activityToResponse(activity)
	resp.CategoryName = category.Name
	return resp, nil
}

// consumeStock decrements the linked item by the sale quantity, clamping at
// zero, and writes the exit movement tied to the activity. A sale can exceed
// quantity-on-hand (the physical stock was simply miscounted); it is logged,
// never rejected.
func (s *activityService) consumeStock(ctx context.Context, tx *gorm.DB, actor Actor, itemID uuid.UUID, activity *model.Activity) error {
	item, err := s.stock.FindItemByID(ctx, itemID)
	if err != nil {
		return err
	}

	newQty := item.Quantity - activity.Quantity
	if newQty < 0 {
		log.Warn().
			Str("stock_item_id", itemID.String()).
			Int("on_hand", item.Quantity).
			Int("sold", activity.Quantity).
			Msg("sale exceeds quantity on hand, clamping at zero")
		newQty = 0
	}

	if err := s.stock.SetQuantityTx(tx, itemID, newQty); err != nil {
		return err
	}

	reason := "Vente"
	return s.stock.CreateMovementTx(tx, &model.StockMovement{
		StockItemID: itemID,
		ParkID:      activity.ParkID,
		Type:        model.MovementExit,
		Quantity:    activity.Quantity,
		Reason:      &reason,
		ActivityID:  &activity.ID,
		CreatedBy:   actor.ID,
	})
}

// Cancel soft-cancels an activity. One-way: a cancelled activity never
// returns to active, and stock consumed by the sale is not restored — the
// physical goods left the shelf either way.
func (s *activityService) Cancel(ctx context.Context, actor Actor, activityID uuid.UUID, reason string) error {
	activity, err := s.activities.FindByID(ctx, activityID)
	if err != nil {
		return err
	}
	if activity.Status == model.ActivityCancelled {
		return apperrors.ErrInvalidStateTransition
	}

	if err := s.activities.Cancel(ctx, activityID, reason, actor.ID, time.Now()); err != nil {
		return err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      activity.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "cancel",
		EntityType:  "activity",
		EntityID:    activity.ID.String(),
		Description: fmt.Sprintf("Vente annulée : %d FCFA (%s)", activity.Amount, reason),
	})
	return nil
}

func (s *activityService) List(ctx context.Context, parkID uuid.UUID, filter dto.ActivityFilter) ([]dto.ActivityResponse, error) {
	date := time.Now().In(s.loc)
	if filter.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", filter.Date, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: date invalide", apperrors.ErrValidation)
		}
		date = parsed
	}
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.loc)
	to := from.Add(24*time.Hour - time.Nanosecond)

	activities, err := s.activities.List(ctx, repository.ActivityFilter{
		ParkID: parkID,
		From:   from,
		To:     to,
		Status: filter.Status,
	})
	if err != nil {
		return nil, err
	}

	names, err := s.categoryNames(ctx, parkID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		resp := activityToResponse(&activities[i])
		resp.CategoryName = names[activities[i].CategoryID]
		out = append(out, *resp)
	}
	return out, nil
}

func (s *activityService) categoryNames(ctx context.Context, parkID uuid.UUID) (map[uuid.UUID]string, error) {
	categories, err := s.categories.ListByPark(ctx, parkID, true)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

func activityToResponse(a *model.Activity) *dto.ActivityResponse {
	resp := &dto.ActivityResponse{
		ID:              a.ID.String(),
		ParkID:          a.ParkID.String(),
		CategoryID:      a.CategoryID.String(),
		Amount:          a.Amount,
		Quantity:        a.Quantity,
		PaymentMethod:   a.PaymentMethod,
		Comment:         a.Comment,
		CreatedBy:       a.CreatedBy.String(),
		ActivityDate:    a.ActivityDate.Format(time.RFC3339),
		Status:          a.Status,
		CancelledReason: a.CancelledReason,
	}
	if a.CancelledBy != nil {
		v := a.CancelledBy.String()
		resp.CancelledBy = &v
	}
	if a.CancelledAt != nil {
		v := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &v
	}
	return resp
}
