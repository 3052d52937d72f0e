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
)

// ExpenseService records outgoing payments. The ledger is append-only: no
// update, no cancel. Mistakes are corrected by a compensating entry.
type ExpenseService interface {
	Create(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	List(ctx context.Context, parkID uuid.UUID, filter dto.ExpenseFilter) ([]dto.ExpenseResponse, error)
}

type expenseService struct {
	expenses   repository.ExpenseRepository
	categories repository.CategoryRepository
	audit      AuditService
	loc        *time.Location
}

func NewExpenseService(expenses repository.ExpenseRepository, categories repository.CategoryRepository, audit AuditService, loc *time.Location) ExpenseService {
	if loc == nil {
		loc = time.Local
	}
	return &expenseService{expenses: expenses, categories: categories, audit: audit, loc: loc}
}

func (s *expenseService) Create(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
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
	if category.Type != model.CategoryTypeExpense {
		return nil, fmt.Errorf("%w: catégorie de vente, pas de dépense", apperrors.ErrValidation)
	}

	expense := &model.Expense{
		ParkID:        parkID,
		CategoryID:    categoryID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Comment:       req.Comment,
		CreatedBy:     actor.ID,
		ExpenseDate:   time.Now().In(s.loc),
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      parkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "create",
		EntityType:  "expense",
		EntityID:    expense.ID.String(),
		Description: fmt.Sprintf("Dépense %s : %d FCFA", category.Name, req.Amount),
	})

	resp := expenseToResponse(expense)
	resp.CategoryName = category.Name
	return resp, nil
}

func (s *expenseService) List(ctx context.Context, parkID uuid.UUID, filter dto.ExpenseFilter) ([]dto.ExpenseResponse, error) {
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

	expenses, err := s.expenses.List(ctx, parkID, from, to)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.ListByPark(ctx, parkID, true)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		resp := expenseToResponse(&expenses[i])
		resp.CategoryName = names[expenses[i].CategoryID]
		out = append(out, *resp)
	}
	return out, nil
}

func expenseToResponse(e *model.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID.String(),
		ParkID:        e.ParkID.String(),
		CategoryID:    e.CategoryID.String(),
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		Comment:       e.Comment,
		CreatedBy:     e.CreatedBy.String(),
		ExpenseDate:   e.ExpenseDate.Format(time.RFC3339),
	}
}
