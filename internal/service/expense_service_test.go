package service

import (
	"context"
	"testing"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expenseFixture struct {
	expenses   *memExpenseRepo
	categories *memCategoryRepo
	audit      *memAuditRepo
	svc        ExpenseService
	parkID     uuid.UUID
	staff      Actor
}

func newExpenseFixture(t *testing.T) *expenseFixture {
	f := &expenseFixture{
		expenses:   newMemExpenseRepo(),
		categories: newMemCategoryRepo(),
		audit:      newMemAuditRepo(),
		parkID:     uuid.New(),
	}
	f.svc = NewExpenseService(f.expenses, f.categories, NewAuditService(f.audit, nil), testLocation(t))
	f.staff = Actor{ID: uuid.New(), FullName: "Moussa Traoré", Role: model.RoleStaff, ParkID: &f.parkID}
	return f
}

func (f *expenseFixture) addCategory(name, typ string) *model.Category {
	c := &model.Category{ParkID: f.parkID, Name: name, Type: typ, IsActive: true}
	_ = f.categories.Create(context.Background(), c)
	return c
}

func TestCreateExpense(t *testing.T) {
	f := newExpenseFixture(t)
	cat := f.addCategory("Électricité", model.CategoryTypeExpense)

	resp, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateExpenseRequest{
		CategoryID:    cat.ID.String(),
		Amount:        12000,
		PaymentMethod: model.PaymentCash,
		Comment:       "facture CIE mars",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12000), resp.Amount)
	assert.Equal(t, "facture CIE mars", resp.Comment)
	assert.Equal(t, "Électricité", resp.CategoryName)
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, "expense", f.audit.entries[0].EntityType)
}

func TestCreateExpenseRejectsRevenueCategory(t *testing.T) {
	f := newExpenseFixture(t)
	cat := f.addCategory("Laser Game", model.CategoryTypeRevenue)

	_, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateExpenseRequest{
		CategoryID:    cat.ID.String(),
		Amount:        5000,
		PaymentMethod: model.PaymentCash,
		Comment:       "mauvaise catégorie",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateExpenseRejectsForeignParkCategory(t *testing.T) {
	f := newExpenseFixture(t)
	foreign := &model.Category{ParkID: uuid.New(), Name: "Eau", Type: model.CategoryTypeExpense, IsActive: true}
	require.NoError(t, f.categories.Create(context.Background(), foreign))

	_, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateExpenseRequest{
		CategoryID:    foreign.ID.String(),
		Amount:        5000,
		PaymentMethod: model.PaymentCash,
		Comment:       "catégorie d'un autre parc",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListExpensesResolvesCategoryNames(t *testing.T) {
	f := newExpenseFixture(t)
	cat := f.addCategory("Maintenance", model.CategoryTypeExpense)

	_, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateExpenseRequest{
		CategoryID:    cat.ID.String(),
		Amount:        8000,
		PaymentMethod: model.PaymentWave,
		Comment:       "réparation laser n°3",
	})
	require.NoError(t, err)

	got, err := f.svc.List(context.Background(), f.parkID, dto.ExpenseFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Maintenance", got[0].CategoryName)
}
