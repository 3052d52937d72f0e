package service

import (
	"context"
	"testing"
	"time"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activityFixture struct {
	activities *memActivityRepo
	categories *memCategoryRepo
	stock      *memStockRepo
	audit      *memAuditRepo
	svc        ActivityService
	parkID     uuid.UUID
	staff      Actor
	manager    Actor
	loc        *time.Location
}

func newActivityFixture(t *testing.T) *activityFixture {
	loc := testLocation(t)
	f := &activityFixture{
		activities: newMemActivityRepo(),
		categories: newMemCategoryRepo(),
		stock:      newMemStockRepo(),
		audit:      newMemAuditRepo(),
		parkID:     uuid.New(),
		loc:        loc,
	}
	auditSvc := NewAuditService(f.audit, nil)
	f.svc = NewActivityService(f.activities, f.categories, f.stock, auditSvc, loc)
	f.staff = Actor{ID: uuid.New(), FullName: "Moussa Traoré", Role: model.RoleStaff, ParkID: &f.parkID}
	f.manager = Actor{ID: uuid.New(), FullName: "Awa Koné", Role: model.RoleManager, ParkID: &f.parkID}
	return f
}

func (f *activityFixture) addCategory(name, typ string, impactsStock bool, stockItemID *uuid.UUID) *model.Category {
	c := &model.Category{
		ParkID:       f.parkID,
		Name:         name,
		Type:         typ,
		ImpactsStock: impactsStock,
		StockItemID:  stockItemID,
		IsActive:     true,
	}
	_ = f.categories.Create(context.Background(), c)
	return c
}

func TestCreateActivity(t *testing.T) {
	f := newActivityFixture(t)
	cat := f.addCategory("Laser Game", model.CategoryTypeRevenue, false, nil)

	resp, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateActivityRequest{
		CategoryID:    cat.ID.String(),
		Amount:        5000,
		Quantity:      2,
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, model.ActivityActive, resp.Status)
	assert.Equal(t, int64(5000), resp.Amount)
	assert.Equal(t, "Laser Game", resp.CategoryName)
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, "activity", f.audit.entries[0].EntityType)
}

func TestCreateActivityRejectsExpenseCategory(t *testing.T) {
	f := newActivityFixture(t)
	cat := f.addCategory("Électricité", model.CategoryTypeExpense, false, nil)

	_, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateActivityRequest{
		CategoryID:    cat.ID.String(),
		Amount:        5000,
		Quantity:      1,
		PaymentMethod: model.PaymentCash,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateActivityRejectsInactiveCategory(t *testing.T) {
	f := newActivityFixture(t)
	cat := f.addCategory("Ancien tarif", model.CategoryTypeRevenue, false, nil)
	cat.IsActive = false

	_, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateActivityRequest{
		CategoryID:    cat.ID.String(),
		Amount:        5000,
		Quantity:      1,
		PaymentMethod: model.PaymentCash,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateActivityDecrementsStock(t *testing.T) {
	f := newActivityFixture(t)
	item := &model.StockItem{ParkID: f.parkID, Name: "Boissons", Quantity: 10, MinThreshold: 3, Unit: "unités", IsActive: true}
	require.NoError(t, f.stock.CreateItem(context.Background(), item))
	cat := f.addCategory("Vente boisson", model.CategoryTypeRevenue, true, &item.ID)

	_, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateActivityRequest{
		CategoryID:    cat.ID.String(),
		Amount:        1000,
		Quantity:      4,
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	got, err := f.stock.FindItemByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Quantity)

	movements, err := f.stock.ListMovements(context.Background(), item.ID, 10)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, model.MovementExit, movements[0].Type)
	assert.Equal(t, 4, movements[0].Quantity)
	assert.NotNil(t, movements[0].ActivityID)
}

func TestCreateActivityStockClampsAtZero(t *testing.T) {
	f := newActivityFixture(t)
	item := &model.StockItem{ParkID: f.parkID, Name: "Boissons", Quantity: 2, MinThreshold: 3, Unit: "unités", IsActive: true}
	require.NoError(t, f.stock.CreateItem(context.Background(), item))
	cat := f.addCategory("Vente boisson", model.CategoryTypeRevenue, true, &item.ID)

	// Selling more than on hand is not rejected; quantity bottoms out at zero.
	_, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateActivityRequest{
		CategoryID:    cat.ID.String(),
		Amount:        2500,
		Quantity:      5,
		PaymentMethod: model.PaymentWave,
	})
	require.NoError(t, err)

	got, err := f.stock.FindItemByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
}

func TestCancelActivityOneWay(t *testing.T) {
	f := newActivityFixture(t)
	cat := f.addCategory("Laser Game", model.CategoryTypeRevenue, false, nil)

	resp, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateActivityRequest{
		CategoryID:    cat.ID.String(),
		Amount:        5000,
		Quantity:      1,
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	require.NoError(t, f.svc.Cancel(context.Background(), f.manager, id, "erreur de saisie"))

	stored, err := f.activities.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.ActivityCancelled, stored.Status)
	require.NotNil(t, stored.CancelledReason)
	assert.Equal(t, "erreur de saisie", *stored.CancelledReason)
	// Amount is retained for audit even after cancellation.
	assert.Equal(t, int64(5000), stored.Amount)

	// Cancelling twice is a state error.
	err = f.svc.Cancel(context.Background(), f.manager, id, "encore")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
}

func TestCancelDoesNotRestoreStock(t *testing.T) {
	f := newActivityFixture(t)
	item := &model.StockItem{ParkID: f.parkID, Name: "Boissons", Quantity: 10, MinThreshold: 3, Unit: "unités", IsActive: true}
	require.NoError(t, f.stock.CreateItem(context.Background(), item))
	cat := f.addCategory("Vente boisson", model.CategoryTypeRevenue, true, &item.ID)

	resp, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateActivityRequest{
		CategoryID:    cat.ID.String(),
		Amount:        1000,
		Quantity:      3,
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(context.Background(), f.manager, uuid.MustParse(resp.ID), "client reparti"))

	got, err := f.stock.FindItemByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
}

func TestListActivitiesFilterByStatus(t *testing.T) {
	f := newActivityFixture(t)
	cat := f.addCategory("Laser Game", model.CategoryTypeRevenue, false, nil)

	keep, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateActivityRequest{
		CategoryID: cat.ID.String(), Amount: 5000, Quantity: 1, PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)
	gone, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateActivityRequest{
		CategoryID: cat.ID.String(), Amount: 3000, Quantity: 1, PaymentMethod: model.PaymentWave,
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.Cancel(context.Background(), f.manager, uuid.MustParse(gone.ID), "doublon"))

	active, err := f.svc.List(context.Background(), f.parkID, dto.ActivityFilter{Status: model.ActivityActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keep.ID, active[0].ID)

	all, err := f.svc.List(context.Background(), f.parkID, dto.ActivityFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
