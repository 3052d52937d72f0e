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

type categoryFixture struct {
	categories *memCategoryRepo
	stock      *memStockRepo
	svc        CategoryService
	parkID     uuid.UUID
	manager    Actor
}

func newCategoryFixture() *categoryFixture {
	f := &categoryFixture{
		categories: newMemCategoryRepo(),
		stock:      newMemStockRepo(),
		parkID:     uuid.New(),
	}
	f.svc = NewCategoryService(f.categories, f.stock, NewAuditService(newMemAuditRepo(), nil))
	f.manager = Actor{ID: uuid.New(), FullName: "Awa Koné", Role: model.RoleManager, ParkID: &f.parkID}
	return f
}

func TestCreateCategory(t *testing.T) {
	f := newCategoryFixture()

	resp, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateCategoryRequest{
		Name: "Laser Game",
		Type: model.CategoryTypeRevenue,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.False(t, resp.ImpactsStock)
}

func TestCreateCategoryDuplicateNameRejected(t *testing.T) {
	f := newCategoryFixture()
	_, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateCategoryRequest{
		Name: "Laser Game", Type: model.CategoryTypeRevenue,
	})
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateCategoryRequest{
		Name: "Laser Game", Type: model.CategoryTypeRevenue,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestImpactsStockRequiresStockItem(t *testing.T) {
	f := newCategoryFixture()

	_, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateCategoryRequest{
		Name:         "Vente boisson",
		Type:         model.CategoryTypeRevenue,
		ImpactsStock: true,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestImpactsStockRejectedOnExpenseCategory(t *testing.T) {
	f := newCategoryFixture()
	item := &model.StockItem{ParkID: f.parkID, Name: "Boissons", Quantity: 10, Unit: "unités", IsActive: true}
	require.NoError(t, f.stock.CreateItem(context.Background(), item))
	id := item.ID.String()

	_, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateCategoryRequest{
		Name:         "Achat boissons",
		Type:         model.CategoryTypeExpense,
		ImpactsStock: true,
		StockItemID:  &id,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestImpactsStockRejectsForeignParkItem(t *testing.T) {
	f := newCategoryFixture()
	item := &model.StockItem{ParkID: uuid.New(), Name: "Boissons", Quantity: 10, Unit: "unités", IsActive: true}
	require.NoError(t, f.stock.CreateItem(context.Background(), item))
	id := item.ID.String()

	_, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateCategoryRequest{
		Name:         "Vente boisson",
		Type:         model.CategoryTypeRevenue,
		ImpactsStock: true,
		StockItemID:  &id,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateCategoryWithValidStockLink(t *testing.T) {
	f := newCategoryFixture()
	item := &model.StockItem{ParkID: f.parkID, Name: "Boissons", Quantity: 10, Unit: "unités", IsActive: true}
	require.NoError(t, f.stock.CreateItem(context.Background(), item))
	id := item.ID.String()

	resp, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateCategoryRequest{
		Name:         "Vente boisson",
		Type:         model.CategoryTypeRevenue,
		ImpactsStock: true,
		StockItemID:  &id,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.StockItemID)
	assert.Equal(t, id, *resp.StockItemID)
}

func TestUpdateCategoryDropsStockLinkWhenDisabled(t *testing.T) {
	f := newCategoryFixture()
	item := &model.StockItem{ParkID: f.parkID, Name: "Boissons", Quantity: 10, Unit: "unités", IsActive: true}
	require.NoError(t, f.stock.CreateItem(context.Background(), item))
	id := item.ID.String()

	created, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateCategoryRequest{
		Name:         "Vente boisson",
		Type:         model.CategoryTypeRevenue,
		ImpactsStock: true,
		StockItemID:  &id,
	})
	require.NoError(t, err)

	off := false
	updated, err := f.svc.Update(context.Background(), f.manager, uuid.MustParse(created.ID), dto.UpdateCategoryRequest{
		ImpactsStock: &off,
	})
	require.NoError(t, err)
	assert.False(t, updated.ImpactsStock)
	assert.Nil(t, updated.StockItemID)
}

func TestDeactivateCategory(t *testing.T) {
	f := newCategoryFixture()
	created, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateCategoryRequest{
		Name: "Snacks", Type: model.CategoryTypeRevenue,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Deactivate(context.Background(), f.manager, uuid.MustParse(created.ID)))

	visible, err := f.svc.ListByPark(context.Background(), f.parkID, false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := f.svc.ListByPark(context.Background(), f.parkID, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
