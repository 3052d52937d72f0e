package service

import (
	"context"
	"testing"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stockFixture struct {
	stock   *memStockRepo
	audit   *memAuditRepo
	svc     StockService
	parkID  uuid.UUID
	manager Actor
}

func newStockFixture() *stockFixture {
	f := &stockFixture{
		stock:  newMemStockRepo(),
		audit:  newMemAuditRepo(),
		parkID: uuid.New(),
	}
	f.svc = NewStockService(f.stock, NewAuditService(f.audit, nil))
	f.manager = Actor{ID: uuid.New(), FullName: "Awa Koné", Role: model.RoleManager, ParkID: &f.parkID}
	return f
}

func TestCreateStockItem(t *testing.T) {
	f := newStockFixture()

	resp, err := f.svc.CreateItem(context.Background(), f.manager, f.parkID, dto.CreateStockItemRequest{
		Name:         "Boissons",
		Quantity:     20,
		MinThreshold: 5,
		Unit:         "unités",
	})
	require.NoError(t, err)

	assert.Equal(t, 20, resp.Quantity)
	assert.True(t, resp.IsActive)
	assert.False(t, resp.LowStock)
}

func TestStockEntryIncrementsAndRecordsMovement(t *testing.T) {
	f := newStockFixture()
	item, err := f.svc.CreateItem(context.Background(), f.manager, f.parkID, dto.CreateStockItemRequest{
		Name: "Gobelets", Quantity: 10, MinThreshold: 5, Unit: "unités",
	})
	require.NoError(t, err)
	id := uuid.MustParse(item.ID)

	resp, err := f.svc.Entry(context.Background(), f.manager, id, dto.StockEntryRequest{
		Quantity: 30,
		Reason:   "livraison hebdomadaire",
	})
	require.NoError(t, err)
	assert.Equal(t, 40, resp.Quantity)

	movements, err := f.svc.Movements(context.Background(), id, 10)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, model.MovementEntry, movements[0].Type)
	assert.Equal(t, 30, movements[0].Quantity)
}

func TestStockAdjustRecordsDelta(t *testing.T) {
	f := newStockFixture()
	item, err := f.svc.CreateItem(context.Background(), f.manager, f.parkID, dto.CreateStockItemRequest{
		Name: "Boissons", Quantity: 50, MinThreshold: 5, Unit: "unités",
	})
	require.NoError(t, err)
	id := uuid.MustParse(item.ID)

	// Physical inventory found fewer than the books say.
	resp, err := f.svc.Adjust(context.Background(), f.manager, id, dto.StockAdjustRequest{
		NewQuantity: 42,
		Reason:      "inventaire mensuel",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, resp.Quantity)

	movements, err := f.svc.Movements(context.Background(), id, 10)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, model.MovementAdjustment, movements[0].Type)
	assert.Equal(t, 8, movements[0].Quantity)
	require.NotNil(t, movements[0].Reason)
	assert.Contains(t, *movements[0].Reason, "delta -8")
}

func TestLowStockThresholdInclusive(t *testing.T) {
	f := newStockFixture()
	_, err := f.svc.CreateItem(context.Background(), f.manager, f.parkID, dto.CreateStockItemRequest{
		Name: "Boissons", Quantity: 5, MinThreshold: 5, Unit: "unités",
	})
	require.NoError(t, err)
	_, err = f.svc.CreateItem(context.Background(), f.manager, f.parkID, dto.CreateStockItemRequest{
		Name: "Gobelets", Quantity: 6, MinThreshold: 5, Unit: "unités",
	})
	require.NoError(t, err)

	low, err := f.svc.ListLowStock(context.Background(), f.parkID)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Boissons", low[0].Name)
	assert.True(t, low[0].LowStock)
}

func TestDeactivateItemKeepsMovements(t *testing.T) {
	f := newStockFixture()
	item, err := f.svc.CreateItem(context.Background(), f.manager, f.parkID, dto.CreateStockItemRequest{
		Name: "Boissons", Quantity: 10, MinThreshold: 3, Unit: "unités",
	})
	require.NoError(t, err)
	id := uuid.MustParse(item.ID)

	_, err = f.svc.Entry(context.Background(), f.manager, id, dto.StockEntryRequest{Quantity: 5, Reason: "livraison"})
	require.NoError(t, err)
	require.NoError(t, f.svc.DeactivateItem(context.Background(), f.manager, id))

	movements, err := f.svc.Movements(context.Background(), id, 10)
	require.NoError(t, err)
	assert.Len(t, movements, 1)
}
