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

type closureFixture struct {
	*reportingFixture
	closures *memClosureRepo
	audit    *memAuditRepo
	svc      ClosureService
	manager  Actor
	staff    Actor
	admin    Actor
}

func newClosureFixture(t *testing.T) *closureFixture {
	rf := newReportingFixture(t)
	f := &closureFixture{
		reportingFixture: rf,
		closures:         newMemClosureRepo(),
		audit:            newMemAuditRepo(),
	}
	auditSvc := NewAuditService(f.audit, nil)
	f.svc = NewClosureService(f.closures, rf.svc, auditSvc, rf.loc)
	f.manager = Actor{ID: uuid.New(), FullName: "Awa Koné", Role: model.RoleManager, ParkID: &rf.parkID}
	f.staff = Actor{ID: uuid.New(), FullName: "Moussa Traoré", Role: model.RoleStaff, ParkID: &rf.parkID}
	f.admin = Actor{ID: uuid.New(), FullName: "Admin", Role: model.RoleSuperAdmin}
	return f
}

func (f *closureFixture) seedDay(day time.Time) {
	f.addActivity(5000, model.PaymentCash, model.ActivityActive, day)
	f.addActivity(3000, model.PaymentWave, model.ActivityActive, day)
	f.addActivity(2000, model.PaymentCash, model.ActivityCancelled, day)
	f.addExpense(1500, day)
}

func TestCreateClosureFreezesAggregates(t *testing.T) {
	f := newClosureFixture(t)
	day := time.Date(2026, 3, 10, 18, 0, 0, 0, f.loc)
	f.seedDay(day)

	closure, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{Date: "2026-03-10"})
	require.NoError(t, err)

	assert.Equal(t, model.ClosurePending, closure.Status)
	assert.Equal(t, int64(8000), closure.TotalRevenue)
	assert.Equal(t, int64(1500), closure.TotalExpenses)
	assert.Equal(t, int64(6500), closure.NetResult)
	assert.Equal(t, int64(5000), closure.CashTotal)
	assert.Equal(t, int64(3000), closure.WaveTotal)
	assert.Equal(t, 2, closure.ActivitiesCount)
	assert.Equal(t, 1, closure.ExpensesCount)
	assert.Equal(t, 1, closure.RowVersion)
	assert.Nil(t, closure.CashCounted)
}

func TestCreateClosureSnapshotSurvivesLaterWrites(t *testing.T) {
	f := newClosureFixture(t)
	day := time.Date(2026, 3, 10, 18, 0, 0, 0, f.loc)
	f.seedDay(day)

	closure, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{Date: "2026-03-10"})
	require.NoError(t, err)

	// Ledger moves after the freeze.
	f.addActivity(50000, model.PaymentCash, model.ActivityActive, day)

	got, err := f.svc.GetByDate(context.Background(), f.parkID, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, closure.TotalRevenue, got.TotalRevenue)

	diff, err := f.svc.RecomputeDiff(context.Background(), uuid.MustParse(closure.ID))
	require.NoError(t, err)
	assert.False(t, diff.InSync)
	assert.Equal(t, int64(8000), diff.Frozen.TotalRevenue)
	assert.Equal(t, int64(58000), diff.Live.TotalRevenue)
}

func TestCreateClosureDuplicateRejected(t *testing.T) {
	f := newClosureFixture(t)
	day := time.Date(2026, 3, 10, 18, 0, 0, 0, f.loc)
	f.seedDay(day)

	_, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{Date: "2026-03-10"})
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{Date: "2026-03-10"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateClosure)
}

func TestCreateClosureSameDateOtherParkAllowed(t *testing.T) {
	f := newClosureFixture(t)
	otherPark := uuid.New()
	admin := f.admin

	_, err := f.svc.Create(context.Background(), admin, f.parkID, dto.CreateClosureRequest{Date: "2026-03-10"})
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), admin, otherPark, dto.CreateClosureRequest{Date: "2026-03-10"})
	assert.NoError(t, err)
}

func TestCreateClosureStaffForbidden(t *testing.T) {
	f := newClosureFixture(t)
	_, err := f.svc.Create(context.Background(), f.staff, f.parkID, dto.CreateClosureRequest{Date: "2026-03-10"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCreateClosureWithCashCount(t *testing.T) {
	f := newClosureFixture(t)
	day := time.Date(2026, 3, 10, 18, 0, 0, 0, f.loc)
	f.seedDay(day)

	counted := int64(4500)
	closure, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{
		Date:        "2026-03-10",
		CashCounted: &counted,
	})
	require.NoError(t, err)

	require.NotNil(t, closure.CashCounted)
	require.NotNil(t, closure.CashExpected)
	require.NotNil(t, closure.CashDifference)
	assert.Equal(t, int64(4500), *closure.CashCounted)
	// Expected is the cash method only, never wave or orange money.
	assert.Equal(t, int64(5000), *closure.CashExpected)
	assert.Equal(t, int64(-500), *closure.CashDifference)
}

func TestClosureLifecycleForwardOnly(t *testing.T) {
	f := newClosureFixture(t)
	day := time.Date(2026, 3, 10, 18, 0, 0, 0, f.loc)
	f.seedDay(day)

	created, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{Date: "2026-03-10"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// pending → locked is not a legal jump.
	err = f.svc.Lock(context.Background(), f.admin, id, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)

	require.NoError(t, f.svc.Validate(context.Background(), f.manager, id, 1))

	got, err := f.svc.GetByDate(context.Background(), f.parkID, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, model.ClosureValidated, got.Status)
	assert.NotNil(t, got.ValidatedBy)
	assert.NotNil(t, got.ValidatedAt)
	assert.Equal(t, 2, got.RowVersion)

	// validate twice is a state error.
	err = f.svc.Validate(context.Background(), f.manager, id, 2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)

	require.NoError(t, f.svc.Lock(context.Background(), f.admin, id, 2))

	got, err = f.svc.GetByDate(context.Background(), f.parkID, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, model.ClosureLocked, got.Status)

	// Terminal: nothing moves a locked closure.
	err = f.svc.Validate(context.Background(), f.manager, id, 3)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
	err = f.svc.Lock(context.Background(), f.admin, id, 3)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
}

func TestLockRequiresSuperAdmin(t *testing.T) {
	f := newClosureFixture(t)
	created, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{Date: "2026-03-10"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)
	require.NoError(t, f.svc.Validate(context.Background(), f.manager, id, 1))

	err = f.svc.Lock(context.Background(), f.manager, id, 2)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestValidateStaleRowVersion(t *testing.T) {
	f := newClosureFixture(t)
	created, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{Date: "2026-03-10"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// A concurrent notes edit bumps the version first.
	require.NoError(t, f.svc.UpdateNotes(context.Background(), f.manager, id, "RAS", 1))

	err = f.svc.Validate(context.Background(), f.manager, id, 1)
	assert.ErrorIs(t, err, apperrors.ErrStaleWrite)

	// Retrying with the fresh version succeeds.
	assert.NoError(t, f.svc.Validate(context.Background(), f.manager, id, 2))
}

func TestUpdateNotesOnlyWhilePending(t *testing.T) {
	f := newClosureFixture(t)
	created, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{Date: "2026-03-10"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, f.svc.UpdateNotes(context.Background(), f.manager, id, "journée calme", 1))
	require.NoError(t, f.svc.Validate(context.Background(), f.manager, id, 2))

	err = f.svc.UpdateNotes(context.Background(), f.manager, id, "modif tardive", 3)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
}

func TestCreateClosureInvalidDate(t *testing.T) {
	f := newClosureFixture(t)
	_, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{Date: "10/03/2026"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCashCountAgainstExpectedCash(t *testing.T) {
	f := newClosureFixture(t)
	day := time.Date(2026, 3, 10, 18, 0, 0, 0, f.loc)
	f.seedDay(day)

	result, err := f.svc.CashCount(context.Background(), f.parkID, dto.CashCountRequest{
		Date: "2026-03-10",
		Denominations: []dto.DenominationLine{
			{Value: 2000, Count: 2},
			{Value: 500, Count: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5000), result.TotalCounted)
	assert.Equal(t, int64(5000), result.ExpectedAmount)
	assert.True(t, result.Reconciled)
}

func TestClosureEmitsAuditTrail(t *testing.T) {
	f := newClosureFixture(t)
	created, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{Date: "2026-03-10"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)
	require.NoError(t, f.svc.Validate(context.Background(), f.manager, id, 1))

	require.Len(t, f.audit.entries, 2)
	assert.Equal(t, "create", f.audit.entries[0].Action)
	assert.Equal(t, "closure", f.audit.entries[0].EntityType)
	assert.Contains(t, f.audit.entries[1].Description, "validée")
}

func TestListByParkNewestFirst(t *testing.T) {
	f := newClosureFixture(t)
	for _, date := range []string{"2026-03-08", "2026-03-10", "2026-03-09"} {
		_, err := f.svc.Create(context.Background(), f.manager, f.parkID, dto.CreateClosureRequest{Date: date})
		require.NoError(t, err)
	}

	got, err := f.svc.ListByPark(context.Background(), f.parkID, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-03-10", got[0].ClosureDate)
	assert.Equal(t, "2026-03-09", got[1].ClosureDate)
}
