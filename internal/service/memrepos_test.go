package service

import (
	"context"
	"sort"
	"time"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They tolerate the nil *gorm.DB the services
// hand them when no real database is wired, so the business rules can be
// exercised without postgres.

// ── Activities ────────────────────────────────────────────────────────────────

type memActivityRepo struct {
	activities map[uuid.UUID]*model.Activity
}

func newMemActivityRepo() *memActivityRepo {
	return &memActivityRepo{activities: make(map[uuid.UUID]*model.Activity)}
}

func (r *memActivityRepo) DB() *gorm.DB { return nil }

func (r *memActivityRepo) Create(_ context.Context, _ *gorm.DB, a *model.Activity) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	r.activities[a.ID] = a
	return nil
}

func (r *memActivityRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return a, nil
}

func (r *memActivityRepo) List(_ context.Context, filter repository.ActivityFilter) ([]model.Activity, error) {
	var out []model.Activity
	for _, a := range r.activities {
		if a.ParkID != filter.ParkID {
			continue
		}
		if a.ActivityDate.Before(filter.From) || a.ActivityDate.After(filter.To) {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActivityDate.Before(out[j].ActivityDate) })
	return out, nil
}

func (r *memActivityRepo) Cancel(_ context.Context, id uuid.UUID, reason string, by uuid.UUID, at time.Time) error {
	a, ok := r.activities[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	a.Status = model.ActivityCancelled
	a.CancelledReason = &reason
	a.CancelledBy = &by
	a.CancelledAt = &at
	return nil
}

// ── Expenses ──────────────────────────────────────────────────────────────────

type memExpenseRepo struct {
	expenses []*model.Expense
}

func newMemExpenseRepo() *memExpenseRepo { return &memExpenseRepo{} }

func (r *memExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	r.expenses = append(r.expenses, e)
	return nil
}

func (r *memExpenseRepo) List(_ context.Context, parkID uuid.UUID, from, to time.Time) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range r.expenses {
		if e.ParkID != parkID {
			continue
		}
		if e.ExpenseDate.Before(from) || e.ExpenseDate.After(to) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

// ── Categories ────────────────────────────────────────────────────────────────

type memCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *memCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	return nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return c, nil
}

func (r *memCategoryRepo) FindByParkAndName(_ context.Context, parkID uuid.UUID, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.ParkID == parkID && c.Name == name {
			return c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memCategoryRepo) ListByPark(_ context.Context, parkID uuid.UUID, includeInactive bool) ([]model.Category, error) {
	var out []model.Category
	for _, c := range r.categories {
		if c.ParkID != parkID {
			continue
		}
		if !includeInactive && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *memCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *memCategoryRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	c, ok := r.categories[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	c.IsActive = false
	return nil
}

// ── Stock ─────────────────────────────────────────────────────────────────────

type memStockRepo struct {
	items     map[uuid.UUID]*model.StockItem
	movements []model.StockMovement
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{items: make(map[uuid.UUID]*model.StockItem)}
}

func (r *memStockRepo) DB() *gorm.DB { return nil }

func (r *memStockRepo) CreateItem(_ context.Context, item *model.StockItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *memStockRepo) FindItemByID(_ context.Context, id uuid.UUID) (*model.StockItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return item, nil
}

func (r *memStockRepo) ListItemsByPark(_ context.Context, parkID uuid.UUID) ([]model.StockItem, error) {
	var out []model.StockItem
	for _, item := range r.items {
		if item.ParkID == parkID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *memStockRepo) ListLowStock(_ context.Context, parkID uuid.UUID) ([]model.StockItem, error) {
	var out []model.StockItem
	for _, item := range r.items {
		if item.ParkID == parkID && item.IsActive && item.Quantity <= item.MinThreshold {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *memStockRepo) UpdateItem(_ context.Context, item *model.StockItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *memStockRepo) SetQuantityTx(_ *gorm.DB, id uuid.UUID, quantity int) error {
	item, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	item.Quantity = quantity
	return nil
}

func (r *memStockRepo) DeactivateItem(_ context.Context, id uuid.UUID) error {
	item, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	item.IsActive = false
	return nil
}

func (r *memStockRepo) CreateMovementTx(_ *gorm.DB, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movements = append(r.movements, *m)
	return nil
}

func (r *memStockRepo) ListMovements(_ context.Context, stockItemID uuid.UUID, limit int) ([]model.StockMovement, error) {
	var out []model.StockMovement
	for i := len(r.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.movements[i].StockItemID == stockItemID {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}

// ── Closures ──────────────────────────────────────────────────────────────────

type memClosureRepo struct {
	closures map[uuid.UUID]*model.DailyClosure
}

func newMemClosureRepo() *memClosureRepo {
	return &memClosureRepo{closures: make(map[uuid.UUID]*model.DailyClosure)}
}

func (r *memClosureRepo) Create(_ context.Context, c *model.DailyClosure) error {
	for _, existing := range r.closures {
		if existing.ParkID == c.ParkID && existing.ClosureDate == c.ClosureDate {
			return apperrors.ErrDuplicateClosure
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.closures[c.ID] = c
	return nil
}

func (r *memClosureRepo) FindByID(_ context.Context, id uuid.UUID) (*model.DailyClosure, error) {
	c, ok := r.closures[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memClosureRepo) FindByParkAndDate(_ context.Context, parkID uuid.UUID, date string) (*model.DailyClosure, error) {
	for _, c := range r.closures {
		if c.ParkID == parkID && c.ClosureDate == date {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memClosureRepo) ListByPark(_ context.Context, parkID uuid.UUID, limit int) ([]model.DailyClosure, error) {
	var out []model.DailyClosure
	for _, c := range r.closures {
		if c.ParkID == parkID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClosureDate > out[j].ClosureDate })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memClosureRepo) UpdateVersioned(_ context.Context, id uuid.UUID, expectedVersion int, updates map[string]interface{}) error {
	c, ok := r.closures[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if c.RowVersion != expectedVersion {
		return apperrors.ErrStaleWrite
	}
	for col, val := range updates {
		switch col {
		case "status":
			c.Status = val.(string)
		case "notes":
			notes := val.(string)
			c.Notes = &notes
		case "validated_by":
			by := val.(uuid.UUID)
			c.ValidatedBy = &by
		case "validated_at":
			at := val.(time.Time)
			c.ValidatedAt = &at
		}
	}
	c.RowVersion = expectedVersion + 1
	return nil
}

// ── Audit ─────────────────────────────────────────────────────────────────────

type memAuditRepo struct {
	entries []model.AuditLogEntry
}

func newMemAuditRepo() *memAuditRepo { return &memAuditRepo{} }

func (r *memAuditRepo) Create(_ context.Context, e *model.AuditLogEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *memAuditRepo) ListRecent(_ context.Context, parkID uuid.UUID, limit int) ([]model.AuditLogEntry, error) {
	var out []model.AuditLogEntry
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if r.entries[i].ParkID == parkID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *memAuditRepo) ListByDate(_ context.Context, parkID uuid.UUID, from, to time.Time) ([]model.AuditLogEntry, error) {
	var out []model.AuditLogEntry
	for _, e := range r.entries {
		if e.ParkID == parkID && !e.CreatedAt.Before(from) && !e.CreatedAt.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memAuditRepo) PruneToCap(_ context.Context, parkID uuid.UUID, cap int) error {
	var kept []model.AuditLogEntry
	var parkEntries []model.AuditLogEntry
	for _, e := range r.entries {
		if e.ParkID == parkID {
			parkEntries = append(parkEntries, e)
		} else {
			kept = append(kept, e)
		}
	}
	if len(parkEntries) > cap {
		parkEntries = parkEntries[len(parkEntries)-cap:]
	}
	r.entries = append(kept, parkEntries...)
	return nil
}

// ── Planning ──────────────────────────────────────────────────────────────────

type memPlanningRepo struct {
	members map[uuid.UUID]*model.TeamMember
	shifts  map[uuid.UUID]*model.Shift
}

func newMemPlanningRepo() *memPlanningRepo {
	return &memPlanningRepo{
		members: make(map[uuid.UUID]*model.TeamMember),
		shifts:  make(map[uuid.UUID]*model.Shift),
	}
}

func (r *memPlanningRepo) CreateMember(_ context.Context, m *model.TeamMember) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.members[m.ID] = m
	return nil
}

func (r *memPlanningRepo) FindMemberByID(_ context.Context, id uuid.UUID) (*model.TeamMember, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return m, nil
}

func (r *memPlanningRepo) ListMembersByPark(_ context.Context, parkID uuid.UUID, includeInactive bool) ([]model.TeamMember, error) {
	var out []model.TeamMember
	for _, m := range r.members {
		if m.ParkID != parkID {
			continue
		}
		if !includeInactive && !m.IsActive {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memPlanningRepo) UpdateMember(_ context.Context, m *model.TeamMember) error {
	r.members[m.ID] = m
	return nil
}

func (r *memPlanningRepo) CreateShift(_ context.Context, s *model.Shift) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	r.shifts[s.ID] = s
	return nil
}

func (r *memPlanningRepo) FindShiftByID(_ context.Context, id uuid.UUID) (*model.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if s.Member == nil {
		s.Member = r.members[s.MemberID]
	}
	return s, nil
}

func (r *memPlanningRepo) ListShifts(_ context.Context, parkID uuid.UUID, from, to time.Time) ([]model.Shift, error) {
	var out []model.Shift
	for _, s := range r.shifts {
		if s.ParkID != parkID {
			continue
		}
		if s.ShiftDate.Before(from) || s.ShiftDate.After(to) {
			continue
		}
		cp := *s
		cp.Member = r.members[s.MemberID]
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ShiftDate.Equal(out[j].ShiftDate) {
			return out[i].ShiftDate.Before(out[j].ShiftDate)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (r *memPlanningRepo) ListShiftsByMember(_ context.Context, memberID uuid.UUID) ([]model.Shift, error) {
	var out []model.Shift
	for _, s := range r.shifts {
		if s.MemberID != memberID {
			continue
		}
		cp := *s
		cp.Member = r.members[s.MemberID]
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ShiftDate.Before(out[j].ShiftDate) })
	return out, nil
}

func (r *memPlanningRepo) UpdateShift(_ context.Context, s *model.Shift) error {
	r.shifts[s.ID] = s
	return nil
}

func (r *memPlanningRepo) DeleteShift(_ context.Context, id uuid.UUID) error {
	delete(r.shifts, id)
	return nil
}

// ── Shortcuts ─────────────────────────────────────────────────────────────────

type memShortcutRepo struct {
	shortcuts map[uuid.UUID]*model.QuickShortcut
}

func newMemShortcutRepo() *memShortcutRepo {
	return &memShortcutRepo{shortcuts: make(map[uuid.UUID]*model.QuickShortcut)}
}

func (r *memShortcutRepo) Create(_ context.Context, s *model.QuickShortcut) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	r.shortcuts[s.ID] = s
	return nil
}

func (r *memShortcutRepo) FindByID(_ context.Context, id uuid.UUID) (*model.QuickShortcut, error) {
	s, ok := r.shortcuts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return s, nil
}

func (r *memShortcutRepo) ListByPark(_ context.Context, parkID uuid.UUID, includeInactive bool) ([]model.QuickShortcut, error) {
	var out []model.QuickShortcut
	for _, s := range r.shortcuts {
		if s.ParkID != parkID {
			continue
		}
		if !includeInactive && !s.IsActive {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memShortcutRepo) MaxSortOrder(_ context.Context, parkID uuid.UUID) (int, error) {
	max := 0
	for _, s := range r.shortcuts {
		if s.ParkID == parkID && s.SortOrder > max {
			max = s.SortOrder
		}
	}
	return max, nil
}

func (r *memShortcutRepo) Update(_ context.Context, s *model.QuickShortcut) error {
	r.shortcuts[s.ID] = s
	return nil
}

func (r *memShortcutRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.shortcuts, id)
	return nil
}

func (r *memShortcutRepo) UpdateSortOrder(_ context.Context, id uuid.UUID, sortOrder int) error {
	s, ok := r.shortcuts[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	s.SortOrder = sortOrder
	return nil
}
