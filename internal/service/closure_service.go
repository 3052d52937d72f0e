package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/repository"

	"github.com/google/uuid"
)

// Actor is the authenticated caller, carried into every engine operation so
// role checks happen centrally here instead of being scattered across
// UI-adjacent code.
type Actor struct {
	ID       uuid.UUID
	FullName string
	Role     string
	ParkID   *uuid.UUID
}

// CanManage reports whether the actor may run closure lifecycle operations.
func (a Actor) CanManage() bool {
	return a.Role == model.RoleManager || a.Role == model.RoleSuperAdmin
}

// ClosureService owns the one-per-(park,date) DailyClosure and its lifecycle:
// pending → validated → locked, strictly forward. It freezes the aggregator's
// output at creation and never recomputes it on validate/lock — the record is
// the auditable statement of what was agreed for that day, even if the
// underlying transactions are corrected later. RecomputeDiff is the separate
// diagnostic for detecting such drift.
type ClosureService interface {
	Create(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateClosureRequest) (*dto.ClosureResponse, error)
	Validate(ctx context.Context, actor Actor, closureID uuid.UUID, rowVersion int) error
	Lock(ctx context.Context, actor Actor, closureID uuid.UUID, rowVersion int) error
	UpdateNotes(ctx context.Context, actor Actor, closureID uuid.UUID, notes string, rowVersion int) error
	CashCount(ctx context.Context, parkID uuid.UUID, req dto.CashCountRequest) (*dto.CashCountResponse, error)
	RecomputeDiff(ctx context.Context, closureID uuid.UUID) (*dto.ClosureDiffResponse, error)
	GetByDate(ctx context.Context, parkID uuid.UUID, date string) (*dto.ClosureResponse, error)
	ListByPark(ctx context.Context, parkID uuid.UUID, limit int) ([]dto.ClosureResponse, error)
}

type closureService struct {
	repo      repository.ClosureRepository
	reporting ReportingService
	audit     AuditService
	loc       *time.Location
}

func NewClosureService(repo repository.ClosureRepository, reporting ReportingService, audit AuditService, loc *time.Location) ClosureService {
	if loc == nil {
		loc = time.Local
	}
	return &closureService{repo: repo, reporting: reporting, audit: audit, loc: loc}
}

// ── Create ────────────────────────────────────────────────────────────────────
// Freezes the day's aggregates into a pending closure. The read-then-snapshot
// gap has no transactional guarantee against concurrent ledger writes; the
// (park_id, closure_date) unique index is the backstop against two managers
// racing to create.

func (s *closureService) Create(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateClosureRequest) (*dto.ClosureResponse, error) {
	if !actor.CanManage() {
		return nil, apperrors.ErrForbidden
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date invalide", apperrors.ErrValidation)
	}

	if _, err := s.repo.FindByParkAndDate(ctx, parkID, req.Date); err == nil {
		return nil, apperrors.ErrDuplicateClosure
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	snapshot, err := s.liveSnapshot(ctx, parkID, date)
	if err != nil {
		return nil, err
	}

	closure := &model.DailyClosure{
		ParkID:           parkID,
		ClosureDate:      req.Date,
		Status:           model.ClosurePending,
		TotalRevenue:     snapshot.TotalRevenue,
		TotalExpenses:    snapshot.TotalExpenses,
		NetResult:        snapshot.NetResult,
		CashTotal:        snapshot.CashTotal,
		WaveTotal:        snapshot.WaveTotal,
		OrangeMoneyTotal: snapshot.OrangeMoneyTotal,
		ActivitiesCount:  snapshot.ActivitiesCount,
		ExpensesCount:    snapshot.ExpensesCount,
		CreatedBy:        actor.ID,
		Notes:            req.Notes,
		RowVersion:       1,
	}

	// Optional till count: a closure can be created without one.
	if req.CashCounted != nil {
		counted := *req.CashCounted
		expected := snapshot.CashTotal
		difference := counted - expected
		closure.CashCounted = &counted
		closure.CashExpected = &expected
		closure.CashDifference = &difference
	}

	if err := s.repo.Create(ctx, closure); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      parkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "create",
		EntityType:  "closure",
		EntityID:    closure.ID.String(),
		Description: fmt.Sprintf("Clôture créée pour le %s", req.Date),
		Metadata: map[string]any{
			"total_revenue": snapshot.TotalRevenue,
			"net_result":    snapshot.NetResult,
		},
	})

	return closureToResponse(closure), nil
}

// ── Validate ──────────────────────────────────────────────────────────────────
// Certifies the frozen snapshot; deliberately does NOT refresh it, so the
// validated number never silently changes.

func (s *closureService) Validate(ctx context.Context, actor Actor, closureID uuid.UUID, rowVersion int) error {
	if !actor.CanManage() {
		return apperrors.ErrForbidden
	}

	closure, err := s.repo.FindByID(ctx, closureID)
	if err != nil {
		return err
	}
	if closure.Status != model.ClosurePending {
		return apperrors.ErrInvalidStateTransition
	}

	now := time.Now()
	if err := s.repo.UpdateVersioned(ctx, closureID, rowVersion, map[string]interface{}{
		"status":       model.ClosureValidated,
		"validated_by": actor.ID,
		"validated_at": now,
	}); err != nil {
		return err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      closure.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "closure",
		EntityType:  "closure",
		EntityID:    closure.ID.String(),
		Description: fmt.Sprintf("Clôture validée pour le %s", closure.ClosureDate),
	})
	return nil
}

// ── Lock ──────────────────────────────────────────────────────────────────────
// Terminal. Super-admin only; after this no operation in this engine mutates
// the record, updateNotes included.

func (s *closureService) Lock(ctx context.Context, actor Actor, closureID uuid.UUID, rowVersion int) error {
	if actor.Role != model.RoleSuperAdmin {
		return apperrors.ErrForbidden
	}

	closure, err := s.repo.FindByID(ctx, closureID)
	if err != nil {
		return err
	}
	if closure.Status != model.ClosureValidated {
		return apperrors.ErrInvalidStateTransition
	}

	if err := s.repo.UpdateVersioned(ctx, closureID, rowVersion, map[string]interface{}{
		"status": model.ClosureLocked,
	}); err != nil {
		return err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      closure.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "closure",
		EntityType:  "closure",
		EntityID:    closure.ID.String(),
		Description: fmt.Sprintf("Clôture verrouillée pour le %s", closure.ClosureDate),
	})
	return nil
}

// ── UpdateNotes ───────────────────────────────────────────────────────────────
// Notes are editable only while pending: once a closure is validated its
// content, notes included, is part of the certified record.

func (s *closureService) UpdateNotes(ctx context.Context, actor Actor, closureID uuid.UUID, notes string, rowVersion int) error {
	if !actor.CanManage() {
		return apperrors.ErrForbidden
	}

	closure, err := s.repo.FindByID(ctx, closureID)
	if err != nil {
		return err
	}
	if closure.Status != model.ClosurePending {
		return apperrors.ErrInvalidStateTransition
	}

	return s.repo.UpdateVersioned(ctx, closureID, rowVersion, map[string]interface{}{
		"notes": notes,
	})
}

// ── CashCount ─────────────────────────────────────────────────────────────────
// Tallies a denomination count against the day's expected cash revenue. Pure
// computation plus one aggregate read; stores nothing — the confirmed total
// goes onto the closure via Create.

func (s *closureService) CashCount(ctx context.Context, parkID uuid.UUID, req dto.CashCountRequest) (*dto.CashCountResponse, error) {
	date := time.Now().In(s.loc)
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: date invalide", apperrors.ErrValidation)
		}
		date = parsed
	}

	byPayment, err := s.reporting.RevenueByPayment(ctx, parkID, date)
	if err != nil {
		return nil, err
	}

	result := ReconcileCash(TallyCount(req.Denominations), byPayment.Cash)
	return &result, nil
}

// ── RecomputeDiff ─────────────────────────────────────────────────────────────
// Diagnostic only: frozen snapshot vs what the live ledgers produce now.

func (s *closureService) RecomputeDiff(ctx context.Context, closureID uuid.UUID) (*dto.ClosureDiffResponse, error) {
	closure, err := s.repo.FindByID(ctx, closureID)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", closure.ClosureDate, s.loc)
	if err != nil {
		return nil, err
	}

	live, err := s.liveSnapshot(ctx, closure.ParkID, date)
	if err != nil {
		return nil, err
	}

	frozen := dto.ClosureSnapshot{
		TotalRevenue:     closure.TotalRevenue,
		TotalExpenses:    closure.TotalExpenses,
		NetResult:        closure.NetResult,
		CashTotal:        closure.CashTotal,
		WaveTotal:        closure.WaveTotal,
		OrangeMoneyTotal: closure.OrangeMoneyTotal,
		ActivitiesCount:  closure.ActivitiesCount,
		ExpensesCount:    closure.ExpensesCount,
	}

	return &dto.ClosureDiffResponse{
		ClosureID: closure.ID.String(),
		Frozen:    frozen,
		Live:      *live,
		InSync:    frozen == *live,
	}, nil
}

func (s *closureService) GetByDate(ctx context.Context, parkID uuid.UUID, date string) (*dto.ClosureResponse, error) {
	closure, err := s.repo.FindByParkAndDate(ctx, parkID, date)
	if err != nil {
		return nil, err
	}
	return closureToResponse(closure), nil
}

func (s *closureService) ListByPark(ctx context.Context, parkID uuid.UUID, limit int) ([]dto.ClosureResponse, error) {
	closures, err := s.repo.ListByPark(ctx, parkID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClosureResponse, 0, len(closures))
	for i := range closures {
		out = append(out, *closureToResponse(&closures[i]))
	}
	return out, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// liveSnapshot evaluates the aggregator over current ledger state.
func (s *closureService) liveSnapshot(ctx context.Context, parkID uuid.UUID, date time.Time) (*dto.ClosureSnapshot, error) {
	byPayment, err := s.reporting.RevenueByPayment(ctx, parkID, date)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.reporting.TotalExpenses(ctx, parkID, date)
	if err != nil {
		return nil, err
	}
	activitiesCount, expensesCount, err := s.reporting.Counts(ctx, parkID, date)
	if err != nil {
		return nil, err
	}

	totalRevenue := byPayment.Total()
	return &dto.ClosureSnapshot{
		TotalRevenue:     totalRevenue,
		TotalExpenses:    totalExpenses,
		NetResult:        totalRevenue - totalExpenses,
		CashTotal:        byPayment.Cash,
		WaveTotal:        byPayment.Wave,
		OrangeMoneyTotal: byPayment.OrangeMoney,
		ActivitiesCount:  activitiesCount,
		ExpensesCount:    expensesCount,
	}, nil
}

func closureToResponse(c *model.DailyClosure) *dto.ClosureResponse {
	resp := &dto.ClosureResponse{
		ID:               c.ID.String(),
		ParkID:           c.ParkID.String(),
		ClosureDate:      c.ClosureDate,
		Status:           c.Status,
		TotalRevenue:     c.TotalRevenue,
		TotalExpenses:    c.TotalExpenses,
		NetResult:        c.NetResult,
		CashTotal:        c.CashTotal,
		WaveTotal:        c.WaveTotal,
		OrangeMoneyTotal: c.OrangeMoneyTotal,
		ActivitiesCount:  c.ActivitiesCount,
		ExpensesCount:    c.ExpensesCount,
		CashCounted:      c.CashCounted,
		CashExpected:     c.CashExpected,
		CashDifference:   c.CashDifference,
		CreatedBy:        c.CreatedBy.String(),
		Notes:            c.Notes,
		RowVersion:       c.RowVersion,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
	}
	if c.ValidatedBy != nil {
		v := c.ValidatedBy.String()
		resp.ValidatedBy = &v
	}
	if c.ValidatedAt != nil {
		v := c.ValidatedAt.Format(time.RFC3339)
		resp.ValidatedAt = &v
	}
	return resp
}
