package service

import (
	"context"
	"sort"
	"time"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/repository"

	"github.com/google/uuid"
)

// ReportingService derives financial summaries over a ledger window. All
// operations are read-only and idempotent: two calls with no ledger mutation
// in between yield identical results. A day with zero transactions returns
// all-zero aggregates, never an error — an empty day is a valid business
// state.
type ReportingService interface {
	RevenueByPayment(ctx context.Context, parkID uuid.UUID, date time.Time) (dto.RevenueByPayment, error)
	RevenueByCategory(ctx context.Context, parkID uuid.UUID, date time.Time) ([]dto.CategoryRevenue, error)
	TotalExpenses(ctx context.Context, parkID uuid.UUID, date time.Time) (int64, error)
	// Counts returns (activeActivities, expenses) for the day.
	Counts(ctx context.Context, parkID uuid.UUID, date time.Time) (int, int, error)
	DashboardStats(ctx context.Context, parkID uuid.UUID, date time.Time) (*dto.DashboardStats, error)
	// DayWindow exposes the calendar-day boundaries used by every aggregate.
	DayWindow(date time.Time) (time.Time, time.Time)
}

type reportingService struct {
	activities repository.ActivityRepository
	expenses   repository.ExpenseRepository
	categories repository.CategoryRepository
	stock      repository.StockRepository
	loc        *time.Location
}

func NewReportingService(
	activities repository.ActivityRepository,
	expenses repository.ExpenseRepository,
	categories repository.CategoryRepository,
	stock repository.StockRepository,
	loc *time.Location,
) ReportingService {
	if loc == nil {
		loc = time.Local
	}
	return &reportingService{
		activities: activities,
		expenses:   expenses,
		categories: categories,
		stock:      stock,
		loc:        loc,
	}
}

// DayWindow returns [00:00:00, 23:59:59.999999999] of date's calendar day in
// the service's location.
func (s *reportingService) DayWindow(date time.Time) (time.Time, time.Time) {
	d := date.In(s.loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// activeActivities lists the day's non-cancelled activities. Cancelled rows
// retain their amount for audit but are excluded from every aggregate.
func (s *reportingService) activeActivities(ctx context.Context, parkID uuid.UUID, date time.Time) ([]model.Activity, error) {
	from, to := s.DayWindow(date)
	return s.activities.List(ctx, repository.ActivityFilter{
		ParkID: parkID,
		From:   from,
		To:     to,
		Status: model.ActivityActive,
	})
}

func (s *reportingService) RevenueByPayment(ctx context.Context, parkID uuid.UUID, date time.Time) (dto.RevenueByPayment, error) {
	activities, err := s.activeActivities(ctx, parkID, date)
	if err != nil {
		return dto.RevenueByPayment{}, err
	}
	var out dto.RevenueByPayment
	for _, a := range activities {
		switch a.PaymentMethod {
		case model.PaymentCash:
			out.Cash += a.Amount
		case model.PaymentWave:
			out.Wave += a.Amount
		case model.PaymentOrangeMoney:
			out.OrangeMoney += a.Amount
		}
	}
	return out, nil
}

func (s *reportingService) RevenueByCategory(ctx context.Context, parkID uuid.UUID, date time.Time) ([]dto.CategoryRevenue, error) {
	activities, err := s.activeActivities(ctx, parkID, date)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.ListByPark(ctx, parkID, true)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	totals := make(map[uuid.UUID]*dto.CategoryRevenue)
	order := make([]uuid.UUID, 0)
	for _, a := range activities {
		cat, ok := byID[a.CategoryID]
		if !ok {
			// Category no longer resolves — silently excluded.
			continue
		}
		row, ok := totals[a.CategoryID]
		if !ok {
			row = &dto.CategoryRevenue{
				CategoryID: cat.ID.String(),
				Name:       cat.Name,
				Color:      cat.Color,
			}
			totals[a.CategoryID] = row
			order = append(order, a.CategoryID)
		}
		row.Amount += a.Amount
	}

	out := make([]dto.CategoryRevenue, 0, len(order))
	for _, id := range order {
		out = append(out, *totals[id])
	}
	// Descending by amount; equal amounts keep grouping order (not a
	// guarantee callers may depend on).
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out, nil
}

func (s *reportingService) TotalExpenses(ctx context.Context, parkID uuid.UUID, date time.Time) (int64, error) {
	from, to := s.DayWindow(date)
	expenses, err := s.expenses.List(ctx, parkID, from, to)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}
	return total, nil
}

func (s *reportingService) Counts(ctx context.Context, parkID uuid.UUID, date time.Time) (int, int, error) {
	activities, err := s.activeActivities(ctx, parkID, date)
	if err != nil {
		return 0, 0, err
	}
	from, to := s.DayWindow(date)
	expenses, err := s.expenses.List(ctx, parkID, from, to)
	if err != nil {
		return 0, 0, err
	}
	return len(activities), len(expenses), nil
}

func (s *reportingService) DashboardStats(ctx context.Context, parkID uuid.UUID, date time.Time) (*dto.DashboardStats, error) {
	byPayment, err := s.RevenueByPayment(ctx, parkID, date)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.RevenueByCategory(ctx, parkID, date)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.TotalExpenses(ctx, parkID, date)
	if err != nil {
		return nil, err
	}
	activityCount, expenseCount, err := s.Counts(ctx, parkID, date)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.stock.ListLowStock(ctx, parkID)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.StockItemResponse, 0, len(lowStock))
	for _, item := range lowStock {
		alerts = append(alerts, stockItemToResponse(&item))
	}

	totalRevenue := byPayment.Total()
	return &dto.DashboardStats{
		TotalRevenue:      totalRevenue,
		TotalExpenses:     totalExpenses,
		NetResult:         totalRevenue - totalExpenses,
		RevenueByPayment:  byPayment,
		RevenueByCategory: byCategory,
		ActivityCount:     activityCount,
		ExpenseCount:      expenseCount,
		LowStockAlerts:    alerts,
	}, nil
}
