package repository

import (
	"context"
	"time"

	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	List(ctx context.Context, parkID uuid.UUID, from, to time.Time) ([]model.Expense, error)
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) List(ctx context.Context, parkID uuid.UUID, from, to time.Time) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("park_id = ?", parkID).
		Where("expense_date >= ? AND expense_date <= ?", from, to).
		Order("expense_date DESC").
		Find(&expenses).Error
	return expenses, err
}
