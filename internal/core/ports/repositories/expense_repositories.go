package repositories

import (
	"context"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// ExpenseReader defines read operations for monthly expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.MonthlyExpense, error)

	// FindExpenseByPeriod retrieves a condominium's expense for one period.
	FindExpenseByPeriod(ctx context.Context, condominiumID string, period string) (*domain.MonthlyExpense, error)

	// FindLatestExpense retrieves the most recent expense for a condominium.
	FindLatestExpense(ctx context.Context, condominiumID string) (*domain.MonthlyExpense, error)

	// ListExpensesByCondominium retrieves expenses ordered by period, newest first.
	ListExpensesByCondominium(ctx context.Context, condominiumID string) ([]domain.MonthlyExpense, error)
}

// ExpenseWriter defines write operations for monthly expense data
type ExpenseWriter interface {
	// SaveExpense persists a new monthly expense. A second expense for the
	// same condominium and period is a conflict (apperrors.ErrDuplicatePeriod).
	SaveExpense(ctx context.Context, expense domain.MonthlyExpense) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
