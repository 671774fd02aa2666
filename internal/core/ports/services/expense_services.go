package services

import (
	"context"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/dto"
)

// ExpenseSvcFacade records monthly expenses and apportions them across
// departments by share.
type ExpenseSvcFacade interface {
	// RecordMonthlyExpense persists a condominium's expense for one period.
	// A duplicate period fails with apperrors.ErrDuplicatePeriod.
	RecordMonthlyExpense(ctx context.Context, req dto.RecordExpenseRequest, requestingUserID string) (*domain.MonthlyExpense, error)

	// GetCurrentExpense retrieves the latest recorded expense.
	GetCurrentExpense(ctx context.Context, condominiumID string) (*domain.MonthlyExpense, error)

	// ListExpenses retrieves a condominium's expenses, newest period first.
	ListExpenses(ctx context.Context, condominiumID string, requestingUserID string) ([]domain.MonthlyExpense, error)

	// ApportionCurrentExpense computes each department's owed amount for the
	// latest expense along with the display per-unit value. Owed amounts
	// depend only on each department's own share and the expense total.
	ApportionCurrentExpense(ctx context.Context, condominiumID string, requestingUserID string) (*dto.ApportionmentResponse, error)
}
