package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/middleware"
	"github.com/kvillacis/condo_management_app/internal/utils/apportion"
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// expenseService records monthly expenses and computes per-department
// obligations from the share ledger.
type expenseService struct {
	expenseRepo    portsrepo.ExpenseRepositoryFacade
	departmentRepo portsrepo.DepartmentReader
	condominiumSvc portssvc.CondominiumAuthorizerSvc
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, departmentRepo portsrepo.DepartmentReader, condominiumSvc portssvc.CondominiumAuthorizerSvc) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:    expenseRepo,
		departmentRepo: departmentRepo,
		condominiumSvc: condominiumSvc,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// RecordMonthlyExpense persists a condominium's expense for one period.
// Expenses are immutable once created; corrections are new records.
func (s *expenseService) RecordMonthlyExpense(ctx context.Context, req dto.RecordExpenseRequest, requestingUserID string) (*domain.MonthlyExpense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, req.CondominiumID); err != nil {
		return nil, err
	}

	if !periodPattern.MatchString(req.Period) {
		return nil, fmt.Errorf("%w: period must be formatted as YYYY-MM", apperrors.ErrValidation)
	}
	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	expense := domain.MonthlyExpense{
		ExpenseID:     uuid.NewString(),
		CondominiumID: req.CondominiumID,
		Period:        req.Period,
		TotalAmount:   req.TotalAmount,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		if errors.Is(err, apperrors.ErrDuplicatePeriod) {
			logger.Warn("Duplicate expense period rejected", slog.String("condominium_id", req.CondominiumID), slog.String("period", req.Period))
			return nil, err
		}
		logger.Error("Failed to save expense", slog.String("error", err.Error()), slog.String("condominium_id", req.CondominiumID))
		return nil, err
	}

	logger.Info("Monthly expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("condominium_id", req.CondominiumID),
		slog.String("period", req.Period),
	)
	return &expense, nil
}

func (s *expenseService) GetCurrentExpense(ctx context.Context, condominiumID string) (*domain.MonthlyExpense, error) {
	expense, err := s.expenseRepo.FindLatestExpense(ctx, condominiumID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find latest expense", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, condominiumID string, requestingUserID string) ([]domain.MonthlyExpense, error) {
	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, condominiumID); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListExpensesByCondominium(ctx, condominiumID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list expenses", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.MonthlyExpense{}, nil
	}
	return expenses, nil
}

// ApportionCurrentExpense assembles the admin view of the latest expense:
// each department's owed amount (share times total, nothing else) plus the
// display-only per-unit value.
func (s *expenseService) ApportionCurrentExpense(ctx context.Context, condominiumID string, requestingUserID string) (*dto.ApportionmentResponse, error) {
	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, condominiumID); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindLatestExpense(ctx, condominiumID)
	if err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.ListDepartmentsByCondominium(ctx, condominiumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	rawTotal := decimal.Zero
	for _, d := range departments {
		rawTotal = rawTotal.Add(d.Share)
	}

	obligations := make([]dto.DepartmentObligation, len(departments))
	for i, d := range departments {
		obligations[i] = dto.ToDepartmentObligation(&d, expense.TotalAmount)
	}

	return &dto.ApportionmentResponse{
		Expense:        dto.ToExpenseResponse(expense),
		ShareTotal:     apportion.RoundTotalForDisplay(rawTotal),
		PerUnitValue:   apportion.RoundCurrency(apportion.PerUnitValue(expense.TotalAmount, rawTotal)),
		UnderAllocated: apportion.IsUnderAllocated(rawTotal),
		Obligations:    obligations,
	}, nil
}
