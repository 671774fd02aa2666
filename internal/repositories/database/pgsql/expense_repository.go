package pgsql

import (
	"context"
	"errors"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	"github.com/kvillacis/condo_management_app/internal/models"
	"github.com/kvillacis/condo_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

var FULL_EXPENSE_SELECT_QUERY = `
SELECT
	e.expense_id, e.condominium_id, e.period, e.total_amount, e.description,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
FROM monthly_expenses e
`

func (r *PgxExpenseRepository) getExpenses(ctx context.Context, filterQuery string, args ...any) ([]domain.MonthlyExpense, error) {
	query := FULL_EXPENSE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to query monthly expenses", err)
	}
	defer rows.Close()
	modelExpenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.MonthlyExpense])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.MonthlyExpense{}, nil
		}
		return nil, apperrors.NewUnavailableError("failed to collect monthly expense rows", err)
	}
	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.MonthlyExpense) error {
	modelExpense := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO monthly_expenses (
			expense_id, condominium_id, period, total_amount, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.CondominiumID,
		modelExpense.Period,
		modelExpense.TotalAmount,
		modelExpense.Description,
		modelExpense.CreatedAt,
		modelExpense.CreatedBy,
		modelExpense.LastUpdatedAt,
		modelExpense.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// The UNIQUE (condominium_id, period) constraint is the
			// authoritative duplicate-period check.
			if pgErr.Code == "23505" {
				return apperrors.ErrDuplicatePeriod
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("condominium does not exist")
			}
		}
		return apperrors.NewUnavailableError("failed to save monthly expense "+expense.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.MonthlyExpense, error) {
	expenses, err := r.getExpenses(ctx, `WHERE e.expense_id = $1`, expenseID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &expenses[0], nil
}

func (r *PgxExpenseRepository) FindExpenseByPeriod(ctx context.Context, condominiumID string, period string) (*domain.MonthlyExpense, error) {
	expenses, err := r.getExpenses(ctx, `WHERE e.condominium_id = $1 AND e.period = $2`, condominiumID, period)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &expenses[0], nil
}

func (r *PgxExpenseRepository) FindLatestExpense(ctx context.Context, condominiumID string) (*domain.MonthlyExpense, error) {
	expenses, err := r.getExpenses(ctx, `WHERE e.condominium_id = $1 ORDER BY e.period DESC LIMIT 1`, condominiumID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &expenses[0], nil
}

func (r *PgxExpenseRepository) ListExpensesByCondominium(ctx context.Context, condominiumID string) ([]domain.MonthlyExpense, error) {
	return r.getExpenses(ctx, `WHERE e.condominium_id = $1 ORDER BY e.period DESC`, condominiumID)
}
