package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	"github.com/kvillacis/condo_management_app/internal/models"
	"github.com/kvillacis/condo_management_app/internal/utils/apportion"
	"github.com/kvillacis/condo_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxDepartmentRepository struct {
	BaseRepository
}

func newPgxDepartmentRepository(pool *pgxpool.Pool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxDepartmentRepository implements portsrepo.DepartmentRepositoryFacade
var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

var FULL_DEPARTMENT_SELECT_QUERY = `
SELECT
	d.department_id, d.condominium_id, d.name, d.code, d.group_name, d.share,
	d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
FROM departments d
`

func (r *PgxDepartmentRepository) getDepartments(ctx context.Context, filterQuery string, args ...any) ([]domain.Department, error) {
	query := FULL_DEPARTMENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to query departments", err)
	}
	defer rows.Close()
	modelDepts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Department])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Department{}, nil
		}
		return nil, apperrors.NewUnavailableError("failed to collect department rows", err)
	}
	return mapping.ToDomainDepartmentSlice(modelDepts), nil
}

func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	modelDept := mapping.ToModelDepartment(department)
	query := `
		INSERT INTO departments (
			department_id, condominium_id, name, code, group_name, share,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelDept.DepartmentID,
		modelDept.CondominiumID,
		modelDept.Name,
		modelDept.Code,
		modelDept.GroupName,
		modelDept.Share,
		modelDept.CreatedAt,
		modelDept.CreatedBy,
		modelDept.LastUpdatedAt,
		modelDept.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("department code " + department.Code + " already exists in condominium")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("condominium does not exist")
			}
		}
		return apperrors.NewUnavailableError("failed to save department "+department.DepartmentID, err)
	}
	return nil
}

func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	depts, err := r.getDepartments(ctx, `WHERE d.department_id = $1`, departmentID)
	if err != nil {
		return nil, err
	}
	if len(depts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &depts[0], nil
}

func (r *PgxDepartmentRepository) ListDepartmentsByCondominium(ctx context.Context, condominiumID string) ([]domain.Department, error) {
	return r.getDepartments(ctx, `WHERE d.condominium_id = $1 ORDER BY d.code`, condominiumID)
}

func (r *PgxDepartmentRepository) SumShares(ctx context.Context, condominiumID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(share), 0)
		FROM departments
		WHERE condominium_id = $1;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, condominiumID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewUnavailableError("failed to sum shares for condominium "+condominiumID, err)
	}
	return total, nil
}

// AssignShares sets the share of every targeted department within one
// transaction. The condominium's department rows are locked first, the
// would-be total is recomputed against the locked snapshot, and only then are
// the updates applied. Two concurrent assignments for the same condominium
// therefore serialize on the row locks and the loser re-validates against the
// winner's committed shares.
func (r *PgxDepartmentRepository) AssignShares(ctx context.Context, condominiumID string, departmentIDs []string, newShare decimal.Decimal, updatedBy string, now time.Time) error {
	if len(departmentIDs) == 0 {
		return apperrors.ErrValidation
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once the transaction is committed

	lockQuery := `
		SELECT department_id, share
		FROM departments
		WHERE condominium_id = $1
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, lockQuery, condominiumID)
	if err != nil {
		return apperrors.NewUnavailableError("failed to lock departments for condominium "+condominiumID, err)
	}

	currentShares := make(map[string]decimal.Decimal)
	for rows.Next() {
		var departmentID string
		var share decimal.Decimal
		if err := rows.Scan(&departmentID, &share); err != nil {
			rows.Close()
			return apperrors.NewUnavailableError("failed to scan locked department row", err)
		}
		currentShares[departmentID] = share
	}
	rows.Close()
	if rows.Err() != nil {
		return apperrors.NewUnavailableError("error iterating locked department rows", rows.Err())
	}

	// Every targeted department must belong to this condominium.
	for _, id := range departmentIDs {
		if _, ok := currentShares[id]; !ok {
			return apperrors.ErrNotFound
		}
	}

	// Authoritative invariant check against the locked snapshot.
	wouldBe := apportion.WouldBeTotal(currentShares, departmentIDs, newShare)
	if apportion.ExceedsLimit(wouldBe) {
		return apperrors.NewShareOverflowError(wouldBe)
	}

	updateQuery := `
		UPDATE departments
		SET share = $1, last_updated_at = $2, last_updated_by = $3
		WHERE department_id = ANY($4);
	`
	if _, err := tx.Exec(ctx, updateQuery, newShare, now, updatedBy, departmentIDs); err != nil {
		return apperrors.NewUnavailableError("failed to assign shares for condominium "+condominiumID, err)
	}

	return r.Commit(ctx, tx)
}
