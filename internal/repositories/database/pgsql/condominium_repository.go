package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	"github.com/kvillacis/condo_management_app/internal/models"
	"github.com/kvillacis/condo_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCondominiumRepository struct {
	BaseRepository
}

func newPgxCondominiumRepository(pool *pgxpool.Pool) portsrepo.CondominiumRepositoryFacade {
	return &PgxCondominiumRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCondominiumRepository implements portsrepo.CondominiumRepositoryFacade
var _ portsrepo.CondominiumRepositoryFacade = (*PgxCondominiumRepository)(nil)

var FULL_CONDOMINIUM_SELECT_QUERY = `
SELECT
	c.condominium_id, c.name, c.address, c.admin_id, c.is_active,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM condominiums c
`

func (r *PgxCondominiumRepository) getCondominiums(ctx context.Context, filterQuery string, args ...any) ([]domain.Condominium, error) {
	query := FULL_CONDOMINIUM_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to query condominiums", err)
	}
	defer rows.Close()
	modelCondos, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Condominium])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Condominium{}, nil
		}
		return nil, apperrors.NewUnavailableError("failed to collect condominium rows", err)
	}
	return mapping.ToDomainCondominiumSlice(modelCondos), nil
}

func (r *PgxCondominiumRepository) SaveCondominium(ctx context.Context, condominium domain.Condominium) error {
	modelCondo := mapping.ToModelCondominium(condominium)
	query := `
		INSERT INTO condominiums (
			condominium_id, name, address, admin_id, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCondo.CondominiumID,
		modelCondo.Name,
		modelCondo.Address,
		modelCondo.AdminID,
		modelCondo.IsActive,
		modelCondo.CreatedAt,
		modelCondo.CreatedBy,
		modelCondo.LastUpdatedAt,
		modelCondo.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("condominium " + condominium.CondominiumID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("admin user does not exist")
			}
		}
		return apperrors.NewUnavailableError("failed to save condominium "+condominium.CondominiumID, err)
	}
	return nil
}

func (r *PgxCondominiumRepository) FindCondominiumByID(ctx context.Context, condominiumID string) (*domain.Condominium, error) {
	condos, err := r.getCondominiums(ctx, `WHERE c.condominium_id = $1`, condominiumID)
	if err != nil {
		return nil, err
	}
	if len(condos) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &condos[0], nil
}

func (r *PgxCondominiumRepository) ListCondominiums(ctx context.Context, includeInactive bool) ([]domain.Condominium, error) {
	if includeInactive {
		return r.getCondominiums(ctx, `ORDER BY c.name`)
	}
	return r.getCondominiums(ctx, `WHERE c.is_active = true ORDER BY c.name`)
}

func (r *PgxCondominiumRepository) SetCondominiumActive(ctx context.Context, condominiumID string, active bool, updatedBy string, now time.Time) error {
	query := `
		UPDATE condominiums
		SET is_active = $1, last_updated_at = $2, last_updated_by = $3
		WHERE condominium_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, active, now, updatedBy, condominiumID)
	if err != nil {
		return apperrors.NewUnavailableError("failed to update condominium status "+condominiumID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
