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

type PgxCommonAreaRepository struct {
	BaseRepository
}

func newPgxCommonAreaRepository(pool *pgxpool.Pool) portsrepo.CommonAreaRepository {
	return &PgxCommonAreaRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCommonAreaRepository implements portsrepo.CommonAreaRepository
var _ portsrepo.CommonAreaRepository = (*PgxCommonAreaRepository)(nil)

var FULL_COMMON_AREA_SELECT_QUERY = `
SELECT
	a.common_area_id, a.condominium_id, a.name, a.description, a.state,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM common_areas a
`

func (r *PgxCommonAreaRepository) getCommonAreas(ctx context.Context, filterQuery string, args ...any) ([]domain.CommonArea, error) {
	query := FULL_COMMON_AREA_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to query common areas", err)
	}
	defer rows.Close()
	modelAreas, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CommonArea])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CommonArea{}, nil
		}
		return nil, apperrors.NewUnavailableError("failed to collect common area rows", err)
	}
	return mapping.ToDomainCommonAreaSlice(modelAreas), nil
}

func (r *PgxCommonAreaRepository) SaveCommonArea(ctx context.Context, area domain.CommonArea) error {
	modelArea := mapping.ToModelCommonArea(area)
	query := `
		INSERT INTO common_areas (
			common_area_id, condominium_id, name, description, state,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelArea.CommonAreaID,
		modelArea.CondominiumID,
		modelArea.Name,
		modelArea.Description,
		modelArea.State,
		modelArea.CreatedAt,
		modelArea.CreatedBy,
		modelArea.LastUpdatedAt,
		modelArea.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("common area " + area.Name + " already exists in condominium")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("condominium does not exist")
			}
		}
		return apperrors.NewUnavailableError("failed to save common area "+area.CommonAreaID, err)
	}
	return nil
}

func (r *PgxCommonAreaRepository) FindCommonAreaByID(ctx context.Context, commonAreaID string) (*domain.CommonArea, error) {
	areas, err := r.getCommonAreas(ctx, `WHERE a.common_area_id = $1`, commonAreaID)
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &areas[0], nil
}

func (r *PgxCommonAreaRepository) FindCommonAreaByName(ctx context.Context, condominiumID string, name string) (*domain.CommonArea, error) {
	areas, err := r.getCommonAreas(ctx, `WHERE a.condominium_id = $1 AND a.name = $2`, condominiumID, name)
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &areas[0], nil
}

func (r *PgxCommonAreaRepository) ListCommonAreasByCondominium(ctx context.Context, condominiumID string) ([]domain.CommonArea, error) {
	return r.getCommonAreas(ctx, `WHERE a.condominium_id = $1 ORDER BY a.name`, condominiumID)
}

func (r *PgxCommonAreaRepository) UpdateCommonAreaState(ctx context.Context, commonAreaID string, state domain.CommonAreaState, updatedBy string, now time.Time) error {
	query := `
		UPDATE common_areas
		SET state = $1, last_updated_at = $2, last_updated_by = $3
		WHERE common_area_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, string(state), now, updatedBy, commonAreaID)
	if err != nil {
		return apperrors.NewUnavailableError("failed to update state for common area "+commonAreaID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
