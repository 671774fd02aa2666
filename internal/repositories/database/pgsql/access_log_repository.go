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

type PgxAccessLogRepository struct {
	BaseRepository
}

func newPgxAccessLogRepository(pool *pgxpool.Pool) portsrepo.AccessLogRepository {
	return &PgxAccessLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAccessLogRepository implements portsrepo.AccessLogRepository
var _ portsrepo.AccessLogRepository = (*PgxAccessLogRepository)(nil)

var FULL_ACCESS_LOG_SELECT_QUERY = `
SELECT
	l.access_log_id, l.condominium_id, l.guard_id,
	COALESCE(l.department_id, '') AS department_id,
	l.visitor_name, l.kind, COALESCE(l.note, '') AS note, l.logged_at
FROM access_logs l
`

func (r *PgxAccessLogRepository) SaveAccessLog(ctx context.Context, entry domain.AccessLog) error {
	modelEntry := mapping.ToModelAccessLog(entry)
	query := `
		INSERT INTO access_logs (
			access_log_id, condominium_id, guard_id, department_id,
			visitor_name, kind, note, logged_at
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelEntry.AccessLogID,
		modelEntry.CondominiumID,
		modelEntry.GuardID,
		modelEntry.DepartmentID,
		modelEntry.VisitorName,
		modelEntry.Kind,
		modelEntry.Note,
		modelEntry.LoggedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("condominium, guard or department does not exist")
		}
		return apperrors.NewUnavailableError("failed to save access log "+entry.AccessLogID, err)
	}
	return nil
}

func (r *PgxAccessLogRepository) ListAccessLogsByCondominium(ctx context.Context, condominiumID string, limit int) ([]domain.AccessLog, error) {
	if limit <= 0 {
		limit = 100
	}
	query := FULL_ACCESS_LOG_SELECT_QUERY + `WHERE l.condominium_id = $1 ORDER BY l.logged_at DESC LIMIT $2`
	rows, err := r.Pool.Query(ctx, query, condominiumID, limit)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to query access logs", err)
	}
	defer rows.Close()
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AccessLog])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.AccessLog{}, nil
		}
		return nil, apperrors.NewUnavailableError("failed to collect access log rows", err)
	}
	return mapping.ToDomainAccessLogSlice(modelEntries), nil
}
