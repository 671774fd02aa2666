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

type PgxReservationRepository struct {
	BaseRepository
}

func newPgxReservationRepository(pool *pgxpool.Pool) portsrepo.ReservationRepositoryFacade {
	return &PgxReservationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReservationRepository implements portsrepo.ReservationRepositoryFacade
var _ portsrepo.ReservationRepositoryFacade = (*PgxReservationRepository)(nil)

var FULL_RESERVATION_SELECT_QUERY = `
SELECT
	r.reservation_id, r.condominium_id, r.common_area_id, r.area_name,
	r.requested_by, r.start_time, r.end_time, r.status,
	COALESCE(r.rejection_reason, '') AS rejection_reason,
	r.decided_by, r.decided_at,
	r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
FROM reservation_requests r
`

func (r *PgxReservationRepository) getReservations(ctx context.Context, filterQuery string, args ...any) ([]domain.ReservationRequest, error) {
	query := FULL_RESERVATION_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to query reservation requests", err)
	}
	defer rows.Close()
	modelReservations, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ReservationRequest])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ReservationRequest{}, nil
		}
		return nil, apperrors.NewUnavailableError("failed to collect reservation rows", err)
	}
	return mapping.ToDomainReservationSlice(modelReservations), nil
}

func (r *PgxReservationRepository) SaveReservation(ctx context.Context, reservation domain.ReservationRequest) error {
	modelReservation := mapping.ToModelReservation(reservation)
	query := `
		INSERT INTO reservation_requests (
			reservation_id, condominium_id, common_area_id, area_name,
			requested_by, start_time, end_time, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelReservation.ReservationID,
		modelReservation.CondominiumID,
		modelReservation.CommonAreaID,
		modelReservation.AreaName,
		modelReservation.RequestedBy,
		modelReservation.StartTime,
		modelReservation.EndTime,
		modelReservation.Status,
		modelReservation.CreatedAt,
		modelReservation.CreatedBy,
		modelReservation.LastUpdatedAt,
		modelReservation.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("reservation " + reservation.ReservationID + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("common area or requesting user does not exist")
			}
		}
		return apperrors.NewUnavailableError("failed to save reservation "+reservation.ReservationID, err)
	}
	return nil
}

func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.ReservationRequest, error) {
	reservations, err := r.getReservations(ctx, `WHERE r.reservation_id = $1`, reservationID)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &reservations[0], nil
}

func (r *PgxReservationRepository) ListReservationsByCondominium(ctx context.Context, condominiumID string, status domain.ReservationStatus) ([]domain.ReservationRequest, error) {
	if status == "" {
		return r.getReservations(ctx, `WHERE r.condominium_id = $1 ORDER BY r.start_time DESC`, condominiumID)
	}
	return r.getReservations(ctx, `WHERE r.condominium_id = $1 AND r.status = $2 ORDER BY r.start_time DESC`, condominiumID, string(status))
}

func (r *PgxReservationRepository) ListReservationsByRequester(ctx context.Context, userID string) ([]domain.ReservationRequest, error) {
	return r.getReservations(ctx, `WHERE r.requested_by = $1 ORDER BY r.start_time DESC`, userID)
}

// DecideReservationIfPending finalizes a PENDING request. As with payments,
// the status guard makes concurrent decisions serialize: the second caller
// matches no row and gets false. reason is persisted only for rejections.
func (r *PgxReservationRepository) DecideReservationIfPending(ctx context.Context, reservationID string, outcome domain.ReservationStatus, reason string, decidedBy string, now time.Time) (bool, error) {
	query := `
		UPDATE reservation_requests
		SET status = $1, rejection_reason = NULLIF($2, ''), decided_by = $3, decided_at = $4,
		    last_updated_at = $4, last_updated_by = $3
		WHERE reservation_id = $5 AND status = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, string(outcome), reason, decidedBy, now, reservationID, string(domain.ReservationPending))
	if err != nil {
		return false, apperrors.NewUnavailableError("failed to decide reservation "+reservationID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
