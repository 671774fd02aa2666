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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

var FULL_USER_SELECT_QUERY = `
SELECT
	u.user_id, u.name, u.email, u.password_hash, u.role, u.status,
	COALESCE(u.condominium_id, '') AS condominium_id,
	COALESCE(u.department_id, '') AS department_id,
	u.created_at, u.created_by, u.last_updated_at, u.last_updated_by
FROM users u
`

// getUsers runs the full select query with the given filter and collects rows.
func (r *PgxUserRepository) getUsers(ctx context.Context, filterQuery string, args ...any) ([]domain.User, error) {
	query := FULL_USER_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to query users", err)
	}
	defer rows.Close()
	modelUsers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.User{}, nil
		}
		return nil, apperrors.NewUnavailableError("failed to collect user rows", err)
	}
	return mapping.ToDomainUserSlice(modelUsers), nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (
			user_id, name, email, password_hash, role, status,
			condominium_id, department_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Name,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.Role,
		modelUser.Status,
		modelUser.CondominiumID,
		modelUser.DepartmentID,
		modelUser.CreatedAt,
		modelUser.CreatedBy,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("email " + user.Email + " is already registered")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("condominium or department does not exist")
			}
		}
		return apperrors.NewUnavailableError("failed to save user "+user.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.email = $1`, email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

func (r *PgxUserRepository) ListUsersByCondominium(ctx context.Context, condominiumID string, role domain.UserRole) ([]domain.User, error) {
	if role == "" {
		return r.getUsers(ctx, `WHERE u.condominium_id = $1 ORDER BY u.name`, condominiumID)
	}
	return r.getUsers(ctx, `WHERE u.condominium_id = $1 AND u.role = $2 ORDER BY u.name`, condominiumID, string(role))
}

func (r *PgxUserRepository) ListUsersByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	return r.getUsers(ctx, `WHERE u.role = $1 ORDER BY u.name`, string(role))
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET name = $1, email = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelUser.Name,
		modelUser.Email,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
		modelUser.UserID,
	)
	if err != nil {
		return apperrors.NewUnavailableError("failed to update user "+user.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateUserStatusIfCurrent flips the status only when the stored value still
// matches expected. The status guard in the WHERE clause is what serializes
// concurrent approvals: the loser sees zero rows affected.
func (r *PgxUserRepository) UpdateUserStatusIfCurrent(ctx context.Context, userID string, expected, next domain.UserStatus, updatedBy string, now time.Time) (bool, error) {
	query := `
		UPDATE users
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $4 AND status = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, string(next), now, updatedBy, userID, string(expected))
	if err != nil {
		return false, apperrors.NewUnavailableError("failed to update status for user "+userID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string, updatedBy string, now time.Time) error {
	query := `
		UPDATE users
		SET password_hash = $1, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, passwordHash, now, updatedBy, userID)
	if err != nil {
		return apperrors.NewUnavailableError("failed to update password for user "+userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
