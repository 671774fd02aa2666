package repositories

import (
	"context"
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, used by login.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsersByCondominium retrieves users of a condominium filtered by role.
	ListUsersByCondominium(ctx context.Context, condominiumID string, role domain.UserRole) ([]domain.User, error)

	// ListUsersByRole retrieves all users with a given role (superadmin views).
	ListUsersByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser persists changes to user profile fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateUserStatusIfCurrent transitions a user's status only when the
	// stored status still equals expected. Returns false when the guard
	// fails, so concurrent approvals serialize at the database.
	UpdateUserStatusIfCurrent(ctx context.Context, userID string, expected, next domain.UserStatus, updatedBy string, now time.Time) (bool, error)

	// UpdateUserPassword replaces a user's password hash.
	UpdateUserPassword(ctx context.Context, userID string, passwordHash string, updatedBy string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
