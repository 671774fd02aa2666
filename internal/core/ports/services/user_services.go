package services

import (
	"context"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListCondominiumUsers retrieves a condominium's users with a given role
	// (owners or guards). Only the condominium's admin or a superadmin may call it.
	ListCondominiumUsers(ctx context.Context, condominiumID string, role domain.UserRole, requestingUserID string) ([]domain.User, error)

	// ListAdmins retrieves all admin accounts (superadmin views).
	ListAdmins(ctx context.Context, requestingUserID string) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new owner or guard account in INACTIVE status,
	// awaiting admin approval.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// CreateAdmin creates an admin account (superadmin only), ACTIVE immediately.
	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest, requestingUserID string) (*domain.User, error)

	// ResetPassword replaces a user's password (superadmin over admins).
	ResetPassword(ctx context.Context, userID string, newPassword string, requestingUserID string) error
}

// UserLifecycleSvc drives the two-state registration lifecycle.
type UserLifecycleSvc interface {
	// ApproveRegistration flips an INACTIVE owner/guard account to ACTIVE.
	// The actor must be the admin of the user's condominium or a superadmin.
	// Approving an already ACTIVE account fails with ErrInvalidTransition.
	ApproveRegistration(ctx context.Context, userID string, requestingUserID string) (*domain.User, error)

	// DeactivateUser puts an account back to INACTIVE (admin lock-out).
	DeactivateUser(ctx context.Context, userID string, requestingUserID string) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	// Inactive accounts cannot log in.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
