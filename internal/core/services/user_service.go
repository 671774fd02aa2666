package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/middleware"
	"github.com/kvillacis/condo_management_app/internal/utils"
)

// userService manages accounts and the two-state registration lifecycle:
// owners and guards start INACTIVE and an admin activates them. There is no
// rejected outcome; unwanted registrations simply stay inactive.
type userService struct {
	userRepo       portsrepo.UserRepositoryFacade
	condominiumSvc portssvc.CondominiumAuthorizerSvc
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, condominiumSvc portssvc.CondominiumAuthorizerSvc) portssvc.UserSvcFacade {
	return &userService{
		userRepo:       userRepo,
		condominiumSvc: condominiumSvc,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find user", slog.String("error", err.Error()), slog.String("target_user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListCondominiumUsers(ctx context.Context, condominiumID string, role domain.UserRole, requestingUserID string) ([]domain.User, error) {
	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, condominiumID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListUsersByCondominium(ctx, condominiumID, role)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list condominium users", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) ListAdmins(ctx context.Context, requestingUserID string) ([]domain.User, error) {
	actor, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}
	if actor.Role != domain.RoleSuperadmin {
		return nil, apperrors.ErrForbidden
	}

	admins, err := s.userRepo.ListUsersByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	if admins == nil {
		return []domain.User{}, nil
	}
	return admins, nil
}

// RegisterUser creates an owner or guard account in INACTIVE status. Owners
// must name the department they occupy.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Role == domain.RoleOwner && req.DepartmentID == "" {
		return nil, fmt.Errorf("%w: owners must reference a department", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:        uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  hash,
		Role:          req.Role,
		Status:        domain.StatusInactive,
		CondominiumID: req.CondominiumID,
		DepartmentID:  req.DepartmentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "", // self registration
			LastUpdatedAt: now,
			LastUpdatedBy: "",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("User registered, awaiting approval",
		slog.String("new_user_id", user.UserID),
		slog.String("role", string(user.Role)),
	)
	return &user, nil
}

func (s *userService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest, requestingUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}
	if actor.Role != domain.RoleSuperadmin {
		return nil, apperrors.ErrForbidden
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	admin := domain.User{
		UserID:        uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  hash,
		Role:          domain.RoleAdmin,
		Status:        domain.StatusActive,
		CondominiumID: req.CondominiumID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		logger.Error("Failed to save admin", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Admin created", slog.String("new_user_id", admin.UserID))
	return &admin, nil
}

// ApproveRegistration flips an INACTIVE account to ACTIVE. The flip is the
// one side effect of approving a registration; the update carries a status
// guard so a doubled approval fails with ErrInvalidTransition.
func (s *userService) ApproveRegistration(ctx context.Context, userID string, requestingUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	target, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if target.Role != domain.RoleOwner && target.Role != domain.RoleGuard {
		return nil, fmt.Errorf("%w: only owner and guard registrations are approved", apperrors.ErrValidation)
	}

	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, target.CondominiumID); err != nil {
		return nil, err
	}

	if target.IsTerminalStatus() {
		return nil, apperrors.ErrInvalidTransition
	}

	now := time.Now().UTC()
	won, err := s.userRepo.UpdateUserStatusIfCurrent(ctx, userID, domain.StatusInactive, domain.StatusActive, requestingUserID, now)
	if err != nil {
		logger.Error("Failed to activate user", slog.String("error", err.Error()), slog.String("target_user_id", userID))
		return nil, err
	}
	if !won {
		return nil, apperrors.ErrInvalidTransition
	}

	target.Status = domain.StatusActive
	target.LastUpdatedAt = now
	target.LastUpdatedBy = requestingUserID

	logger.Info("Registration approved", slog.String("target_user_id", userID))
	return target, nil
}

// DeactivateUser puts an account back to INACTIVE, locking it out.
func (s *userService) DeactivateUser(ctx context.Context, userID string, requestingUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	target, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, target.CondominiumID); err != nil {
		return nil, err
	}

	won, err := s.userRepo.UpdateUserStatusIfCurrent(ctx, userID, domain.StatusActive, domain.StatusInactive, requestingUserID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to deactivate user", slog.String("error", err.Error()), slog.String("target_user_id", userID))
		return nil, err
	}
	if !won {
		return nil, apperrors.ErrInvalidTransition
	}

	target.Status = domain.StatusInactive
	logger.Info("User deactivated", slog.String("target_user_id", userID))
	return target, nil
}

func (s *userService) ResetPassword(ctx context.Context, userID string, newPassword string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return fmt.Errorf("failed to load requesting user: %w", err)
	}
	if actor.Role != domain.RoleSuperadmin {
		return apperrors.ErrForbidden
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdateUserPassword(ctx, userID, hash, requestingUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to reset password", slog.String("error", err.Error()), slog.String("target_user_id", userID))
		return err
	}

	logger.Info("Password reset", slog.String("target_user_id", userID))
	return nil
}

// AuthenticateUser verifies credentials. Inactive accounts cannot log in,
// which is what makes an unapproved registration inert.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}

	if user.Status != domain.StatusActive {
		logger.Warn("Login attempt on inactive account", slog.String("target_user_id", user.UserID))
		return nil, apperrors.ErrForbidden
	}

	return user, nil
}
