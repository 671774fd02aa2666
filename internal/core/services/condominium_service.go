package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/middleware"
)

// condominiumService manages condominiums and departments, and doubles as
// the authorization choke point for every admin-gated operation.
type condominiumService struct {
	condominiumRepo portsrepo.CondominiumRepositoryFacade
	departmentRepo  portsrepo.DepartmentRepositoryFacade
	userRepo        portsrepo.UserReader
}

// NewCondominiumService creates a new CondominiumService.
func NewCondominiumService(condominiumRepo portsrepo.CondominiumRepositoryFacade, departmentRepo portsrepo.DepartmentRepositoryFacade, userRepo portsrepo.UserReader) portssvc.CondominiumSvcFacade {
	return &condominiumService{
		condominiumRepo: condominiumRepo,
		departmentRepo:  departmentRepo,
		userRepo:        userRepo,
	}
}

var _ portssvc.CondominiumSvcFacade = (*condominiumService)(nil)

// AuthorizeAdmin checks that the actor is the condominium's admin or a
// superadmin. Every decide/assign/record operation funnels through here.
func (s *condominiumService) AuthorizeAdmin(ctx context.Context, actorID string, condominiumID string) error {
	actor, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("failed to load actor %s: %w", actorID, err)
	}

	if actor.Role == domain.RoleSuperadmin {
		return nil
	}
	if actor.Role == domain.RoleAdmin && actor.CondominiumID == condominiumID {
		return nil
	}
	return apperrors.ErrForbidden
}

func (s *condominiumService) GetCondominiumByID(ctx context.Context, condominiumID string) (*domain.Condominium, error) {
	condominium, err := s.condominiumRepo.FindCondominiumByID(ctx, condominiumID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find condominium", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		}
		return nil, err
	}
	return condominium, nil
}

func (s *condominiumService) ListCondominiums(ctx context.Context, requestingUserID string) ([]domain.Condominium, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}

	switch actor.Role {
	case domain.RoleSuperadmin:
		condominiums, err := s.condominiumRepo.ListCondominiums(ctx, true)
		if err != nil {
			logger.Error("Failed to list condominiums", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to list condominiums: %w", err)
		}
		return condominiums, nil
	case domain.RoleAdmin:
		if actor.CondominiumID == "" {
			return []domain.Condominium{}, nil
		}
		own, err := s.condominiumRepo.FindCondominiumByID(ctx, actor.CondominiumID)
		if err != nil {
			return nil, err
		}
		return []domain.Condominium{*own}, nil
	default:
		return nil, apperrors.ErrForbidden
	}
}

func (s *condominiumService) CreateCondominium(ctx context.Context, req dto.CreateCondominiumRequest, requestingUserID string) (*domain.Condominium, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}
	if actor.Role != domain.RoleSuperadmin {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now().UTC()
	condominium := domain.Condominium{
		CondominiumID: uuid.NewString(),
		Name:          req.Name,
		Address:       req.Address,
		AdminID:       req.AdminID,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.condominiumRepo.SaveCondominium(ctx, condominium); err != nil {
		logger.Error("Failed to save condominium", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Condominium created", slog.String("condominium_id", condominium.CondominiumID))
	return &condominium, nil
}

func (s *condominiumService) SetCondominiumActive(ctx context.Context, condominiumID string, active bool, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return fmt.Errorf("failed to load requesting user: %w", err)
	}
	if actor.Role != domain.RoleSuperadmin {
		return apperrors.ErrForbidden
	}

	if err := s.condominiumRepo.SetCondominiumActive(ctx, condominiumID, active, requestingUserID, time.Now().UTC()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to toggle condominium", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		}
		return err
	}

	logger.Info("Condominium status changed", slog.String("condominium_id", condominiumID), slog.Bool("active", active))
	return nil
}

// CreateDepartment adds a department with a zero share. Zero is valid: the
// condominium is simply under-allocated until shares are assigned.
func (s *condominiumService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, requestingUserID string) (*domain.Department, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeAdmin(ctx, requestingUserID, req.CondominiumID); err != nil {
		return nil, err
	}

	if _, err := s.condominiumRepo.FindCondominiumByID(ctx, req.CondominiumID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	department := domain.Department{
		DepartmentID:  uuid.NewString(),
		CondominiumID: req.CondominiumID,
		Name:          req.Name,
		Code:          req.Code,
		Group:         req.Group,
		Share:         decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		logger.Error("Failed to save department", slog.String("error", err.Error()), slog.String("condominium_id", req.CondominiumID))
		return nil, err
	}

	logger.Info("Department created", slog.String("department_id", department.DepartmentID), slog.String("condominium_id", req.CondominiumID))
	return &department, nil
}
