package services

import (
	"context"
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
)

const accessLogDefaultLimit = 100

// accessLogService is the guard-facing registry of visits and services.
type accessLogService struct {
	accessLogRepo  portsrepo.AccessLogRepository
	userRepo       portsrepo.UserReader
	condominiumSvc portssvc.CondominiumAuthorizerSvc
}

// NewAccessLogService creates a new AccessLogService.
func NewAccessLogService(accessLogRepo portsrepo.AccessLogRepository, userRepo portsrepo.UserReader, condominiumSvc portssvc.CondominiumAuthorizerSvc) portssvc.AccessLogSvcFacade {
	return &accessLogService{
		accessLogRepo:  accessLogRepo,
		userRepo:       userRepo,
		condominiumSvc: condominiumSvc,
	}
}

var _ portssvc.AccessLogSvcFacade = (*accessLogService)(nil)

func (s *accessLogService) RegisterAccess(ctx context.Context, req dto.RegisterAccessRequest, requestingUserID string) (*domain.AccessLog, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}
	if actor.Role != domain.RoleGuard || actor.CondominiumID == "" {
		return nil, apperrors.ErrForbidden
	}

	entry := domain.AccessLog{
		AccessLogID:   uuid.NewString(),
		CondominiumID: actor.CondominiumID,
		GuardID:       requestingUserID,
		DepartmentID:  req.DepartmentID,
		VisitorName:   req.VisitorName,
		Kind:          req.Kind,
		Note:          req.Note,
		LoggedAt:      time.Now().UTC(),
	}

	if err := s.accessLogRepo.SaveAccessLog(ctx, entry); err != nil {
		logger.Error("Failed to save access log", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Access logged",
		slog.String("access_log_id", entry.AccessLogID),
		slog.String("kind", string(entry.Kind)),
	)
	return &entry, nil
}

func (s *accessLogService) ListAccessLogs(ctx context.Context, condominiumID string, requestingUserID string) ([]domain.AccessLog, error) {
	actor, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}

	// Guards see their own condominium; admins go through the usual check.
	if actor.Role == domain.RoleGuard {
		if actor.CondominiumID != condominiumID {
			return nil, apperrors.ErrForbidden
		}
	} else if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, condominiumID); err != nil {
		return nil, err
	}

	entries, err := s.accessLogRepo.ListAccessLogsByCondominium(ctx, condominiumID, accessLogDefaultLimit)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list access logs", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		return nil, fmt.Errorf("failed to list access logs: %w", err)
	}
	if entries == nil {
		return []domain.AccessLog{}, nil
	}
	return entries, nil
}
