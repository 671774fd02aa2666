package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/middleware"
)

// commonAreaService manages a condominium's bookable spaces.
type commonAreaService struct {
	commonAreaRepo portsrepo.CommonAreaRepository
	condominiumSvc portssvc.CondominiumAuthorizerSvc
}

// NewCommonAreaService creates a new CommonAreaService.
func NewCommonAreaService(commonAreaRepo portsrepo.CommonAreaRepository, condominiumSvc portssvc.CondominiumAuthorizerSvc) portssvc.CommonAreaSvcFacade {
	return &commonAreaService{
		commonAreaRepo: commonAreaRepo,
		condominiumSvc: condominiumSvc,
	}
}

var _ portssvc.CommonAreaSvcFacade = (*commonAreaService)(nil)

func (s *commonAreaService) CreateCommonArea(ctx context.Context, req dto.CreateCommonAreaRequest, requestingUserID string) (*domain.CommonArea, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, req.CondominiumID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	area := domain.CommonArea{
		CommonAreaID:  uuid.NewString(),
		CondominiumID: req.CondominiumID,
		Name:          req.Name,
		Description:   req.Description,
		State:         domain.AreaFree,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.commonAreaRepo.SaveCommonArea(ctx, area); err != nil {
		logger.Error("Failed to save common area", slog.String("error", err.Error()), slog.String("condominium_id", req.CondominiumID))
		return nil, err
	}

	logger.Info("Common area created", slog.String("common_area_id", area.CommonAreaID))
	return &area, nil
}

func (s *commonAreaService) ListCommonAreas(ctx context.Context, condominiumID string) ([]domain.CommonArea, error) {
	areas, err := s.commonAreaRepo.ListCommonAreasByCondominium(ctx, condominiumID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list common areas", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		return nil, fmt.Errorf("failed to list common areas: %w", err)
	}
	if areas == nil {
		return []domain.CommonArea{}, nil
	}
	return areas, nil
}

func (s *commonAreaService) SetCommonAreaState(ctx context.Context, commonAreaID string, state domain.CommonAreaState, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	area, err := s.commonAreaRepo.FindCommonAreaByID(ctx, commonAreaID)
	if err != nil {
		return err
	}

	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, area.CondominiumID); err != nil {
		return err
	}

	if err := s.commonAreaRepo.UpdateCommonAreaState(ctx, commonAreaID, state, requestingUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to update common area state", slog.String("error", err.Error()), slog.String("common_area_id", commonAreaID))
		return err
	}

	logger.Info("Common area state changed", slog.String("common_area_id", commonAreaID), slog.String("state", string(state)))
	return nil
}
