package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/middleware"
)

// reservationService drives common-area reservation requests:
// PENDING -> {APPROVED, REJECTED}, rejection always justified.
//
// Overlapping time ranges for the same area are deliberately not checked
// against each other; whether overlaps should be first-come-first-served or
// rejected outright is still an open product decision.
type reservationService struct {
	reservationRepo portsrepo.ReservationRepositoryFacade
	commonAreaRepo  portsrepo.CommonAreaRepository
	userRepo        portsrepo.UserReader
	condominiumSvc  portssvc.CondominiumAuthorizerSvc
}

// NewReservationService creates a new ReservationService.
func NewReservationService(
	reservationRepo portsrepo.ReservationRepositoryFacade,
	commonAreaRepo portsrepo.CommonAreaRepository,
	userRepo portsrepo.UserReader,
	condominiumSvc portssvc.CondominiumAuthorizerSvc,
) portssvc.ReservationSvcFacade {
	return &reservationService{
		reservationRepo: reservationRepo,
		commonAreaRepo:  commonAreaRepo,
		userRepo:        userRepo,
		condominiumSvc:  condominiumSvc,
	}
}

var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

func (s *reservationService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest, requestingUserID string) (*domain.ReservationRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}
	if actor.Role != domain.RoleOwner || actor.CondominiumID == "" {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now().UTC()
	if !req.StartTime.Before(req.EndTime) {
		return nil, fmt.Errorf("%w: start time must be before end time", apperrors.ErrValidation)
	}
	if req.StartTime.Before(now) {
		return nil, fmt.Errorf("%w: reservation must be in the future", apperrors.ErrValidation)
	}

	area, err := s.commonAreaRepo.FindCommonAreaByName(ctx, actor.CondominiumID, req.AreaName)
	if err != nil {
		return nil, err
	}
	if area.State != domain.AreaFree {
		return nil, fmt.Errorf("%w: common area %s is not available", apperrors.ErrValidation, area.Name)
	}

	reservation := domain.ReservationRequest{
		ReservationID: uuid.NewString(),
		CondominiumID: actor.CondominiumID,
		CommonAreaID:  area.CommonAreaID,
		AreaName:      area.Name,
		RequestedBy:   requestingUserID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        domain.ReservationPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.reservationRepo.SaveReservation(ctx, reservation); err != nil {
		logger.Error("Failed to save reservation", slog.String("error", err.Error()), slog.String("area", req.AreaName))
		return nil, err
	}

	logger.Info("Reservation submitted",
		slog.String("reservation_id", reservation.ReservationID),
		slog.String("area", reservation.AreaName),
	)
	return &reservation, nil
}

// DecideReservation moves a PENDING request to APPROVED or REJECTED.
// Rejections require a non-empty reason. The status guard lives in the
// repository update, so concurrent decisions serialize there.
func (s *reservationService) DecideReservation(ctx context.Context, reservationID string, outcome domain.ReservationStatus, reason string, requestingUserID string) (*domain.ReservationRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if outcome != domain.ReservationApproved && outcome != domain.ReservationRejected {
		return nil, fmt.Errorf("%w: outcome must be APPROVED or REJECTED", apperrors.ErrValidation)
	}
	if outcome == domain.ReservationRejected && strings.TrimSpace(reason) == "" {
		return nil, apperrors.ErrMissingReason
	}

	reservation, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, reservation.CondominiumID); err != nil {
		return nil, err
	}

	if reservation.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidTransition
	}

	if outcome == domain.ReservationApproved {
		reason = ""
	}

	now := time.Now().UTC()
	won, err := s.reservationRepo.DecideReservationIfPending(ctx, reservationID, outcome, reason, requestingUserID, now)
	if err != nil {
		logger.Error("Failed to decide reservation", slog.String("error", err.Error()), slog.String("reservation_id", reservationID))
		return nil, err
	}
	if !won {
		return nil, apperrors.ErrInvalidTransition
	}

	// Approving a booking marks the area occupied for the admin overview.
	if outcome == domain.ReservationApproved {
		if err := s.commonAreaRepo.UpdateCommonAreaState(ctx, reservation.CommonAreaID, domain.AreaOccupied, requestingUserID, now); err != nil {
			logger.Warn("Failed to mark common area occupied", slog.String("error", err.Error()), slog.String("common_area_id", reservation.CommonAreaID))
		}
	}

	reservation.Status = outcome
	reservation.RejectionReason = reason
	reservation.DecidedBy = requestingUserID
	reservation.DecidedAt = &now
	reservation.LastUpdatedAt = now
	reservation.LastUpdatedBy = requestingUserID

	logger.Info("Reservation decided",
		slog.String("reservation_id", reservationID),
		slog.String("outcome", string(outcome)),
	)
	return reservation, nil
}

func (s *reservationService) ListCondominiumReservations(ctx context.Context, condominiumID string, status domain.ReservationStatus, requestingUserID string) ([]domain.ReservationRequest, error) {
	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, condominiumID); err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.ListReservationsByCondominium(ctx, condominiumID, status)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list reservations", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	if reservations == nil {
		return []domain.ReservationRequest{}, nil
	}
	return reservations, nil
}

func (s *reservationService) ListOwnReservations(ctx context.Context, requestingUserID string) ([]domain.ReservationRequest, error) {
	reservations, err := s.reservationRepo.ListReservationsByRequester(ctx, requestingUserID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list own reservations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	if reservations == nil {
		return []domain.ReservationRequest{}, nil
	}
	return reservations, nil
}
