package services

import (
	"context"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/dto"
)

// ReservationSvcFacade drives the reservation lifecycle: PENDING -> {APPROVED, REJECTED}.
type ReservationSvcFacade interface {
	// CreateReservation submits a PENDING booking request for a common area.
	// The time range must satisfy start < end with both in the future.
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest, requestingUserID string) (*domain.ReservationRequest, error)

	// DecideReservation transitions a PENDING request to APPROVED or
	// REJECTED. Rejection requires a non-empty reason
	// (apperrors.ErrMissingReason otherwise). Deciding a non-PENDING
	// request fails with apperrors.ErrInvalidTransition.
	DecideReservation(ctx context.Context, reservationID string, outcome domain.ReservationStatus, reason string, requestingUserID string) (*domain.ReservationRequest, error)

	// ListCondominiumReservations lists requests for a condominium,
	// optionally filtered by status (empty means all).
	ListCondominiumReservations(ctx context.Context, condominiumID string, status domain.ReservationStatus, requestingUserID string) ([]domain.ReservationRequest, error)

	// ListOwnReservations lists requests submitted by the actor.
	ListOwnReservations(ctx context.Context, requestingUserID string) ([]domain.ReservationRequest, error)
}

// CommonAreaSvcFacade manages the bookable spaces of a condominium.
type CommonAreaSvcFacade interface {
	// CreateCommonArea adds a common area (admin only).
	CreateCommonArea(ctx context.Context, req dto.CreateCommonAreaRequest, requestingUserID string) (*domain.CommonArea, error)

	// ListCommonAreas lists a condominium's common areas.
	ListCommonAreas(ctx context.Context, condominiumID string) ([]domain.CommonArea, error)

	// SetCommonAreaState marks an area free or occupied (admin only).
	SetCommonAreaState(ctx context.Context, commonAreaID string, state domain.CommonAreaState, requestingUserID string) error
}
