package repositories

import (
	"context"
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// ReservationReader defines read operations for reservation requests
type ReservationReader interface {
	// FindReservationByID retrieves a specific reservation request.
	FindReservationByID(ctx context.Context, reservationID string) (*domain.ReservationRequest, error)

	// ListReservationsByCondominium retrieves reservation requests for a
	// condominium, optionally filtered by status (empty means all).
	ListReservationsByCondominium(ctx context.Context, condominiumID string, status domain.ReservationStatus) ([]domain.ReservationRequest, error)

	// ListReservationsByRequester retrieves requests submitted by a user.
	ListReservationsByRequester(ctx context.Context, userID string) ([]domain.ReservationRequest, error)
}

// ReservationWriter defines write operations for reservation requests
type ReservationWriter interface {
	// SaveReservation persists a new reservation request.
	SaveReservation(ctx context.Context, reservation domain.ReservationRequest) error

	// DecideReservationIfPending transitions the request to outcome only
	// when it is still PENDING, returning false when the guard fails.
	DecideReservationIfPending(ctx context.Context, reservationID string, outcome domain.ReservationStatus, reason string, decidedBy string, now time.Time) (bool, error)
}

// ReservationRepositoryFacade combines all reservation-related repository interfaces
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}
