package repositories

import (
	"context"
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// CondominiumReader defines read operations for condominium data
type CondominiumReader interface {
	// FindCondominiumByID retrieves a specific condominium by its ID.
	FindCondominiumByID(ctx context.Context, condominiumID string) (*domain.Condominium, error)

	// ListCondominiums retrieves all condominiums, optionally including inactive ones.
	ListCondominiums(ctx context.Context, includeInactive bool) ([]domain.Condominium, error)
}

// CondominiumWriter defines write operations for condominium data
type CondominiumWriter interface {
	// SaveCondominium persists a new condominium.
	SaveCondominium(ctx context.Context, condominium domain.Condominium) error

	// SetCondominiumActive toggles the active flag.
	SetCondominiumActive(ctx context.Context, condominiumID string, active bool, updatedBy string, now time.Time) error
}

// CondominiumRepositoryFacade combines all condominium-related repository interfaces
type CondominiumRepositoryFacade interface {
	CondominiumReader
	CondominiumWriter
}
