package repositories

import (
	"context"
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// CommonAreaRepository defines persistence operations for common areas.
type CommonAreaRepository interface {
	// SaveCommonArea persists a new common area.
	SaveCommonArea(ctx context.Context, area domain.CommonArea) error

	// FindCommonAreaByID retrieves a specific common area.
	FindCommonAreaByID(ctx context.Context, commonAreaID string) (*domain.CommonArea, error)

	// FindCommonAreaByName retrieves a common area by name within a condominium.
	FindCommonAreaByName(ctx context.Context, condominiumID string, name string) (*domain.CommonArea, error)

	// ListCommonAreasByCondominium retrieves all common areas of a condominium.
	ListCommonAreasByCondominium(ctx context.Context, condominiumID string) ([]domain.CommonArea, error)

	// UpdateCommonAreaState sets the availability state of a common area.
	UpdateCommonAreaState(ctx context.Context, commonAreaID string, state domain.CommonAreaState, updatedBy string, now time.Time) error
}
