package repositories

import (
	"context"
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepartmentReader defines read operations for department data
type DepartmentReader interface {
	// FindDepartmentByID retrieves a specific department by its ID.
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)

	// ListDepartmentsByCondominium retrieves every department of a condominium.
	ListDepartmentsByCondominium(ctx context.Context, condominiumID string) ([]domain.Department, error)

	// SumShares returns the raw (unrounded) sum of shares across all
	// departments of a condominium.
	SumShares(ctx context.Context, condominiumID string) (decimal.Decimal, error)
}

// DepartmentWriter defines write operations for department data
type DepartmentWriter interface {
	// SaveDepartment persists a new department (share starts at zero).
	SaveDepartment(ctx context.Context, department domain.Department) error

	// AssignShares sets the share of every department in departmentIDs to
	// exactly newShare, atomically. The implementation must serialize
	// against concurrent assignments for the same condominium (row locks on
	// the condominium's departments) and re-validate the sum invariant
	// inside that boundary, returning *apperrors.ShareOverflowError on
	// violation with no partial writes.
	AssignShares(ctx context.Context, condominiumID string, departmentIDs []string, newShare decimal.Decimal, updatedBy string, now time.Time) error
}

// DepartmentRepositoryFacade combines all department-related repository interfaces
type DepartmentRepositoryFacade interface {
	DepartmentReader
	DepartmentWriter
}
