package services

import (
	"context"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ShareLedgerSvcFacade owns the per-department proportional shares of a
// condominium and the sum-of-shares invariant.
type ShareLedgerSvcFacade interface {
	// AssignShares sets every department in departmentIDs to exactly
	// newShare (not incremented), all-or-nothing. Fails with
	// *apperrors.ShareOverflowError when the recomputed condominium total
	// would exceed 1 plus the tolerance.
	AssignShares(ctx context.Context, condominiumID string, departmentIDs []string, newShare decimal.Decimal, requestingUserID string) error

	// CurrentTotal returns the condominium-wide share total rounded to 3
	// decimals for display, with the strict under-allocation warning flag.
	CurrentTotal(ctx context.Context, condominiumID string) (dto.ShareTotalResponse, error)

	// ShareOf returns a department's current share, zero when unassigned.
	ShareOf(ctx context.Context, departmentID string) (decimal.Decimal, error)

	// ListDepartmentShares returns the condominium's departments grouped for
	// the share-assignment view, with each department's current share.
	ListDepartmentShares(ctx context.Context, condominiumID string, requestingUserID string) (map[string][]domain.Department, error)
}
