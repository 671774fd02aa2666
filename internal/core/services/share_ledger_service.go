package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/middleware"
	"github.com/kvillacis/condo_management_app/internal/utils/apportion"
)

// shareLedgerService owns the per-department shares of each condominium and
// enforces the sum invariant: active shares never sum past 1 plus tolerance.
type shareLedgerService struct {
	departmentRepo portsrepo.DepartmentRepositoryFacade
	condominiumSvc portssvc.CondominiumAuthorizerSvc
}

// NewShareLedgerService creates a new ShareLedgerService.
func NewShareLedgerService(departmentRepo portsrepo.DepartmentRepositoryFacade, condominiumSvc portssvc.CondominiumAuthorizerSvc) portssvc.ShareLedgerSvcFacade {
	return &shareLedgerService{
		departmentRepo: departmentRepo,
		condominiumSvc: condominiumSvc,
	}
}

var _ portssvc.ShareLedgerSvcFacade = (*shareLedgerService)(nil)

// AssignShares sets every targeted department to exactly newShare. The
// invariant check runs twice: a fast pre-check here on the current snapshot,
// and the authoritative re-check inside the repository's locked transaction,
// so a concurrent assignment can never slip the total past the ceiling.
func (s *shareLedgerService) AssignShares(ctx context.Context, condominiumID string, departmentIDs []string, newShare decimal.Decimal, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, condominiumID); err != nil {
		return err
	}

	if len(departmentIDs) == 0 {
		return fmt.Errorf("%w: at least one department is required", apperrors.ErrValidation)
	}
	if newShare.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: share must be greater than zero", apperrors.ErrValidation)
	}

	departments, err := s.departmentRepo.ListDepartmentsByCondominium(ctx, condominiumID)
	if err != nil {
		logger.Error("Failed to list departments for share assignment", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		return fmt.Errorf("failed to list departments: %w", err)
	}

	known := make(map[string]decimal.Decimal, len(departments))
	for _, d := range departments {
		known[d.DepartmentID] = d.Share
	}
	for _, id := range departmentIDs {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: department %s does not belong to condominium %s", apperrors.ErrValidation, id, condominiumID)
		}
	}

	wouldBe := apportion.WouldBeTotal(known, departmentIDs, newShare)
	if apportion.ExceedsLimit(wouldBe) {
		logger.Warn("Share assignment rejected, sum would overflow",
			slog.String("condominium_id", condominiumID),
			slog.String("would_be_total", wouldBe.StringFixed(3)),
		)
		return apperrors.NewShareOverflowError(wouldBe)
	}

	if err := s.departmentRepo.AssignShares(ctx, condominiumID, departmentIDs, newShare, requestingUserID, time.Now().UTC()); err != nil {
		var overflow *apperrors.ShareOverflowError
		if errors.As(err, &overflow) {
			// Lost a race: another assignment landed first and the re-check
			// inside the transaction caught the violation.
			logger.Warn("Share assignment lost race, sum would overflow",
				slog.String("condominium_id", condominiumID),
				slog.String("would_be_total", overflow.WouldBeTotal.StringFixed(3)),
			)
			return err
		}
		logger.Error("Failed to assign shares", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		return err
	}

	logger.Info("Shares assigned",
		slog.String("condominium_id", condominiumID),
		slog.Int("departments", len(departmentIDs)),
		slog.String("share", newShare.String()),
	)
	return nil
}

// CurrentTotal returns the display total (3 decimals) and the strict
// under-allocation warning. The raw sum is what the invariant is checked
// against; the rounding here is cosmetic.
func (s *shareLedgerService) CurrentTotal(ctx context.Context, condominiumID string) (dto.ShareTotalResponse, error) {
	rawTotal, err := s.departmentRepo.SumShares(ctx, condominiumID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to sum shares", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		return dto.ShareTotalResponse{}, fmt.Errorf("failed to sum shares: %w", err)
	}

	return dto.ShareTotalResponse{
		CondominiumID:  condominiumID,
		Total:          apportion.RoundTotalForDisplay(rawTotal),
		UnderAllocated: apportion.IsUnderAllocated(rawTotal),
	}, nil
}

// ShareOf returns a department's current share, zero when unassigned.
func (s *shareLedgerService) ShareOf(ctx context.Context, departmentID string) (decimal.Decimal, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to find department %s: %w", departmentID, err)
	}
	return department.Share, nil
}

// ListDepartmentShares groups a condominium's departments by their group
// label for the share-assignment view.
func (s *shareLedgerService) ListDepartmentShares(ctx context.Context, condominiumID string, requestingUserID string) (map[string][]domain.Department, error) {
	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, condominiumID); err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.ListDepartmentsByCondominium(ctx, condominiumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	grouped := make(map[string][]domain.Department)
	for _, d := range departments {
		group := d.Group
		if group == "" {
			group = "general"
		}
		grouped[group] = append(grouped[group], d)
	}
	return grouped, nil
}
