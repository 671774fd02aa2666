package services

import (
	"context"
	"errors"
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
	"github.com/kvillacis/condo_management_app/internal/utils/apportion"
)

// paymentService drives the payment lifecycle. A record is PENDING until the
// condominium's admin approves or rejects it; both outcomes are terminal.
type paymentService struct {
	paymentRepo    portsrepo.PaymentRepositoryFacade
	departmentRepo portsrepo.DepartmentReader
	expenseRepo    portsrepo.ExpenseReader
	userRepo       portsrepo.UserReader
	condominiumSvc portssvc.CondominiumAuthorizerSvc
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	departmentRepo portsrepo.DepartmentReader,
	expenseRepo portsrepo.ExpenseReader,
	userRepo portsrepo.UserReader,
	condominiumSvc portssvc.CondominiumAuthorizerSvc,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:    paymentRepo,
		departmentRepo: departmentRepo,
		expenseRepo:    expenseRepo,
		userRepo:       userRepo,
		condominiumSvc: condominiumSvc,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// SubmitPayment creates a PENDING record with the owed amount frozen from
// the share assignment in effect right now. Later share changes never touch
// records that already exist.
func (s *paymentService) SubmitPayment(ctx context.Context, req dto.SubmitPaymentRequest, requestingUserID string) (*domain.PaymentRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submitting user: %w", err)
	}

	department, err := s.departmentRepo.FindDepartmentByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	// Owners may only pay for their own department; admins may submit on
	// behalf of any department in their condominium (cash at the desk).
	switch actor.Role {
	case domain.RoleOwner:
		if actor.DepartmentID != department.DepartmentID {
			return nil, apperrors.ErrForbidden
		}
	case domain.RoleAdmin, domain.RoleSuperadmin:
		if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, department.CondominiumID); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.ErrForbidden
	}

	expense, err := s.expenseRepo.FindExpenseByPeriod(ctx, department.CondominiumID, req.Period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no expense recorded for period %s", apperrors.ErrValidation, req.Period)
		}
		return nil, err
	}

	settled, err := s.paymentRepo.HasApprovedPayment(ctx, department.DepartmentID, req.Period)
	if err != nil {
		logger.Error("Failed to check settled payments", slog.String("error", err.Error()), slog.String("department_id", department.DepartmentID))
		return nil, fmt.Errorf("failed to check settled payments: %w", err)
	}
	if settled {
		return nil, apperrors.ErrAlreadySettled
	}

	now := time.Now().UTC()
	record := domain.PaymentRecord{
		PaymentID:     uuid.NewString(),
		CondominiumID: department.CondominiumID,
		DepartmentID:  department.DepartmentID,
		ExpenseID:     expense.ExpenseID,
		Period:        req.Period,
		AmountPaid:    apportion.AmountOwed(department.Share, expense.TotalAmount),
		Method:        req.Method,
		Status:        domain.PaymentPending,
		SubmittedBy:   requestingUserID,
		SubmittedAt:   now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, record); err != nil {
		logger.Error("Failed to save payment", slog.String("error", err.Error()), slog.String("department_id", department.DepartmentID))
		return nil, err
	}

	logger.Info("Payment submitted",
		slog.String("payment_id", record.PaymentID),
		slog.String("department_id", record.DepartmentID),
		slog.String("period", record.Period),
		slog.String("amount", record.AmountPaid.StringFixed(2)),
	)
	return &record, nil
}

// DecidePayment moves a PENDING record to APPROVED or REJECTED. The update
// carries a status guard at the repository, so when two admins race, the
// loser sees the guard fail and gets ErrInvalidTransition.
func (s *paymentService) DecidePayment(ctx context.Context, paymentID string, outcome domain.PaymentStatus, requestingUserID string) (*domain.PaymentRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if outcome != domain.PaymentApproved && outcome != domain.PaymentRejected {
		return nil, fmt.Errorf("%w: outcome must be APPROVED or REJECTED", apperrors.ErrValidation)
	}

	record, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, record.CondominiumID); err != nil {
		return nil, err
	}

	if record.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidTransition
	}

	now := time.Now().UTC()
	won, err := s.paymentRepo.DecidePaymentIfPending(ctx, paymentID, outcome, requestingUserID, now)
	if err != nil {
		logger.Error("Failed to decide payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return nil, err
	}
	if !won {
		// A concurrent decision transitioned the record first.
		return nil, apperrors.ErrInvalidTransition
	}

	record.Status = outcome
	record.DecidedBy = requestingUserID
	record.DecidedAt = &now
	record.LastUpdatedAt = now
	record.LastUpdatedBy = requestingUserID

	logger.Info("Payment decided",
		slog.String("payment_id", paymentID),
		slog.String("outcome", string(outcome)),
	)
	return record, nil
}

func (s *paymentService) ListCondominiumPayments(ctx context.Context, condominiumID string, requestingUserID string) ([]domain.PaymentRecord, error) {
	if err := s.condominiumSvc.AuthorizeAdmin(ctx, requestingUserID, condominiumID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListPaymentsByCondominium(ctx, condominiumID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list payments", slog.String("error", err.Error()), slog.String("condominium_id", condominiumID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.PaymentRecord{}, nil
	}
	return payments, nil
}

func (s *paymentService) ListOwnPayments(ctx context.Context, requestingUserID string) ([]domain.PaymentRecord, error) {
	payments, err := s.paymentRepo.ListPaymentsBySubmitter(ctx, requestingUserID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list own payments", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.PaymentRecord{}, nil
	}
	return payments, nil
}
