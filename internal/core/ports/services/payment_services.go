package services

import (
	"context"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/dto"
)

// PaymentSvcFacade drives the payment lifecycle: PENDING -> {APPROVED, REJECTED}.
type PaymentSvcFacade interface {
	// SubmitPayment creates a PENDING payment record for the actor's
	// department and the given period, freezing the owed amount from the
	// share assignment in effect at submission time. Fails with
	// apperrors.ErrAlreadySettled when an APPROVED record already exists
	// for the department and period.
	SubmitPayment(ctx context.Context, req dto.SubmitPaymentRequest, requestingUserID string) (*domain.PaymentRecord, error)

	// DecidePayment transitions a PENDING record to APPROVED or REJECTED.
	// The actor must be the owning condominium's admin or a superadmin.
	// Deciding a non-PENDING record fails with apperrors.ErrInvalidTransition
	// and leaves the record unchanged.
	DecidePayment(ctx context.Context, paymentID string, outcome domain.PaymentStatus, requestingUserID string) (*domain.PaymentRecord, error)

	// ListCondominiumPayments lists all payment records of a condominium.
	ListCondominiumPayments(ctx context.Context, condominiumID string, requestingUserID string) ([]domain.PaymentRecord, error)

	// ListOwnPayments lists the payment records submitted by the actor.
	ListOwnPayments(ctx context.Context, requestingUserID string) ([]domain.PaymentRecord, error)
}
