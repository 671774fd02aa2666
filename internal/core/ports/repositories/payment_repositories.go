package repositories

import (
	"context"
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// PaymentReader defines read operations for payment records
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment record.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error)

	// HasApprovedPayment reports whether an APPROVED record exists for the
	// department and period.
	HasApprovedPayment(ctx context.Context, departmentID string, period string) (bool, error)

	// ListPaymentsByCondominium retrieves payment records for a condominium,
	// newest submissions first.
	ListPaymentsByCondominium(ctx context.Context, condominiumID string) ([]domain.PaymentRecord, error)

	// ListPaymentsBySubmitter retrieves payment records submitted by a user.
	ListPaymentsBySubmitter(ctx context.Context, userID string) ([]domain.PaymentRecord, error)
}

// PaymentWriter defines write operations for payment records
type PaymentWriter interface {
	// SavePayment persists a new payment record. Records are never deleted.
	SavePayment(ctx context.Context, payment domain.PaymentRecord) error

	// DecidePaymentIfPending transitions the record to outcome only when it
	// is still PENDING, returning false when the guard fails. Concurrent
	// decisions therefore serialize: exactly one caller wins.
	DecidePaymentIfPending(ctx context.Context, paymentID string, outcome domain.PaymentStatus, decidedBy string, now time.Time) (bool, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
