package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	"github.com/kvillacis/condo_management_app/internal/models"
	"github.com/kvillacis/condo_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

var FULL_PAYMENT_SELECT_QUERY = `
SELECT
	p.payment_id, p.condominium_id, p.department_id, p.expense_id, p.period,
	p.amount_paid, p.method, p.status, p.submitted_by, p.submitted_at,
	p.decided_by, p.decided_at,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
FROM payment_records p
`

func (r *PgxPaymentRepository) getPayments(ctx context.Context, filterQuery string, args ...any) ([]domain.PaymentRecord, error) {
	query := FULL_PAYMENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to query payment records", err)
	}
	defer rows.Close()
	modelPayments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PaymentRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.PaymentRecord{}, nil
		}
		return nil, apperrors.NewUnavailableError("failed to collect payment rows", err)
	}
	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.PaymentRecord) error {
	modelPayment := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payment_records (
			payment_id, condominium_id, department_id, expense_id, period,
			amount_paid, method, status, submitted_by, submitted_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelPayment.PaymentID,
		modelPayment.CondominiumID,
		modelPayment.DepartmentID,
		modelPayment.ExpenseID,
		modelPayment.Period,
		modelPayment.AmountPaid,
		modelPayment.Method,
		modelPayment.Status,
		modelPayment.SubmittedBy,
		modelPayment.SubmittedAt,
		modelPayment.CreatedAt,
		modelPayment.CreatedBy,
		modelPayment.LastUpdatedAt,
		modelPayment.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("payment " + payment.PaymentID + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("department or expense does not exist")
			}
		}
		return apperrors.NewUnavailableError("failed to save payment "+payment.PaymentID, err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	payments, err := r.getPayments(ctx, `WHERE p.payment_id = $1`, paymentID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &payments[0], nil
}

func (r *PgxPaymentRepository) HasApprovedPayment(ctx context.Context, departmentID string, period string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payment_records
			WHERE department_id = $1 AND period = $2 AND status = $3
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, departmentID, period, string(domain.PaymentApproved)).Scan(&exists); err != nil {
		return false, apperrors.NewUnavailableError("failed to check approved payment for department "+departmentID, err)
	}
	return exists, nil
}

func (r *PgxPaymentRepository) ListPaymentsByCondominium(ctx context.Context, condominiumID string) ([]domain.PaymentRecord, error) {
	return r.getPayments(ctx, `WHERE p.condominium_id = $1 ORDER BY p.submitted_at DESC`, condominiumID)
}

func (r *PgxPaymentRepository) ListPaymentsBySubmitter(ctx context.Context, userID string) ([]domain.PaymentRecord, error) {
	return r.getPayments(ctx, `WHERE p.submitted_by = $1 ORDER BY p.submitted_at DESC`, userID)
}

// DecidePaymentIfPending finalizes a PENDING record. The status guard in the
// WHERE clause is the whole concurrency story: when two admins decide at
// once, exactly one UPDATE matches a row and the other caller gets false.
// amount_paid is deliberately absent from the SET list.
func (r *PgxPaymentRepository) DecidePaymentIfPending(ctx context.Context, paymentID string, outcome domain.PaymentStatus, decidedBy string, now time.Time) (bool, error) {
	query := `
		UPDATE payment_records
		SET status = $1, decided_by = $2, decided_at = $3,
		    last_updated_at = $3, last_updated_by = $2
		WHERE payment_id = $4 AND status = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, string(outcome), decidedBy, now, paymentID, string(domain.PaymentPending))
	if err != nil {
		return false, apperrors.NewUnavailableError("failed to decide payment "+paymentID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
