package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord represents a payment row. AmountPaid is written once on
// insert and never updated; decision columns are NULL while PENDING.
type PaymentRecord struct {
	PaymentID     string          `db:"payment_id"`
	CondominiumID string          `db:"condominium_id"`
	DepartmentID  string          `db:"department_id"`
	ExpenseID     string          `db:"expense_id"`
	Period        string          `db:"period"`
	AmountPaid    decimal.Decimal `db:"amount_paid"`
	Method        string          `db:"method"`
	Status        string          `db:"status"`
	SubmittedBy   string          `db:"submitted_by"`
	SubmittedAt   time.Time       `db:"submitted_at"`
	DecidedBy     *string         `db:"decided_by"`
	DecidedAt     *time.Time      `db:"decided_at"`
	AuditFields
}
