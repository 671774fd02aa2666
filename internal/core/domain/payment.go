package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment lifecycle: PENDING -> {APPROVED, REJECTED}.
// Both outcomes are terminal; re-payment for the same period creates a new
// record instead of reopening the old one.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentRejected PaymentStatus = "REJECTED"
)

// IsTerminal reports whether no further transitions are allowed.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentApproved || s == PaymentRejected
}

// PaymentMethod is how the owner claims to have paid.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodTransfer PaymentMethod = "TRANSFER"
)

// PaymentRecord is one department's payment attempt for one period.
// AmountPaid is frozen at submission time from the share assignment in
// effect at that moment; later share changes never alter it. Records are
// never deleted.
type PaymentRecord struct {
	PaymentID     string          `json:"paymentID"`
	CondominiumID string          `json:"condominiumID"`
	DepartmentID  string          `json:"departmentID"`
	ExpenseID     string          `json:"expenseID"`
	Period        string          `json:"period"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Method        PaymentMethod   `json:"method"`
	Status        PaymentStatus   `json:"status"`
	SubmittedBy   string          `json:"submittedBy"` // non-owning user reference
	SubmittedAt   time.Time       `json:"submittedAt"`
	DecidedBy     string          `json:"decidedBy,omitempty"`
	DecidedAt     *time.Time      `json:"decidedAt,omitempty"`
	AuditFields
}
