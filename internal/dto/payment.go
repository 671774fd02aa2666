package dto

import (
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/utils/apportion"
	"github.com/shopspring/decimal"
)

// SubmitPaymentRequest defines data for an owner submitting a payment.
type SubmitPaymentRequest struct {
	DepartmentID string               `json:"departmentID" binding:"required"`
	Period       string               `json:"period" binding:"required,period"` // "YYYY-MM"
	Method       domain.PaymentMethod `json:"method" binding:"required,oneof=CASH TRANSFER"`
}

// DecidePaymentRequest carries the admin's outcome for a pending payment.
type DecidePaymentRequest struct {
	Outcome domain.PaymentStatus `json:"outcome" binding:"required,oneof=APPROVED REJECTED"`
}

// PaymentResponse defines data returned for a payment record. AmountPaid is
// the frozen submission-time value, rounded to 2 decimals for display here.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	CondominiumID string               `json:"condominiumID"`
	DepartmentID  string               `json:"departmentID"`
	Period        string               `json:"period"`
	AmountPaid    decimal.Decimal      `json:"amountPaid"`
	Method        domain.PaymentMethod `json:"method"`
	Status        domain.PaymentStatus `json:"status"`
	SubmittedBy   string               `json:"submittedBy"`
	SubmittedAt   time.Time            `json:"submittedAt"`
	DecidedBy     string               `json:"decidedBy,omitempty"`
	DecidedAt     *time.Time           `json:"decidedAt,omitempty"`
}

// ToPaymentResponse converts a domain.PaymentRecord to DTO.
func ToPaymentResponse(p *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		CondominiumID: p.CondominiumID,
		DepartmentID:  p.DepartmentID,
		Period:        p.Period,
		AmountPaid:    apportion.RoundCurrency(p.AmountPaid),
		Method:        p.Method,
		Status:        p.Status,
		SubmittedBy:   p.SubmittedBy,
		SubmittedAt:   p.SubmittedAt,
		DecidedBy:     p.DecidedBy,
		DecidedAt:     p.DecidedAt,
	}
}

// ToListPaymentResponse converts a slice of domain.PaymentRecord to DTOs.
func ToListPaymentResponse(ps []domain.PaymentRecord) []PaymentResponse {
	res := make([]PaymentResponse, len(ps))
	for i, p := range ps {
		res[i] = ToPaymentResponse(&p)
	}
	return res
}
