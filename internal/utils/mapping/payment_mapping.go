package mapping

import (
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/models"
)

// ToModelPayment converts a domain PaymentRecord to a model PaymentRecord
func ToModelPayment(d domain.PaymentRecord) models.PaymentRecord {
	m := models.PaymentRecord{
		PaymentID:     d.PaymentID,
		CondominiumID: d.CondominiumID,
		DepartmentID:  d.DepartmentID,
		ExpenseID:     d.ExpenseID,
		Period:        d.Period,
		AmountPaid:    d.AmountPaid,
		Method:        string(d.Method),
		Status:        string(d.Status),
		SubmittedBy:   d.SubmittedBy,
		SubmittedAt:   d.SubmittedAt,
		DecidedAt:     d.DecidedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.DecidedBy != "" {
		m.DecidedBy = &d.DecidedBy
	}
	return m
}

// ToDomainPayment converts a model PaymentRecord to a domain PaymentRecord
func ToDomainPayment(m models.PaymentRecord) domain.PaymentRecord {
	d := domain.PaymentRecord{
		PaymentID:     m.PaymentID,
		CondominiumID: m.CondominiumID,
		DepartmentID:  m.DepartmentID,
		ExpenseID:     m.ExpenseID,
		Period:        m.Period,
		AmountPaid:    m.AmountPaid,
		Method:        domain.PaymentMethod(m.Method),
		Status:        domain.PaymentStatus(m.Status),
		SubmittedBy:   m.SubmittedBy,
		SubmittedAt:   m.SubmittedAt,
		DecidedAt:     m.DecidedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.DecidedBy != nil {
		d.DecidedBy = *m.DecidedBy
	}
	return d
}

// ToDomainPaymentSlice converts a slice of model PaymentRecords to domain PaymentRecords
func ToDomainPaymentSlice(ms []models.PaymentRecord) []domain.PaymentRecord {
	ds := make([]domain.PaymentRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
