package mapping

import (
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/models"
)

// ToModelExpense converts a domain MonthlyExpense to a model MonthlyExpense
func ToModelExpense(d domain.MonthlyExpense) models.MonthlyExpense {
	return models.MonthlyExpense{
		ExpenseID:     d.ExpenseID,
		CondominiumID: d.CondominiumID,
		Period:        d.Period,
		TotalAmount:   d.TotalAmount,
		Description:   d.Description,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model MonthlyExpense to a domain MonthlyExpense
func ToDomainExpense(m models.MonthlyExpense) domain.MonthlyExpense {
	return domain.MonthlyExpense{
		ExpenseID:     m.ExpenseID,
		CondominiumID: m.CondominiumID,
		Period:        m.Period,
		TotalAmount:   m.TotalAmount,
		Description:   m.Description,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model MonthlyExpenses to domain MonthlyExpenses
func ToDomainExpenseSlice(ms []models.MonthlyExpense) []domain.MonthlyExpense {
	ds := make([]domain.MonthlyExpense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
