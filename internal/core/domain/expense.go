package domain

import "github.com/shopspring/decimal"

// MonthlyExpense is the recorded total cost of a condominium for one
// calendar period ("YYYY-MM"). At most one expense exists per condominium
// and period; corrections are new records, never in-place edits.
type MonthlyExpense struct {
	ExpenseID     string          `json:"expenseID"`
	CondominiumID string          `json:"condominiumID"`
	Period        string          `json:"period"` // "2025-07"
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Description   string          `json:"description"`
	AuditFields
}
