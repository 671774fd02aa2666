package models

import (
	"github.com/shopspring/decimal"
)

// MonthlyExpense represents a monthly expense row. (condominium_id, period)
// is unique; a duplicate insert surfaces as a conflict.
type MonthlyExpense struct {
	ExpenseID     string          `db:"expense_id"`
	CondominiumID string          `db:"condominium_id"`
	Period        string          `db:"period"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Description   string          `db:"description"`
	AuditFields
}
