package dto

import (
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/utils/apportion"
	"github.com/shopspring/decimal"
)

// RecordExpenseRequest defines data for recording a monthly expense.
type RecordExpenseRequest struct {
	CondominiumID string          `json:"condominiumID" binding:"required"`
	Period        string          `json:"period" binding:"required,period"` // "YYYY-MM"
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
	Description   string          `json:"description"`
}

// ExpenseResponse defines data returned for a monthly expense.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	CondominiumID string          `json:"condominiumID"`
	Period        string          `json:"period"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.MonthlyExpense to DTO.
func ToExpenseResponse(e *domain.MonthlyExpense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		CondominiumID: e.CondominiumID,
		Period:        e.Period,
		TotalAmount:   e.TotalAmount,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain.MonthlyExpense to DTOs.
func ToListExpenseResponse(es []domain.MonthlyExpense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(es))
	for i, e := range es {
		res[i] = ToExpenseResponse(&e)
	}
	return res
}

// DepartmentObligation is one department's owed amount for an expense,
// currency-rounded at this presentation boundary only.
type DepartmentObligation struct {
	DepartmentID string          `json:"departmentID"`
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	Share        decimal.Decimal `json:"share"`
	AmountOwed   decimal.Decimal `json:"amountOwed"`
}

// ApportionmentResponse is the admin view of how the latest expense splits
// across departments.
type ApportionmentResponse struct {
	Expense        ExpenseResponse        `json:"expense"`
	ShareTotal     decimal.Decimal        `json:"shareTotal"`     // display-rounded to 3 decimals
	PerUnitValue   decimal.Decimal        `json:"perUnitValue"`   // display only
	UnderAllocated bool                   `json:"underAllocated"` // raw total strictly below 1
	Obligations    []DepartmentObligation `json:"obligations"`
}

// ToDepartmentObligation computes the presentation row for one department.
func ToDepartmentObligation(d *domain.Department, expenseTotal decimal.Decimal) DepartmentObligation {
	return DepartmentObligation{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		Code:         d.Code,
		Share:        d.Share,
		AmountOwed:   apportion.RoundCurrency(apportion.AmountOwed(d.Share, expenseTotal)),
	}
}
