package domain

import "github.com/shopspring/decimal"

// Department is an individually owned unit within a condominium. Its share
// ("alícuota") is the normalized proportional claim, in [0,1], on any of the
// condominium's monthly expenses. A zero share is valid but leaves the
// condominium under-allocated.
type Department struct {
	DepartmentID  string          `json:"departmentID"`
	CondominiumID string          `json:"condominiumID"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`  // display number/code, e.g. "A-101"
	Group         string          `json:"group"` // building/tower grouping for the admin UI
	Share         decimal.Decimal `json:"share"`
	AuditFields
}
