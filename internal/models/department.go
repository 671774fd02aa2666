package models

import (
	"github.com/shopspring/decimal"
)

// Department represents a department row. Share is persisted as NUMERIC(9,8)
// so the stored value never loses the precision the apportionment math needs.
type Department struct {
	DepartmentID  string          `db:"department_id"`
	CondominiumID string          `db:"condominium_id"`
	Name          string          `db:"name"`
	Code          string          `db:"code"`
	GroupName     string          `db:"group_name"`
	Share         decimal.Decimal `db:"share"`
	AuditFields
}
