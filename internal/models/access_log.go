package models

import "time"

// AccessLog represents a gate access row registered by a guard.
type AccessLog struct {
	AccessLogID   string    `db:"access_log_id"`
	CondominiumID string    `db:"condominium_id"`
	GuardID       string    `db:"guard_id"`
	DepartmentID  string    `db:"department_id"`
	VisitorName   string    `db:"visitor_name"`
	Kind          string    `db:"kind"`
	Note          string    `db:"note"`
	LoggedAt      time.Time `db:"logged_at"`
}
