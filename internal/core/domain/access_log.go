package domain

import "time"

// AccessKind distinguishes guard-registered visitor entries from service
// personnel entries (deliveries, maintenance, etc.).
type AccessKind string

const (
	AccessVisit   AccessKind = "VISIT"
	AccessService AccessKind = "SERVICE"
)

// AccessLog is a guard's record of a visitor or service entering the
// condominium, optionally bound to the department being visited.
type AccessLog struct {
	AccessLogID   string     `json:"accessLogID"`
	CondominiumID string     `json:"condominiumID"`
	GuardID       string     `json:"guardID"`
	DepartmentID  string     `json:"departmentID,omitempty"`
	VisitorName   string     `json:"visitorName"`
	Kind          AccessKind `json:"kind"`
	Note          string     `json:"note,omitempty"`
	LoggedAt      time.Time  `json:"loggedAt"`
}
