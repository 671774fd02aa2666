package models

import "time"

// ReservationRequest represents a reservation row. RejectionReason is empty
// unless status is REJECTED; decision columns are NULL while PENDING.
type ReservationRequest struct {
	ReservationID   string     `db:"reservation_id"`
	CondominiumID   string     `db:"condominium_id"`
	CommonAreaID    string     `db:"common_area_id"`
	AreaName        string     `db:"area_name"`
	RequestedBy     string     `db:"requested_by"`
	StartTime       time.Time  `db:"start_time"`
	EndTime         time.Time  `db:"end_time"`
	Status          string     `db:"status"`
	RejectionReason string     `db:"rejection_reason"`
	DecidedBy       *string    `db:"decided_by"`
	DecidedAt       *time.Time `db:"decided_at"`
	AuditFields
}
