package domain

import "time"

// ReservationStatus is the reservation lifecycle: PENDING -> {APPROVED, REJECTED}.
type ReservationStatus string

const (
	ReservationPending  ReservationStatus = "PENDING"
	ReservationApproved ReservationStatus = "APPROVED"
	ReservationRejected ReservationStatus = "REJECTED"
)

// IsTerminal reports whether no further transitions are allowed.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationApproved || s == ReservationRejected
}

// ReservationRequest is an owner's request to book a common area for a time
// range. Rejection always carries a non-empty reason. Overlapping time
// ranges for the same area are not checked against each other; whether that
// should be first-come-first-served or a hard conflict is still undecided.
type ReservationRequest struct {
	ReservationID   string            `json:"reservationID"`
	CondominiumID   string            `json:"condominiumID"`
	CommonAreaID    string            `json:"commonAreaID"`
	AreaName        string            `json:"areaName"`
	RequestedBy     string            `json:"requestedBy"` // non-owning user reference
	StartTime       time.Time         `json:"startTime"`
	EndTime         time.Time         `json:"endTime"`
	Status          ReservationStatus `json:"status"`
	RejectionReason string            `json:"rejectionReason,omitempty"`
	DecidedBy       string            `json:"decidedBy,omitempty"`
	DecidedAt       *time.Time        `json:"decidedAt,omitempty"`
	AuditFields
}
