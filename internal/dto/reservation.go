package dto

import (
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// CreateReservationRequest defines data for booking a common area.
type CreateReservationRequest struct {
	AreaName  string    `json:"areaName" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// DecideReservationRequest carries the admin's outcome for a pending
// reservation. Reason is mandatory for rejections.
type DecideReservationRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

// ReservationResponse defines data returned for a reservation request.
type ReservationResponse struct {
	ReservationID   string                   `json:"reservationID"`
	CondominiumID   string                   `json:"condominiumID"`
	AreaName        string                   `json:"areaName"`
	RequestedBy     string                   `json:"requestedBy"`
	StartTime       time.Time                `json:"startTime"`
	EndTime         time.Time                `json:"endTime"`
	Status          domain.ReservationStatus `json:"status"`
	RejectionReason string                   `json:"rejectionReason,omitempty"`
	DecidedBy       string                   `json:"decidedBy,omitempty"`
	DecidedAt       *time.Time               `json:"decidedAt,omitempty"`
}

// ToReservationResponse converts a domain.ReservationRequest to DTO.
func ToReservationResponse(r *domain.ReservationRequest) ReservationResponse {
	return ReservationResponse{
		ReservationID:   r.ReservationID,
		CondominiumID:   r.CondominiumID,
		AreaName:        r.AreaName,
		RequestedBy:     r.RequestedBy,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
		DecidedBy:       r.DecidedBy,
		DecidedAt:       r.DecidedAt,
	}
}

// ToListReservationResponse converts a slice of domain.ReservationRequest to DTOs.
func ToListReservationResponse(rs []domain.ReservationRequest) []ReservationResponse {
	res := make([]ReservationResponse, len(rs))
	for i, r := range rs {
		res[i] = ToReservationResponse(&r)
	}
	return res
}
