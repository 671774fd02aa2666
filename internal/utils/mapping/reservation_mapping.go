package mapping

import (
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/models"
)

// ToModelReservation converts a domain ReservationRequest to a model ReservationRequest
func ToModelReservation(d domain.ReservationRequest) models.ReservationRequest {
	m := models.ReservationRequest{
		ReservationID:   d.ReservationID,
		CondominiumID:   d.CondominiumID,
		CommonAreaID:    d.CommonAreaID,
		AreaName:        d.AreaName,
		RequestedBy:     d.RequestedBy,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		Status:          string(d.Status),
		RejectionReason: d.RejectionReason,
		DecidedAt:       d.DecidedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.DecidedBy != "" {
		m.DecidedBy = &d.DecidedBy
	}
	return m
}

// ToDomainReservation converts a model ReservationRequest to a domain ReservationRequest
func ToDomainReservation(m models.ReservationRequest) domain.ReservationRequest {
	d := domain.ReservationRequest{
		ReservationID:   m.ReservationID,
		CondominiumID:   m.CondominiumID,
		CommonAreaID:    m.CommonAreaID,
		AreaName:        m.AreaName,
		RequestedBy:     m.RequestedBy,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		Status:          domain.ReservationStatus(m.Status),
		RejectionReason: m.RejectionReason,
		DecidedAt:       m.DecidedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.DecidedBy != nil {
		d.DecidedBy = *m.DecidedBy
	}
	return d
}

// ToDomainReservationSlice converts a slice of model ReservationRequests to domain ReservationRequests
func ToDomainReservationSlice(ms []models.ReservationRequest) []domain.ReservationRequest {
	ds := make([]domain.ReservationRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReservation(m)
	}
	return ds
}
