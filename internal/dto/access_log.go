package dto

import (
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// RegisterAccessRequest defines data for a guard logging a visit or service.
type RegisterAccessRequest struct {
	VisitorName  string            `json:"visitorName" binding:"required"`
	Kind         domain.AccessKind `json:"kind" binding:"required,oneof=VISIT SERVICE"`
	DepartmentID string            `json:"departmentID"`
	Note         string            `json:"note"`
}

// AccessLogResponse defines data returned for an access log entry.
type AccessLogResponse struct {
	AccessLogID   string            `json:"accessLogID"`
	CondominiumID string            `json:"condominiumID"`
	GuardID       string            `json:"guardID"`
	DepartmentID  string            `json:"departmentID,omitempty"`
	VisitorName   string            `json:"visitorName"`
	Kind          domain.AccessKind `json:"kind"`
	Note          string            `json:"note,omitempty"`
	LoggedAt      time.Time         `json:"loggedAt"`
}

// ToAccessLogResponse converts a domain.AccessLog to DTO.
func ToAccessLogResponse(a *domain.AccessLog) AccessLogResponse {
	return AccessLogResponse{
		AccessLogID:   a.AccessLogID,
		CondominiumID: a.CondominiumID,
		GuardID:       a.GuardID,
		DepartmentID:  a.DepartmentID,
		VisitorName:   a.VisitorName,
		Kind:          a.Kind,
		Note:          a.Note,
		LoggedAt:      a.LoggedAt,
	}
}

// ToListAccessLogResponse converts a slice of domain.AccessLog to DTOs.
func ToListAccessLogResponse(as []domain.AccessLog) []AccessLogResponse {
	res := make([]AccessLogResponse, len(as))
	for i, a := range as {
		res[i] = ToAccessLogResponse(&a)
	}
	return res
}
