package mapping

import (
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/models"
)

// ToModelAccessLog converts a domain AccessLog to a model AccessLog
func ToModelAccessLog(d domain.AccessLog) models.AccessLog {
	return models.AccessLog{
		AccessLogID:   d.AccessLogID,
		CondominiumID: d.CondominiumID,
		GuardID:       d.GuardID,
		DepartmentID:  d.DepartmentID,
		VisitorName:   d.VisitorName,
		Kind:          string(d.Kind),
		Note:          d.Note,
		LoggedAt:      d.LoggedAt,
	}
}

// ToDomainAccessLog converts a model AccessLog to a domain AccessLog
func ToDomainAccessLog(m models.AccessLog) domain.AccessLog {
	return domain.AccessLog{
		AccessLogID:   m.AccessLogID,
		CondominiumID: m.CondominiumID,
		GuardID:       m.GuardID,
		DepartmentID:  m.DepartmentID,
		VisitorName:   m.VisitorName,
		Kind:          domain.AccessKind(m.Kind),
		Note:          m.Note,
		LoggedAt:      m.LoggedAt,
	}
}

// ToDomainAccessLogSlice converts a slice of model AccessLogs to domain AccessLogs
func ToDomainAccessLogSlice(ms []models.AccessLog) []domain.AccessLog {
	ds := make([]domain.AccessLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccessLog(m)
	}
	return ds
}
