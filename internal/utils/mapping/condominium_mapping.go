package mapping

import (
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/models"
)

// ToModelCondominium converts a domain Condominium to a model Condominium
func ToModelCondominium(d domain.Condominium) models.Condominium {
	return models.Condominium{
		CondominiumID: d.CondominiumID,
		Name:          d.Name,
		Address:       d.Address,
		AdminID:       d.AdminID,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCondominium converts a model Condominium to a domain Condominium
func ToDomainCondominium(m models.Condominium) domain.Condominium {
	return domain.Condominium{
		CondominiumID: m.CondominiumID,
		Name:          m.Name,
		Address:       m.Address,
		AdminID:       m.AdminID,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCondominiumSlice converts a slice of model Condominiums to domain Condominiums
func ToDomainCondominiumSlice(ms []models.Condominium) []domain.Condominium {
	ds := make([]domain.Condominium, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCondominium(m)
	}
	return ds
}

// ToModelCommonArea converts a domain CommonArea to a model CommonArea
func ToModelCommonArea(d domain.CommonArea) models.CommonArea {
	return models.CommonArea{
		CommonAreaID:  d.CommonAreaID,
		CondominiumID: d.CondominiumID,
		Name:          d.Name,
		Description:   d.Description,
		State:         string(d.State),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCommonArea converts a model CommonArea to a domain CommonArea
func ToDomainCommonArea(m models.CommonArea) domain.CommonArea {
	return domain.CommonArea{
		CommonAreaID:  m.CommonAreaID,
		CondominiumID: m.CondominiumID,
		Name:          m.Name,
		Description:   m.Description,
		State:         domain.CommonAreaState(m.State),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCommonAreaSlice converts a slice of model CommonAreas to domain CommonAreas
func ToDomainCommonAreaSlice(ms []models.CommonArea) []domain.CommonArea {
	ds := make([]domain.CommonArea, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCommonArea(m)
	}
	return ds
}
