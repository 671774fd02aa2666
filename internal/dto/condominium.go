package dto

import (
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// CreateCondominiumRequest defines data for creating a new condominium.
type CreateCondominiumRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	AdminID string `json:"adminID"` // optional: assign the managing admin at creation
}

// SetActiveRequest toggles an entity's active flag.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// CondominiumResponse defines data returned for a condominium.
type CondominiumResponse struct {
	CondominiumID string    `json:"condominiumID"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	AdminID       string    `json:"adminID,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToCondominiumResponse converts a domain.Condominium to DTO.
func ToCondominiumResponse(c *domain.Condominium) CondominiumResponse {
	return CondominiumResponse{
		CondominiumID: c.CondominiumID,
		Name:          c.Name,
		Address:       c.Address,
		AdminID:       c.AdminID,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
	}
}

// ToListCondominiumResponse converts a slice of domain.Condominium to DTOs.
func ToListCondominiumResponse(cs []domain.Condominium) []CondominiumResponse {
	res := make([]CondominiumResponse, len(cs))
	for i, c := range cs {
		res[i] = ToCondominiumResponse(&c)
	}
	return res
}

// CreateCommonAreaRequest defines data for adding a common area.
type CreateCommonAreaRequest struct {
	CondominiumID string `json:"condominiumID" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
}

// CommonAreaResponse defines data returned for a common area.
type CommonAreaResponse struct {
	CommonAreaID  string                 `json:"commonAreaID"`
	CondominiumID string                 `json:"condominiumID"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	State         domain.CommonAreaState `json:"state"`
}

// ToCommonAreaResponse converts a domain.CommonArea to DTO.
func ToCommonAreaResponse(a *domain.CommonArea) CommonAreaResponse {
	return CommonAreaResponse{
		CommonAreaID:  a.CommonAreaID,
		CondominiumID: a.CondominiumID,
		Name:          a.Name,
		Description:   a.Description,
		State:         a.State,
	}
}

// ToListCommonAreaResponse converts a slice of domain.CommonArea to DTOs.
func ToListCommonAreaResponse(areas []domain.CommonArea) []CommonAreaResponse {
	res := make([]CommonAreaResponse, len(areas))
	for i, a := range areas {
		res[i] = ToCommonAreaResponse(&a)
	}
	return res
}
