package dto

import (
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepartmentRequest defines data for adding a department.
type CreateDepartmentRequest struct {
	CondominiumID string `json:"condominiumID" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Code          string `json:"code" binding:"required"`
	Group         string `json:"group"`
}

// AssignSharesRequest sets the same share on a set of departments.
type AssignSharesRequest struct {
	DepartmentIDs []string        `json:"departmentIDs" binding:"required,min=1"`
	Share         decimal.Decimal `json:"share" binding:"required"`
}

// DepartmentResponse defines data returned for a department.
type DepartmentResponse struct {
	DepartmentID  string          `json:"departmentID"`
	CondominiumID string          `json:"condominiumID"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Group         string          `json:"group,omitempty"`
	Share         decimal.Decimal `json:"share"`
}

// ToDepartmentResponse converts a domain.Department to DTO.
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID:  d.DepartmentID,
		CondominiumID: d.CondominiumID,
		Name:          d.Name,
		Code:          d.Code,
		Group:         d.Group,
		Share:         d.Share,
	}
}

// ToListDepartmentResponse converts a slice of domain.Department to DTOs.
func ToListDepartmentResponse(ds []domain.Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(ds))
	for i, d := range ds {
		res[i] = ToDepartmentResponse(&d)
	}
	return res
}

// ShareTotalResponse is the condominium-wide share total, rounded to 3
// decimals for display, plus the strict under-allocation warning.
type ShareTotalResponse struct {
	CondominiumID  string          `json:"condominiumID"`
	Total          decimal.Decimal `json:"total"`
	UnderAllocated bool            `json:"underAllocated"`
}
