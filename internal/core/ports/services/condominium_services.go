package services

import (
	"context"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/dto"
)

// CondominiumReaderSvc defines read operations for condominium data
type CondominiumReaderSvc interface {
	// GetCondominiumByID retrieves a specific condominium.
	GetCondominiumByID(ctx context.Context, condominiumID string) (*domain.Condominium, error)

	// ListCondominiums retrieves condominiums visible to the requesting user:
	// all of them for superadmins, their own for admins.
	ListCondominiums(ctx context.Context, requestingUserID string) ([]domain.Condominium, error)
}

// CondominiumWriterSvc defines write operations for condominium data
type CondominiumWriterSvc interface {
	// CreateCondominium persists a new condominium (superadmin only).
	CreateCondominium(ctx context.Context, req dto.CreateCondominiumRequest, requestingUserID string) (*domain.Condominium, error)

	// SetCondominiumActive toggles the active flag (superadmin only).
	SetCondominiumActive(ctx context.Context, condominiumID string, active bool, requestingUserID string) error

	// CreateDepartment adds a department to a condominium with a zero share.
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, requestingUserID string) (*domain.Department, error)
}

// CondominiumAuthorizerSvc is the single authorization choke point for every
// decide/assign/record operation: the actor must be the condominium's admin
// or a superadmin.
type CondominiumAuthorizerSvc interface {
	// AuthorizeAdmin returns apperrors.ErrForbidden unless actorID is the
	// condominium's admin or a superadmin.
	AuthorizeAdmin(ctx context.Context, actorID string, condominiumID string) error
}

// CondominiumSvcFacade combines all condominium-related service interfaces
type CondominiumSvcFacade interface {
	CondominiumReaderSvc
	CondominiumWriterSvc
	CondominiumAuthorizerSvc
}
