package services

import (
	"context"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	"github.com/kvillacis/condo_management_app/internal/dto"
)

// AccessLogSvcFacade is the guard-facing registry of visits and services.
type AccessLogSvcFacade interface {
	// RegisterAccess records a visitor or service entry. The actor must be
	// a guard of the condominium.
	RegisterAccess(ctx context.Context, req dto.RegisterAccessRequest, requestingUserID string) (*domain.AccessLog, error)

	// ListAccessLogs lists a condominium's recent entries for guard and
	// admin dashboards.
	ListAccessLogs(ctx context.Context, condominiumID string, requestingUserID string) ([]domain.AccessLog, error)
}
