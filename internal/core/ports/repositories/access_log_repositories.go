package repositories

import (
	"context"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// AccessLogRepository defines persistence operations for guard access logs.
type AccessLogRepository interface {
	// SaveAccessLog persists a new visitor/service entry.
	SaveAccessLog(ctx context.Context, entry domain.AccessLog) error

	// ListAccessLogsByCondominium retrieves entries for a condominium,
	// newest first.
	ListAccessLogsByCondominium(ctx context.Context, condominiumID string, limit int) ([]domain.AccessLog, error)
}
