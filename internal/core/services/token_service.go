package services

import (
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/platform/config"
	"github.com/kvillacis/condo_management_app/internal/utils"
)

// tokenService issues signed JWTs for authenticated users.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new TokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(user domain.User) (string, error) {
	return utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}
