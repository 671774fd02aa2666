package handlers

import (
	"errors"
	"net/http"

	"github.com/kvillacis/condo_management_app/cmd/docs"
	"github.com/kvillacis/condo_management_app/internal/apperrors"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/middleware"
	"github.com/kvillacis/condo_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// APIErrorResponse represents a generic error response for API operations
type APIErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	RegisterCondominiumRoutes(v1, services.Condominium, services.ShareLedger, services.Expense, services.Payment, services.Reservation, services.CommonArea, services.AccessLog, services.User)
	registerPaymentRoutes(v1, services.Payment)
	registerReservationRoutes(v1, services.Reservation)
	registerCommonAreaRoutes(v1, services.CommonArea)
	registerAccessLogRoutes(v1, services.AccessLog)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// respondServiceError translates service-layer errors into HTTP responses.
// Domain-specific errors a handler wants to decorate (the share overflow
// total, for instance) should be checked before falling through to here.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, APIErrorResponse{Error: "resource not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, APIErrorResponse{Error: "not authorized for this condominium"})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, APIErrorResponse{Error: "request was already decided"})
	case errors.Is(err, apperrors.ErrAlreadySettled):
		c.JSON(http.StatusConflict, APIErrorResponse{Error: "an approved payment already exists for this period"})
	case errors.Is(err, apperrors.ErrMissingReason):
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "rejection reason is required"})
	case errors.Is(err, apperrors.ErrDuplicatePeriod):
		c.JSON(http.StatusConflict, APIErrorResponse{Error: "an expense is already recorded for this period"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, APIErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, APIErrorResponse{Error: "storage temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, APIErrorResponse{Error: "internal error"})
	}
}
