package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// accessLogHandler handles guard gate registrations.
type accessLogHandler struct {
	accessLogService portssvc.AccessLogSvcFacade
}

func registerAccessLogRoutes(rg *gin.RouterGroup, accessLogService portssvc.AccessLogSvcFacade) {
	h := &accessLogHandler{accessLogService: accessLogService}

	rg.POST("/access-logs", h.registerAccess)
}

// registerAccess godoc
// @Summary Register a visitor or service entry
// @Description Guards record entries for their own condominium.
// @Tags access-logs
// @Accept json
// @Produce json
// @Param entry body dto.RegisterAccessRequest true "Entry details"
// @Success 201 {object} dto.AccessLogResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Security BearerAuth
// @Router /access-logs [post]
func (h *accessLogHandler) registerAccess(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RegisterAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.accessLogService.RegisterAccess(c.Request.Context(), req, requestingUserID)
	if err != nil {
		logger.Warn("Failed to register access entry", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Access entry registered", slog.String("access_log_id", entry.AccessLogID), slog.String("kind", string(entry.Kind)))
	c.JSON(http.StatusCreated, dto.ToAccessLogResponse(entry))
}
