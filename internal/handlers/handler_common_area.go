package handlers

import (
	"log/slog"
	"net/http"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// commonAreaHandler handles the bookable spaces of a condominium.
type commonAreaHandler struct {
	commonAreaService portssvc.CommonAreaSvcFacade
}

func registerCommonAreaRoutes(rg *gin.RouterGroup, commonAreaService portssvc.CommonAreaSvcFacade) {
	h := &commonAreaHandler{commonAreaService: commonAreaService}

	areas := rg.Group("/common-areas")
	{
		areas.POST("", h.createCommonArea)
		areas.PATCH("/:id/state", h.setState)
	}
}

// stateRequest toggles an area between FREE and OCCUPIED.
type stateRequest struct {
	State domain.CommonAreaState `json:"state" binding:"required,oneof=FREE OCCUPIED"`
}

// createCommonArea godoc
// @Summary Add a common area to a condominium
// @Tags common-areas
// @Accept json
// @Produce json
// @Param area body dto.CreateCommonAreaRequest true "Common area details"
// @Success 201 {object} dto.CommonAreaResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 409 {object} APIErrorResponse
// @Security BearerAuth
// @Router /common-areas [post]
func (h *commonAreaHandler) createCommonArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateCommonAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	area, err := h.commonAreaService.CreateCommonArea(c.Request.Context(), req, requestingUserID)
	if err != nil {
		logger.Warn("Failed to create common area", slog.String("name", req.Name), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Common area created", slog.String("common_area_id", area.CommonAreaID))
	c.JSON(http.StatusCreated, dto.ToCommonAreaResponse(area))
}

// setState godoc
// @Summary Mark a common area free or occupied
// @Tags common-areas
// @Accept json
// @Produce json
// @Param id path string true "Common area ID"
// @Param state body stateRequest true "New state"
// @Success 204 "No Content"
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Security BearerAuth
// @Router /common-areas/{id}/state [patch]
func (h *commonAreaHandler) setState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commonAreaID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req stateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.commonAreaService.SetCommonAreaState(c.Request.Context(), commonAreaID, req.State, requestingUserID); err != nil {
		logger.Warn("Failed to set common area state", slog.String("common_area_id", commonAreaID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
