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

// reservationHandler handles common-area booking requests and decisions.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

func registerReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade) {
	h := &reservationHandler{reservationService: reservationService}

	reservations := rg.Group("/reservations")
	{
		reservations.POST("", h.createReservation)
		reservations.GET("/mine", h.listOwnReservations)
		reservations.POST("/:id/decision", h.decideReservation)
	}
}

// createReservation godoc
// @Summary Request a common-area booking
// @Description Submits a PENDING request for an area that is currently free. The time range must be in the future with start before end.
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body dto.CreateReservationRequest true "Booking details"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Security BearerAuth
// @Router /reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), req, requestingUserID)
	if err != nil {
		logger.Warn("Failed to create reservation", slog.String("area_name", req.AreaName), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Reservation requested", slog.String("reservation_id", reservation.ReservationID))
	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

// listOwnReservations godoc
// @Summary List reservations requested by the caller
// @Tags reservations
// @Produce json
// @Success 200 {array} dto.ReservationResponse
// @Security BearerAuth
// @Router /reservations/mine [get]
func (h *reservationHandler) listOwnReservations(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	reservations, err := h.reservationService.ListOwnReservations(c.Request.Context(), requestingUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListReservationResponse(reservations))
}

// decideReservation godoc
// @Summary Approve or reject a pending reservation
// @Description Rejection requires a non-empty reason. Deciding an already decided request is a conflict.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param decision body dto.DecideReservationRequest true "Decision with optional reason"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Failure 409 {object} APIErrorResponse
// @Security BearerAuth
// @Router /reservations/{id}/decision [post]
func (h *reservationHandler) decideReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reservationID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.DecideReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	outcome := domain.ReservationRejected
	if req.Approve {
		outcome = domain.ReservationApproved
	}

	reservation, err := h.reservationService.DecideReservation(c.Request.Context(), reservationID, outcome, req.Reason, requestingUserID)
	if err != nil {
		logger.Warn("Failed to decide reservation", slog.String("reservation_id", reservationID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Reservation decided",
		slog.String("reservation_id", reservationID),
		slog.String("outcome", string(reservation.Status)))
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}
