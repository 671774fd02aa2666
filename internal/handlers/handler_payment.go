package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// paymentHandler handles payment submission and decisions.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := &paymentHandler{paymentService: paymentService}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.submitPayment)
		payments.GET("/mine", h.listOwnPayments)
		payments.POST("/:id/decision", h.decidePayment)
	}
}

// submitPayment godoc
// @Summary Submit a payment for the caller's department
// @Description Creates a PENDING record with the owed amount frozen from the share in effect right now. Conflicts when an approved payment already covers the period.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.SubmitPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 409 {object} APIErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) submitPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.SubmitPayment(c.Request.Context(), req, requestingUserID)
	if err != nil {
		logger.Warn("Failed to submit payment",
			slog.String("department_id", req.DepartmentID),
			slog.String("period", req.Period),
			slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Payment submitted",
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount_paid", payment.AmountPaid.String()))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listOwnPayments godoc
// @Summary List payments submitted by the caller
// @Tags payments
// @Produce json
// @Success 200 {array} dto.PaymentResponse
// @Security BearerAuth
// @Router /payments/mine [get]
func (h *paymentHandler) listOwnPayments(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	payments, err := h.paymentService.ListOwnPayments(c.Request.Context(), requestingUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// decidePayment godoc
// @Summary Approve or reject a pending payment
// @Description Only the owning condominium's admin (or a superadmin) may decide. Deciding an already decided payment is a conflict; the stored amount never changes.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param decision body dto.DecidePaymentRequest true "Decision"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Failure 409 {object} APIErrorResponse
// @Security BearerAuth
// @Router /payments/{id}/decision [post]
func (h *paymentHandler) decidePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.DecidePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.DecidePayment(c.Request.Context(), paymentID, req.Outcome, requestingUserID)
	if err != nil {
		logger.Warn("Failed to decide payment", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Payment decided",
		slog.String("payment_id", paymentID),
		slog.String("outcome", string(payment.Status)))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
