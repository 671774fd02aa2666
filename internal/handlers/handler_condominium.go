package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// condominiumHandler handles the condominium aggregate and its nested
// resources: departments, the share ledger, expenses and the various
// per-condominium listings.
type condominiumHandler struct {
	condominiumService portssvc.CondominiumSvcFacade
	shareLedgerService portssvc.ShareLedgerSvcFacade
	expenseService     portssvc.ExpenseSvcFacade
	paymentService     portssvc.PaymentSvcFacade
	reservationService portssvc.ReservationSvcFacade
	commonAreaService  portssvc.CommonAreaSvcFacade
	accessLogService   portssvc.AccessLogSvcFacade
	userService        portssvc.UserSvcFacade
}

// RegisterCondominiumRoutes wires the condominium aggregate's routes onto the
// authenticated v1 group. Exported so handler tests can register it against a
// bare router.
func RegisterCondominiumRoutes(
	rg *gin.RouterGroup,
	condominiumService portssvc.CondominiumSvcFacade,
	shareLedgerService portssvc.ShareLedgerSvcFacade,
	expenseService portssvc.ExpenseSvcFacade,
	paymentService portssvc.PaymentSvcFacade,
	reservationService portssvc.ReservationSvcFacade,
	commonAreaService portssvc.CommonAreaSvcFacade,
	accessLogService portssvc.AccessLogSvcFacade,
	userService portssvc.UserSvcFacade,
) {
	h := &condominiumHandler{
		condominiumService: condominiumService,
		shareLedgerService: shareLedgerService,
		expenseService:     expenseService,
		paymentService:     paymentService,
		reservationService: reservationService,
		commonAreaService:  commonAreaService,
		accessLogService:   accessLogService,
		userService:        userService,
	}

	condominiums := rg.Group("/condominiums")
	{
		condominiums.POST("", h.createCondominium)
		condominiums.GET("", h.listCondominiums)
		condominiums.GET("/:id", h.getCondominium)
		condominiums.PATCH("/:id/active", h.setActive)

		condominiums.POST("/:id/departments", h.createDepartment)
		condominiums.GET("/:id/departments", h.listDepartmentShares)
		condominiums.PUT("/:id/shares", h.assignShares)
		condominiums.GET("/:id/shares/total", h.getShareTotal)

		condominiums.POST("/:id/expenses", h.recordExpense)
		condominiums.GET("/:id/expenses", h.listExpenses)
		condominiums.GET("/:id/expenses/current", h.getCurrentExpense)
		condominiums.GET("/:id/expenses/apportionment", h.getApportionment)

		condominiums.GET("/:id/payments", h.listPayments)
		condominiums.GET("/:id/reservations", h.listReservations)
		condominiums.GET("/:id/common-areas", h.listCommonAreas)
		condominiums.GET("/:id/access-logs", h.listAccessLogs)
		condominiums.GET("/:id/users", h.listUsers)
	}
}

// createCondominium godoc
// @Summary Create a condominium
// @Description Superadmin only.
// @Tags condominiums
// @Accept json
// @Produce json
// @Param condominium body dto.CreateCondominiumRequest true "Condominium details"
// @Success 201 {object} dto.CondominiumResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums [post]
func (h *condominiumHandler) createCondominium(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateCondominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	condominium, err := h.condominiumService.CreateCondominium(c.Request.Context(), req, requestingUserID)
	if err != nil {
		logger.Warn("Failed to create condominium", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Condominium created", slog.String("condominium_id", condominium.CondominiumID))
	c.JSON(http.StatusCreated, dto.ToCondominiumResponse(condominium))
}

// listCondominiums godoc
// @Summary List condominiums visible to the caller
// @Tags condominiums
// @Produce json
// @Success 200 {array} dto.CondominiumResponse
// @Security BearerAuth
// @Router /condominiums [get]
func (h *condominiumHandler) listCondominiums(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	condominiums, err := h.condominiumService.ListCondominiums(c.Request.Context(), requestingUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCondominiumResponse(condominiums))
}

// getCondominium godoc
// @Summary Get a condominium by ID
// @Tags condominiums
// @Produce json
// @Param id path string true "Condominium ID"
// @Success 200 {object} dto.CondominiumResponse
// @Failure 404 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id} [get]
func (h *condominiumHandler) getCondominium(c *gin.Context) {
	condominium, err := h.condominiumService.GetCondominiumByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCondominiumResponse(condominium))
}

// setActive godoc
// @Summary Activate or deactivate a condominium
// @Description Superadmin only.
// @Tags condominiums
// @Accept json
// @Produce json
// @Param id path string true "Condominium ID"
// @Param active body dto.SetActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id}/active [patch]
func (h *condominiumHandler) setActive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.condominiumService.SetCondominiumActive(c.Request.Context(), condominiumID, *req.Active, requestingUserID); err != nil {
		logger.Warn("Failed to toggle condominium", slog.String("condominium_id", condominiumID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// createDepartment godoc
// @Summary Add a department to a condominium
// @Description The department starts with a zero share.
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Condominium ID"
// @Param department body dto.CreateDepartmentRequest true "Department details"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id}/departments [post]
func (h *condominiumHandler) createDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	req.CondominiumID = c.Param("id")

	department, err := h.condominiumService.CreateDepartment(c.Request.Context(), req, requestingUserID)
	if err != nil {
		logger.Warn("Failed to create department", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Department created", slog.String("department_id", department.DepartmentID))
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

// listDepartmentShares godoc
// @Summary List a condominium's departments grouped for the share view
// @Tags departments
// @Produce json
// @Param id path string true "Condominium ID"
// @Success 200 {object} map[string][]dto.DepartmentResponse
// @Failure 403 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id}/departments [get]
func (h *condominiumHandler) listDepartmentShares(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	grouped, err := h.shareLedgerService.ListDepartmentShares(c.Request.Context(), c.Param("id"), requestingUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	res := make(map[string][]dto.DepartmentResponse, len(grouped))
	for group, departments := range grouped {
		res[group] = dto.ToListDepartmentResponse(departments)
	}
	c.JSON(http.StatusOK, res)
}

// assignShares godoc
// @Summary Assign the same share to a set of departments
// @Description Sets (not increments) every listed department's share. Fails with 422 when the condominium-wide total would exceed 1.
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Condominium ID"
// @Param assignment body dto.AssignSharesRequest true "Share assignment"
// @Success 200 {object} dto.ShareTotalResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 422 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id}/shares [put]
func (h *condominiumHandler) assignShares(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AssignSharesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	err := h.shareLedgerService.AssignShares(c.Request.Context(), condominiumID, req.DepartmentIDs, req.Share, requestingUserID)
	if err != nil {
		var overflow *apperrors.ShareOverflowError
		if errors.As(err, &overflow) {
			logger.Warn("Share assignment rejected",
				slog.String("condominium_id", condominiumID),
				slog.String("would_be_total", overflow.WouldBeTotal.StringFixed(3)))
			c.JSON(http.StatusUnprocessableEntity, APIErrorResponse{Error: overflow.Error()})
			return
		}
		logger.Warn("Failed to assign shares", slog.String("condominium_id", condominiumID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	total, err := h.shareLedgerService.CurrentTotal(c.Request.Context(), condominiumID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Shares assigned", slog.String("condominium_id", condominiumID))
	c.JSON(http.StatusOK, total)
}

// getShareTotal godoc
// @Summary Get the condominium-wide share total
// @Tags departments
// @Produce json
// @Param id path string true "Condominium ID"
// @Success 200 {object} dto.ShareTotalResponse
// @Security BearerAuth
// @Router /condominiums/{id}/shares/total [get]
func (h *condominiumHandler) getShareTotal(c *gin.Context) {
	total, err := h.shareLedgerService.CurrentTotal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, total)
}

// recordExpense godoc
// @Summary Record a condominium's monthly expense
// @Description One expense per period; recording the same period twice is a conflict.
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Condominium ID"
// @Param expense body dto.RecordExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 409 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id}/expenses [post]
func (h *condominiumHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	req.CondominiumID = c.Param("id")

	expense, err := h.expenseService.RecordMonthlyExpense(c.Request.Context(), req, requestingUserID)
	if err != nil {
		logger.Warn("Failed to record expense", slog.String("period", req.Period), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Monthly expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("period", expense.Period))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List a condominium's monthly expenses
// @Tags expenses
// @Produce json
// @Param id path string true "Condominium ID"
// @Success 200 {array} dto.ExpenseResponse
// @Security BearerAuth
// @Router /condominiums/{id}/expenses [get]
func (h *condominiumHandler) listExpenses(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), c.Param("id"), requestingUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// getCurrentExpense godoc
// @Summary Get the latest recorded monthly expense
// @Tags expenses
// @Produce json
// @Param id path string true "Condominium ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id}/expenses/current [get]
func (h *condominiumHandler) getCurrentExpense(c *gin.Context) {
	expense, err := h.expenseService.GetCurrentExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// getApportionment godoc
// @Summary Apportion the latest expense across departments
// @Description Returns each department's owed amount (share times total) plus the display per-unit value and under-allocation flag.
// @Tags expenses
// @Produce json
// @Param id path string true "Condominium ID"
// @Success 200 {object} dto.ApportionmentResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id}/expenses/apportionment [get]
func (h *condominiumHandler) getApportionment(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	apportionment, err := h.expenseService.ApportionCurrentExpense(c.Request.Context(), c.Param("id"), requestingUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apportionment)
}

// listPayments godoc
// @Summary List a condominium's payment records
// @Tags payments
// @Produce json
// @Param id path string true "Condominium ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 403 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id}/payments [get]
func (h *condominiumHandler) listPayments(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	payments, err := h.paymentService.ListCondominiumPayments(c.Request.Context(), c.Param("id"), requestingUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// listReservations godoc
// @Summary List a condominium's reservation requests
// @Tags reservations
// @Produce json
// @Param id path string true "Condominium ID"
// @Param status query string false "Filter by status (PENDING, APPROVED, REJECTED)"
// @Success 200 {array} dto.ReservationResponse
// @Failure 403 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id}/reservations [get]
func (h *condominiumHandler) listReservations(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	status := domain.ReservationStatus(c.Query("status"))
	reservations, err := h.reservationService.ListCondominiumReservations(c.Request.Context(), c.Param("id"), status, requestingUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListReservationResponse(reservations))
}

// listCommonAreas godoc
// @Summary List a condominium's common areas
// @Tags common-areas
// @Produce json
// @Param id path string true "Condominium ID"
// @Success 200 {array} dto.CommonAreaResponse
// @Security BearerAuth
// @Router /condominiums/{id}/common-areas [get]
func (h *condominiumHandler) listCommonAreas(c *gin.Context) {
	areas, err := h.commonAreaService.ListCommonAreas(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommonAreaResponse(areas))
}

// listAccessLogs godoc
// @Summary List a condominium's recent gate access entries
// @Tags access-logs
// @Produce json
// @Param id path string true "Condominium ID"
// @Success 200 {array} dto.AccessLogResponse
// @Failure 403 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id}/access-logs [get]
func (h *condominiumHandler) listAccessLogs(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	logs, err := h.accessLogService.ListAccessLogs(c.Request.Context(), c.Param("id"), requestingUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccessLogResponse(logs))
}

// listUsers godoc
// @Summary List a condominium's users with a given role
// @Tags users
// @Produce json
// @Param id path string true "Condominium ID"
// @Param role query string true "Role to list (OWNER or GUARD)"
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} APIErrorResponse
// @Security BearerAuth
// @Router /condominiums/{id}/users [get]
func (h *condominiumHandler) listUsers(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	role := domain.UserRole(c.Query("role"))
	users, err := h.userService.ListCondominiumUsers(c.Request.Context(), c.Param("id"), role, requestingUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}
