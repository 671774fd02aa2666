package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/:id", h.getUser)
		users.POST("/admins", h.createAdmin)            // Superadmin only
		users.GET("/admins", h.listAdmins)              // Superadmin only
		users.POST("/:id/approve", h.approveUser)       // Admin of the user's condominium
		users.POST("/:id/deactivate", h.deactivateUser) // Admin of the user's condominium
		users.POST("/:id/reset-password", h.resetPassword)
	}
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}
	if requestingUserID != targetID {
		c.JSON(http.StatusForbidden, APIErrorResponse{Error: "Forbidden"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), targetID)
	if err != nil {
		logger.Warn("Failed to get user", slog.String("target_user_id", targetID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// createAdmin godoc
// @Summary Create a condominium admin account
// @Description Creates an ACTIVE admin account bound to a condominium. Superadmin only.
// @Tags users
// @Accept json
// @Produce json
// @Param admin body dto.CreateAdminRequest true "Admin details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 409 {object} APIErrorResponse
// @Security BearerAuth
// @Router /users/admins [post]
func (h *userHandler) createAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	admin, err := h.userService.CreateAdmin(c.Request.Context(), req, requestingUserID)
	if err != nil {
		logger.Warn("Failed to create admin", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Admin created", slog.String("admin_id", admin.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(admin))
}

// listAdmins godoc
// @Summary List all admin accounts
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} APIErrorResponse
// @Security BearerAuth
// @Router /users/admins [get]
func (h *userHandler) listAdmins(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	admins, err := h.userService.ListAdmins(c.Request.Context(), requestingUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserResponse(admins))
}

// approveUser godoc
// @Summary Approve a pending registration
// @Description Flips an INACTIVE owner/guard account to ACTIVE. Approving an already active account is a conflict.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Failure 409 {object} APIErrorResponse
// @Security BearerAuth
// @Router /users/{id}/approve [post]
func (h *userHandler) approveUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.ApproveRegistration(c.Request.Context(), targetID, requestingUserID)
	if err != nil {
		logger.Warn("Failed to approve registration", slog.String("target_user_id", targetID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Registration approved", slog.String("target_user_id", targetID))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deactivateUser godoc
// @Summary Deactivate a user account
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Failure 409 {object} APIErrorResponse
// @Security BearerAuth
// @Router /users/{id}/deactivate [post]
func (h *userHandler) deactivateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.DeactivateUser(c.Request.Context(), targetID, requestingUserID)
	if err != nil {
		logger.Warn("Failed to deactivate user", slog.String("target_user_id", targetID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("User deactivated", slog.String("target_user_id", targetID))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// resetPassword godoc
// @Summary Reset a user's password
// @Description Superadmin replaces an admin's password.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param password body dto.ResetPasswordRequest true "New password"
// @Success 204 "No Content"
// @Failure 400 {object} APIErrorResponse
// @Failure 403 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Security BearerAuth
// @Router /users/{id}/reset-password [post]
func (h *userHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), targetID, req.NewPassword, requestingUserID); err != nil {
		logger.Warn("Failed to reset password", slog.String("target_user_id", targetID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Password reset", slog.String("target_user_id", targetID))
	c.Status(http.StatusNoContent)
}
