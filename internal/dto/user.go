package dto

import (
	"time"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// RegisterUserRequest defines the data needed to register an owner or guard.
// The account is created INACTIVE and waits for admin approval.
type RegisterUserRequest struct {
	Name          string          `json:"name" binding:"required"`
	Email         string          `json:"email" binding:"required,email"`
	Password      string          `json:"password" binding:"required,min=8"`
	Role          domain.UserRole `json:"role" binding:"required,oneof=OWNER GUARD"`
	CondominiumID string          `json:"condominiumID" binding:"required"`
	DepartmentID  string          `json:"departmentID"` // required for owners, empty for guards
}

// CreateAdminRequest defines the data needed for a superadmin to create an admin.
type CreateAdminRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	CondominiumID string `json:"condominiumID" binding:"required"`
}

// ResetPasswordRequest defines the data for a superadmin password reset.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID        string            `json:"userID"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Role          domain.UserRole   `json:"role"`
	Status        domain.UserStatus `json:"status"`
	CondominiumID string            `json:"condominiumID,omitempty"`
	DepartmentID  string            `json:"departmentID,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Status:        u.Status,
		CondominiumID: u.CondominiumID,
		DepartmentID:  u.DepartmentID,
		CreatedAt:     u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}
