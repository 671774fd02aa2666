package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/core/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUsers *MockUserRepository
	mockAuth  *MockCondominiumAuthorizer
	service   portssvc.UserSvcFacade

	condominiumID string
	adminID       string
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUsers = new(MockUserRepository)
	suite.mockAuth = new(MockCondominiumAuthorizer)
	suite.service = services.NewUserService(suite.mockUsers, suite.mockAuth)

	suite.condominiumID = uuid.NewString()
	suite.adminID = uuid.NewString()
}

func (suite *UserServiceTestSuite) TestRegisterUser_StartsInactive() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:          "Maria Lopez",
		Email:         "maria@example.com",
		Password:      "password123",
		Role:          domain.RoleOwner,
		CondominiumID: suite.condominiumID,
		DepartmentID:  uuid.NewString(),
	}

	suite.mockUsers.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Status == domain.StatusInactive && u.Role == domain.RoleOwner && u.Email == req.Email
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(domain.StatusInactive, user.Status)
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_OwnerWithoutDepartment() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:          "Maria Lopez",
		Email:         "maria@example.com",
		Password:      "password123",
		Role:          domain.RoleOwner,
		CondominiumID: suite.condominiumID,
	}

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUsers.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_GuardNeedsNoDepartment() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:          "Pedro Silva",
		Email:         "pedro@example.com",
		Password:      "password123",
		Role:          domain.RoleGuard,
		CondominiumID: suite.condominiumID,
	}

	suite.mockUsers.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusInactive, user.Status)
}

func (suite *UserServiceTestSuite) inactiveOwner() *domain.User {
	return &domain.User{
		UserID:        uuid.NewString(),
		Role:          domain.RoleOwner,
		Status:        domain.StatusInactive,
		CondominiumID: suite.condominiumID,
		DepartmentID:  uuid.NewString(),
	}
}

func (suite *UserServiceTestSuite) TestApproveRegistration_ActivatesAccount() {
	ctx := context.Background()
	target := suite.inactiveOwner()

	suite.mockUsers.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()
	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()
	suite.mockUsers.On("UpdateUserStatusIfCurrent", ctx, target.UserID, domain.StatusInactive, domain.StatusActive, suite.adminID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()

	approved, err := suite.service.ApproveRegistration(ctx, target.UserID, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusActive, approved.Status)
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestApproveRegistration_AlreadyActive() {
	ctx := context.Background()
	target := suite.inactiveOwner()
	target.Status = domain.StatusActive

	suite.mockUsers.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()
	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()

	approved, err := suite.service.ApproveRegistration(ctx, target.UserID, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(approved)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockUsers.AssertNotCalled(suite.T(), "UpdateUserStatusIfCurrent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestApproveRegistration_LostRace() {
	ctx := context.Background()
	target := suite.inactiveOwner()

	suite.mockUsers.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()
	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()
	suite.mockUsers.On("UpdateUserStatusIfCurrent", ctx, target.UserID, domain.StatusInactive, domain.StatusActive, suite.adminID, mock.AnythingOfType("time.Time")).Return(false, nil).Once()

	approved, err := suite.service.ApproveRegistration(ctx, target.UserID, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(approved)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *UserServiceTestSuite) TestApproveRegistration_AdminTargetRejected() {
	ctx := context.Background()
	target := suite.inactiveOwner()
	target.Role = domain.RoleAdmin

	suite.mockUsers.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()

	approved, err := suite.service.ApproveRegistration(ctx, target.UserID, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(approved)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestDeactivateUser_Success() {
	ctx := context.Background()
	target := suite.inactiveOwner()
	target.Status = domain.StatusActive

	suite.mockUsers.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()
	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()
	suite.mockUsers.On("UpdateUserStatusIfCurrent", ctx, target.UserID, domain.StatusActive, domain.StatusInactive, suite.adminID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()

	deactivated, err := suite.service.DeactivateUser(ctx, target.UserID, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusInactive, deactivated.Status)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "maria@example.com",
		PasswordHash: hash,
		Role:         domain.RoleOwner,
		Status:       domain.StatusActive,
	}

	suite.mockUsers.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, user.Email, "password123")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authenticated.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	user := &domain.User{
		Email:        "maria@example.com",
		PasswordHash: hash,
		Status:       domain.StatusActive,
	}

	suite.mockUsers.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, user.Email, "not-the-password")

	suite.Require().Error(err)
	suite.Nil(authenticated)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_InactiveAccountRejected() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	user := &domain.User{
		Email:        "maria@example.com",
		PasswordHash: hash,
		Status:       domain.StatusInactive,
	}

	suite.mockUsers.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, user.Email, "password123")

	suite.Require().Error(err)
	suite.Nil(authenticated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestCreateAdmin_RequiresSuperadmin() {
	ctx := context.Background()
	actor := &domain.User{UserID: suite.adminID, Role: domain.RoleAdmin, Status: domain.StatusActive}
	req := dto.CreateAdminRequest{
		Name:          "New Admin",
		Email:         "admin@example.com",
		Password:      "password123",
		CondominiumID: suite.condominiumID,
	}

	suite.mockUsers.On("FindUserByID", ctx, suite.adminID).Return(actor, nil).Once()

	admin, err := suite.service.CreateAdmin(ctx, req, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(admin)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUsers.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateAdmin_Success() {
	ctx := context.Background()
	superadminID := uuid.NewString()
	actor := &domain.User{UserID: superadminID, Role: domain.RoleSuperadmin, Status: domain.StatusActive}
	req := dto.CreateAdminRequest{
		Name:          "New Admin",
		Email:         "admin@example.com",
		Password:      "password123",
		CondominiumID: suite.condominiumID,
	}

	suite.mockUsers.On("FindUserByID", ctx, superadminID).Return(actor, nil).Once()
	suite.mockUsers.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleAdmin && u.Status == domain.StatusActive && u.CondominiumID == suite.condominiumID
	})).Return(nil).Once()

	admin, err := suite.service.CreateAdmin(ctx, req, superadminID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, admin.Role)
	suite.Equal(domain.StatusActive, admin.Status)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
