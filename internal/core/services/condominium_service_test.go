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
)

type CondominiumServiceTestSuite struct {
	suite.Suite
	mockCondominiums *MockCondominiumRepository
	mockDepartments  *MockDepartmentRepository
	mockUsers        *MockUserRepository
	service          portssvc.CondominiumSvcFacade

	condominiumID string
}

func (suite *CondominiumServiceTestSuite) SetupTest() {
	suite.mockCondominiums = new(MockCondominiumRepository)
	suite.mockDepartments = new(MockDepartmentRepository)
	suite.mockUsers = new(MockUserRepository)
	suite.service = services.NewCondominiumService(suite.mockCondominiums, suite.mockDepartments, suite.mockUsers)
	suite.condominiumID = uuid.NewString()
}

func (suite *CondominiumServiceTestSuite) userWithRole(role domain.UserRole, condominiumID string) *domain.User {
	return &domain.User{
		UserID:        uuid.NewString(),
		Role:          role,
		Status:        domain.StatusActive,
		CondominiumID: condominiumID,
	}
}

func (suite *CondominiumServiceTestSuite) TestAuthorizeAdmin_SuperadminAlwaysAllowed() {
	ctx := context.Background()
	actor := suite.userWithRole(domain.RoleSuperadmin, "")

	suite.mockUsers.On("FindUserByID", ctx, actor.UserID).Return(actor, nil).Once()

	err := suite.service.AuthorizeAdmin(ctx, actor.UserID, suite.condominiumID)

	suite.Require().NoError(err)
}

func (suite *CondominiumServiceTestSuite) TestAuthorizeAdmin_OwnAdminAllowed() {
	ctx := context.Background()
	actor := suite.userWithRole(domain.RoleAdmin, suite.condominiumID)

	suite.mockUsers.On("FindUserByID", ctx, actor.UserID).Return(actor, nil).Once()

	err := suite.service.AuthorizeAdmin(ctx, actor.UserID, suite.condominiumID)

	suite.Require().NoError(err)
}

func (suite *CondominiumServiceTestSuite) TestAuthorizeAdmin_ForeignAdminForbidden() {
	ctx := context.Background()
	actor := suite.userWithRole(domain.RoleAdmin, uuid.NewString())

	suite.mockUsers.On("FindUserByID", ctx, actor.UserID).Return(actor, nil).Once()

	err := suite.service.AuthorizeAdmin(ctx, actor.UserID, suite.condominiumID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CondominiumServiceTestSuite) TestAuthorizeAdmin_OwnerForbidden() {
	ctx := context.Background()
	actor := suite.userWithRole(domain.RoleOwner, suite.condominiumID)

	suite.mockUsers.On("FindUserByID", ctx, actor.UserID).Return(actor, nil).Once()

	err := suite.service.AuthorizeAdmin(ctx, actor.UserID, suite.condominiumID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CondominiumServiceTestSuite) TestAuthorizeAdmin_UnknownActorForbidden() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockUsers.On("FindUserByID", ctx, actorID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeAdmin(ctx, actorID, suite.condominiumID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CondominiumServiceTestSuite) TestCreateCondominium_SuperadminOnly() {
	ctx := context.Background()
	actor := suite.userWithRole(domain.RoleAdmin, suite.condominiumID)
	req := dto.CreateCondominiumRequest{Name: "Edificio Central", Address: "Av. Principal 123"}

	suite.mockUsers.On("FindUserByID", ctx, actor.UserID).Return(actor, nil).Once()

	condominium, err := suite.service.CreateCondominium(ctx, req, actor.UserID)

	suite.Require().Error(err)
	suite.Nil(condominium)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCondominiums.AssertNotCalled(suite.T(), "SaveCondominium", mock.Anything, mock.Anything)
}

func (suite *CondominiumServiceTestSuite) TestCreateDepartment_StartsWithZeroShare() {
	ctx := context.Background()
	actor := suite.userWithRole(domain.RoleAdmin, suite.condominiumID)
	req := dto.CreateDepartmentRequest{
		CondominiumID: suite.condominiumID,
		Name:          "Departamento 101",
		Code:          "A-101",
		Group:         "Tower A",
	}

	suite.mockUsers.On("FindUserByID", ctx, actor.UserID).Return(actor, nil).Once()
	suite.mockCondominiums.On("FindCondominiumByID", ctx, suite.condominiumID).Return(&domain.Condominium{CondominiumID: suite.condominiumID}, nil).Once()
	suite.mockDepartments.On("SaveDepartment", ctx, mock.MatchedBy(func(d domain.Department) bool {
		return d.Share.IsZero() && d.Code == "A-101" && d.CondominiumID == suite.condominiumID
	})).Return(nil).Once()

	department, err := suite.service.CreateDepartment(ctx, req, actor.UserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(department)
	suite.True(department.Share.IsZero())
	suite.mockDepartments.AssertExpectations(suite.T())
}

func TestCondominiumService(t *testing.T) {
	suite.Run(t, new(CondominiumServiceTestSuite))
}
