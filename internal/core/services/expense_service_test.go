package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/core/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenses    *MockExpenseRepository
	mockDepartments *MockDepartmentRepository
	mockAuth        *MockCondominiumAuthorizer
	service         portssvc.ExpenseSvcFacade

	condominiumID string
	adminID       string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenses = new(MockExpenseRepository)
	suite.mockDepartments = new(MockDepartmentRepository)
	suite.mockAuth = new(MockCondominiumAuthorizer)
	suite.service = services.NewExpenseService(suite.mockExpenses, suite.mockDepartments, suite.mockAuth)

	suite.condominiumID = uuid.NewString()
	suite.adminID = uuid.NewString()
}

func (suite *ExpenseServiceTestSuite) TestRecordMonthlyExpense_Success() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		CondominiumID: suite.condominiumID,
		Period:        "2026-07",
		TotalAmount:   decimal.RequireFromString("1500.50"),
		Description:   "July maintenance",
	}

	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()
	suite.mockExpenses.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.MonthlyExpense) bool {
		return e.Period == "2026-07" && e.TotalAmount.Equal(req.TotalAmount) && e.CreatedBy == suite.adminID
	})).Return(nil).Once()

	expense, err := suite.service.RecordMonthlyExpense(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Equal("2026-07", expense.Period)
	suite.mockExpenses.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestRecordMonthlyExpense_BadPeriodFormat() {
	ctx := context.Background()
	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil)

	for _, period := range []string{"2026-13", "202607", "2026-7", "July 2026"} {
		req := dto.RecordExpenseRequest{
			CondominiumID: suite.condominiumID,
			Period:        period,
			TotalAmount:   decimal.NewFromInt(100),
		}

		expense, err := suite.service.RecordMonthlyExpense(ctx, req, suite.adminID)

		suite.Require().Error(err, "period %q should be rejected", period)
		suite.Nil(expense)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockExpenses.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestRecordMonthlyExpense_NegativeAmount() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		CondominiumID: suite.condominiumID,
		Period:        "2026-07",
		TotalAmount:   decimal.RequireFromString("-10"),
	}

	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()

	expense, err := suite.service.RecordMonthlyExpense(ctx, req, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestRecordMonthlyExpense_DuplicatePeriod() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		CondominiumID: suite.condominiumID,
		Period:        "2026-07",
		TotalAmount:   decimal.NewFromInt(100),
	}

	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()
	suite.mockExpenses.On("SaveExpense", ctx, mock.AnythingOfType("domain.MonthlyExpense")).Return(apperrors.ErrDuplicatePeriod).Once()

	expense, err := suite.service.RecordMonthlyExpense(ctx, req, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrDuplicatePeriod)
}

func (suite *ExpenseServiceTestSuite) TestRecordMonthlyExpense_Forbidden() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		CondominiumID: suite.condominiumID,
		Period:        "2026-07",
		TotalAmount:   decimal.NewFromInt(100),
	}

	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(apperrors.ErrForbidden).Once()

	expense, err := suite.service.RecordMonthlyExpense(ctx, req, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ExpenseServiceTestSuite) TestApportionCurrentExpense_SplitsByShare() {
	ctx := context.Background()
	expense := &domain.MonthlyExpense{
		ExpenseID:     uuid.NewString(),
		CondominiumID: suite.condominiumID,
		Period:        "2026-07",
		TotalAmount:   decimal.NewFromInt(1000),
	}
	departments := []domain.Department{
		{DepartmentID: "d1", Code: "A-101", Share: decimal.RequireFromString("0.5")},
		{DepartmentID: "d2", Code: "A-102", Share: decimal.RequireFromString("0.3")},
	}

	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()
	suite.mockExpenses.On("FindLatestExpense", ctx, suite.condominiumID).Return(expense, nil).Once()
	suite.mockDepartments.On("ListDepartmentsByCondominium", ctx, suite.condominiumID).Return(departments, nil).Once()

	resp, err := suite.service.ApportionCurrentExpense(ctx, suite.condominiumID, suite.adminID)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Obligations, 2)
	// Owed amounts depend only on each department's own share.
	suite.True(resp.Obligations[0].AmountOwed.Equal(decimal.NewFromInt(500)))
	suite.True(resp.Obligations[1].AmountOwed.Equal(decimal.NewFromInt(300)))
	suite.True(resp.ShareTotal.Equal(decimal.RequireFromString("0.8")))
	suite.True(resp.UnderAllocated)
	// 1000 / 0.8, display only.
	suite.True(resp.PerUnitValue.Equal(decimal.NewFromInt(1250)))
}

func (suite *ExpenseServiceTestSuite) TestApportionCurrentExpense_NoExpenseYet() {
	ctx := context.Background()

	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()
	suite.mockExpenses.On("FindLatestExpense", ctx, suite.condominiumID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.ApportionCurrentExpense(ctx, suite.condominiumID, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()
	suite.mockExpenses.On("ListExpensesByCondominium", ctx, suite.condominiumID).Return([]domain.MonthlyExpense(nil), nil).Once()

	expenses, err := suite.service.ListExpenses(ctx, suite.condominiumID, suite.adminID)

	suite.Require().NoError(err)
	suite.NotNil(expenses)
	suite.Empty(expenses)
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
