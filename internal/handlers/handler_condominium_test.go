package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
	"github.com/kvillacis/condo_management_app/internal/handlers"
	"github.com/kvillacis/condo_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ShareLedgerService ---
type MockShareLedgerService struct {
	mock.Mock
}

func (m *MockShareLedgerService) AssignShares(ctx context.Context, condominiumID string, departmentIDs []string, newShare decimal.Decimal, requestingUserID string) error {
	args := m.Called(ctx, condominiumID, departmentIDs, newShare, requestingUserID)
	return args.Error(0)
}

func (m *MockShareLedgerService) CurrentTotal(ctx context.Context, condominiumID string) (dto.ShareTotalResponse, error) {
	args := m.Called(ctx, condominiumID)
	return args.Get(0).(dto.ShareTotalResponse), args.Error(1)
}

func (m *MockShareLedgerService) ShareOf(ctx context.Context, departmentID string) (decimal.Decimal, error) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockShareLedgerService) ListDepartmentShares(ctx context.Context, condominiumID string, requestingUserID string) (map[string][]domain.Department, error) {
	args := m.Called(ctx, condominiumID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Department), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ShareLedgerSvcFacade = (*MockShareLedgerService)(nil)

// --- Test Suite ---
type CondominiumHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockShareLedger *MockShareLedgerService
	jwtSecret       string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *CondominiumHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cma-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CondominiumHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockShareLedger = new(MockShareLedgerService)

	// Only the share ledger routes are exercised here; the remaining facades
	// stay nil.
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCondominiumRoutes(v1, nil, suite.mockShareLedger, nil, nil, nil, nil, nil, nil)
}

func (suite *CondominiumHandlerTestSuite) putShares(condominiumID string, userID string, body dto.AssignSharesRequest) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	url := fmt.Sprintf("/api/v1/condominiums/%s/shares", condominiumID)
	req, _ := http.NewRequest(http.MethodPut, url, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CondominiumHandlerTestSuite) TestAssignShares_Success() {
	condominiumID := uuid.NewString()
	adminID := uuid.NewString()
	departmentIDs := []string{uuid.NewString(), uuid.NewString()}
	share := decimal.RequireFromString("0.5")

	suite.mockShareLedger.On("AssignShares",
		mock.Anything,
		condominiumID,
		departmentIDs,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(share) }),
		adminID,
	).Return(nil).Once()
	suite.mockShareLedger.On("CurrentTotal", mock.Anything, condominiumID).
		Return(dto.ShareTotalResponse{
			CondominiumID:  condominiumID,
			Total:          decimal.RequireFromString("1"),
			UnderAllocated: false,
		}, nil).Once()

	w := suite.putShares(condominiumID, adminID, dto.AssignSharesRequest{
		DepartmentIDs: departmentIDs,
		Share:         share,
	})

	suite.Equal(http.StatusOK, w.Code)

	var res dto.ShareTotalResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(condominiumID, res.CondominiumID)
	suite.True(res.Total.Equal(decimal.RequireFromString("1")))
	suite.False(res.UnderAllocated)

	suite.mockShareLedger.AssertExpectations(suite.T())
}

func (suite *CondominiumHandlerTestSuite) TestAssignShares_OverflowReturns422WithWouldBeTotal() {
	condominiumID := uuid.NewString()
	adminID := uuid.NewString()
	departmentIDs := []string{uuid.NewString()}

	wouldBe := decimal.RequireFromString("1.002")
	suite.mockShareLedger.On("AssignShares",
		mock.Anything, condominiumID, departmentIDs, mock.Anything, adminID,
	).Return(apperrors.NewShareOverflowError(wouldBe)).Once()

	w := suite.putShares(condominiumID, adminID, dto.AssignSharesRequest{
		DepartmentIDs: departmentIDs,
		Share:         decimal.RequireFromString("0.502"),
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var res map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	// The rejection must tell the admin what the total would have been.
	suite.Contains(res["error"], "1.002")

	suite.mockShareLedger.AssertExpectations(suite.T())
	suite.mockShareLedger.AssertNotCalled(suite.T(), "CurrentTotal")
}

func (suite *CondominiumHandlerTestSuite) TestAssignShares_StorageFailureReturns503() {
	condominiumID := uuid.NewString()
	adminID := uuid.NewString()
	departmentIDs := []string{uuid.NewString()}

	repoErr := apperrors.NewUnavailableError(
		"failed to assign shares for condominium "+condominiumID,
		fmt.Errorf("connection refused"),
	)
	suite.mockShareLedger.On("AssignShares",
		mock.Anything, condominiumID, departmentIDs, mock.Anything, adminID,
	).Return(repoErr).Once()

	w := suite.putShares(condominiumID, adminID, dto.AssignSharesRequest{
		DepartmentIDs: departmentIDs,
		Share:         decimal.RequireFromString("0.1"),
	})

	suite.Equal(http.StatusServiceUnavailable, w.Code)

	var res map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	// Driver internals never leak to the client.
	suite.NotContains(res["error"], "connection refused")

	suite.mockShareLedger.AssertExpectations(suite.T())
	suite.mockShareLedger.AssertNotCalled(suite.T(), "CurrentTotal")
}

func (suite *CondominiumHandlerTestSuite) TestAssignShares_MissingTokenRejected() {
	url := fmt.Sprintf("/api/v1/condominiums/%s/shares", uuid.NewString())
	req, _ := http.NewRequest(http.MethodPut, url, bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockShareLedger.AssertNotCalled(suite.T(), "AssignShares")
}

// --- Run Test Suite ---
func TestCondominiumHandler(t *testing.T) {
	suite.Run(t, new(CondominiumHandlerTestSuite))
}
