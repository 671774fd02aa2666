package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kvillacis/condo_management_app/internal/apperrors"
	"github.com/kvillacis/condo_management_app/internal/core/domain"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/core/services"
	"github.com/kvillacis/condo_management_app/internal/dto"
)

type ReservationServiceTestSuite struct {
	suite.Suite
	mockReservations *MockReservationRepository
	mockAreas        *MockCommonAreaRepository
	mockUsers        *MockUserRepository
	mockAuth         *MockCondominiumAuthorizer
	service          portssvc.ReservationSvcFacade

	condominiumID string
	commonAreaID  string
	adminID       string
	ownerID       string
}

func (suite *ReservationServiceTestSuite) SetupTest() {
	suite.mockReservations = new(MockReservationRepository)
	suite.mockAreas = new(MockCommonAreaRepository)
	suite.mockUsers = new(MockUserRepository)
	suite.mockAuth = new(MockCondominiumAuthorizer)
	suite.service = services.NewReservationService(suite.mockReservations, suite.mockAreas, suite.mockUsers, suite.mockAuth)

	suite.condominiumID = uuid.NewString()
	suite.commonAreaID = uuid.NewString()
	suite.adminID = uuid.NewString()
	suite.ownerID = uuid.NewString()
}

func (suite *ReservationServiceTestSuite) owner() *domain.User {
	return &domain.User{
		UserID:        suite.ownerID,
		Role:          domain.RoleOwner,
		Status:        domain.StatusActive,
		CondominiumID: suite.condominiumID,
	}
}

func (suite *ReservationServiceTestSuite) freeArea() *domain.CommonArea {
	return &domain.CommonArea{
		CommonAreaID:  suite.commonAreaID,
		CondominiumID: suite.condominiumID,
		Name:          "BBQ Terrace",
		State:         domain.AreaFree,
	}
}

func (suite *ReservationServiceTestSuite) bookingWindow() (time.Time, time.Time) {
	start := time.Now().UTC().Add(24 * time.Hour)
	return start, start.Add(3 * time.Hour)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_Success() {
	ctx := context.Background()
	start, end := suite.bookingWindow()
	req := dto.CreateReservationRequest{AreaName: "BBQ Terrace", StartTime: start, EndTime: end}

	suite.mockUsers.On("FindUserByID", ctx, suite.ownerID).Return(suite.owner(), nil).Once()
	suite.mockAreas.On("FindCommonAreaByName", ctx, suite.condominiumID, "BBQ Terrace").Return(suite.freeArea(), nil).Once()
	suite.mockReservations.On("SaveReservation", ctx, mock.MatchedBy(func(r domain.ReservationRequest) bool {
		return r.Status == domain.ReservationPending &&
			r.CommonAreaID == suite.commonAreaID &&
			r.RequestedBy == suite.ownerID &&
			r.RejectionReason == ""
	})).Return(nil).Once()

	reservation, err := suite.service.CreateReservation(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(reservation)
	suite.Equal(domain.ReservationPending, reservation.Status)
	suite.mockReservations.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_NonOwnerForbidden() {
	ctx := context.Background()
	guard := suite.owner()
	guard.Role = domain.RoleGuard
	start, end := suite.bookingWindow()

	suite.mockUsers.On("FindUserByID", ctx, suite.ownerID).Return(guard, nil).Once()

	reservation, err := suite.service.CreateReservation(ctx, dto.CreateReservationRequest{AreaName: "BBQ Terrace", StartTime: start, EndTime: end}, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(reservation)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_InvertedRange() {
	ctx := context.Background()
	start, end := suite.bookingWindow()

	suite.mockUsers.On("FindUserByID", ctx, suite.ownerID).Return(suite.owner(), nil).Once()

	reservation, err := suite.service.CreateReservation(ctx, dto.CreateReservationRequest{AreaName: "BBQ Terrace", StartTime: end, EndTime: start}, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(reservation)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_OccupiedArea() {
	ctx := context.Background()
	start, end := suite.bookingWindow()
	area := suite.freeArea()
	area.State = domain.AreaOccupied

	suite.mockUsers.On("FindUserByID", ctx, suite.ownerID).Return(suite.owner(), nil).Once()
	suite.mockAreas.On("FindCommonAreaByName", ctx, suite.condominiumID, "BBQ Terrace").Return(area, nil).Once()

	reservation, err := suite.service.CreateReservation(ctx, dto.CreateReservationRequest{AreaName: "BBQ Terrace", StartTime: start, EndTime: end}, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(reservation)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReservations.AssertNotCalled(suite.T(), "SaveReservation", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) pendingReservation() *domain.ReservationRequest {
	start, end := suite.bookingWindow()
	return &domain.ReservationRequest{
		ReservationID: uuid.NewString(),
		CondominiumID: suite.condominiumID,
		CommonAreaID:  suite.commonAreaID,
		AreaName:      "BBQ Terrace",
		RequestedBy:   suite.ownerID,
		StartTime:     start,
		EndTime:       end,
		Status:        domain.ReservationPending,
	}
}

func (suite *ReservationServiceTestSuite) TestDecideReservation_ApproveMarksAreaOccupied() {
	ctx := context.Background()
	reservation := suite.pendingReservation()

	suite.mockReservations.On("FindReservationByID", ctx, reservation.ReservationID).Return(reservation, nil).Once()
	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()
	suite.mockReservations.On("DecideReservationIfPending", ctx, reservation.ReservationID, domain.ReservationApproved, "", suite.adminID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()
	suite.mockAreas.On("UpdateCommonAreaState", ctx, suite.commonAreaID, domain.AreaOccupied, suite.adminID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	decided, err := suite.service.DecideReservation(ctx, reservation.ReservationID, domain.ReservationApproved, "ignored on approval", suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.ReservationApproved, decided.Status)
	suite.Empty(decided.RejectionReason)
	suite.Equal(suite.adminID, decided.DecidedBy)
	suite.mockAreas.AssertExpectations(suite.T())
	suite.mockReservations.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestDecideReservation_RejectRequiresReason() {
	ctx := context.Background()

	decided, err := suite.service.DecideReservation(ctx, uuid.NewString(), domain.ReservationRejected, "   ", suite.adminID)

	suite.Require().Error(err)
	suite.Nil(decided)
	suite.ErrorIs(err, apperrors.ErrMissingReason)
	suite.mockReservations.AssertNotCalled(suite.T(), "FindReservationByID", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestDecideReservation_RejectKeepsAreaFree() {
	ctx := context.Background()
	reservation := suite.pendingReservation()

	suite.mockReservations.On("FindReservationByID", ctx, reservation.ReservationID).Return(reservation, nil).Once()
	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()
	suite.mockReservations.On("DecideReservationIfPending", ctx, reservation.ReservationID, domain.ReservationRejected, "area closed for maintenance", suite.adminID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()

	decided, err := suite.service.DecideReservation(ctx, reservation.ReservationID, domain.ReservationRejected, "area closed for maintenance", suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.ReservationRejected, decided.Status)
	suite.Equal("area closed for maintenance", decided.RejectionReason)
	suite.mockAreas.AssertNotCalled(suite.T(), "UpdateCommonAreaState", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestDecideReservation_AlreadyDecided() {
	ctx := context.Background()
	reservation := suite.pendingReservation()
	reservation.Status = domain.ReservationApproved

	suite.mockReservations.On("FindReservationByID", ctx, reservation.ReservationID).Return(reservation, nil).Once()
	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()

	decided, err := suite.service.DecideReservation(ctx, reservation.ReservationID, domain.ReservationRejected, "too late", suite.adminID)

	suite.Require().Error(err)
	suite.Nil(decided)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *ReservationServiceTestSuite) TestDecideReservation_LostRace() {
	ctx := context.Background()
	reservation := suite.pendingReservation()

	suite.mockReservations.On("FindReservationByID", ctx, reservation.ReservationID).Return(reservation, nil).Once()
	suite.mockAuth.On("AuthorizeAdmin", ctx, suite.adminID, suite.condominiumID).Return(nil).Once()
	suite.mockReservations.On("DecideReservationIfPending", ctx, reservation.ReservationID, domain.ReservationApproved, "", suite.adminID, mock.AnythingOfType("time.Time")).Return(false, nil).Once()

	decided, err := suite.service.DecideReservation(ctx, reservation.ReservationID, domain.ReservationApproved, "", suite.adminID)

	suite.Require().Error(err)
	suite.Nil(decided)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockAreas.AssertNotCalled(suite.T(), "UpdateCommonAreaState", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationService(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}
