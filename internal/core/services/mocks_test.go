package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/kvillacis/condo_management_app/internal/core/domain"
)

// Shared testify mocks for the repository and authorizer ports. Several
// services depend on the same repositories, so the mocks live here instead
// of being redeclared per test file.

// --- Mock CondominiumAuthorizer ---
type MockCondominiumAuthorizer struct {
	mock.Mock
}

func (m *MockCondominiumAuthorizer) AuthorizeAdmin(ctx context.Context, actorID string, condominiumID string) error {
	args := m.Called(ctx, actorID, condominiumID)
	return args.Error(0)
}

// --- Mock CondominiumRepository ---
type MockCondominiumRepository struct {
	mock.Mock
}

func (m *MockCondominiumRepository) FindCondominiumByID(ctx context.Context, condominiumID string) (*domain.Condominium, error) {
	args := m.Called(ctx, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Condominium), args.Error(1)
}

func (m *MockCondominiumRepository) ListCondominiums(ctx context.Context, includeInactive bool) ([]domain.Condominium, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Condominium), args.Error(1)
}

func (m *MockCondominiumRepository) SaveCondominium(ctx context.Context, condominium domain.Condominium) error {
	args := m.Called(ctx, condominium)
	return args.Error(0)
}

func (m *MockCondominiumRepository) SetCondominiumActive(ctx context.Context, condominiumID string, active bool, updatedBy string, now time.Time) error {
	args := m.Called(ctx, condominiumID, active, updatedBy, now)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsersByCondominium(ctx context.Context, condominiumID string, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, condominiumID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsersByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserStatusIfCurrent(ctx context.Context, userID string, expected, next domain.UserStatus, updatedBy string, now time.Time) (bool, error) {
	args := m.Called(ctx, userID, expected, next, updatedBy, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedBy, now)
	return args.Error(0)
}

// --- Mock DepartmentRepository ---
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) ListDepartmentsByCondominium(ctx context.Context, condominiumID string) ([]domain.Department, error) {
	args := m.Called(ctx, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) SumShares(ctx context.Context, condominiumID string) (decimal.Decimal, error) {
	args := m.Called(ctx, condominiumID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) AssignShares(ctx context.Context, condominiumID string, departmentIDs []string, newShare decimal.Decimal, updatedBy string, now time.Time) error {
	args := m.Called(ctx, condominiumID, departmentIDs, newShare, updatedBy, now)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.MonthlyExpense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyExpense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpenseByPeriod(ctx context.Context, condominiumID string, period string) (*domain.MonthlyExpense, error) {
	args := m.Called(ctx, condominiumID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyExpense), args.Error(1)
}

func (m *MockExpenseRepository) FindLatestExpense(ctx context.Context, condominiumID string) (*domain.MonthlyExpense, error) {
	args := m.Called(ctx, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyExpense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByCondominium(ctx context.Context, condominiumID string) ([]domain.MonthlyExpense, error) {
	args := m.Called(ctx, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyExpense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.MonthlyExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRepository) HasApprovedPayment(ctx context.Context, departmentID string, period string) (bool, error) {
	args := m.Called(ctx, departmentID, period)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByCondominium(ctx context.Context, condominiumID string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsBySubmitter(ctx context.Context, userID string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.PaymentRecord) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DecidePaymentIfPending(ctx context.Context, paymentID string, outcome domain.PaymentStatus, decidedBy string, now time.Time) (bool, error) {
	args := m.Called(ctx, paymentID, outcome, decidedBy, now)
	return args.Bool(0), args.Error(1)
}

// --- Mock ReservationRepository ---
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.ReservationRequest, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationRequest), args.Error(1)
}

func (m *MockReservationRepository) ListReservationsByCondominium(ctx context.Context, condominiumID string, status domain.ReservationStatus) ([]domain.ReservationRequest, error) {
	args := m.Called(ctx, condominiumID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReservationRequest), args.Error(1)
}

func (m *MockReservationRepository) ListReservationsByRequester(ctx context.Context, userID string) ([]domain.ReservationRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReservationRequest), args.Error(1)
}

func (m *MockReservationRepository) SaveReservation(ctx context.Context, reservation domain.ReservationRequest) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) DecideReservationIfPending(ctx context.Context, reservationID string, outcome domain.ReservationStatus, reason string, decidedBy string, now time.Time) (bool, error) {
	args := m.Called(ctx, reservationID, outcome, reason, decidedBy, now)
	return args.Bool(0), args.Error(1)
}

// --- Mock CommonAreaRepository ---
type MockCommonAreaRepository struct {
	mock.Mock
}

func (m *MockCommonAreaRepository) SaveCommonArea(ctx context.Context, area domain.CommonArea) error {
	args := m.Called(ctx, area)
	return args.Error(0)
}

func (m *MockCommonAreaRepository) FindCommonAreaByID(ctx context.Context, commonAreaID string) (*domain.CommonArea, error) {
	args := m.Called(ctx, commonAreaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommonArea), args.Error(1)
}

func (m *MockCommonAreaRepository) FindCommonAreaByName(ctx context.Context, condominiumID string, name string) (*domain.CommonArea, error) {
	args := m.Called(ctx, condominiumID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommonArea), args.Error(1)
}

func (m *MockCommonAreaRepository) ListCommonAreasByCondominium(ctx context.Context, condominiumID string) ([]domain.CommonArea, error) {
	args := m.Called(ctx, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommonArea), args.Error(1)
}

func (m *MockCommonAreaRepository) UpdateCommonAreaState(ctx context.Context, commonAreaID string, state domain.CommonAreaState, updatedBy string, now time.Time) error {
	args := m.Called(ctx, commonAreaID, state, updatedBy, now)
	return args.Error(0)
}
