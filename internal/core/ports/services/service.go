package services

import "github.com/kvillacis/condo_management_app/internal/core/domain"

// TokenSvc issues signed access tokens for authenticated users.
type TokenSvc interface {
	// GenerateAccessToken creates a signed JWT for the user.
	GenerateAccessToken(user domain.User) (string, error)
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Condominium CondominiumSvcFacade
	ShareLedger ShareLedgerSvcFacade
	Expense     ExpenseSvcFacade
	Payment     PaymentSvcFacade
	Reservation ReservationSvcFacade
	CommonArea  CommonAreaSvcFacade
	AccessLog   AccessLogSvcFacade
	Token       TokenSvc
}
