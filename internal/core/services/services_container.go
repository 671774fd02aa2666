package services

import (
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	portssvc "github.com/kvillacis/condo_management_app/internal/core/ports/services"
	"github.com/kvillacis/condo_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Condominium service first: it is the authorization choke point every
	// other service depends on.
	container.Condominium = NewCondominiumService(repos.CondominiumRepo, repos.DepartmentRepo, repos.UserRepo)
	authorizer := portssvc.CondominiumAuthorizerSvc(container.Condominium)

	container.User = NewUserService(repos.UserRepo, authorizer)
	container.ShareLedger = NewShareLedgerService(repos.DepartmentRepo, authorizer)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.DepartmentRepo, authorizer)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.DepartmentRepo, repos.ExpenseRepo, repos.UserRepo, authorizer)
	container.Reservation = NewReservationService(repos.ReservationRepo, repos.CommonAreaRepo, repos.UserRepo, authorizer)
	container.CommonArea = NewCommonAreaService(repos.CommonAreaRepo, authorizer)
	container.AccessLog = NewAccessLogService(repos.AccessLogRepo, repos.UserRepo, authorizer)
	container.Token = NewTokenService(cfg)

	return container
}
