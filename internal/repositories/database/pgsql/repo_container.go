package pgsql

import (
	portsrepo "github.com/kvillacis/condo_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		CondominiumRepo: newPgxCondominiumRepository(dbPool),
		DepartmentRepo:  newPgxDepartmentRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		ReservationRepo: newPgxReservationRepository(dbPool),
		CommonAreaRepo:  newPgxCommonAreaRepository(dbPool),
		AccessLogRepo:   newPgxAccessLogRepository(dbPool),
	}
}
