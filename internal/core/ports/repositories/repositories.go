package repositories

// RepositoryProvider groups every repository implementation so wiring code
// can pass them around as one unit.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	CondominiumRepo CondominiumRepositoryFacade
	DepartmentRepo  DepartmentRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	ReservationRepo ReservationRepositoryFacade
	CommonAreaRepo  CommonAreaRepository
	AccessLogRepo   AccessLogRepository
}
