package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		ProjectRepo: newPgxProjectRepository(dbPool),
		ExpenseRepo: newPgxExpenseRepository(dbPool),
		OrderRepo:   newPgxOrderRepository(dbPool),
		TaskRepo:    newPgxTaskRepository(dbPool),
		RoomRepo:    newPgxRoomRepository(dbPool),
	}
}
