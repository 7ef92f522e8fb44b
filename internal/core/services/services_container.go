package services

import (
	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The project service doubles as the authorizer every scoped service
	// depends on, so it is built first.
	container.Project = NewProjectService(repos.ProjectRepo)
	projectAuthorizer := container.Project.(portssvc.ProjectAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, WithProjectAuthorizer(projectAuthorizer))
	container.Order = NewOrderService(repos.OrderRepo, WithProjectAuthorizer(projectAuthorizer))
	container.Task = NewTaskService(repos.TaskRepo, WithProjectAuthorizer(projectAuthorizer))
	container.Room = NewRoomService(repos.RoomRepo, repos.ProjectRepo, WithProjectAuthorizer(projectAuthorizer))
	container.Insights = NewInsightsService(
		repos.ProjectRepo,
		repos.ExpenseRepo,
		repos.OrderRepo,
		repos.TaskRepo,
		WithProjectAuthorizer(projectAuthorizer),
	)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
