package service

import (
	"school_hub_server/internal/dao/mysql/repository"
	"school_hub_server/internal/service/auth"
	"school_hub_server/internal/service/catalog"
	"school_hub_server/internal/service/chat"
	"school_hub_server/internal/service/message"
	"school_hub_server/internal/service/period"
	"school_hub_server/internal/service/role"
	"school_hub_server/internal/service/user"
)

// Services aggregates every service for injection into the handlers.
type Services struct {
	Auth    AuthService
	User    UserService
	Role    RoleService
	Chat    ChatService
	Message MessageService
	Period  PeriodService
	Catalog CatalogService
}

// NewServices builds all services against one repository aggregate.
func NewServices(repos *repository.Repositories) *Services {
	roleSvc := role.NewRoleService(repos)

	return &Services{
		Auth:    auth.NewAuthService(repos, roleSvc),
		User:    user.NewUserService(repos, roleSvc),
		Role:    roleSvc,
		Chat:    chat.NewChatService(repos),
		Message: message.NewMessageService(repos),
		Period:  period.NewPeriodService(repos),
		Catalog: catalog.NewCatalogService(repos),
	}
}

// Svc is the global aggregate, set in main after the DAO layer is up.
var Svc *Services

// InitServices initializes the global aggregate.
func InitServices(repos *repository.Repositories) {
	Svc = NewServices(repos)
}
