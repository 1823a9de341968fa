// Package handler adapts HTTP requests onto the service layer: bind,
// validate, call, answer.
package handler

import (
	"school_hub_server/internal/service"
)

// Handlers aggregates every handler for the router.
type Handlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Chat    *ChatHandler
	Message *MessageHandler
	Period  *PeriodHandler
	Catalog *CatalogHandler
}

// NewHandlers wires handlers against the service aggregate.
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(svc.Auth),
		User:    NewUserHandler(svc.User, svc.Role),
		Chat:    NewChatHandler(svc.Chat),
		Message: NewMessageHandler(svc.Message),
		Period:  NewPeriodHandler(svc.Period),
		Catalog: NewCatalogHandler(svc.Catalog),
	}
}

// currentUserKey is where the JWT middleware stores the caller's uuid.
const currentUserKey = "user_id"
