package router

import (
	"github.com/go-chi/chi/v5"
	"log/slog"
	"matchday/internal/http/v1/handler"
	"matchday/internal/http/v1/views"
	"matchday/internal/service"
)

type AccountRouter struct {
	handler *handler.AccountHandler
}

func NewAccountRouter(
	homeService *service.HomeService,
	userService *service.UserService,
	sessions handler.SessionManager,
	renderer *views.Renderer,
	log *slog.Logger,
) *AccountRouter {
	return &AccountRouter{
		handler: handler.NewAccountHandler(homeService, userService, sessions, renderer, log),
	}
}

func (ar *AccountRouter) SetupRoutes(r chi.Router) {
	r.Get("/app/", ar.handler.Home)
	r.Post("/app/change_team/", ar.handler.ChangeTeam)
	r.Post("/app/delete_account/", ar.handler.DeleteAccount)
}
