package router

import (
	"github.com/go-chi/chi/v5"
	"log/slog"
	"matchday/internal/http/v1/handler"
	"matchday/internal/http/v1/views"
	"matchday/internal/service"
	"net/http"
)

type AuthRouter struct {
	handler *handler.AuthHandler
	limit   func(http.Handler) http.Handler
}

func NewAuthRouter(
	authService *service.AuthService,
	teamService *service.TeamService,
	sessions handler.SessionManager,
	renderer *views.Renderer,
	limit func(http.Handler) http.Handler,
	log *slog.Logger,
) *AuthRouter {
	return &AuthRouter{
		handler: handler.NewAuthHandler(authService, teamService, sessions, renderer, log),
		limit:   limit,
	}
}

func (ar *AuthRouter) SetupRoutes(r chi.Router) {
	r.Get("/app/register/", ar.handler.RegisterForm)
	r.Get("/app/login/", ar.handler.LoginForm)

	r.Group(func(r chi.Router) {
		if ar.limit != nil {
			r.Use(ar.limit)
		}

		r.Post("/app/register/", ar.handler.Register)
		r.Post("/app/login/", ar.handler.Login)
	})

	r.Post("/app/logout/", ar.handler.Logout)
}
