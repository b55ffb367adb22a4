package v1

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"matchday/internal/http/v1/handler"
	"matchday/internal/http/v1/middleware"
	"matchday/internal/http/v1/router"
	"matchday/internal/http/v1/views"
	"matchday/internal/service"
	"net/http"
)

type Router interface {
	SetupRoutes(r chi.Router)
}

type RouterDependencies struct {
	AuthService *service.AuthService
	UserService *service.UserService
	TeamService *service.TeamService
	HomeService *service.HomeService
	Sessions    handler.SessionManager
	Views       *views.Renderer
	AuthLimiter *middleware.RateLimiter
}

func SetupRoutes(r chi.Router, deps *RouterDependencies, log *slog.Logger) {
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(chimw.Recoverer)

	var limit func(http.Handler) http.Handler
	if deps.AuthLimiter != nil {
		limit = deps.AuthLimiter.Handler
	}

	routers := []Router{
		router.NewAuthRouter(deps.AuthService, deps.TeamService, deps.Sessions, deps.Views, limit, log),
		router.NewAccountRouter(deps.HomeService, deps.UserService, deps.Sessions, deps.Views, log),
	}

	for _, serviceRouter := range routers {
		serviceRouter.SetupRoutes(r)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/app/", http.StatusFound)
	})

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("404 NOT FOUND"))
}
