package handler

import (
	"log/slog"
	"matchday/internal/http/v1/views"
	"matchday/internal/service"
	"net/http"
)

type AuthHandler struct {
	authService *service.AuthService
	teamService *service.TeamService
	sessions    SessionManager
	views       *views.Renderer
	log         *slog.Logger
}

func NewAuthHandler(
	authService *service.AuthService,
	teamService *service.TeamService,
	sessions SessionManager,
	views *views.Renderer,
	log *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		teamService: teamService,
		sessions:    sessions,
		views:       views,
		log:         log,
	}
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	const op = "handler.auth.RegisterForm"

	log := h.log.With(slog.String("op", op))

	sess, err := h.sessions.Load(r)
	if err != nil {
		writeServerError(w, log, "failed to load session", err)
		return
	}
	if sess.LoggedIn {
		redirect(w, r, pathHome)
		return
	}

	h.renderRegister(w, r, log, views.RegisterPage{})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "handler.auth.Register"

	log := h.log.With(slog.String("op", op))

	if err := r.ParseForm(); err != nil {
		log.Warn("invalid form body", slog.String("error", err.Error()))
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	in := service.RegisterInput{
		Email:          r.PostForm.Get("email"),
		Username:       r.PostForm.Get("username"),
		Password:       r.PostForm.Get("password"),
		PasswordRepeat: r.PostForm.Get("passwordRepeat"),
		Team:           r.PostForm.Get("team"),
	}

	if err := h.authService.Register(r.Context(), in); err != nil {
		msg, ok := formMessage(err)
		if !ok {
			writeServerError(w, log, "failed to register user", err)
			return
		}
		h.renderRegister(w, r, log, views.RegisterPage{
			Email:    in.Email,
			Username: in.Username,
			Team:     in.Team,
			Error:    msg,
		})
		return
	}

	if err := h.sessions.Authenticate(w, r, in.Username); err != nil {
		writeServerError(w, log, "failed to start session", err)
		return
	}

	redirect(w, r, pathHome)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	const op = "handler.auth.LoginForm"

	log := h.log.With(slog.String("op", op))

	sess, err := h.sessions.Load(r)
	if err != nil {
		writeServerError(w, log, "failed to load session", err)
		return
	}
	if sess.LoggedIn {
		redirect(w, r, pathHome)
		return
	}

	render(w, log, h.views, views.PageLogin, views.LoginPage{})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handler.auth.Login"

	log := h.log.With(slog.String("op", op))

	if err := r.ParseForm(); err != nil {
		log.Warn("invalid form body", slog.String("error", err.Error()))
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	if err := h.authService.Login(r.Context(), username, password); err != nil {
		msg, ok := formMessage(err)
		if !ok {
			writeServerError(w, log, "failed to log in", err)
			return
		}
		render(w, log, h.views, views.PageLogin, views.LoginPage{Username: username, Error: msg})
		return
	}

	if err := h.sessions.Authenticate(w, r, username); err != nil {
		writeServerError(w, log, "failed to start session", err)
		return
	}

	redirect(w, r, pathHome)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "handler.auth.Logout"

	log := h.log.With(slog.String("op", op))

	if err := h.sessions.Clear(w, r); err != nil {
		writeServerError(w, log, "failed to clear session", err)
		return
	}

	log.Info("user logged out")
	redirect(w, r, pathLogin)
}

func (h *AuthHandler) renderRegister(w http.ResponseWriter, r *http.Request, log *slog.Logger, page views.RegisterPage) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		writeServerError(w, log, "failed to list teams", err)
		return
	}
	page.Teams = teams

	render(w, log, h.views, views.PageRegister, page)
}
