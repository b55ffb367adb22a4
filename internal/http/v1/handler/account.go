package handler

import (
	"errors"
	"log/slog"
	"matchday/internal/apperrors"
	"matchday/internal/http/v1/views"
	"matchday/internal/service"
	"net/http"
)

type AccountHandler struct {
	homeService *service.HomeService
	userService *service.UserService
	sessions    SessionManager
	views       *views.Renderer
	log         *slog.Logger
}

func NewAccountHandler(
	homeService *service.HomeService,
	userService *service.UserService,
	sessions SessionManager,
	views *views.Renderer,
	log *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		homeService: homeService,
		userService: userService,
		sessions:    sessions,
		views:       views,
		log:         log,
	}
}

func (h *AccountHandler) Home(w http.ResponseWriter, r *http.Request) {
	const op = "handler.account.Home"

	log := h.log.With(slog.String("op", op))

	sess, err := h.sessions.Load(r)
	if err != nil {
		writeServerError(w, log, "failed to load session", err)
		return
	}
	if !sess.LoggedIn {
		redirect(w, r, pathLogin)
		return
	}

	view, err := h.homeService.Home(r.Context(), sess.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			if err := h.sessions.Clear(w, r); err != nil {
				writeServerError(w, log, "failed to clear session", err)
				return
			}
			redirect(w, r, pathLogin)
			return
		}
		writeServerError(w, log, "failed to load home view", err)
		return
	}

	render(w, log, h.views, views.PageHome, view)
}

func (h *AccountHandler) ChangeTeam(w http.ResponseWriter, r *http.Request) {
	const op = "handler.account.ChangeTeam"

	log := h.log.With(slog.String("op", op))

	sess, err := h.sessions.Load(r)
	if err != nil {
		writeServerError(w, log, "failed to load session", err)
		return
	}
	if !sess.LoggedIn {
		log.Warn("team change attempted without login")
		redirect(w, r, pathLogin)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Warn("invalid form body", slog.String("error", err.Error()))
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	if err := h.userService.ChangeTeam(r.Context(), sess.Username, r.PostForm.Get("team")); err != nil {
		writeServerError(w, log, "failed to change team", err)
		return
	}

	redirect(w, r, pathHome)
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	const op = "handler.account.DeleteAccount"

	log := h.log.With(slog.String("op", op))

	sess, err := h.sessions.Load(r)
	if err != nil {
		writeServerError(w, log, "failed to load session", err)
		return
	}

	if sess.LoggedIn {
		if err := h.userService.DeleteAccount(r.Context(), sess.Username); err != nil {
			writeServerError(w, log, "failed to delete account", err)
			return
		}
	}

	if err := h.sessions.Clear(w, r); err != nil {
		writeServerError(w, log, "failed to clear session", err)
		return
	}

	redirect(w, r, pathLogin)
}
