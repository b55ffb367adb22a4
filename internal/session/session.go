// Package session keeps per-client login state on the server and hands the
// client an opaque id in a same-site cookie.
package session

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"log/slog"
	"matchday/internal/apperrors"
	"matchday/internal/domain/models"
	"matchday/internal/lib/logger/sl"
	"net/http"
	"time"
)

// Data is what handlers see of a session.
type Data struct {
	LoggedIn bool
	Username string
}

type Store interface {
	Find(ctx context.Context, id string) (models.Session, error)
	Save(ctx context.Context, s models.Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type Options struct {
	CookieName string
	Lifetime   time.Duration
	Secure     bool
}

type Manager struct {
	log   *slog.Logger
	store Store
	opts  Options
	now   func() time.Time
}

func NewManager(log *slog.Logger, store Store, opts Options) *Manager {
	return &Manager{
		log:   log,
		store: store,
		opts:  opts,
		now:   time.Now,
	}
}

// Load returns the session data attached to r. Missing, unknown and expired
// sessions all load as anonymous.
func (m *Manager) Load(r *http.Request) (Data, error) {
	const op = "session.Load"

	id, ok := m.id(r)
	if !ok {
		return Data{}, nil
	}

	s, err := m.store.Find(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return Data{}, nil
		}
		return Data{}, fmt.Errorf("%s: %w", op, err)
	}

	if s.Expired(m.now()) {
		if err := m.store.Delete(r.Context(), id); err != nil {
			return Data{}, fmt.Errorf("%s: %w", op, err)
		}
		return Data{}, nil
	}

	return Data{LoggedIn: s.LoggedIn, Username: s.Username}, nil
}

// Authenticate marks the client as logged in as username. The previous
// session id, if any, is discarded and a fresh one issued.
func (m *Manager) Authenticate(w http.ResponseWriter, r *http.Request, username string) error {
	const op = "session.Authenticate"

	if id, ok := m.id(r); ok {
		if err := m.store.Delete(r.Context(), id); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	s := models.Session{
		ID:        uuid.NewString(),
		LoggedIn:  true,
		Username:  username,
		ExpiresAt: m.now().Add(m.opts.Lifetime),
	}

	if err := m.store.Save(r.Context(), s); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	http.SetCookie(w, m.cookie(s.ID, int(m.opts.Lifetime/time.Second)))

	return nil
}

// Clear logs the client out. It is safe to call on anonymous sessions.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	const op = "session.Clear"

	id, ok := m.id(r)
	if !ok {
		return nil
	}

	if err := m.store.Delete(r.Context(), id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	http.SetCookie(w, m.cookie("", -1))

	return nil
}

// RunCleanup purges expired sessions every interval until ctx is done.
func (m *Manager) RunCleanup(ctx context.Context, interval time.Duration) {
	const op = "session.RunCleanup"

	log := m.log.With(slog.String("op", op))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := m.store.DeleteExpired(ctx, m.now())
			if err != nil {
				log.Error("failed to delete expired sessions", sl.Err(err))
				continue
			}
			if removed > 0 {
				log.Debug("expired sessions removed", slog.Int64("count", removed))
			}
		}
	}
}

func (m *Manager) id(r *http.Request) (string, bool) {
	c, err := r.Cookie(m.opts.CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
