package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"matchday/internal/apperrors"
	"matchday/internal/domain/models"
)

var errStorageDown = errors.New("storage down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUsers struct {
	mu      sync.Mutex
	users   []models.User
	failAll bool
	inserts int
}

func (f *fakeUsers) FindByIdentity(_ context.Context, email, username string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errStorageDown
	}
	var out []models.User
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errStorageDown
	}
	var out []models.User
	for _, u := range f.users {
		if u.Username == username {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) Register(_ context.Context, user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errStorageDown
	}
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return apperrors.ErrDuplicateIdentity
		}
	}
	f.users = append(f.users, user)
	f.inserts++
	return nil
}

func (f *fakeUsers) UpdateTeam(_ context.Context, username, team string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return 0, errStorageDown
	}
	var n int64
	for i := range f.users {
		if f.users[i].Username == username {
			f.users[i].Team = team
			n++
		}
	}
	return n, nil
}

func (f *fakeUsers) DeleteByUsername(_ context.Context, username string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return 0, errStorageDown
	}
	kept := f.users[:0]
	var n int64
	for _, u := range f.users {
		if u.Username == username {
			n++
			continue
		}
		kept = append(kept, u)
	}
	f.users = kept
	return n, nil
}

type fakeMatches []models.Match

func (f fakeMatches) FindByTeam(_ context.Context, team string) ([]models.Match, error) {
	var out []models.Match
	for _, m := range f {
		if m.Team1 == team || m.Team2 == team {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeTeams []models.Team

func (f fakeTeams) ListOrderedByName(context.Context) ([]models.Team, error) {
	return f, nil
}
