package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/apperrors"
	"matchday/internal/domain/models"
	"matchday/internal/repo"
	"matchday/internal/tests/testdb"
)

func TestSessionRepoSaveFindDelete(t *testing.T) {
	ctx := context.Background()
	sessions := repo.NewSessionRepo(testdb.New(t))
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	s := models.Session{ID: "abc", LoggedIn: true, Username: "alice", ExpiresAt: expires}
	require.NoError(t, sessions.Save(ctx, s))

	got, err := sessions.Find(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, got.LoggedIn)
	assert.True(t, got.ExpiresAt.Equal(expires))

	s.Username = "bob"
	require.NoError(t, sessions.Save(ctx, s))
	got, err = sessions.Find(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	require.NoError(t, sessions.Delete(ctx, "abc"))
	_, err = sessions.Find(ctx, "abc")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestSessionRepoDeleteExpired(t *testing.T) {
	ctx := context.Background()
	sessions := repo.NewSessionRepo(testdb.New(t))
	now := time.Now()

	require.NoError(t, sessions.Save(ctx, models.Session{ID: "old", LoggedIn: true, Username: "a", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, sessions.Save(ctx, models.Session{ID: "new", LoggedIn: true, Username: "b", ExpiresAt: now.Add(time.Hour)}))

	removed, err := sessions.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	_, err = sessions.Find(ctx, "old")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	_, err = sessions.Find(ctx, "new")
	assert.NoError(t, err)
}
