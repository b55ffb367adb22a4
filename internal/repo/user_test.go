package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/apperrors"
	"matchday/internal/domain/models"
	"matchday/internal/repo"
	"matchday/internal/tests/testdb"
)

func alice() models.User {
	return models.User{Email: "a@x.com", Username: "alice", PasswordHash: "hash", Team: "Qatar"}
}

func TestUserRepoInsertAndFind(t *testing.T) {
	ctx := context.Background()
	users := repo.NewUserRepo(testdb.New(t))

	require.NoError(t, users.Insert(ctx, alice()))

	found, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, alice(), found[0])

	found, err = users.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestUserRepoFindByIdentityMatchesEitherField(t *testing.T) {
	ctx := context.Background()
	users := repo.NewUserRepo(testdb.New(t))
	require.NoError(t, users.Insert(ctx, alice()))

	byEmail, err := users.FindByIdentity(ctx, "a@x.com", "bob")
	require.NoError(t, err)
	assert.Len(t, byEmail, 1)

	byUsername, err := users.FindByIdentity(ctx, "b@x.com", "alice")
	require.NoError(t, err)
	assert.Len(t, byUsername, 1)

	none, err := users.FindByIdentity(ctx, "b@x.com", "bob")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserRepoInsertDuplicateHitsUniqueConstraint(t *testing.T) {
	ctx := context.Background()
	users := repo.NewUserRepo(testdb.New(t))
	require.NoError(t, users.Insert(ctx, alice()))

	dup := alice()
	dup.Username = "alice2"
	err := users.Insert(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentity)
}

func TestUserRepoRegister(t *testing.T) {
	ctx := context.Background()
	users := repo.NewUserRepo(testdb.New(t))

	require.NoError(t, users.Register(ctx, alice()))

	dup := models.User{Email: "other@x.com", Username: "alice", PasswordHash: "h", Team: "Iran"}
	err := users.Register(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentity)

	found, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Qatar", found[0].Team)
}

func TestUserRepoUpdateTeam(t *testing.T) {
	ctx := context.Background()
	users := repo.NewUserRepo(testdb.New(t))
	require.NoError(t, users.Insert(ctx, alice()))

	affected, err := users.UpdateTeam(ctx, "alice", "Brazil")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	found, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Brazil", found[0].Team)

	affected, err = users.UpdateTeam(ctx, "ghost", "Brazil")
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestUserRepoDeleteByUsername(t *testing.T) {
	ctx := context.Background()
	users := repo.NewUserRepo(testdb.New(t))
	require.NoError(t, users.Insert(ctx, alice()))

	affected, err := users.DeleteByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = users.DeleteByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	found, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, found)
}
