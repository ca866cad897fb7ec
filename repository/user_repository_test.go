package repository

import (
	"context"
	"testing"
	"time"

	"croupier/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetOrCreate(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates zero balance row on first reference", func(t *testing.T) {
		user, err := repo.GetOrCreate(ctx, "player-1")
		require.NoError(t, err)
		assert.Equal(t, "player-1", user.UserID)
		assert.Equal(t, int64(0), user.Balance)
		assert.True(t, user.LastClaim.Before(user.CreatedAt))
	})

	t.Run("returns existing row unchanged", func(t *testing.T) {
		_, err := repo.AdjustBalance(ctx, "player-1", 500)
		require.NoError(t, err)

		user, err := repo.GetOrCreate(ctx, "player-1")
		require.NoError(t, err)
		assert.Equal(t, int64(500), user.Balance)
	})
}

func TestUserRepository_AdjustBalance(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.GetOrCreate(ctx, "player-1")
	require.NoError(t, err)

	balance, err := repo.AdjustBalance(ctx, "player-1", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	balance, err = repo.AdjustBalance(ctx, "player-1", -300)
	require.NoError(t, err)
	assert.Equal(t, int64(700), balance)

	t.Run("unknown user fails", func(t *testing.T) {
		_, err := repo.AdjustBalance(ctx, "ghost", 100)
		assert.Error(t, err)
	})
}

func TestUserRepository_SetBalanceAndLastClaim(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.GetOrCreate(ctx, "player-1")
	require.NoError(t, err)

	require.NoError(t, repo.SetBalance(ctx, "player-1", 4242))

	claimedAt := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.SetLastClaim(ctx, "player-1", claimedAt))

	user, err := repo.GetOrCreate(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4242), user.Balance)
	assert.WithinDuration(t, claimedAt, user.LastClaim, time.Second)

	t.Run("unknown user fails", func(t *testing.T) {
		assert.Error(t, repo.SetBalance(ctx, "ghost", 1))
		assert.Error(t, repo.SetLastClaim(ctx, "ghost", time.Now()))
	})
}

func TestUserRepository_GetTopByBalance(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	for id, balance := range map[string]int64{
		"bronze": 10,
		"gold":   1000,
		"silver": 100,
	} {
		_, err := repo.GetOrCreate(ctx, id)
		require.NoError(t, err)
		require.NoError(t, repo.SetBalance(ctx, id, balance))
	}

	users, err := repo.GetTopByBalance(ctx, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "gold", users[0].UserID)
	assert.Equal(t, "silver", users[1].UserID)
}
