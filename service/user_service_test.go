package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"croupier/config"
	"croupier/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("ENVIRONMENT", "test")
	os.Exit(m.Run())
}

func newUserFixture() (*memStore, UserService) {
	store := newMemStore()
	return store, NewUserService(&memUnitOfWorkFactory{s: store})
}

func TestGetOrCreateUser_CreatesZeroBalanceRow(t *testing.T) {
	store, svc := newUserFixture()

	user, err := svc.GetOrCreateUser(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", user.UserID)
	assert.Equal(t, int64(0), user.Balance)

	// Subsequent reads return the same durable row
	store.seedUser("fresh", 42)
	user, err = svc.GetOrCreateUser(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.Balance)
}

func TestClaimDaily_CreditsAndSetsCooldown(t *testing.T) {
	store, svc := newUserFixture()
	ctx := context.Background()

	user, err := svc.ClaimDaily(ctx, "user-1")
	require.NoError(t, err)

	amount := config.Get().DailyAmount
	assert.Equal(t, amount, user.Balance)
	assert.Equal(t, amount, store.balance("user-1"))
	assert.False(t, user.LastClaim.IsZero())
	assert.Equal(t, []models.TransactionType{
		models.TransactionTypeDailyClaim,
	}, store.historyTypes("user-1"))

	// A second claim inside the window is refused with the remaining time
	_, err = svc.ClaimDaily(ctx, "user-1")
	var cooldown *ClaimCooldownError
	require.True(t, errors.As(err, &cooldown))
	assert.Greater(t, cooldown.Remaining, 23*time.Hour)
	assert.Equal(t, amount, store.balance("user-1"))
}

func TestClaimDaily_AllowsClaimAfterCooldown(t *testing.T) {
	store, svc := newUserFixture()
	ctx := context.Background()

	store.seedUser("user-1", 100)
	store.users["user-1"].LastClaim = time.Now().Add(-25 * time.Hour)

	user, err := svc.ClaimDaily(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100)+config.Get().DailyAmount, user.Balance)
}

func TestSetBalance_RecordsAdminEntry(t *testing.T) {
	store, svc := newUserFixture()
	ctx := context.Background()

	store.seedUser("user-1", 250)

	user, err := svc.SetBalance(ctx, "user-1", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), user.Balance)
	assert.Equal(t, int64(1000), store.balance("user-1"))
	assert.Equal(t, []models.TransactionType{
		models.TransactionTypeAdminSet,
	}, store.historyTypes("user-1"))
}

func TestSetBalance_RejectsNegative(t *testing.T) {
	_, svc := newUserFixture()

	_, err := svc.SetBalance(context.Background(), "user-1", -1)
	assert.Error(t, err)
}

func TestGetLeaderboard_OrdersByBalance(t *testing.T) {
	store, svc := newUserFixture()

	store.seedUser("bronze", 10)
	store.seedUser("gold", 1000)
	store.seedUser("silver", 100)

	users, err := svc.GetLeaderboard(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "gold", users[0].UserID)
	assert.Equal(t, "silver", users[1].UserID)
}
