package repository

import (
	"context"
	"testing"

	"croupier/models"
	"croupier/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prob(v float64) *float64 { return &v }

func TestGameConfigRepository_Global(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGameConfigRepository(testDB.DB)
	ctx := context.Background()

	t.Run("absent row returns nil", func(t *testing.T) {
		settings, err := repo.GetGlobal(ctx, models.GameCoinflip)
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("set and get", func(t *testing.T) {
		err := repo.SetGlobal(ctx, models.GameCoinflip, models.GameSettings{HeadsProb: prob(0.7)})
		require.NoError(t, err)

		settings, err := repo.GetGlobal(ctx, models.GameCoinflip)
		require.NoError(t, err)
		require.NotNil(t, settings)
		require.NotNil(t, settings.HeadsProb)
		assert.Equal(t, 0.7, *settings.HeadsProb)
	})

	t.Run("set overwrites wholesale", func(t *testing.T) {
		err := repo.SetGlobal(ctx, models.GameCoinflip, models.GameSettings{HeadsProb: prob(0.2)})
		require.NoError(t, err)

		settings, err := repo.GetGlobal(ctx, models.GameCoinflip)
		require.NoError(t, err)
		assert.Equal(t, 0.2, *settings.HeadsProb)
	})

	t.Run("unparseable row reports corrupt settings", func(t *testing.T) {
		_, err := testDB.DB.Exec(ctx,
			`INSERT INTO game_config (game_key, settings) VALUES ($1, $2)`,
			"slots", []byte(`{"winChance":"very high"}`))
		require.NoError(t, err)

		_, err = repo.GetGlobal(ctx, models.GameSlots)
		assert.ErrorIs(t, err, models.ErrCorruptSettings)
	})
}

func TestGameConfigRepository_UserOverrides(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGameConfigRepository(testDB.DB)
	ctx := context.Background()

	t.Run("absent override returns nil", func(t *testing.T) {
		settings, err := repo.GetUserOverride(ctx, "player-1", models.GameDice)
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("set, get, clear", func(t *testing.T) {
		err := repo.SetUserOverride(ctx, "player-1", models.GameDice, models.GameSettings{PlayerWinChance: prob(0.9)})
		require.NoError(t, err)

		settings, err := repo.GetUserOverride(ctx, "player-1", models.GameDice)
		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Equal(t, 0.9, *settings.PlayerWinChance)

		require.NoError(t, repo.ClearUserOverride(ctx, "player-1", models.GameDice))

		settings, err = repo.GetUserOverride(ctx, "player-1", models.GameDice)
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("clearing an absent row is not an error", func(t *testing.T) {
		assert.NoError(t, repo.ClearUserOverride(ctx, "player-1", models.GameRoulette))
	})

	t.Run("listing skips corrupt rows", func(t *testing.T) {
		err := repo.SetUserOverride(ctx, "player-2", models.GameSlots, models.GameSettings{WinChance: prob(0.5)})
		require.NoError(t, err)

		_, err = testDB.DB.Exec(ctx,
			`INSERT INTO user_game_config (user_id, game_key, settings) VALUES ($1, $2, $3)`,
			"player-2", "dice", []byte(`{"playerWinChance":[1,2]}`))
		require.NoError(t, err)

		overrides, err := repo.GetUserOverrides(ctx, "player-2")
		require.NoError(t, err)
		require.Len(t, overrides, 1)
		assert.Contains(t, overrides, models.GameSlots)
	})
}
