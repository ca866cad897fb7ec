package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"croupier/database"
	"croupier/models"

	"github.com/jackc/pgx/v5"
)

// GameConfigRepository implements the service.GameConfigRepository
// interface. Settings rows are stored as opaque JSON so new odds fields
// never need a schema change.
type GameConfigRepository struct {
	q queryable
}

// NewGameConfigRepository creates a new game config repository
func NewGameConfigRepository(db *database.DB) *GameConfigRepository {
	return &GameConfigRepository{q: db.Pool}
}

// newGameConfigRepositoryWithTx creates a new game config repository with a transaction
func newGameConfigRepositoryWithTx(tx queryable) *GameConfigRepository {
	return &GameConfigRepository{q: tx}
}

func parseSettings(raw []byte) (*models.GameSettings, error) {
	var settings models.GameSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCorruptSettings, err)
	}
	return &settings, nil
}

// GetGlobal retrieves the global settings row for a game. Returns nil
// when no row exists and models.ErrCorruptSettings when the stored JSON
// cannot be parsed.
func (r *GameConfigRepository) GetGlobal(ctx context.Context, key models.GameKey) (*models.GameSettings, error) {
	query := `
		SELECT settings
		FROM game_config
		WHERE game_key = $1
	`

	var raw []byte
	err := r.q.QueryRow(ctx, query, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get global settings for %s: %w", key, err)
	}

	return parseSettings(raw)
}

// SetGlobal overwrites the global settings row for a game
func (r *GameConfigRepository) SetGlobal(ctx context.Context, key models.GameKey, settings models.GameSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	query := `
		INSERT INTO game_config (game_key, settings)
		VALUES ($1, $2)
		ON CONFLICT (game_key) DO UPDATE SET settings = EXCLUDED.settings, updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, key, raw); err != nil {
		return fmt.Errorf("failed to set global settings for %s: %w", key, err)
	}
	return nil
}

// GetUserOverride retrieves a per-user override row for a game
func (r *GameConfigRepository) GetUserOverride(ctx context.Context, userID string, key models.GameKey) (*models.GameSettings, error) {
	query := `
		SELECT settings
		FROM user_game_config
		WHERE user_id = $1 AND game_key = $2
	`

	var raw []byte
	err := r.q.QueryRow(ctx, query, userID, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get override for user %s game %s: %w", userID, key, err)
	}

	return parseSettings(raw)
}

// SetUserOverride overwrites a per-user override row for a game
func (r *GameConfigRepository) SetUserOverride(ctx context.Context, userID string, key models.GameKey, settings models.GameSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	query := `
		INSERT INTO user_game_config (user_id, game_key, settings)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, game_key) DO UPDATE SET settings = EXCLUDED.settings, updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, userID, key, raw); err != nil {
		return fmt.Errorf("failed to set override for user %s game %s: %w", userID, key, err)
	}
	return nil
}

// ClearUserOverride deletes a per-user override row. Clearing an absent
// row is not an error.
func (r *GameConfigRepository) ClearUserOverride(ctx context.Context, userID string, key models.GameKey) error {
	query := `
		DELETE FROM user_game_config
		WHERE user_id = $1 AND game_key = $2
	`

	if _, err := r.q.Exec(ctx, query, userID, key); err != nil {
		return fmt.Errorf("failed to clear override for user %s game %s: %w", userID, key, err)
	}
	return nil
}

// GetUserOverrides returns all override rows for a user keyed by game.
// Corrupt rows are skipped rather than failing the whole listing.
func (r *GameConfigRepository) GetUserOverrides(ctx context.Context, userID string) (map[models.GameKey]*models.GameSettings, error) {
	query := `
		SELECT game_key, settings
		FROM user_game_config
		WHERE user_id = $1
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get overrides for user %s: %w", userID, err)
	}
	defer rows.Close()

	overrides := make(map[models.GameKey]*models.GameSettings)
	for rows.Next() {
		var key models.GameKey
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		settings, err := parseSettings(raw)
		if errors.Is(err, models.ErrCorruptSettings) {
			continue
		}
		if err != nil {
			return nil, err
		}
		overrides[key] = settings
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overrides: %w", err)
	}

	return overrides, nil
}
