package repository

import (
	"context"
	"fmt"
	"time"

	"croupier/database"
	"croupier/models"
)

// UserRepository implements the service.UserRepository interface
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// newUserRepositoryWithTx creates a new user repository with a transaction
func newUserRepositoryWithTx(tx queryable) *UserRepository {
	return &UserRepository{q: tx}
}

// GetOrCreate retrieves a user, creating a durable zero-balance row the
// first time an ID is referenced
func (r *UserRepository) GetOrCreate(ctx context.Context, userID string) (*models.User, error) {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, balance, last_claim, created_at, updated_at
	`

	var user models.User
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&user.UserID,
		&user.Balance,
		&user.LastClaim,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user %s: %w", userID, err)
	}

	return &user, nil
}

// AdjustBalance applies a signed delta and returns the resulting balance
func (r *UserRepository) AdjustBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	query := `
		UPDATE users
		SET balance = balance + $1, updated_at = NOW()
		WHERE user_id = $2
		RETURNING balance
	`

	var balance int64
	err := r.q.QueryRow(ctx, query, delta, userID).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance for user %s: %w", userID, err)
	}

	return balance, nil
}

// SetBalance overwrites a user's balance
func (r *UserRepository) SetBalance(ctx context.Context, userID string, balance int64) error {
	query := `
		UPDATE users
		SET balance = $1, updated_at = NOW()
		WHERE user_id = $2
	`

	result, err := r.q.Exec(ctx, query, balance, userID)
	if err != nil {
		return fmt.Errorf("failed to set balance for user %s: %w", userID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID)
	}

	return nil
}

// SetLastClaim records the timestamp of a daily claim
func (r *UserRepository) SetLastClaim(ctx context.Context, userID string, claimedAt time.Time) error {
	query := `
		UPDATE users
		SET last_claim = $1, updated_at = NOW()
		WHERE user_id = $2
	`

	result, err := r.q.Exec(ctx, query, claimedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to set last claim for user %s: %w", userID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID)
	}

	return nil
}

// GetTopByBalance returns users ordered by balance descending
func (r *UserRepository) GetTopByBalance(ctx context.Context, limit int) ([]*models.User, error) {
	query := `
		SELECT user_id, balance, last_claim, created_at, updated_at
		FROM users
		ORDER BY balance DESC, user_id
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.UserID,
			&user.Balance,
			&user.LastClaim,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
