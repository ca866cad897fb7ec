package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"croupier/events"
	"croupier/models"
)

// Sentinel errors surfaced to callers. Handlers map these to user-facing
// messages instead of pattern-matching error strings.
var (
	// ErrInvalidBet indicates a bet outside the accepted range
	ErrInvalidBet = errors.New("invalid bet amount")

	// ErrInvalidChoice indicates an unrecognized game choice (coin side,
	// roulette position, high-low direction)
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrNoActiveHand indicates a hit/stand with no live blackjack session
	ErrNoActiveHand = errors.New("no active blackjack hand")

	// ErrUnknownGame indicates a config operation on an unknown game key
	ErrUnknownGame = errors.New("unknown game")
)

// InsufficientFundsError carries the balance and requested stake so
// callers can report the shortfall.
type InsufficientFundsError struct {
	Balance int64
	Bet     int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance: have %d, need %d", e.Balance, e.Bet)
}

// ClaimCooldownError reports how long until the next daily claim
type ClaimCooldownError struct {
	Remaining time.Duration
}

func (e *ClaimCooldownError) Error() string {
	return fmt.Sprintf("daily claim on cooldown for %s", e.Remaining.Round(time.Second))
}

// UserRepository defines the interface for ledger data access
type UserRepository interface {
	// GetOrCreate retrieves a user, creating a zero-balance row on first reference
	GetOrCreate(ctx context.Context, userID string) (*models.User, error)

	// AdjustBalance applies a signed delta and returns the new balance.
	// No lower-bound enforcement beyond what callers already checked.
	AdjustBalance(ctx context.Context, userID string, delta int64) (int64, error)

	// SetBalance overwrites a user's balance
	SetBalance(ctx context.Context, userID string, balance int64) error

	// SetLastClaim records the timestamp of a daily claim
	SetLastClaim(ctx context.Context, userID string, claimedAt time.Time) error

	// GetTopByBalance returns users ordered by balance descending
	GetTopByBalance(ctx context.Context, limit int) ([]*models.User, error)
}

// BalanceHistoryRepository defines the interface for balance history tracking
type BalanceHistoryRepository interface {
	// Record creates a new balance history entry
	Record(ctx context.Context, history *models.BalanceHistory) error

	// GetByUser returns balance history for a specific user, newest first
	GetByUser(ctx context.Context, userID string, limit int) ([]*models.BalanceHistory, error)
}

// GameConfigRepository defines the interface for odds configuration rows.
// Reads return nil when no row exists and models.ErrCorruptSettings when a
// stored row cannot be parsed.
type GameConfigRepository interface {
	// GetGlobal retrieves the global settings row for a game
	GetGlobal(ctx context.Context, key models.GameKey) (*models.GameSettings, error)

	// SetGlobal overwrites the global settings row for a game
	SetGlobal(ctx context.Context, key models.GameKey, settings models.GameSettings) error

	// GetUserOverride retrieves a per-user override row for a game
	GetUserOverride(ctx context.Context, userID string, key models.GameKey) (*models.GameSettings, error)

	// SetUserOverride overwrites a per-user override row for a game
	SetUserOverride(ctx context.Context, userID string, key models.GameKey, settings models.GameSettings) error

	// ClearUserOverride deletes a per-user override row; clearing an
	// absent row is not an error
	ClearUserOverride(ctx context.Context, userID string, key models.GameKey) error

	// GetUserOverrides returns all override rows for a user keyed by game
	GetUserOverrides(ctx context.Context, userID string) (map[models.GameKey]*models.GameSettings, error)
}

// UserService defines the interface for ledger operations
type UserService interface {
	// GetOrCreateUser retrieves an existing user or creates a zero-balance one
	GetOrCreateUser(ctx context.Context, userID string) (*models.User, error)

	// ClaimDaily grants the daily amount, enforcing the 24h cooldown
	ClaimDaily(ctx context.Context, userID string) (*models.User, error)

	// SetBalance overwrites a user's balance from the admin console
	SetBalance(ctx context.Context, userID string, balance int64) (*models.User, error)

	// GetLeaderboard returns the top users by balance
	GetLeaderboard(ctx context.Context, limit int) ([]*models.User, error)
}

// GameConfigService defines the interface for odds configuration
type GameConfigService interface {
	// EffectiveSettings resolves default, global and user override layers
	EffectiveSettings(ctx context.Context, userID string, key models.GameKey) (models.GameSettings, error)

	// GlobalProbability returns the global probability for a game,
	// creating the default row on first read
	GlobalProbability(ctx context.Context, key models.GameKey) (float64, error)

	// SetGlobalPercent sets the global probability from a 0-100 percent value
	SetGlobalPercent(ctx context.Context, key models.GameKey, percent float64) error

	// SetUserOverridePercent sets a per-user override from a 0-100 percent value
	SetUserOverridePercent(ctx context.Context, userID string, key models.GameKey, percent float64) error

	// ClearUserOverride removes a per-user override
	ClearUserOverride(ctx context.Context, userID string, key models.GameKey) error

	// UserOverrideProbabilities returns a user's override probabilities by game
	UserOverrideProbabilities(ctx context.Context, userID string) (map[models.GameKey]float64, error)
}

// CasinoService defines the interface for single-round game operations
type CasinoService interface {
	// PlayCoinflip settles one coinflip round
	PlayCoinflip(ctx context.Context, userID string, choice string, bet int64) (*models.CoinflipResult, error)

	// PlaySlots settles one slots spin
	PlaySlots(ctx context.Context, userID string, bet int64) (*models.SlotsResult, error)

	// PlayRoulette settles one roulette spin
	PlayRoulette(ctx context.Context, userID string, bet int64, position string, number int) (*models.RouletteResult, error)

	// PlayDice settles one dice round for a guessed face
	PlayDice(ctx context.Context, userID string, guess int, bet int64) (*models.DiceResult, error)

	// PlayHighLow settles one high-low round
	PlayHighLow(ctx context.Context, userID string, guess string, bet int64) (*models.HighLowResult, error)
}

// BlackjackService defines the interface for the multi-step blackjack flow.
// The scope distinguishes sessions for the same user in different places
// (e.g. a channel ID); starting a new hand silently replaces any live one.
type BlackjackService interface {
	// Start debits the stake and deals a new hand
	Start(ctx context.Context, scope, userID string, bet int64) (*models.BlackjackState, error)

	// Hit draws a card for the player, settling on bust
	Hit(ctx context.Context, scope, userID string) (*models.BlackjackState, error)

	// Stand plays out the dealer and settles the hand
	Stand(ctx context.Context, scope, userID string) (*models.BlackjackState, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	UserRepository() UserRepository
	BalanceHistoryRepository() BalanceHistoryRepository
	GameConfigRepository() GameConfigRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
