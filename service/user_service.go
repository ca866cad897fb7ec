package service

import (
	"context"
	"fmt"
	"time"

	"croupier/config"
	"croupier/models"
)

// DailyClaimCooldown is the minimum time between daily claims
const DailyClaimCooldown = 24 * time.Hour

// userService implements the UserService interface
type userService struct {
	uowFactory UnitOfWorkFactory
}

// NewUserService creates a new user service
func NewUserService(uowFactory UnitOfWorkFactory) UserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

// GetOrCreateUser retrieves an existing user or creates a zero-balance one
func (s *userService) GetOrCreateUser(ctx context.Context, userID string) (*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	user, err := uow.UserRepository().GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return user, nil
}

// ClaimDaily grants the configured daily amount, enforcing the cooldown
func (s *userService) ClaimDaily(ctx context.Context, userID string) (*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	now := time.Now()
	if elapsed := now.Sub(user.LastClaim); elapsed < DailyClaimCooldown {
		return nil, &ClaimCooldownError{Remaining: DailyClaimCooldown - elapsed}
	}

	amount := config.Get().DailyAmount
	newBalance, err := uow.UserRepository().AdjustBalance(ctx, userID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to credit daily claim: %w", err)
	}
	if err := uow.UserRepository().SetLastClaim(ctx, userID, now); err != nil {
		return nil, fmt.Errorf("failed to set last claim: %w", err)
	}

	history := &models.BalanceHistory{
		UserID:          userID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    newBalance,
		ChangeAmount:    amount,
		TransactionType: models.TransactionTypeDailyClaim,
	}
	if err := RecordBalanceChange(ctx, uow, history); err != nil {
		return nil, fmt.Errorf("failed to record balance change: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	user.Balance = newBalance
	user.LastClaim = now
	return user, nil
}

// SetBalance overwrites a user's balance from the admin console
func (s *userService) SetBalance(ctx context.Context, userID string, balance int64) (*models.User, error) {
	if balance < 0 {
		return nil, fmt.Errorf("balance must not be negative, got %d", balance)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := uow.UserRepository().SetBalance(ctx, userID, balance); err != nil {
		return nil, fmt.Errorf("failed to set balance: %w", err)
	}

	history := &models.BalanceHistory{
		UserID:          userID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    balance,
		ChangeAmount:    balance - user.Balance,
		TransactionType: models.TransactionTypeAdminSet,
	}
	if err := RecordBalanceChange(ctx, uow, history); err != nil {
		return nil, fmt.Errorf("failed to record balance change: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	user.Balance = balance
	return user, nil
}

// GetLeaderboard returns the top users by balance
func (s *userService) GetLeaderboard(ctx context.Context, limit int) ([]*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	users, err := uow.UserRepository().GetTopByBalance(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return users, nil
}
