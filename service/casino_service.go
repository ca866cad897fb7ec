package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"croupier/events"
	"croupier/games"
	"croupier/models"
)

// casinoService implements the CasinoService interface. All single-round
// games share the same settlement flow: debit the stake, resolve the
// round at the effective probability, credit the payout.
type casinoService struct {
	uowFactory UnitOfWorkFactory
	configSvc  GameConfigService

	// rand.Rand is not safe for concurrent use
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCasinoService creates a new casino service
func NewCasinoService(uowFactory UnitOfWorkFactory, configSvc GameConfigService) CasinoService {
	return &casinoService{
		uowFactory: uowFactory,
		configSvc:  configSvc,
		rng:        games.NewRNG(),
	}
}

// roundOutcome is what a game resolver hands back to the settlement flow
type roundOutcome struct {
	verdict  models.Verdict
	payout   int64
	metadata map[string]any
}

// settleRound runs the shared settlement flow for a single-round game:
// validate the bet, resolve the effective probability, debit the stake,
// resolve the round, credit the payout, and record both ledger entries in
// one transaction.
func (s *casinoService) settleRound(ctx context.Context, userID string, key models.GameKey, bet int64, play func(rng *rand.Rand, p float64) roundOutcome) (models.Settlement, roundOutcome, error) {
	var zero models.Settlement

	if !games.ValidBet(bet) {
		return zero, roundOutcome{}, ErrInvalidBet
	}

	settings, err := s.configSvc.EffectiveSettings(ctx, userID, key)
	if err != nil {
		return zero, roundOutcome{}, fmt.Errorf("failed to resolve game settings: %w", err)
	}
	p := settings.Probability(key)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, roundOutcome{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	user, err := uow.UserRepository().GetOrCreate(ctx, userID)
	if err != nil {
		return zero, roundOutcome{}, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Balance < bet {
		return zero, roundOutcome{}, &InsufficientFundsError{Balance: user.Balance, Bet: bet}
	}

	// Debit the stake
	afterStake, err := uow.UserRepository().AdjustBalance(ctx, userID, -bet)
	if err != nil {
		return zero, roundOutcome{}, fmt.Errorf("failed to debit stake: %w", err)
	}

	s.mu.Lock()
	outcome := play(s.rng, p)
	s.mu.Unlock()

	stakeHistory := &models.BalanceHistory{
		UserID:          userID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    afterStake,
		ChangeAmount:    -bet,
		TransactionType: models.TransactionTypeGameStake,
		TransactionMetadata: map[string]any{
			"game": string(key),
			"bet":  bet,
		},
	}
	if err := RecordBalanceChange(ctx, uow, stakeHistory); err != nil {
		return zero, roundOutcome{}, fmt.Errorf("failed to record stake: %w", err)
	}

	newBalance := afterStake
	if outcome.payout > 0 {
		newBalance, err = uow.UserRepository().AdjustBalance(ctx, userID, outcome.payout)
		if err != nil {
			return zero, roundOutcome{}, fmt.Errorf("failed to credit payout: %w", err)
		}

		metadata := map[string]any{
			"game":    string(key),
			"bet":     bet,
			"verdict": string(outcome.verdict),
		}
		for k, v := range outcome.metadata {
			metadata[k] = v
		}
		payoutHistory := &models.BalanceHistory{
			UserID:              userID,
			BalanceBefore:       afterStake,
			BalanceAfter:        newBalance,
			ChangeAmount:        outcome.payout,
			TransactionType:     models.TransactionTypeGamePayout,
			TransactionMetadata: metadata,
		}
		if err := RecordBalanceChange(ctx, uow, payoutHistory); err != nil {
			return zero, roundOutcome{}, fmt.Errorf("failed to record payout: %w", err)
		}
	}

	uow.EventBus().Publish(events.GamePlayedEvent{
		UserID:  userID,
		Game:    key,
		Verdict: outcome.verdict,
		Bet:     bet,
		Payout:  outcome.payout,
	})

	if err := uow.Commit(); err != nil {
		return zero, roundOutcome{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	settlement := models.Settlement{
		Verdict:    outcome.verdict,
		Bet:        bet,
		Payout:     outcome.payout,
		NewBalance: newBalance,
	}
	return settlement, outcome, nil
}

func (s *casinoService) PlayCoinflip(ctx context.Context, userID string, choice string, bet int64) (*models.CoinflipResult, error) {
	if choice != games.SideHeads && choice != games.SideTails {
		return nil, ErrInvalidChoice
	}

	var flip games.FlipOutcome
	settlement, _, err := s.settleRound(ctx, userID, models.GameCoinflip, bet, func(rng *rand.Rand, p float64) roundOutcome {
		flip = games.Coinflip(rng, choice, p)
		if flip.Win {
			return roundOutcome{
				verdict:  models.VerdictWin,
				payout:   bet * 2,
				metadata: map[string]any{"flip": flip.Side},
			}
		}
		return roundOutcome{verdict: models.VerdictLose}
	})
	if err != nil {
		return nil, err
	}

	return &models.CoinflipResult{
		Settlement: settlement,
		Choice:     choice,
		Flip:       flip.Side,
	}, nil
}

func (s *casinoService) PlaySlots(ctx context.Context, userID string, bet int64) (*models.SlotsResult, error) {
	var spin games.SpinOutcome
	settlement, _, err := s.settleRound(ctx, userID, models.GameSlots, bet, func(rng *rand.Rand, p float64) roundOutcome {
		spin = games.SpinSlots(rng, p)
		if !spin.Win() {
			return roundOutcome{verdict: models.VerdictLose}
		}
		return roundOutcome{
			verdict: models.VerdictWin,
			// Fractional winnings floor to whole chips
			payout:   int64(float64(bet) * spin.Multiplier),
			metadata: map[string]any{"line": spin.Line[:], "multiplier": spin.Multiplier},
		}
	})
	if err != nil {
		return nil, err
	}

	return &models.SlotsResult{
		Settlement: settlement,
		Line:       spin.Line[:],
		Multiplier: spin.Multiplier,
	}, nil
}

func (s *casinoService) PlayRoulette(ctx context.Context, userID string, bet int64, position string, number int) (*models.RouletteResult, error) {
	rouletteBet := games.RouletteBet{Type: position, Number: number}
	if !games.ValidRouletteBet(rouletteBet) {
		return nil, ErrInvalidChoice
	}

	var wheel games.WheelOutcome
	settlement, _, err := s.settleRound(ctx, userID, models.GameRoulette, bet, func(rng *rand.Rand, p float64) roundOutcome {
		wheel = games.SpinRoulette(rng, rouletteBet, p)
		if !wheel.Win {
			return roundOutcome{
				verdict:  models.VerdictLose,
				metadata: map[string]any{"pocket": wheel.Number},
			}
		}
		return roundOutcome{
			verdict:  models.VerdictWin,
			payout:   bet * games.RoulettePayoutMultiplier(position),
			metadata: map[string]any{"pocket": wheel.Number},
		}
	})
	if err != nil {
		return nil, err
	}

	return &models.RouletteResult{
		Settlement: settlement,
		BetType:    position,
		BetNumber:  number,
		Number:     wheel.Number,
		Color:      wheel.Color,
		Parity:     wheel.Parity,
	}, nil
}

func (s *casinoService) PlayDice(ctx context.Context, userID string, guess int, bet int64) (*models.DiceResult, error) {
	if guess < 1 || guess > 6 {
		return nil, ErrInvalidChoice
	}

	var roll games.DiceOutcome
	settlement, _, err := s.settleRound(ctx, userID, models.GameDice, bet, func(rng *rand.Rand, p float64) roundOutcome {
		roll = games.RollDice(rng, guess, p)
		if !roll.Win {
			return roundOutcome{
				verdict:  models.VerdictLose,
				metadata: map[string]any{"roll": roll.Roll},
			}
		}
		return roundOutcome{
			verdict:  models.VerdictWin,
			payout:   bet * games.DicePayoutMultiplier,
			metadata: map[string]any{"roll": roll.Roll},
		}
	})
	if err != nil {
		return nil, err
	}

	return &models.DiceResult{
		Settlement: settlement,
		Guess:      guess,
		Roll:       roll.Roll,
	}, nil
}

func (s *casinoService) PlayHighLow(ctx context.Context, userID string, guess string, bet int64) (*models.HighLowResult, error) {
	if guess != games.GuessHigher && guess != games.GuessLower {
		return nil, ErrInvalidChoice
	}

	var round games.HighLowOutcome
	settlement, _, err := s.settleRound(ctx, userID, models.GameHighLow, bet, func(rng *rand.Rand, p float64) roundOutcome {
		round = games.PlayHighLow(rng, guess, p)
		switch {
		case round.Push:
			return roundOutcome{
				verdict:  models.VerdictPush,
				payout:   bet,
				metadata: map[string]any{"base": round.Base, "next": round.Next},
			}
		case round.Win:
			return roundOutcome{
				verdict:  models.VerdictWin,
				payout:   bet * 2,
				metadata: map[string]any{"base": round.Base, "next": round.Next},
			}
		default:
			return roundOutcome{
				verdict:  models.VerdictLose,
				metadata: map[string]any{"base": round.Base, "next": round.Next},
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return &models.HighLowResult{
		Settlement: settlement,
		Guess:      guess,
		Base:       round.Base,
		Next:       round.Next,
	}, nil
}
