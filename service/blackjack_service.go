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

// blackjackService implements the BlackjackService interface. The stake
// is debited when the hand is dealt and credited back only at
// resolution; an abandoned session forfeits the stake.
type blackjackService struct {
	uowFactory UnitOfWorkFactory
	configSvc  GameConfigService
	sessions   SessionStore
	hands      keyedMutex

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBlackjackService creates a new blackjack service
func NewBlackjackService(uowFactory UnitOfWorkFactory, configSvc GameConfigService, sessions SessionStore) BlackjackService {
	return &blackjackService{
		uowFactory: uowFactory,
		configSvc:  configSvc,
		sessions:   sessions,
		hands:      keyedMutex{locks: make(map[string]*sync.Mutex)},
		rng:        games.NewRNG(),
	}
}

// keyedMutex serializes blackjack actions per session key. Interaction
// handlers run in their own goroutines, so without this two clicks on
// the same hand could both pass the Done check and settle twice.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) *sync.Mutex {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()
	l.Lock()
	return l
}

func (s *blackjackService) Start(ctx context.Context, scope, userID string, bet int64) (*models.BlackjackState, error) {
	if !games.ValidBet(bet) {
		return nil, ErrInvalidBet
	}

	defer s.hands.lock(sessionKey(scope, userID)).Unlock()

	settings, err := s.configSvc.EffectiveSettings(ctx, userID, models.GameBlackjack)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve game settings: %w", err)
	}
	p := settings.Probability(models.GameBlackjack)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	user, err := uow.UserRepository().GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Balance < bet {
		return nil, &InsufficientFundsError{Balance: user.Balance, Bet: bet}
	}

	// The stake is debited before any cards are drawn
	afterStake, err := uow.UserRepository().AdjustBalance(ctx, userID, -bet)
	if err != nil {
		return nil, fmt.Errorf("failed to debit stake: %w", err)
	}
	stakeHistory := &models.BalanceHistory{
		UserID:          userID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    afterStake,
		ChangeAmount:    -bet,
		TransactionType: models.TransactionTypeGameStake,
		TransactionMetadata: map[string]any{
			"game": string(models.GameBlackjack),
			"bet":  bet,
		},
	}
	if err := RecordBalanceChange(ctx, uow, stakeHistory); err != nil {
		return nil, fmt.Errorf("failed to record stake: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.mu.Lock()
	deck := games.NewDeck(s.rng)
	player, dealer := games.DealHands(s.rng, deck, p)
	s.mu.Unlock()

	// Starting a new hand silently replaces any unfinished one for the
	// same key; the old stake stays forfeited.
	session := &BlackjackSession{
		Bet:       bet,
		WinChance: p,
		Deck:      deck,
		Player:    player,
		Dealer:    dealer,
	}
	s.sessions.Put(scope, userID, session)

	return liveState(session), nil
}

func (s *blackjackService) Hit(ctx context.Context, scope, userID string) (*models.BlackjackState, error) {
	defer s.hands.lock(sessionKey(scope, userID)).Unlock()

	session, ok := s.sessions.Get(scope, userID)
	if !ok || session.Done {
		return nil, ErrNoActiveHand
	}

	s.mu.Lock()
	card := games.DrawFor(s.rng, session.Deck, session.WinChance, games.SeatPlayer)
	s.mu.Unlock()
	session.Player = append(session.Player, card)

	if games.HandValue(session.Player) > 21 {
		return s.resolve(ctx, scope, userID, session, models.VerdictLose)
	}

	s.sessions.Put(scope, userID, session)
	return liveState(session), nil
}

func (s *blackjackService) Stand(ctx context.Context, scope, userID string) (*models.BlackjackState, error) {
	defer s.hands.lock(sessionKey(scope, userID)).Unlock()

	session, ok := s.sessions.Get(scope, userID)
	if !ok || session.Done {
		return nil, ErrNoActiveHand
	}

	s.mu.Lock()
	session.Dealer = games.PlayDealer(s.rng, session.Deck, session.Dealer, session.WinChance)
	s.mu.Unlock()

	playerValue := games.HandValue(session.Player)
	dealerValue := games.HandValue(session.Dealer)

	verdict := models.VerdictLose
	switch {
	case dealerValue > 21 || playerValue > dealerValue:
		verdict = models.VerdictWin
	case playerValue == dealerValue:
		verdict = models.VerdictPush
	}
	return s.resolve(ctx, scope, userID, session, verdict)
}

// resolve settles a terminal hand: win pays double the stake, push
// returns the stake, loss pays nothing. The caller holds the hand's
// key lock.
func (s *blackjackService) resolve(ctx context.Context, scope, userID string, session *BlackjackSession, verdict models.Verdict) (*models.BlackjackState, error) {
	var payout int64
	switch verdict {
	case models.VerdictWin:
		payout = session.Bet * 2
	case models.VerdictPush:
		payout = session.Bet
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

	newBalance := user.Balance
	if payout > 0 {
		newBalance, err = uow.UserRepository().AdjustBalance(ctx, userID, payout)
		if err != nil {
			return nil, fmt.Errorf("failed to credit payout: %w", err)
		}
		payoutHistory := &models.BalanceHistory{
			UserID:          userID,
			BalanceBefore:   user.Balance,
			BalanceAfter:    newBalance,
			ChangeAmount:    payout,
			TransactionType: models.TransactionTypeGamePayout,
			TransactionMetadata: map[string]any{
				"game":    string(models.GameBlackjack),
				"bet":     session.Bet,
				"verdict": string(verdict),
			},
		}
		if err := RecordBalanceChange(ctx, uow, payoutHistory); err != nil {
			return nil, fmt.Errorf("failed to record payout: %w", err)
		}
	}

	uow.EventBus().Publish(events.GamePlayedEvent{
		UserID:  userID,
		Game:    models.GameBlackjack,
		Verdict: verdict,
		Bet:     session.Bet,
		Payout:  payout,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	session.Done = true
	s.sessions.Delete(scope, userID)

	state := finalState(session)
	state.Settlement = models.Settlement{
		Verdict:    verdict,
		Bet:        session.Bet,
		Payout:     payout,
		NewBalance: newBalance,
	}
	return state, nil
}

// liveState renders a snapshot of an unfinished hand: the dealer shows
// only the upcard.
func liveState(session *BlackjackSession) *models.BlackjackState {
	return &models.BlackjackState{
		Settlement:   models.Settlement{Bet: session.Bet},
		PlayerHand:   games.CardStrings(session.Player),
		PlayerValue:  games.HandValue(session.Player),
		DealerUpcard: session.Dealer[0].String(),
	}
}

func finalState(session *BlackjackSession) *models.BlackjackState {
	return &models.BlackjackState{
		PlayerHand:   games.CardStrings(session.Player),
		DealerHand:   games.CardStrings(session.Dealer),
		PlayerValue:  games.HandValue(session.Player),
		DealerValue:  games.HandValue(session.Dealer),
		DealerUpcard: session.Dealer[0].String(),
		Done:         true,
	}
}
