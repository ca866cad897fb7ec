package models

// Verdict is the player-facing outcome of a settled game round
type Verdict string

const (
	VerdictWin  Verdict = "win"
	VerdictLose Verdict = "lose"
	VerdictPush Verdict = "push"
)

// Settlement holds the ledger side of a settled round. Payout is the
// amount credited back after the stake was debited: 0 on a loss, the
// stake on a push, stake times multiplier on a win. The net change for
// the player is Payout - Bet.
type Settlement struct {
	Verdict    Verdict
	Bet        int64
	Payout     int64
	NewBalance int64
}

// Net returns the net balance change of the round
func (s Settlement) Net() int64 {
	return s.Payout - s.Bet
}

// CoinflipResult is the settled outcome of a coinflip round
type CoinflipResult struct {
	Settlement
	Choice string
	Flip   string
}

// SlotsResult is the settled outcome of a slots spin
type SlotsResult struct {
	Settlement
	Line       []string
	Multiplier float64
}

// RouletteResult is the settled outcome of a roulette spin
type RouletteResult struct {
	Settlement
	BetType   string
	BetNumber int
	Number    int
	Color     string
	Parity    string
}

// DiceResult is the settled outcome of a dice round
type DiceResult struct {
	Settlement
	Guess int
	Roll  int
}

// HighLowResult is the settled outcome of a high-low round
type HighLowResult struct {
	Settlement
	Guess string
	Base  int
	Next  int
}

// BlackjackState is a snapshot of a blackjack session for rendering.
// While the hand is live the dealer shows only the upcard; Settlement is
// only meaningful once Done is true.
type BlackjackState struct {
	Settlement
	PlayerHand   []string
	DealerHand   []string
	PlayerValue  int
	DealerValue  int
	DealerUpcard string
	Done         bool
}
