package metrics

import (
	"context"

	"croupier/events"
)

// Collector subscribes to domain events and records game and ledger
// metrics from them, keeping the service layer free of metric calls.
type Collector struct{}

// NewCollector creates a new event metrics collector
func NewCollector() *Collector {
	return &Collector{}
}

// Register subscribes the collector to the event bus
func (c *Collector) Register(bus *events.Bus) {
	bus.Subscribe(events.EventTypeGamePlayed, c.handleGamePlayed)
	bus.Subscribe(events.EventTypeBalanceChange, c.handleBalanceChange)
	bus.Subscribe(events.EventTypeConfigChange, c.handleConfigChange)
}

func (c *Collector) handleGamePlayed(ctx context.Context, event events.Event) {
	played, ok := event.(events.GamePlayedEvent)
	if !ok {
		return
	}
	GamesPlayed.WithLabelValues(string(played.Game), string(played.Verdict)).Inc()
	AmountStaked.Add(float64(played.Bet))
	AmountPaidOut.Add(float64(played.Payout))
}

func (c *Collector) handleBalanceChange(ctx context.Context, event events.Event) {
	change, ok := event.(events.BalanceChangeEvent)
	if !ok {
		return
	}
	BalanceChanges.WithLabelValues(string(change.TransactionType)).Inc()
}

func (c *Collector) handleConfigChange(ctx context.Context, event events.Event) {
	if _, ok := event.(events.ConfigChangeEvent); ok {
		ConfigChanges.Inc()
	}
}
