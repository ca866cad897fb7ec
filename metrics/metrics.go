package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Game metrics
var (
	GamesPlayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "games_played_total",
			Help: "Total number of settled game rounds",
		},
		[]string{"game", "verdict"},
	)

	AmountStaked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "amount_staked_total",
			Help: "Total stake debited across all games",
		},
	)

	AmountPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "amount_paid_out_total",
			Help: "Total payout credited across all games",
		},
	)
)

// Ledger metrics
var (
	BalanceChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "balance_changes_total",
			Help: "Total number of balance ledger entries",
		},
		[]string{"transaction_type"},
	)

	ConfigChanges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "config_changes_total",
			Help: "Total number of odds configuration changes",
		},
	)
)
