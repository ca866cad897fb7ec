package models

import (
	"errors"
)

// GameKey identifies a casino game for odds configuration
type GameKey string

const (
	GameCoinflip  GameKey = "coinflip"
	GameSlots     GameKey = "slots"
	GameRoulette  GameKey = "roulette"
	GameBlackjack GameKey = "blackjack"
	GameDice      GameKey = "dice"
	GameHighLow   GameKey = "highlow"
)

// AllGameKeys returns every configurable game key
func AllGameKeys() []GameKey {
	return []GameKey{GameCoinflip, GameSlots, GameRoulette, GameBlackjack, GameDice, GameHighLow}
}

// Valid reports whether the key names a known game
func (k GameKey) Valid() bool {
	switch k {
	case GameCoinflip, GameSlots, GameRoulette, GameBlackjack, GameDice, GameHighLow:
		return true
	}
	return false
}

// ErrCorruptSettings is returned when a stored settings row cannot be parsed.
// Callers treat the row as absent and rewrite the default.
var ErrCorruptSettings = errors.New("corrupt game settings")

// GameSettings holds the odds fields for a game. Fields are pointers so a
// per-user override row carries only the fields it actually overrides;
// absent fields fall through to the global row and then the default.
type GameSettings struct {
	HeadsProb       *float64 `json:"headsProb,omitempty"`
	WinChance       *float64 `json:"winChance,omitempty"`
	PlayerWinChance *float64 `json:"playerWinChance,omitempty"`
}

// DefaultSettings returns the hardcoded default settings for a game
func DefaultSettings(key GameKey) GameSettings {
	return SettingsForProbability(key, defaultProbability(key))
}

func defaultProbability(key GameKey) float64 {
	switch key {
	case GameCoinflip:
		return 0.5
	case GameSlots:
		return 0.28
	case GameRoulette:
		return 0.47
	case GameBlackjack:
		return 0.45
	case GameDice:
		return 0.18
	case GameHighLow:
		return 0.5
	}
	return 0
}

// SettingsForProbability builds a settings value with the game's single
// probability field set to p
func SettingsForProbability(key GameKey, p float64) GameSettings {
	switch key {
	case GameCoinflip:
		return GameSettings{HeadsProb: &p}
	case GameSlots:
		return GameSettings{WinChance: &p}
	default:
		return GameSettings{PlayerWinChance: &p}
	}
}

// MergeSettings resolves the effective settings for a request: start from
// the default, overlay the global row, overlay the user override. Only
// non-nil fields override.
func MergeSettings(def GameSettings, layers ...*GameSettings) GameSettings {
	merged := def
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if layer.HeadsProb != nil {
			merged.HeadsProb = layer.HeadsProb
		}
		if layer.WinChance != nil {
			merged.WinChance = layer.WinChance
		}
		if layer.PlayerWinChance != nil {
			merged.PlayerWinChance = layer.PlayerWinChance
		}
	}
	return merged
}

// Probability returns the game's effective probability field, clamped to
// [0,1]. Stored values are not guaranteed valid, so clamping happens here
// at the point of use.
func (s GameSettings) Probability(key GameKey) float64 {
	var field *float64
	switch key {
	case GameCoinflip:
		field = s.HeadsProb
	case GameSlots:
		field = s.WinChance
	default:
		field = s.PlayerWinChance
	}
	if field == nil {
		return ClampProbability(defaultProbability(key))
	}
	return ClampProbability(*field)
}

// ClampProbability clamps p to the [0,1] range
func ClampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
