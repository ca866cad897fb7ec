package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestDefaultSettings(t *testing.T) {
	tests := []struct {
		key  GameKey
		prob float64
	}{
		{GameCoinflip, 0.5},
		{GameSlots, 0.28},
		{GameRoulette, 0.47},
		{GameBlackjack, 0.45},
		{GameDice, 0.18},
		{GameHighLow, 0.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			def := DefaultSettings(tt.key)
			assert.Equal(t, tt.prob, def.Probability(tt.key))
		})
	}
}

func TestMergeSettings_PrecedenceOrder(t *testing.T) {
	// Default < global < user override, field by field.
	def := GameSettings{HeadsProb: fptr(0.1), WinChance: fptr(0.2)}
	global := &GameSettings{WinChance: fptr(0.3)}
	user := &GameSettings{HeadsProb: fptr(0.9)}

	merged := MergeSettings(def, global, user)
	require.NotNil(t, merged.HeadsProb)
	require.NotNil(t, merged.WinChance)
	assert.Equal(t, 0.9, *merged.HeadsProb)
	assert.Equal(t, 0.3, *merged.WinChance)
	assert.Nil(t, merged.PlayerWinChance)
}

func TestMergeSettings_NilLayersIgnored(t *testing.T) {
	def := DefaultSettings(GameRoulette)
	merged := MergeSettings(def, nil, nil)
	assert.Equal(t, 0.47, merged.Probability(GameRoulette))
}

func TestMergeSettings_EmptyOverrideKeepsGlobal(t *testing.T) {
	def := DefaultSettings(GameDice)
	global := &GameSettings{PlayerWinChance: fptr(0.6)}
	merged := MergeSettings(def, global, &GameSettings{})
	assert.Equal(t, 0.6, merged.Probability(GameDice))
}

func TestProbability_ClampsStoredValues(t *testing.T) {
	s := GameSettings{PlayerWinChance: fptr(7.5)}
	assert.Equal(t, 1.0, s.Probability(GameDice))

	s = GameSettings{PlayerWinChance: fptr(-0.4)}
	assert.Equal(t, 0.0, s.Probability(GameDice))
}

func TestProbability_MissingFieldFallsBackToDefault(t *testing.T) {
	assert.Equal(t, 0.45, GameSettings{}.Probability(GameBlackjack))
}

func TestSettingsForProbability_FieldPerGame(t *testing.T) {
	s := SettingsForProbability(GameCoinflip, 0.7)
	require.NotNil(t, s.HeadsProb)
	assert.Nil(t, s.WinChance)

	s = SettingsForProbability(GameSlots, 0.7)
	require.NotNil(t, s.WinChance)

	s = SettingsForProbability(GameBlackjack, 0.7)
	require.NotNil(t, s.PlayerWinChance)
}

func TestGameSettings_JSONRoundTripOmitsAbsentFields(t *testing.T) {
	raw, err := json.Marshal(GameSettings{WinChance: fptr(0.33)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"winChance":0.33}`, string(raw))

	var parsed GameSettings
	require.NoError(t, json.Unmarshal(raw, &parsed))
	require.NotNil(t, parsed.WinChance)
	assert.Equal(t, 0.33, *parsed.WinChance)
	assert.Nil(t, parsed.HeadsProb)
}

func TestGameKey_Valid(t *testing.T) {
	for _, key := range AllGameKeys() {
		assert.True(t, key.Valid())
	}
	assert.False(t, GameKey("poker").Valid())
	assert.False(t, GameKey("").Valid())
}
