package games

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoinflip_SideAlwaysValid(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		out := Coinflip(rng, SideHeads, 0.5)
		assert.Contains(t, []string{SideHeads, SideTails}, out.Side)
		assert.Equal(t, out.Side == SideHeads, out.Win)
	}
}

func TestCoinflip_ExactEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(12))

	for i := 0; i < 500; i++ {
		out := Coinflip(rng, SideHeads, 1.0)
		assert.Equal(t, SideHeads, out.Side)
		assert.True(t, out.Win)
	}

	for i := 0; i < 500; i++ {
		out := Coinflip(rng, SideHeads, 0.0)
		assert.Equal(t, SideTails, out.Side)
		assert.False(t, out.Win)
	}
}

func TestCoinflip_BiasConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	const n = 20000
	heads := 0
	for i := 0; i < n; i++ {
		if Coinflip(rng, SideTails, 0.7).Side == SideHeads {
			heads++
		}
	}
	assert.InDelta(t, 0.7, float64(heads)/n, 0.02)
}

func TestCoinflip_ClampsOutOfRangeProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	out := Coinflip(rng, SideHeads, 4.2)
	assert.Equal(t, SideHeads, out.Side)

	out = Coinflip(rng, SideHeads, -1.0)
	assert.Equal(t, SideTails, out.Side)
}
