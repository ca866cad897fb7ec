package games

import (
	"github.com/bwmarrin/discordgo"

	"croupier/service"
)

// Feature handles the single-round casino game commands
type Feature struct {
	casinoService service.CasinoService
}

func New(casinoService service.CasinoService) *Feature {
	return &Feature{
		casinoService: casinoService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "coinflip":
		f.handleCoinflip(s, i)
	case "slots":
		f.handleSlots(s, i)
	case "roulette":
		f.handleRoulette(s, i)
	case "dice":
		f.handleDice(s, i)
	case "highlow":
		f.handleHighLow(s, i)
	}
}
