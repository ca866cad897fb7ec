package blackjack

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"croupier/service"
)

// Feature handles the blackjack command and its Hit/Stand buttons.
// Hands are scoped per channel, so a player can have at most one live
// hand in a given channel.
type Feature struct {
	blackjackService service.BlackjackService
}

func New(blackjackService service.BlackjackService) *Feature {
	return &Feature{
		blackjackService: blackjackService,
	}
}

// HandleCommand handles the /blackjack command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleStart(s, i)
}

// HandleInteraction handles Hit/Stand button clicks
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, hitButtonPrefix):
		f.handleHit(s, i, strings.TrimPrefix(customID, hitButtonPrefix))
	case strings.HasPrefix(customID, standButtonPrefix):
		f.handleStand(s, i, strings.TrimPrefix(customID, standButtonPrefix))
	}
}
