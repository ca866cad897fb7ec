package blackjack

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"croupier/bot/common"
	"croupier/models"
	"croupier/service"
)

func (f *Feature) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var bet int64
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "bet" {
			bet = opt.IntValue()
		}
	}

	userID := i.Member.User.ID
	state, err := f.blackjackService.Start(ctx, i.ChannelID, userID, bet)
	if err != nil {
		f.respondError(s, i, err)
		return
	}

	embed := buildHandEmbed(s, i, state)
	components := buildHandButtons(userID)

	if err := common.RespondWithEmbed(s, i, embed, components, false); err != nil {
		log.Errorf("Error responding to blackjack command: %v", err)
	}
}

func (f *Feature) handleHit(s *discordgo.Session, i *discordgo.InteractionCreate, ownerID string) {
	if i.Member.User.ID != ownerID {
		common.RespondWithError(s, i, "This isn't your hand.")
		return
	}

	ctx := context.Background()
	state, err := f.blackjackService.Hit(ctx, i.ChannelID, ownerID)
	if err != nil {
		f.respondError(s, i, err)
		return
	}

	f.updateHand(s, i, ownerID, state)
}

func (f *Feature) handleStand(s *discordgo.Session, i *discordgo.InteractionCreate, ownerID string) {
	if i.Member.User.ID != ownerID {
		common.RespondWithError(s, i, "This isn't your hand.")
		return
	}

	ctx := context.Background()
	state, err := f.blackjackService.Stand(ctx, i.ChannelID, ownerID)
	if err != nil {
		f.respondError(s, i, err)
		return
	}

	f.updateHand(s, i, ownerID, state)
}

func (f *Feature) updateHand(s *discordgo.Session, i *discordgo.InteractionCreate, ownerID string, state *models.BlackjackState) {
	embed := buildHandEmbed(s, i, state)

	var components []discordgo.MessageComponent
	if !state.Done {
		components = buildHandButtons(ownerID)
	}

	if err := common.UpdateWithEmbed(s, i, embed, components); err != nil {
		log.Errorf("Error updating blackjack hand: %v", err)
	}
}

func (f *Feature) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	var insufficient *service.InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		common.RespondWithError(s, i, "Insufficient balance. You have "+common.FormatChips(insufficient.Balance)+" chips.")
	case errors.Is(err, service.ErrInvalidBet):
		common.RespondWithError(s, i, "Invalid bet amount.")
	case errors.Is(err, service.ErrNoActiveHand):
		common.RespondWithError(s, i, "You don't have a live hand in this channel. Start one with /blackjack.")
	default:
		log.Errorf("Error handling blackjack action for user %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to play blackjack right now. Please try again.")
	}
}
