package games

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"croupier/bot/common"
	"croupier/service"
)

func (f *Feature) handleCoinflip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := commandOptions(i)

	choice := opts.stringOption("choice")
	bet := opts.intOption("bet")

	result, err := f.casinoService.PlayCoinflip(ctx, i.Member.User.ID, choice, bet)
	if err != nil {
		f.respondGameError(s, i, err)
		return
	}

	if err := common.RespondWithEmbed(s, i, buildCoinflipEmbed(s, i, result), nil, false); err != nil {
		log.Errorf("Error responding to coinflip command: %v", err)
	}
}

func (f *Feature) handleSlots(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := commandOptions(i)

	bet := opts.intOption("bet")

	result, err := f.casinoService.PlaySlots(ctx, i.Member.User.ID, bet)
	if err != nil {
		f.respondGameError(s, i, err)
		return
	}

	if err := common.RespondWithEmbed(s, i, buildSlotsEmbed(s, i, result), nil, false); err != nil {
		log.Errorf("Error responding to slots command: %v", err)
	}
}

func (f *Feature) handleRoulette(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := commandOptions(i)

	position := opts.stringOption("position")
	bet := opts.intOption("bet")
	number := int(opts.intOption("number"))

	result, err := f.casinoService.PlayRoulette(ctx, i.Member.User.ID, bet, position, number)
	if err != nil {
		f.respondGameError(s, i, err)
		return
	}

	if err := common.RespondWithEmbed(s, i, buildRouletteEmbed(s, i, result), nil, false); err != nil {
		log.Errorf("Error responding to roulette command: %v", err)
	}
}

func (f *Feature) handleDice(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := commandOptions(i)

	guess := int(opts.intOption("guess"))
	bet := opts.intOption("bet")

	result, err := f.casinoService.PlayDice(ctx, i.Member.User.ID, guess, bet)
	if err != nil {
		f.respondGameError(s, i, err)
		return
	}

	if err := common.RespondWithEmbed(s, i, buildDiceEmbed(s, i, result), nil, false); err != nil {
		log.Errorf("Error responding to dice command: %v", err)
	}
}

func (f *Feature) handleHighLow(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := commandOptions(i)

	guess := opts.stringOption("guess")
	bet := opts.intOption("bet")

	result, err := f.casinoService.PlayHighLow(ctx, i.Member.User.ID, guess, bet)
	if err != nil {
		f.respondGameError(s, i, err)
		return
	}

	if err := common.RespondWithEmbed(s, i, buildHighLowEmbed(s, i, result), nil, false); err != nil {
		log.Errorf("Error responding to highlow command: %v", err)
	}
}

// respondGameError maps service errors onto user-facing messages
func (f *Feature) respondGameError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	var insufficient *service.InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		common.RespondWithError(s, i, "Insufficient balance. You have "+common.FormatChips(insufficient.Balance)+" chips.")
	case errors.Is(err, service.ErrInvalidBet):
		common.RespondWithError(s, i, "Invalid bet amount.")
	case errors.Is(err, service.ErrInvalidChoice):
		common.RespondWithError(s, i, "Invalid choice for this game.")
	default:
		log.Errorf("Error settling game round for user %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to place bet. Please try again.")
	}
}

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

// commandOptions flattens interaction options into a name-keyed map
func commandOptions(i *discordgo.InteractionCreate) options {
	opts := make(options)
	for _, opt := range i.ApplicationCommandData().Options {
		opts[opt.Name] = opt
	}
	return opts
}

func (o options) stringOption(name string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func (o options) intOption(name string) int64 {
	if opt, ok := o[name]; ok {
		return opt.IntValue()
	}
	return 0
}
