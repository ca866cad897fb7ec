package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"croupier/bot/features/balance"
	"croupier/bot/features/blackjack"
	"croupier/bot/features/games"
	"croupier/service"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

type Bot struct {
	config  Config
	session *discordgo.Session

	balanceFeature   *balance.Feature
	gamesFeature     *games.Feature
	blackjackFeature *blackjack.Feature
}

func New(config Config, userService service.UserService, casinoService service.CasinoService, blackjackService service.BlackjackService) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:           config,
		session:          dg,
		balanceFeature:   balance.New(userService),
		gamesFeature:     games.New(casinoService),
		blackjackFeature: blackjack.New(blackjackService),
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register component interaction handlers
	dg.AddHandler(bot.handleComponentInteractions)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "balance", "daily", "leaderboard":
		b.balanceFeature.HandleCommand(s, i)
	case "coinflip", "slots", "roulette", "dice", "highlow":
		b.gamesFeature.HandleCommand(s, i)
	case "blackjack":
		b.blackjackFeature.HandleCommand(s, i)
	}
}

func (b *Bot) handleComponentInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	if strings.HasPrefix(customID, "blackjack_") {
		b.blackjackFeature.HandleInteraction(s, i)
	}
}
