package games

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"croupier/bot/common"
	casino "croupier/games"
	"croupier/models"
)

func verdictColor(v models.Verdict) int {
	switch v {
	case models.VerdictWin:
		return common.ColorSuccess
	case models.VerdictPush:
		return common.ColorWarning
	default:
		return common.ColorDanger
	}
}

func verdictLine(s models.Settlement) string {
	switch s.Verdict {
	case models.VerdictWin:
		return fmt.Sprintf("🎉 **You won %s chips!**", common.FormatChips(s.Net()))
	case models.VerdictPush:
		return "🤝 **Push.** Your stake was returned."
	default:
		return fmt.Sprintf("😔 **You lost %s chips.**", common.FormatChips(s.Bet))
	}
}

func settlementFooter(s models.Settlement) *discordgo.MessageEmbedFooter {
	return &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Balance: %s chips", common.FormatChips(s.NewBalance)),
	}
}

func buildCoinflipEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, result *models.CoinflipResult) *discordgo.MessageEmbed {
	name := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)

	coin := "🪙"
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s Coinflip", coin),
		Description: fmt.Sprintf("%s called **%s** and the coin landed **%s**.\n%s",
			name, result.Choice, result.Flip, verdictLine(result.Settlement)),
		Color:  verdictColor(result.Verdict),
		Footer: settlementFooter(result.Settlement),
	}
}

func buildSlotsEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, result *models.SlotsResult) *discordgo.MessageEmbed {
	name := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)

	line := "[ " + strings.Join(result.Line, " | ") + " ]"

	description := fmt.Sprintf("%s pulled the lever...\n\n**%s**\n\n%s",
		name, line, verdictLine(result.Settlement))
	if result.Verdict == models.VerdictWin {
		description += fmt.Sprintf("\nMultiplier: **%.1fx**", result.Multiplier)
	}

	return &discordgo.MessageEmbed{
		Title:       "🎰 Slots",
		Description: description,
		Color:       verdictColor(result.Verdict),
		Footer:      settlementFooter(result.Settlement),
	}
}

func buildRouletteEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, result *models.RouletteResult) *discordgo.MessageEmbed {
	name := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)

	bet := result.BetType
	if bet == casino.RouletteBetNumber {
		bet = fmt.Sprintf("number %d", result.BetNumber)
	}

	var pocketEmoji string
	switch result.Color {
	case casino.ColorRed:
		pocketEmoji = "🔴"
	case casino.ColorBlack:
		pocketEmoji = "⚫"
	default:
		pocketEmoji = "🟢"
	}

	return &discordgo.MessageEmbed{
		Title: "🎡 Roulette",
		Description: fmt.Sprintf("%s bet on **%s**. The ball landed on %s **%d**.\n%s",
			name, bet, pocketEmoji, result.Number, verdictLine(result.Settlement)),
		Color:  verdictColor(result.Verdict),
		Footer: settlementFooter(result.Settlement),
	}
}

func buildDiceEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, result *models.DiceResult) *discordgo.MessageEmbed {
	name := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)

	return &discordgo.MessageEmbed{
		Title: "🎲 Dice",
		Description: fmt.Sprintf("%s guessed **%d** and the die rolled **%d**.\n%s",
			name, result.Guess, result.Roll, verdictLine(result.Settlement)),
		Color:  verdictColor(result.Verdict),
		Footer: settlementFooter(result.Settlement),
	}
}

func buildHighLowEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, result *models.HighLowResult) *discordgo.MessageEmbed {
	name := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)

	return &discordgo.MessageEmbed{
		Title: "🃏 High-Low",
		Description: fmt.Sprintf("%s drew a **%s** and called **%s**. The next card was a **%s**.\n%s",
			name, casino.HighLowRankName(result.Base), result.Guess,
			casino.HighLowRankName(result.Next), verdictLine(result.Settlement)),
		Color:  verdictColor(result.Verdict),
		Footer: settlementFooter(result.Settlement),
	}
}
