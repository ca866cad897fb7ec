package blackjack

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"croupier/bot/common"
	"croupier/models"
)

const (
	hitButtonPrefix   = "blackjack_hit:"
	standButtonPrefix = "blackjack_stand:"
)

func formatHand(cards []string) string {
	return strings.Join(cards, "  ")
}

// buildHandEmbed renders a blackjack hand. While the hand is live the
// dealer row shows only the upcard and a face-down card.
func buildHandEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, state *models.BlackjackState) *discordgo.MessageEmbed {
	name := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)

	var dealerRow string
	if state.Done {
		dealerRow = fmt.Sprintf("%s (**%d**)", formatHand(state.DealerHand), state.DealerValue)
	} else {
		dealerRow = fmt.Sprintf("%s  🂠", state.DealerUpcard)
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Dealer",
			Value:  dealerRow,
			Inline: false,
		},
		{
			Name:   fmt.Sprintf("%s's hand", name),
			Value:  fmt.Sprintf("%s (**%d**)", formatHand(state.PlayerHand), state.PlayerValue),
			Inline: false,
		},
	}

	embed := &discordgo.MessageEmbed{
		Title:  "🂡 Blackjack",
		Fields: fields,
	}

	if !state.Done {
		embed.Color = common.ColorPrimary
		embed.Description = fmt.Sprintf("Stake: **%s chips** — hit or stand?", common.FormatChips(state.Bet))
		return embed
	}

	embed.Color = verdictColor(state.Verdict)
	embed.Description = verdictLine(state.Settlement)
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Balance: %s chips", common.FormatChips(state.NewBalance)),
	}
	return embed
}

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
		if s.Bet > 0 {
			return fmt.Sprintf("😔 **You lost %s chips.**", common.FormatChips(s.Bet))
		}
		return "😔 **You lost.**"
	}
}

// buildHandButtons builds the Hit/Stand row, keyed to the hand's owner
// so other players' clicks are rejected
func buildHandButtons(ownerID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.Button{
					Label:    "Hit",
					Style:    discordgo.PrimaryButton,
					CustomID: hitButtonPrefix + ownerID,
				},
				&discordgo.Button{
					Label:    "Stand",
					Style:    discordgo.SecondaryButton,
					CustomID: standButtonPrefix + ownerID,
				},
			},
		},
	}
}
