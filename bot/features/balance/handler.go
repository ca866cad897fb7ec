package balance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"croupier/bot/common"
	"croupier/service"
)

const leaderboardSize = 10

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID := i.Member.User.ID
	user, err := f.userService.GetOrCreateUser(ctx, userID)
	if err != nil {
		log.Errorf("Error getting user %s: %v", userID, err)
		common.RespondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, userID)

	message := fmt.Sprintf("%s, your current balance: **%s chips**", displayName, common.FormatChips(user.Balance))
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
	if err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

func (f *Feature) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID := i.Member.User.ID
	user, err := f.userService.ClaimDaily(ctx, userID)
	if err != nil {
		var cooldown *service.ClaimCooldownError
		if errors.As(err, &cooldown) {
			nextClaim := time.Now().Add(cooldown.Remaining)
			common.RespondWithError(s, i, fmt.Sprintf("You already claimed your daily chips. Try again %s.",
				common.FormatDiscordTimestamp(nextClaim, "R")))
			return
		}

		log.Errorf("Error claiming daily for user %s: %v", userID, err)
		common.RespondWithError(s, i, "Unable to claim daily chips. Please try again.")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, userID)

	message := fmt.Sprintf("🪙 %s claimed their daily chips! New balance: **%s chips**",
		displayName, common.FormatChips(user.Balance))
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
	if err != nil {
		log.Errorf("Error responding to daily command: %v", err)
	}
}

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	users, err := f.userService.GetLeaderboard(ctx, leaderboardSize)
	if err != nil {
		log.Errorf("Error fetching leaderboard: %v", err)
		common.RespondWithError(s, i, "Unable to fetch the leaderboard. Please try again.")
		return
	}

	if len(users) == 0 {
		common.RespondWithError(s, i, "Nobody has played yet.")
		return
	}

	var lines strings.Builder
	for rank, user := range users {
		name := common.GetDisplayName(s, i.GuildID, user.UserID)
		lines.WriteString(fmt.Sprintf("**%d.** %s — %s chips\n", rank+1, name, common.FormatChips(user.Balance)))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard",
		Description: lines.String(),
		Color:       common.ColorPrimary,
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}
