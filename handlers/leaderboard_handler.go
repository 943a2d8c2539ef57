package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"level-bot/bot"
	"level-bot/model"
	"level-bot/utils"
)

const defaultLeaderboardLimit = 10

// HandleLeaderboardCommand renders the partitioned guild ranking: the
// excluded ("king") cohort above the regular competition.
func HandleLeaderboardCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	limit := defaultLeaderboardLimit
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "limit" {
			limit = int(opt.IntValue())
		}
	}

	oracle := func(userID, roleID string) (bool, error) {
		member, err := s.GuildMember(i.GuildID, userID)
		if err != nil {
			return false, err
		}
		for _, r := range member.Roles {
			if r == roleID {
				return true, nil
			}
		}
		return false, nil
	}

	board, err := b.Engine.Leaderboard(i.GuildID, limit, oracle)
	if err != nil {
		log.Printf("Error building leaderboard for guild %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "Could not build the leaderboard, try again later.")
		return
	}

	if len(board.Excluded) == 0 && len(board.Regular) == 0 {
		utils.SendSimpleResponse(s, i, "Nobody has earned XP in this guild yet.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "XP Leaderboard",
		Color: 15844367,
	}
	if len(board.Excluded) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "👑 Kings",
			Value: formatEntries(board.Excluded),
		})
	}
	if len(board.Regular) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Ranking",
			Value: formatEntries(board.Regular),
		})
	}
	utils.SendEmbedResponse(s, i, embed)
}

func formatEntries(entries []model.LeaderboardEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%d. <@%s> — level %d, %d XP\n", e.Rank, e.UserID, e.Level, e.TotalXP)
	}
	return sb.String()
}
