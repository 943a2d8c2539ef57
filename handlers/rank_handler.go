package handlers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"level-bot/bot"
	"level-bot/leveling"
	"level-bot/utils"
)

// HandleRankCommand shows a member's level, XP, activity counters and bounty.
func HandleRankCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	target := i.Member.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}

	stats, err := b.Engine.GetStats(i.GuildID, target.ID)
	if err != nil {
		log.Printf("Error fetching stats for %s in guild %s: %v", target.ID, i.GuildID, err)
		utils.SendErrorResponse(s, i, "Could not fetch leveling stats, try again later.")
		return
	}
	if stats == nil {
		utils.SendSimpleResponse(s, i, fmt.Sprintf("%s has not earned any XP yet.", target.Username))
		return
	}

	curve := b.Engine.Curve()
	nextLevelXP := curve.XPForLevel(stats.Level + 1)
	progress := fmt.Sprintf("%d / %d XP", stats.TotalXP, nextLevelXP)
	if stats.Level >= curve.MaxLevel {
		progress = fmt.Sprintf("%d XP (max level)", stats.TotalXP)
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Rank — %s", target.Username),
		Color: 3447003,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Level", Value: fmt.Sprintf("%d", stats.Level), Inline: true},
			{Name: "Bounty", Value: fmt.Sprintf("%d", leveling.BountyForLevel(stats.Level)), Inline: true},
			{Name: "Progress", Value: progress, Inline: true},
			{Name: "Messages", Value: fmt.Sprintf("%d", stats.Messages), Inline: true},
			{Name: "Reactions", Value: fmt.Sprintf("%d", stats.Reactions), Inline: true},
			{Name: "Voice time", Value: fmt.Sprintf("%d min", stats.VoiceTime/60), Inline: true},
		},
	}
	utils.SendEmbedResponse(s, i, embed)
}

// HandleBountyCommand shows the bounty valuation for an arbitrary level.
func HandleBountyCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	var level int
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "level" {
			level = int(opt.IntValue())
		}
	}

	utils.SendSimpleResponse(s, i, fmt.Sprintf("Bounty for level %d: %d", level, leveling.BountyForLevel(level)))
}
