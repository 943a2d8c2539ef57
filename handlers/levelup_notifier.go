package handlers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"level-bot/bot"
	"level-bot/leveling"
	"level-bot/model"
)

// newLevelUpNotifier returns the level-up listener: it announces the new
// level and bounty in the guild's configured level-up channel. Guilds without
// a configured channel stay silent.
func newLevelUpNotifier(b *bot.Bot) func(model.LevelUpEvent) {
	return func(event model.LevelUpEvent) {
		settings, err := b.Settings.Get(event.GuildID)
		if err != nil {
			log.Printf("Error reading settings for level-up announcement in guild %s: %v", event.GuildID, err)
			return
		}
		if settings.LevelUpChannel == "" {
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "Level up!",
			Color:       15844367,
			Description: fmt.Sprintf("<@%s> reached level **%d**!", event.UserID, event.NewLevel),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Bounty", Value: fmt.Sprintf("%d", leveling.BountyForLevel(event.NewLevel)), Inline: true},
				{Name: "Total XP", Value: fmt.Sprintf("%d", event.TotalXP), Inline: true},
			},
		}
		if _, err := b.Session.ChannelMessageSendEmbed(settings.LevelUpChannel, embed); err != nil {
			log.Printf("Error sending level-up announcement to channel %s: %v", settings.LevelUpChannel, err)
		}
	}
}
