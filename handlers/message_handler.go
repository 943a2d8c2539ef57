package handlers

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"level-bot/bot"
	"level-bot/model"
)

// HandleMessageCreate feeds guild chat messages into the award pipeline.
func HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate, b *bot.Bot) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	b.Engine.AwardActivity(model.ActivityEvent{
		UserID:    m.Author.ID,
		GuildID:   m.GuildID,
		Type:      model.ActivityMessage,
		Timestamp: time.Now(),
	})
}
