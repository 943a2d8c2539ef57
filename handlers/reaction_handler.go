package handlers

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"level-bot/bot"
	"level-bot/model"
)

// HandleReactionAdd awards XP to the member who added an emoji reaction.
func HandleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd, b *bot.Bot) {
	if r.GuildID == "" || r.UserID == s.State.User.ID {
		return
	}
	if r.Member != nil && r.Member.User != nil && r.Member.User.Bot {
		return
	}

	b.Engine.AwardActivity(model.ActivityEvent{
		UserID:    r.UserID,
		GuildID:   r.GuildID,
		Type:      model.ActivityReaction,
		Timestamp: time.Now(),
	})
}
