package handlers

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"level-bot/bot"
)

// HandleVoiceStateUpdate tracks voice sessions. Joining starts a session,
// leaving ends it and awards the elapsed time in one lump; channel switches
// keep the session running.
func HandleVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate, b *bot.Bot) {
	if v.GuildID == "" || v.UserID == s.State.User.ID {
		return
	}
	if v.Member != nil && v.Member.User != nil && v.Member.User.Bot {
		return
	}

	now := time.Now()
	if v.ChannelID == "" {
		b.Voice.Disconnect(v.GuildID, v.UserID, now)
	} else {
		b.Voice.Connect(v.GuildID, v.UserID, now)
	}
}
