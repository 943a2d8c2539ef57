package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"level-bot/bot"
	"level-bot/handlers/admin"
)

// Register wires all command and event handlers onto the bot.
func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)

	b.Engine.OnLevelUp(newLevelUpNotifier(b))

	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})

	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleInteractionCreate(s, i, b)
	})

	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		HandleMessageCreate(s, m, b)
	})

	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
		HandleReactionAdd(s, r, b)
	})

	b.Session.AddHandler(func(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
		HandleVoiceStateUpdate(s, v, b)
	})

	b.Session.AddHandler(func(s *discordgo.Session, g *discordgo.GuildDelete) {
		// Keep the persisted settings row, drop the cache entry.
		b.Settings.Evict(g.ID)
	})
}

func handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
		h(s, i)
	}
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"rank": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleRankCommand(s, i, b)
		},
		"leaderboard": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleLeaderboardCommand(s, i, b)
		},
		"bounty": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleBountyCommand(s, i, b)
		},
		"level-admin": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			admin.HandleLevelAdminCommand(s, i, b)
		},
		"system-info": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			SystemInfoHandler(s, i, b)
		},
		"reload-config": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			admin.HandleReloadCommand(s, i, b)
		},
	}
}
