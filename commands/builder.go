package commands

import (
	"github.com/bwmarrin/discordgo"

	"level-bot/commands/defs"
)

// GenerateCommands returns the full set of application commands to register.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Rank,
		defs.Leaderboard,
		defs.Bounty,
		defs.LevelAdmin,
		defs.SystemInfo,
		defs.ReloadConfig,
	}
}
