package defs

import "github.com/bwmarrin/discordgo"

var LevelAdmin = &discordgo.ApplicationCommand{
	Name:        "level-admin",
	Description: "Configure guild leveling settings",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        "multiplier",
			Description: "XP multiplier for this guild (must be > 0)",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "excluded_role",
			Description: "Role excluded from the regular leaderboard",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "levelup_channel",
			Description: "Channel for level-up announcements",
			Required:    false,
		},
	},
}

var SystemInfo = &discordgo.ApplicationCommand{
	Name:        "system-info",
	Description: "Display bot and system status information",
}

var ReloadConfig = &discordgo.ApplicationCommand{
	Name:        "reload-config",
	Description: "Reload bot configuration file (developers only)",
}
