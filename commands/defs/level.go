package defs

import "github.com/bwmarrin/discordgo"

var Rank = &discordgo.ApplicationCommand{
	Name:        "rank",
	Description: "Show leveling stats and bounty for a member",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to look up (defaults to yourself)",
			Required:    false,
		},
	},
}

var Leaderboard = &discordgo.ApplicationCommand{
	Name:        "leaderboard",
	Description: "Show the guild XP leaderboard",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "limit",
			Description: "Number of regular entries to show (default 10)",
			Required:    false,
			MinValue:    &leaderboardMinLimit,
			MaxValue:    25,
		},
	},
}

var leaderboardMinLimit = 1.0

var Bounty = &discordgo.ApplicationCommand{
	Name:        "bounty",
	Description: "Show the bounty valuation for a level",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "level",
			Description: "Level to valuate",
			Required:    true,
		},
	},
}
