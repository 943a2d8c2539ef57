package admin

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"level-bot/bot"
	"level-bot/utils"
)

// HandleLevelAdminCommand updates the guild's leveling settings. Options are
// optional and applied on top of the current row; calling it with none just
// prints the active settings.
func HandleLevelAdminCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cfg := b.GetConfig()
	permissionLevel := utils.CheckPermission(i.Member.Roles, i.Member.User.ID, cfg.AdminRoleIDs, cfg.DeveloperUserIDs)
	if permissionLevel == utils.GuestPermission {
		utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
		return
	}

	settings, err := b.Settings.Get(i.GuildID)
	if err != nil {
		log.Printf("Error loading settings for guild %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "Could not load guild settings.")
		return
	}

	var changes []string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "multiplier":
			multiplier := opt.FloatValue()
			if multiplier <= 0 {
				utils.SendErrorResponse(s, i, "The XP multiplier must be greater than zero.")
				return
			}
			settings.XPMultiplier = multiplier
			changes = append(changes, fmt.Sprintf("multiplier → %.2f", multiplier))
		case "excluded_role":
			role := opt.RoleValue(s, i.GuildID)
			settings.ExcludedRole = role.ID
			changes = append(changes, fmt.Sprintf("excluded role → %s", role.Name))
		case "levelup_channel":
			channel := opt.ChannelValue(s)
			settings.LevelUpChannel = channel.ID
			changes = append(changes, fmt.Sprintf("level-up channel → #%s", channel.Name))
		}
	}

	if len(changes) == 0 {
		utils.SendSimpleResponse(s, i, fmt.Sprintf(
			"Current settings: multiplier %.2f, excluded role `%s`, level-up channel `%s`",
			settings.XPMultiplier, orUnset(settings.ExcludedRole), orUnset(settings.LevelUpChannel)))
		return
	}

	if err := b.Settings.Set(settings); err != nil {
		log.Printf("Error saving settings for guild %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "Could not save guild settings.")
		return
	}

	utils.SendSimpleResponse(s, i, "Updated: "+strings.Join(changes, ", "))
}

func orUnset(v string) string {
	if v == "" {
		return "unset"
	}
	return v
}
