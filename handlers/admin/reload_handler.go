package admin

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"level-bot/bot"
	"level-bot/utils"
)

func HandleReloadCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	permissionLevel := utils.CheckPermission(i.Member.Roles, i.Member.User.ID, nil, b.GetConfig().DeveloperUserIDs)
	if permissionLevel != utils.DeveloperPermission {
		utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
		return
	}

	if err := b.ReloadConfig(); err != nil {
		utils.SendErrorResponse(s, i, fmt.Sprintf("Config reload failed: %v", err))
		return
	}
	utils.SendSimpleResponse(s, i, "✅ Configuration reloaded.")
	utils.LogInfo(s, b.GetConfig().LogChannelID, "Admin", "Reload", fmt.Sprintf("Config reloaded by %s", i.Member.User.Username))
}
