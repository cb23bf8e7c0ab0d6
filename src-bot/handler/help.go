// This package contains all the Discord slash command handlers.
//
// There should be 2 functions per command, one for adding the handler &
// information to send to Discord (public), and one for handling the
// interaction (private). Owner-only commands also register a check and go
// into the owner-guild command scope instead of the global one.
//
// Only return errors when it's the backend's fault, nil if user's fault.
package handler

import (
	"fmt"
	"log/slog"
	"time"

	"astrostats/src-bot/utils"

	"github.com/bwmarrin/discordgo"
)

const helpColor = 0xdd4f7a

func Help(as *utils.AppState) {
	id := "help"
	as.AddAppCmdHandler(id, helpHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Lists all available commands.",
	})
}

func helpHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate) error {
		embed := helpEmbed(as.Discord.GuildCount(), time.Now().UTC())

		startTimer := time.Now()
		if err := as.Discord.Respond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{embed},
			},
		}); err != nil {
			slog.Warn("helpHandler: can't respond", "error", err)
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}

func helpEmbed(guildCount int, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("AstroStats Help & Support - Trusted by %d servers", guildCount),
		Color:     helpColor,
		Timestamp: now.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Commands & Usage",
				Value: "**Help**\n" +
					"`/help`\n\n" +
					"**Ping**\n" +
					"`/ping`\n\n" +
					"**Latest Updates**\n" +
					"`/show-update`\n\n" +
					"**Review**\n" +
					"`/review`\n\n" +
					"**Kick Server (owner only)**\n" +
					"`/kick <guild_id>`\n\n" +
					"**List Servers (owner only)**\n" +
					"`/servers`",
				Inline: false,
			},
			{
				Name:   "Support",
				Value:  "For support please visit [AstroStats](https://astrostats.vercel.app)",
				Inline: false,
			},
			{
				Name:   "Support Us ❤️",
				Value:  "[If you enjoy using this bot, consider supporting us!](https://buymeacoffee.com/danblock97)",
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Built By Goldiez ❤️",
		},
	}
}
