package handler

import (
	"log/slog"
	"time"

	"astrostats/src-bot/utils"

	"github.com/bwmarrin/discordgo"
)

const showUpdateColor = 0x3498db

// Easily editable text for the latest updates
const latestUpdates = `- **Version 1.2.3**:
  Introducing Pet Battles!

  Now you can create your own server pet, battle other pets in the server, level up and compete in the leaderboards for the top spot!

  Get started with /help to see all the commands including all related to Pet Battles!

  If you require support, please contact via https://astrostats.vercel.app/`

func ShowUpdate(as *utils.AppState) {
	id := "show-update"
	as.AddAppCmdHandler(id, showUpdateHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Show the latest updates to the bot.",
	})
}

func showUpdateHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate) error {
		slog.Debug("showUpdateHandler: called", "guild_id", i.GuildID)

		embed := showUpdateEmbed(utils.CallerDisplayName(i), utils.CallerAvatarURL(i))

		startTimer := time.Now()
		if err := as.Discord.Respond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{embed},
			},
		}); err != nil {
			slog.Warn("showUpdateHandler: can't respond", "error", err)
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}

func showUpdateEmbed(requestedBy string, avatarURL string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Latest Bot Updates",
		Description: latestUpdates,
		Color:       showUpdateColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Requested by " + requestedBy,
			IconURL: avatarURL,
		},
	}
}
