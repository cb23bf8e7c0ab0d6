package handler

import (
	"log/slog"
	"time"

	"astrostats/src-bot/utils"

	"github.com/bwmarrin/discordgo"
)

const reviewMessage = "If you're enjoying AstroStats, please consider leaving a review on Top.gg! " +
	"https://top.gg/bot/1088929834748616785#reviews"

func Review(as *utils.AppState) {
	id := "review"
	as.AddAppCmdHandler(id, reviewHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Leave a review on Top.gg.",
	})
}

func reviewHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate) error {
		startTimer := time.Now()
		if err := as.Discord.Respond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: reviewMessage,
			},
		}); err != nil {
			slog.Warn("reviewHandler: can't respond", "error", err)
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}
