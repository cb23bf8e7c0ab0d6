package handler

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"astrostats/src-bot/utils"

	"github.com/bwmarrin/discordgo"
)

func Kick(as *utils.AppState) {
	id := "kick"
	as.AddAppCmdHandler(id, kickHandler(as))
	as.AddAppCmdCheck(id, utils.OwnerCheck(as.Config.GetOwnerID()))
	as.AddOwnerAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Kick the bot from a specific server (owner only).",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "guild_id",
				Description: "The ID of the server to kick the bot from.",
				Required:    true,
			},
		},
	})
}

func kickHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate) error {
		// get the guild ID
		guildID := func() string {
			options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, 0)
			for _, opt := range i.ApplicationCommandData().Options {
				options[opt.Name] = opt
			}
			if opt, ok := options["guild_id"]; ok {
				return strings.TrimSpace(opt.StringValue())
			}
			return ""
		}()

		reply := kickGuild(as.Discord, guildID)

		startTimer := time.Now()
		if err := as.Discord.Respond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: reply,
			},
		}); err != nil {
			slog.Warn("kickHandler: can't respond", "error", err)
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}

// kickGuild makes the bot leave the guild and returns the reply to send back.
// A guild the bot isn't in is a caller mistake, not an error; only the parse
// and leave failures get logged.
func kickGuild(client utils.DiscordClient, guildID string) string {
	if _, err := strconv.ParseInt(guildID, 10, 64); err != nil {
		slog.Error("kickGuild: can't parse guild ID", "guild_id", guildID, "error", err)
		return fmt.Sprintf("Error kicking the bot from the server: %s", err)
	}

	if !client.HasGuild(guildID) {
		return fmt.Sprintf("Error: Server with ID %s not found.", guildID)
	}

	if err := client.LeaveGuild(guildID); err != nil {
		slog.Error("kickGuild: can't leave guild", "guild_id", guildID, "error", err)
		return fmt.Sprintf("Error kicking the bot from the server: %s", err)
	}

	return fmt.Sprintf("Successfully kicked the bot from the server with ID: %s", guildID)
}
