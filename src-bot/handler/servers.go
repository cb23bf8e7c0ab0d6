package handler

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"astrostats/src-bot/utils"

	"github.com/bwmarrin/discordgo"
)

func Servers(as *utils.AppState) {
	id := "servers"
	as.AddAppCmdHandler(id, serversHandler(as))
	as.AddAppCmdCheck(id, utils.OwnerCheck(as.Config.GetOwnerID()))
	as.AddOwnerAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "List all servers the bot is in (owner only).",
	})
}

func serversHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate) error {
		reply := func() string {
			filePath, err := saveServerList(as.Discord.Guilds())
			if err != nil {
				slog.Error("serversHandler: can't save server list", "error", err)
				return fmt.Sprintf("Error saving server list: %s", err)
			}
			return fmt.Sprintf("Server list saved to `%s`.", filePath)
		}()

		startTimer := time.Now()
		if err := as.Discord.Respond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: reply,
			},
		}); err != nil {
			slog.Warn("serversHandler: can't respond", "error", err)
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}

// saveServerList writes one "Name (ID: 123)" line per guild into the user's
// Documents directory and returns the file path.
func saveServerList(guilds []utils.GuildInfo) (string, error) {
	lines := make([]string, 0, len(guilds))
	for _, guild := range guilds {
		lines = append(lines, fmt.Sprintf("%s (ID: %s)", guild.Name, guild.ID))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filePath := filepath.Join(home, "Documents", "server_list.txt")

	if err := os.WriteFile(filePath, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return "", err
	}
	return filePath, nil
}
