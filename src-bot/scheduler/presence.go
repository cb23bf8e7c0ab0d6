package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"astrostats/src-bot/utils"
)

const presenceRefreshInterval = 10 * time.Minute

// UpdatePresence keeps the bot's "Listening to ..." status in sync with the
// number of guilds the bot is in. Runs until the process exits.
func UpdatePresence(as *utils.AppState) {
	for {
		status := PresenceStatus(as.Discord.GuildCount())
		if err := as.DgSession.UpdateListeningStatus(status); err != nil {
			slog.Error("UpdatePresence: can't update status", "error", err)
		}
		time.Sleep(presenceRefreshInterval)
	}
}

func PresenceStatus(guildCount int) string {
	return fmt.Sprintf("/help | %d servers", guildCount)
}
