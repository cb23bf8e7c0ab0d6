package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"astrostats/src-bot/handler"
	"astrostats/src-bot/metric"
	"astrostats/src-bot/scheduler"
	"astrostats/src-bot/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	// There are 3 important things (and others) inside the AppState:
	// - AppCmdInfo/OwnerAppCmdInfo: global and owner-guild slash commands
	// - AppCmdHandler: a map of all slash command handlers
	// - AppCmdCheck: gates that run before owner-only handlers
	as := utils.NewAppState()
	slog.Info("starting up", "run_id", as.RunID)

	// injecting interaction handlers into the AppState maps
	handler.Help(as)
	handler.Ping(as)
	handler.ShowUpdate(as)
	handler.Review(as)
	handler.Kick(as)
	handler.Servers(as)

	// tell discordgo how to handle interactions from Discord
	as.DgSession.AddHandler(as.HandleInteraction)

	// open a connection to Discord
	if err := as.DgSession.Open(); err != nil {
		fmt.Println("error opening connection,", err)
		return
	}
	defer as.DgSession.Close()

	// tell Discord what commands we have; the owner-only commands go into the
	// owner guild's scope only so they never show up anywhere else
	collect := func(iterate func(func(k string, v *discordgo.ApplicationCommand))) []*discordgo.ApplicationCommand {
		var cmds []*discordgo.ApplicationCommand
		iterate(func(k string, v *discordgo.ApplicationCommand) {
			cmds = append(cmds, v)
		})
		return cmds
	}
	if _, err := as.DgSession.ApplicationCommandBulkOverwrite(
		as.Config.GetDiscordClientId(),
		"",
		collect(as.IterateAppCmdInfo)); err != nil {
		slog.Error("can't create slash commands", "error", err.Error())
	}
	if _, err := as.DgSession.ApplicationCommandBulkOverwrite(
		as.Config.GetDiscordClientId(),
		strconv.FormatInt(as.Config.GetOwnerGuildID(), 10),
		collect(as.IterateOwnerAppCmdInfo)); err != nil {
		slog.Error("can't create owner slash commands", "error", err.Error())
	}

	// cleanup command info from memory
	as.NukeAppCmdInfo()
	runtime.GC()

	go metric.Init(as)
	go scheduler.UpdatePresence(as)

	// http server
	go func() {
		muxer := http.NewServeMux()
		muxer.Handle("GET /metrics", promhttp.Handler())
		muxer.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "ok")
		})
		if err := http.ListenAndServe(":"+as.Config.GetPort(), muxer); err != nil {
			slog.Error("cannot start HTTP server", "error", err)
			as.AppCloseSignalChan <- syscall.SIGTERM
		}
	}()

	slog.Info("number of guilds", "guilds", as.Discord.GuildCount())
	slog.Info("app is now running, press Ctrl+C to exit")

	signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-as.AppCloseSignalChan
	as.GracefulShutdown()

	slog.Info("Gracefully shutting down...")
}
