package utils

import (
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// AppCmdHandlerFunc handles one slash command invocation. Only return errors
// when it's the backend's fault, nil if user's fault.
type AppCmdHandlerFunc func(s *discordgo.Session, i *discordgo.InteractionCreate) error

// AppCmdCheck gates a slash command before its handler runs.
type AppCmdCheck func(i *discordgo.InteractionCreate) bool

type AppState struct {
	Config    *Config
	DgSession *discordgo.Session
	Discord   DiscordClient

	// will be sent to Discord as global commands
	AppCmdInfo map[string]*discordgo.ApplicationCommand
	// will be sent to Discord as commands scoped to the owner guild only
	OwnerAppCmdInfo map[string]*discordgo.ApplicationCommand
	// handling commands from Discord WSAPI
	AppCmdHandler map[string]AppCmdHandlerFunc
	// gates consulted by the dispatcher before the handler runs
	AppCmdCheck map[string]AppCmdCheck

	MetricChans *Metric

	AppCloseSignalChan chan os.Signal

	// identifies one run of the process in the logs
	RunID uuid.UUID

	startupTime time.Time

	shutdownChansMutex sync.Mutex
	shutdownChans      []chan struct{}
}

func NewAppState() *AppState {
	as := &AppState{}

	// init maps
	as.AppCmdInfo = make(map[string]*discordgo.ApplicationCommand)
	as.OwnerAppCmdInfo = make(map[string]*discordgo.ApplicationCommand)
	as.AppCmdHandler = make(map[string]AppCmdHandlerFunc)
	as.AppCmdCheck = make(map[string]AppCmdCheck)

	as.MetricChans = NewMetric()
	as.AppCloseSignalChan = make(chan os.Signal, 1)
	as.RunID = uuid.New()
	as.startupTime = time.Now()

	// env
	as.Config = NewConfig()

	// discord session
	dgSession, err := discordgo.New("Bot " + as.Config.GetDiscordAppToken())
	if err != nil {
		slog.Error("can't create Discord session", "error", err)
		os.Exit(1)
	}
	as.DgSession = dgSession
	as.Discord = NewDiscordClient(dgSession)

	return as
}

func (as *AppState) AddAppCmdInfo(id string, info *discordgo.ApplicationCommand) {
	as.AppCmdInfo[id] = info
}

func (as *AppState) AddOwnerAppCmdInfo(id string, info *discordgo.ApplicationCommand) {
	as.OwnerAppCmdInfo[id] = info
}

func (as *AppState) AddAppCmdHandler(id string, handler AppCmdHandlerFunc) {
	as.AppCmdHandler[id] = handler
}

func (as *AppState) AddAppCmdCheck(id string, check AppCmdCheck) {
	as.AppCmdCheck[id] = check
}

func (as *AppState) GetAppCmdHandler(id string) (AppCmdHandlerFunc, bool) {
	handler, ok := as.AppCmdHandler[id]
	return handler, ok
}

func (as *AppState) GetAppCmdCheck(id string) (AppCmdCheck, bool) {
	check, ok := as.AppCmdCheck[id]
	return check, ok
}

func (as *AppState) IterateAppCmdInfo(fn func(k string, v *discordgo.ApplicationCommand)) {
	for k, v := range as.AppCmdInfo {
		fn(k, v)
	}
}

func (as *AppState) IterateOwnerAppCmdInfo(fn func(k string, v *discordgo.ApplicationCommand)) {
	for k, v := range as.OwnerAppCmdInfo {
		fn(k, v)
	}
}

// cleanup AppCmdInfo from memory, only needed until the startup sync
func (as *AppState) NukeAppCmdInfo() {
	as.AppCmdInfo = make(map[string]*discordgo.ApplicationCommand)
	as.OwnerAppCmdInfo = make(map[string]*discordgo.ApplicationCommand)
}

func (as *AppState) GetUptime() time.Duration {
	return time.Since(as.startupTime).Round(time.Second)
}

// CreateGracefulShutdownChan returns a channel that gets closed when the app
// is shutting down, for background loops to clean up after themselves.
func (as *AppState) CreateGracefulShutdownChan() *chan struct{} {
	as.shutdownChansMutex.Lock()
	defer as.shutdownChansMutex.Unlock()
	ch := make(chan struct{})
	as.shutdownChans = append(as.shutdownChans, ch)
	return &ch
}

func (as *AppState) GracefulShutdown() {
	as.shutdownChansMutex.Lock()
	defer as.shutdownChansMutex.Unlock()
	for _, ch := range as.shutdownChans {
		close(ch)
	}
	as.shutdownChans = nil
}

// OwnerCheck returns a check that passes only for the single configured owner
// identity.
func OwnerCheck(ownerID int64) AppCmdCheck {
	want := strconv.FormatInt(ownerID, 10)
	return func(i *discordgo.InteractionCreate) bool {
		return CallerID(i) == want
	}
}
