package handler

import (
	"testing"

	"astrostats/src-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// fakeClient stands in for the live Discord session in tests.
type fakeClient struct {
	guilds        []utils.GuildInfo
	leaveErr      error
	respondErr    error
	leaveCalls    []string
	hasGuildCalls []string
	responses     []*discordgo.InteractionResponse
}

func (c *fakeClient) GuildCount() int {
	return len(c.guilds)
}

func (c *fakeClient) Guilds() []utils.GuildInfo {
	return append([]utils.GuildInfo(nil), c.guilds...)
}

func (c *fakeClient) HasGuild(guildID string) bool {
	c.hasGuildCalls = append(c.hasGuildCalls, guildID)
	for _, guild := range c.guilds {
		if guild.ID == guildID {
			return true
		}
	}
	return false
}

func (c *fakeClient) LeaveGuild(guildID string) error {
	c.leaveCalls = append(c.leaveCalls, guildID)
	return c.leaveErr
}

func (c *fakeClient) Respond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	c.responses = append(c.responses, resp)
	return c.respondErr
}

func testConfig(t *testing.T) *utils.Config {
	t.Helper()
	t.Setenv("DISCORD_APP_TOKEN", "xyz-test-token")
	t.Setenv("DISCORD_CLIENT_ID", "100000000000000001")
	t.Setenv("OWNER_ID", "123456789")
	t.Setenv("OWNER_GUILD_ID", "987654321")
	return utils.NewConfig()
}

func newTestAppState(t *testing.T, client *fakeClient) *utils.AppState {
	t.Helper()
	as := &utils.AppState{
		Config:          testConfig(t),
		Discord:         client,
		AppCmdInfo:      make(map[string]*discordgo.ApplicationCommand),
		OwnerAppCmdInfo: make(map[string]*discordgo.ApplicationCommand),
		AppCmdHandler:   make(map[string]utils.AppCmdHandlerFunc),
		AppCmdCheck:     make(map[string]utils.AppCmdCheck),
		MetricChans:     utils.NewMetric(),
	}
	// nobody collects metrics in tests
	go func() {
		for range as.MetricChans.DiscordSendMessage {
		}
	}()
	return as
}

func newAppCmdInteraction(name string, callerID string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			GuildID: "987654321",
			Member: &discordgo.Member{
				User: &discordgo.User{ID: callerID, Username: "tester"},
			},
		},
	}
}

func newKickInteraction(guildID string, callerID string) *discordgo.InteractionCreate {
	return newAppCmdInteraction("kick", callerID, &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "guild_id",
		Type:  discordgo.ApplicationCommandOptionString,
		Value: guildID,
	})
}
