package utils_test

import (
	"testing"

	"astrostats/src-bot/utils"

	"github.com/bwmarrin/discordgo"
)

type fakeClient struct {
	responses []*discordgo.InteractionResponse
}

func (c *fakeClient) GuildCount() int           { return 0 }
func (c *fakeClient) Guilds() []utils.GuildInfo { return nil }
func (c *fakeClient) HasGuild(string) bool      { return false }
func (c *fakeClient) LeaveGuild(string) error   { return nil }
func (c *fakeClient) Respond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	c.responses = append(c.responses, resp)
	return nil
}

func newDispatchState(client *fakeClient) *utils.AppState {
	return &utils.AppState{
		Discord:       client,
		AppCmdHandler: make(map[string]utils.AppCmdHandlerFunc),
		AppCmdCheck:   make(map[string]utils.AppCmdCheck),
	}
}

func appCmdInteraction(name string, callerID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: name},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: callerID},
			},
		},
	}
}

func TestHandleInteractionGateBlocksNonOwner(t *testing.T) {
	client := &fakeClient{}
	as := newDispatchState(client)

	handlerRuns := 0
	as.AddAppCmdHandler("kick", func(_ *discordgo.Session, _ *discordgo.InteractionCreate) error {
		handlerRuns++
		return nil
	})
	as.AddAppCmdCheck("kick", utils.OwnerCheck(123456789))

	as.HandleInteraction(nil, appCmdInteraction("kick", "999999"))

	if handlerRuns != 0 {
		t.Error("handler should never run for a non-owner")
	}
	if len(client.responses) != 1 {
		t.Fatal("expected exactly one reply", len(client.responses))
	}
	resp := client.responses[0]
	if resp.Data.Content != "You do not have permission to use this command." {
		t.Error("unexpected reply", resp.Data.Content)
	}
	if resp.Data.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Error("permission reply should be ephemeral")
	}
}

func TestHandleInteractionGatePassesOwner(t *testing.T) {
	client := &fakeClient{}
	as := newDispatchState(client)

	handlerRuns := 0
	as.AddAppCmdHandler("kick", func(_ *discordgo.Session, _ *discordgo.InteractionCreate) error {
		handlerRuns++
		return nil
	})
	as.AddAppCmdCheck("kick", utils.OwnerCheck(123456789))

	as.HandleInteraction(nil, appCmdInteraction("kick", "123456789"))

	if handlerRuns != 1 {
		t.Error("handler should run exactly once for the owner", handlerRuns)
	}
	if len(client.responses) != 0 {
		t.Error("dispatcher should not reply when the handler runs", client.responses)
	}
}

func TestHandleInteractionWithoutCheck(t *testing.T) {
	client := &fakeClient{}
	as := newDispatchState(client)

	handlerRuns := 0
	as.AddAppCmdHandler("help", func(_ *discordgo.Session, _ *discordgo.InteractionCreate) error {
		handlerRuns++
		return nil
	})

	as.HandleInteraction(nil, appCmdInteraction("help", "42"))

	if handlerRuns != 1 {
		t.Error("handler should run exactly once", handlerRuns)
	}
}

func TestHandleInteractionUnknownCommand(t *testing.T) {
	client := &fakeClient{}
	as := newDispatchState(client)

	as.HandleInteraction(nil, appCmdInteraction("gone", "42"))

	if len(client.responses) != 1 {
		t.Fatal("expected exactly one reply", len(client.responses))
	}
	if client.responses[0].Data.Content != "Expired interaction" {
		t.Error("unexpected reply", client.responses[0].Data.Content)
	}
}
