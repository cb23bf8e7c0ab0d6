package handler

import (
	"strings"
	"testing"
)

func TestShowUpdateEmbed(t *testing.T) {
	embed := showUpdateEmbed("stargazer", "https://cdn.example.com/avatar.png")

	if embed.Title != "Latest Bot Updates" {
		t.Error("unexpected title", embed.Title)
	}
	if embed.Description != latestUpdates {
		t.Error("unexpected description", embed.Description)
	}
	if embed.Color != 0x3498db {
		t.Error("unexpected color", embed.Color)
	}
	if embed.Footer == nil || embed.Footer.Text != "Requested by stargazer" {
		t.Error("unexpected footer", embed.Footer)
	}
	if embed.Footer.IconURL != "https://cdn.example.com/avatar.png" {
		t.Error("unexpected footer icon", embed.Footer.IconURL)
	}
}

func TestShowUpdateHandlerRepliesExactlyOnce(t *testing.T) {
	client := &fakeClient{}
	as := newTestAppState(t, client)
	ShowUpdate(as)

	handler, ok := as.GetAppCmdHandler("show-update")
	if !ok {
		t.Fatal("show-update handler not registered")
	}
	if err := handler(nil, newAppCmdInteraction("show-update", "42")); err != nil {
		t.Error(err)
	}

	if len(client.responses) != 1 {
		t.Fatal("expected exactly one reply", len(client.responses))
	}
	embeds := client.responses[0].Data.Embeds
	if len(embeds) != 1 {
		t.Fatal("expected exactly one embed", len(embeds))
	}
	if !strings.HasPrefix(embeds[0].Footer.Text, "Requested by ") {
		t.Error("unexpected footer", embeds[0].Footer.Text)
	}
}
