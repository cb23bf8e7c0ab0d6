package handler

import (
	"strings"
	"testing"
)

func TestReviewHandlerRepliesExactlyOnce(t *testing.T) {
	client := &fakeClient{}
	as := newTestAppState(t, client)
	Review(as)

	handler, ok := as.GetAppCmdHandler("review")
	if !ok {
		t.Fatal("review handler not registered")
	}
	if err := handler(nil, newAppCmdInteraction("review", "42")); err != nil {
		t.Error(err)
	}

	if len(client.responses) != 1 {
		t.Fatal("expected exactly one reply", len(client.responses))
	}
	got := client.responses[0].Data.Content
	if got != reviewMessage {
		t.Error("unexpected reply", got)
	}
	if !strings.Contains(got, "top.gg") {
		t.Error("reply should link to Top.gg", got)
	}
}
