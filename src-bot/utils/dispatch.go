package utils

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const permissionDeniedMsg = "You do not have permission to use this command."

// HandleInteraction is the one InteractionCreate handler given to discordgo.
// It routes slash commands to whatever was registered on the AppState, runs
// the command's check first when one exists, and makes sure the caller is
// never left without a reply.
func (as *AppState) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	execute := func(id string) {
		if check, ok := as.GetAppCmdCheck(id); ok && !check(i) {
			InteractRespHiddenReply(as.Discord, i.Interaction, permissionDeniedMsg)
			slog.Debug("rejected command from non-owner", "command", id, "caller", CallerID(i))
			return
		}
		if handler, ok := as.GetAppCmdHandler(id); ok {
			if err := handler(s, i); err != nil {
				slog.Error("handler error", "command", id, "error", err.Error())
			}
			return
		}
		if i == nil || i.Interaction == nil {
			return
		}
		InteractRespHiddenReply(as.Discord, i.Interaction, "Expired interaction")
		slog.Debug("someone used an expired interaction", "caller", CallerID(i), "custom_id", id)
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand: // slash commands
		cmdData := i.ApplicationCommandData()
		execute(cmdData.Name)
	case discordgo.InteractionMessageComponent: // buttons, dropdowns, etc
		componentData := i.MessageComponentData()
		execute(componentData.CustomID)
	case discordgo.InteractionModalSubmit: // modal a.k.a. text input
		modalData := i.ModalSubmitData()
		execute(modalData.CustomID)
	default:
		slog.Error("unknown interaction type", "type", i.Type)
	}
}
