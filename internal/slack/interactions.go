package slack

import (
	"context"
	"fmt"
	"log"

	"github.com/shubh-37/brainstorm-board/internal/board"
	"github.com/slack-go/slack"
)

type InteractionHandler struct {
	client     *Client
	controller *board.Controller
}

func NewInteractionHandler(client *Client, controller *board.Controller) *InteractionHandler {
	return &InteractionHandler{
		client:     client,
		controller: controller,
	}
}

// HandleInteraction maps a board button click onto a controller transition and
// re-renders the board message from the resulting snapshot.
func (h *InteractionHandler) HandleInteraction(ctx context.Context, callback *slack.InteractionCallback) error {
	if len(callback.ActionCallback.BlockActions) == 0 {
		return nil
	}

	action := callback.ActionCallback.BlockActions[0]
	channelID := callback.Channel.ID
	messageTS := callback.Message.Timestamp

	log.Printf("🖱️ Board action: %s on channel %s", action.ActionID, channelID)

	switch action.ActionID {
	case ActionLikeIdea:
		sess := h.controller.Like(channelID, action.Value)
		return h.client.UpdateBlocks(channelID, messageTS, BoardBlocks(sess))

	case ActionRemoveIdea:
		sess := h.controller.Remove(channelID, action.Value)
		return h.client.UpdateBlocks(channelID, messageTS, BoardBlocks(sess))

	case ActionUnlikeIdea:
		sess := h.controller.Unlike(channelID, action.Value)
		return h.client.UpdateBlocks(channelID, messageTS, BoardBlocks(sess))

	case ActionRegenerate:
		h.client.SendMessage(channelID, "🔄 Generating new ideas... This may take a moment.")

		sess, notice := h.controller.Regenerate(ctx, channelID)
		if notice != "" {
			// Previous ideas and round survive a failed regeneration.
			h.client.SendMessage(channelID, notice)
		}
		return h.client.UpdateBlocks(channelID, messageTS, BoardBlocks(sess))

	case ActionResetBoard:
		h.controller.Reset(channelID)
		return h.client.UpdateBlocks(channelID, messageTS, ResetBlocks())

	default:
		return fmt.Errorf("unknown action: %s", action.ActionID)
	}
}
