package slack

import (
	"context"
	"log"
	"strings"

	"github.com/shubh-37/brainstorm-board/internal/board"
	"github.com/slack-go/slack/slackevents"
)

type MessageHandler struct {
	client     *Client
	controller *board.Controller
}

func NewMessageHandler(client *Client, controller *board.Controller) *MessageHandler {
	return &MessageHandler{
		client:     client,
		controller: controller,
	}
}

// HandleMessage picks up board commands typed directly in a channel or DM.
func (h *MessageHandler) HandleMessage(ctx context.Context, event *slackevents.MessageEvent) error {
	if event.BotID != "" {
		return nil
	}

	if event.User == h.client.GetBotID() {
		return nil
	}

	if event.SubType != "" {
		return nil
	}

	if strings.TrimSpace(event.Text) == "" {
		return nil
	}

	if event.ThreadTimeStamp != "" && event.ThreadTimeStamp != event.TimeStamp {
		return nil
	}

	if strings.HasPrefix(strings.TrimSpace(event.Text), "<@") {
		return nil
	}

	text := strings.TrimSpace(event.Text)
	lower := strings.ToLower(text)
	for _, prefix := range []string{"brainstorm", "board", "reset", "help"} {
		if strings.HasPrefix(lower, prefix) {
			return h.dispatch(ctx, event.Channel, text)
		}
	}

	return nil
}

func (h *MessageHandler) HandleAppMention(ctx context.Context, event *slackevents.AppMentionEvent) error {
	text := strings.TrimSpace(strings.Replace(event.Text, "<@"+h.client.GetBotID()+">", "", 1))
	return h.dispatch(ctx, event.Channel, text)
}

func (h *MessageHandler) dispatch(ctx context.Context, channelID, text string) error {
	lower := strings.ToLower(text)

	switch {
	case strings.HasPrefix(lower, "brainstorm"):
		topic := strings.TrimSpace(text[len("brainstorm"):])
		return h.handleBrainstorm(ctx, channelID, topic)

	case strings.HasPrefix(lower, "board"):
		return h.handleShowBoard(channelID)

	case strings.HasPrefix(lower, "reset"):
		h.controller.Reset(channelID)
		return h.client.SendMessage(channelID, "🆕 Board cleared. Start fresh with `brainstorm <topic>`!")

	default:
		return h.sendHelpMessage(channelID)
	}
}

func (h *MessageHandler) handleBrainstorm(ctx context.Context, channelID, topic string) error {
	if topic == "" {
		return h.client.SendMessage(channelID, "⚠️ Please provide a topic: `brainstorm <your topic>`")
	}

	log.Printf("💡 Starting brainstorm for: %s", topic)

	h.client.SendMessage(channelID, "🧠 Generating ideas... This may take a moment.")

	sess, notice := h.controller.StartRound(ctx, channelID, topic)
	if notice != "" {
		return h.client.SendMessage(channelID, notice)
	}

	_, err := h.client.SendBlocks(channelID, BoardBlocks(sess))
	return err
}

func (h *MessageHandler) handleShowBoard(channelID string) error {
	sess := h.controller.Current(channelID)
	if !sess.Active() {
		return h.client.SendMessage(channelID, "📭 No active board. Start one with `brainstorm <topic>`!")
	}

	_, err := h.client.SendBlocks(channelID, BoardBlocks(sess))
	return err
}

const helpText = `*Brainstorm Board*

Give me a topic and I'll generate five ideas. Curate them with the 👍 / 🗑️ buttons and regenerate: your feedback steers the next round.

*Commands:*
- ` + "`brainstorm <topic>`" + ` - Start a board for a topic
- ` + "`board`" + ` - Re-post the current board
- ` + "`reset`" + ` - Clear the board and start over
- ` + "`help`" + ` - Show this help

*Workflow:*
1. brainstorm a new smartphone app
2. 👍 the directions you like, 🗑️ the ones you don't
3. Hit 🔄 Regenerate for a new round steered by your feedback
4. Repeat until something sticks!`

func (h *MessageHandler) sendHelpMessage(channelID string) error {
	return h.client.SendMessage(channelID, helpText)
}
