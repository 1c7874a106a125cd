package slack

import (
	"fmt"

	"github.com/shubh-37/brainstorm-board/internal/models"
	"github.com/slack-go/slack"
)

// Action IDs dispatched by the board's interactive buttons.
const (
	ActionLikeIdea   = "like_idea"
	ActionRemoveIdea = "remove_idea"
	ActionUnlikeIdea = "unlike_idea"
	ActionRegenerate = "regenerate_ideas"
	ActionResetBoard = "reset_board"
)

// BoardBlocks renders the full board from a session snapshot. Every state
// mutation is followed by a complete re-render of these blocks; nothing is
// patched incrementally.
func BoardBlocks(sess *models.Session) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "🧠 Brainstorm Board", true, false),
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Topic:* %s", sess.Topic), false, false),
			nil, nil,
		),
	}

	// CurrentRound is pre-incremented on success, so the displayed round lags by one.
	contextText := fmt.Sprintf("💡 Round %d ideas", sess.CurrentRound-1)
	if len(sess.LikedIdeas) > 0 || len(sess.RemovedIdeas) > 0 {
		contextText += fmt.Sprintf("  ·  👍 %d liked  ·  🗑️ %d removed",
			len(sess.LikedIdeas), len(sess.RemovedIdeas))
	}
	blocks = append(blocks,
		slack.NewContextBlock("board_context",
			slack.NewTextBlockObject(slack.MarkdownType, contextText, false, false)),
		slack.NewDividerBlock(),
	)

	for i, idea := range sess.Ideas {
		blocks = append(blocks,
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType,
					fmt.Sprintf("*%d.* %s", i+1, idea), false, false),
				nil, nil,
			),
			slack.NewActionBlock(
				fmt.Sprintf("idea_%d", i+1),
				slack.NewButtonBlockElement(ActionLikeIdea, idea,
					slack.NewTextBlockObject(slack.PlainTextType, "👍 Like", true, false)),
				slack.NewButtonBlockElement(ActionRemoveIdea, idea,
					slack.NewTextBlockObject(slack.PlainTextType, "🗑️ Remove", true, false)),
			),
		)
	}

	regenerate := slack.NewButtonBlockElement(ActionRegenerate, "regenerate",
		slack.NewTextBlockObject(slack.PlainTextType, "🔄 Regenerate", true, false))
	reset := slack.NewButtonBlockElement(ActionResetBoard, "reset",
		slack.NewTextBlockObject(slack.PlainTextType, "🆕 New topic", true, false))
	reset.Style = slack.StyleDanger

	blocks = append(blocks,
		slack.NewDividerBlock(),
		slack.NewActionBlock("board_actions", regenerate, reset),
	)

	if liked := sess.LikedList(); len(liked) > 0 {
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, "*⭐ Liked ideas*", false, false),
				nil, nil,
			),
		)
		for _, idea := range liked {
			removeBtn := slack.NewButtonBlockElement(ActionUnlikeIdea, idea,
				slack.NewTextBlockObject(slack.PlainTextType, "Remove", true, false))
			blocks = append(blocks,
				slack.NewSectionBlock(
					slack.NewTextBlockObject(slack.MarkdownType, "• "+idea, false, false),
					nil,
					slack.NewAccessory(removeBtn),
				),
			)
		}
	}

	return blocks
}

// ResetBlocks is what a reset board collapses to.
func ResetBlocks() []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				"🆕 Board cleared. Mention me with `brainstorm <topic>` to start a new one!", false, false),
			nil, nil,
		),
	}
}
