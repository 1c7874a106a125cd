package slack

import (
	"log"

	"github.com/slack-go/slack"
)

type Client struct {
	api   *slack.Client
	botID string
}

func NewClient(token string) *Client {
	api := slack.New(token)

	authTest, err := api.AuthTest()
	if err != nil {
		log.Fatalf("Failed to authenticate with Slack: %v", err)
	}

	return &Client{
		api:   api,
		botID: authTest.UserID,
	}
}

func (c *Client) GetAPI() *slack.Client {
	return c.api
}

func (c *Client) GetBotID() string {
	return c.botID
}

func (c *Client) SendMessage(channelID, message string) error {
	_, _, err := c.api.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
	)
	return err
}

// SendBlocks posts a block message and returns its timestamp so the board can
// be updated in place later.
func (c *Client) SendBlocks(channelID string, blocks []slack.Block) (string, error) {
	_, timestamp, err := c.api.PostMessage(
		channelID,
		slack.MsgOptionBlocks(blocks...),
	)
	return timestamp, err
}

// UpdateBlocks replaces an existing message with a fresh render.
func (c *Client) UpdateBlocks(channelID, timestamp string, blocks []slack.Block) error {
	_, _, _, err := c.api.UpdateMessage(
		channelID,
		timestamp,
		slack.MsgOptionBlocks(blocks...),
	)
	return err
}
