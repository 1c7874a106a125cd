package board

import (
	"context"
	"errors"
	"sync"

	"github.com/shubh-37/brainstorm-board/internal/agents"
	"github.com/shubh-37/brainstorm-board/internal/models"
	"github.com/shubh-37/brainstorm-board/internal/session"
)

// Generator produces idea statements for a topic, steered by prior feedback.
type Generator interface {
	GenerateIdeas(ctx context.Context, topic string, liked, removed []string, round int) ([]string, error)
}

// Controller maps board actions onto session state. Generation failures never
// escape it: they come back as a user-facing notice with the session unchanged,
// so the previous ideas and round survive for a retry. Slack delivers
// interactions concurrently; transitions are serialized here and every method
// returns a clone taken under the lock, never the live session.
type Controller struct {
	mu        sync.Mutex
	store     *session.Store
	generator Generator
}

func NewController(store *session.Store, generator Generator) *Controller {
	return &Controller{
		store:     store,
		generator: generator,
	}
}

// StartRound sets the channel's topic and generates the first idea list.
// Starting over an active board behaves like reset-then-generate: the new
// topic begins at round 1 with empty feedback sets, and the old board is only
// discarded once generation succeeds. The round counter advances only when
// generation yields at least one idea.
func (c *Controller) StartRound(ctx context.Context, channelID, topic string) (*models.Session, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.store.Get(channelID)

	liked, removed, round := sess.LikedList(), sess.RemovedList(), sess.CurrentRound
	if sess.Active() {
		liked, removed, round = nil, nil, 1
	}

	ideas, err := c.generator.GenerateIdeas(ctx, topic, liked, removed, round)
	if err != nil {
		return sess.Clone(), noticeFor(err)
	}

	if sess.Active() {
		sess = c.store.Reset(channelID)
	}
	sess.Topic = topic
	sess.Ideas = ideas
	sess.CurrentRound++
	return sess.Clone(), ""
}

// Regenerate replaces the idea list with a fresh one, feeding the accumulated
// liked/removed sets into the prompt. On failure the previous list is kept.
func (c *Controller) Regenerate(ctx context.Context, channelID string) (*models.Session, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.store.Get(channelID)
	if !sess.Active() {
		return sess.Clone(), "⚠️ No active board. Start one with `brainstorm <topic>`."
	}

	ideas, err := c.generator.GenerateIdeas(ctx, sess.Topic, sess.LikedList(), sess.RemovedList(), sess.CurrentRound)
	if err != nil {
		return sess.Clone(), noticeFor(err)
	}

	sess.Ideas = ideas
	sess.CurrentRound++
	return sess.Clone(), ""
}

func (c *Controller) Like(channelID, idea string) *models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.store.Get(channelID)
	sess.Like(idea)
	return sess.Clone()
}

func (c *Controller) Remove(channelID, idea string) *models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.store.Get(channelID)
	sess.Remove(idea)
	return sess.Clone()
}

func (c *Controller) Unlike(channelID, idea string) *models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.store.Get(channelID)
	sess.Unlike(idea)
	return sess.Clone()
}

// Reset discards the channel's board entirely.
func (c *Controller) Reset(channelID string) *models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.Reset(channelID).Clone()
}

// Current returns a snapshot of the channel's session without mutating it.
func (c *Controller) Current(channelID string) *models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.Get(channelID).Clone()
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, agents.ErrEmptyTopic):
		return "⚠️ Please enter a topic."
	case errors.Is(err, agents.ErrEmptyResponse):
		return "⚠️ Idea generation failed. Please try again."
	case errors.Is(err, agents.ErrNoIdeasParsed):
		return "⚠️ Could not parse the generated ideas. Please try again."
	default:
		return "⚠️ Something went wrong while generating ideas. Please try again."
	}
}
