package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Session holds one channel's brainstorm board state
type Session struct {
	ID           string          `json:"id"`
	ChannelID    string          `json:"channel_id"`
	Topic        string          `json:"topic"`
	Ideas        []string        `json:"ideas"`         // current round only, at most 5
	LikedIdeas   map[string]bool `json:"liked_ideas"`   // keyed by idea text
	RemovedIdeas map[string]bool `json:"removed_ideas"` // keyed by idea text
	CurrentRound int             `json:"current_round"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewSession creates a fresh session for a channel
func NewSession(channelID string) *Session {
	return &Session{
		ID:           uuid.New().String(),
		ChannelID:    channelID,
		Topic:        "",
		Ideas:        []string{},
		LikedIdeas:   make(map[string]bool),
		RemovedIdeas: make(map[string]bool),
		CurrentRound: 1,
		CreatedAt:    time.Now(),
	}
}

// Active reports whether the session has a board to show
func (s *Session) Active() bool {
	return s.Topic != ""
}

// Clone returns an independent copy of the session. Renderers work on clones
// so in-flight mutations never touch a snapshot they are iterating.
func (s *Session) Clone() *Session {
	clone := &Session{
		ID:           s.ID,
		ChannelID:    s.ChannelID,
		Topic:        s.Topic,
		Ideas:        make([]string, len(s.Ideas)),
		LikedIdeas:   make(map[string]bool, len(s.LikedIdeas)),
		RemovedIdeas: make(map[string]bool, len(s.RemovedIdeas)),
		CurrentRound: s.CurrentRound,
		CreatedAt:    s.CreatedAt,
	}
	copy(clone.Ideas, s.Ideas)
	for k := range s.LikedIdeas {
		clone.LikedIdeas[k] = true
	}
	for k := range s.RemovedIdeas {
		clone.RemovedIdeas[k] = true
	}
	return clone
}

func (s *Session) Like(idea string) {
	s.LikedIdeas[idea] = true
}

// Unlike removes an idea from the liked set. The removed set is untouched;
// the two sets are independent curation signals.
func (s *Session) Unlike(idea string) {
	delete(s.LikedIdeas, idea)
}

func (s *Session) Remove(idea string) {
	s.RemovedIdeas[idea] = true
}

// LikedList returns the liked idea texts in stable order for prompts and rendering.
func (s *Session) LikedList() []string {
	return sortedKeys(s.LikedIdeas)
}

// RemovedList returns the removed idea texts in stable order.
func (s *Session) RemovedList() []string {
	return sortedKeys(s.RemovedIdeas)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
