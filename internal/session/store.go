package session

import (
	"sync"

	"github.com/shubh-37/brainstorm-board/internal/models"
)

// Store keeps one in-memory session per channel. Nothing is persisted;
// a session lives until it is reset or the process exits.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*models.Session),
	}
}

// Get returns the channel's session, creating a default one on first access.
func (s *Store) Get(channelID string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[channelID]
	if !ok {
		sess = models.NewSession(channelID)
		s.sessions[channelID] = sess
	}
	return sess
}

// Reset discards the channel's session and installs a fresh one:
// topic "", no ideas, empty liked/removed sets, round 1.
func (s *Store) Reset(channelID string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := models.NewSession(channelID)
	s.sessions[channelID] = sess
	return sess
}
