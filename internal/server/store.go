package server

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
)

// Session is one live game. The engine is not safe for concurrent use, so
// every access goes through the session lock.
type Session struct {
	ID      string
	Created time.Time

	mu   sync.Mutex
	game *engine.Game
}

// With runs fn with exclusive access to the session's game.
func (s *Session) With(fn func(g *engine.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Store holds the live sessions in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	maxGames int
}

// NewStore creates an empty store holding at most maxGames sessions
// (0 = no limit).
func NewStore(maxGames int) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		maxGames: maxGames,
	}
}

func generateID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes) //nolint:errcheck // crypto/rand.Read does not fail on supported platforms
	return hex.EncodeToString(bytes)
}

// Create starts a new session from a FEN string, or from the standard
// starting position when fen is empty.
func (st *Store) Create(fen string) (*Session, error) {
	g := engine.NewGame()
	if fen != "" {
		var err error
		if g, err = engine.NewGameFromFEN(fen); err != nil {
			return nil, err
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.maxGames > 0 && len(st.sessions) >= st.maxGames {
		return nil, fmt.Errorf("limit %d reached: %w", st.maxGames, errors.ErrTooManyGames)
	}

	s := &Session{ID: generateID(), Created: time.Now(), game: g}
	st.sessions[s.ID] = s
	return s, nil
}

// Get returns the session with the given ID.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, errors.ErrGameNotFound)
	}
	return s, nil
}

// Delete removes a session. Unknown IDs are ignored.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
