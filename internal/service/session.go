package service

import (
	"io"
	"log"
	"sync"

	"github.com/chrisrobison/RSG-Chess-mobile/internal/model"
	"github.com/chrisrobison/RSG-Chess-mobile/internal/ws"
)

// StateWriter receives state pushes; *websocket.Conn satisfies it.
type StateWriter interface {
	WriteJSON(v interface{}) error
}

// GameConnections holds the writers subscribed to one session.
type GameConnections struct {
	connections map[string]StateWriter // connectionID -> writer
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]StateWriter),
	}
}

// Session is one hot-seat game. Every operation on its game runs under mu,
// so the model only ever sees one caller at a time.
type Session struct {
	ID          string
	mu          sync.Mutex
	game        *model.Game
	closed      bool
	connections *GameConnections
}

func newSession(id string, game *model.Game) *Session {
	return &Session{
		ID:          id,
		game:        game,
		connections: NewGameConnections(),
	}
}

// Do runs fn against the game and, when fn succeeds, pushes the new state
// to every subscriber before returning.
func (s *Session) Do(fn func(g *model.Game) error) (model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return model.GameState{}, ErrGameNotFound
	}
	if err := fn(s.game); err != nil {
		return s.game.State(), err
	}
	state := s.game.State()
	s.broadcast(state)
	return state, nil
}

// View runs fn against the game without broadcasting.
func (s *Session) View(fn func(g *model.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Replace swaps in a fresh game and broadcasts it.
func (s *Session) Replace(game *model.Game) (model.GameState, error) {
	return s.Do(func(g *model.Game) error {
		s.game = game
		return nil
	})
}

// Register subscribes w and pushes the current state to it. Both happen
// under the session lock, so no broadcast can overtake the first push.
func (s *Session) Register(connectionID string, w StateWriter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrGameNotFound
	}
	s.connections.mu.Lock()
	s.connections.connections[connectionID] = w
	s.connections.mu.Unlock()

	s.send(connectionID, w, s.game.State())
	return nil
}

// Close tells every subscriber the game is gone and closes writers that
// support it. Later calls to Do and Register fail with ErrGameNotFound.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	s.connections.mu.Lock()
	active := s.connections.connections
	s.connections.connections = make(map[string]StateWriter)
	s.connections.mu.Unlock()

	msg, err := ws.NewMessage(ws.MessageTypeGameClosed, ws.GameClosedPayload{GameID: s.ID})
	if err != nil {
		log.Printf("session %s: encode close: %v", s.ID, err)
	}
	for id, w := range active {
		if err == nil {
			if werr := w.WriteJSON(msg); werr != nil {
				log.Printf("session %s: notify %s of close: %v", s.ID, id, werr)
			}
		}
		if c, ok := w.(io.Closer); ok {
			if cerr := c.Close(); cerr != nil {
				log.Printf("session %s: close %s: %v", s.ID, id, cerr)
			}
		}
	}
}

func (s *Session) Unregister(connectionID string) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	delete(s.connections.connections, connectionID)
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.RLock()
	defer s.connections.mu.RUnlock()
	return len(s.connections.connections)
}

func (s *Session) broadcast(state model.GameState) {
	s.connections.mu.RLock()
	active := make(map[string]StateWriter, len(s.connections.connections))
	for id, w := range s.connections.connections {
		active[id] = w
	}
	s.connections.mu.RUnlock()

	for id, w := range active {
		s.send(id, w, state)
	}
}

func (s *Session) send(connectionID string, w StateWriter, state model.GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Printf("session %s: encode state: %v", s.ID, err)
		return
	}
	if err := w.WriteJSON(msg); err != nil {
		log.Printf("session %s: dropping connection %s: %v", s.ID, connectionID, err)
		s.Unregister(connectionID)
	}
}
