package service

import (
	"errors"
	"log"
	"sync"

	"github.com/chrisrobison/RSG-Chess-mobile/internal/model"
	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager keeps the live sessions of this process.
type GameManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		sessions: make(map[string]*Session),
	}
}

// CreateSession registers game under a fresh UUID.
func (gm *GameManager) CreateSession(game *model.Game) *Session {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	id := uuid.New().String()
	s := newSession(id, game)
	gm.sessions[id] = s
	log.Printf("created game %s", id)
	return s
}

func (gm *GameManager) GetSession(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	s, exists := gm.sessions[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return s, nil
}

// RemoveSession forgets the session and closes its subscribers.
func (gm *GameManager) RemoveSession(gameID string) error {
	gm.mu.Lock()
	s, exists := gm.sessions[gameID]
	if !exists {
		gm.mu.Unlock()
		return ErrGameNotFound
	}
	delete(gm.sessions, gameID)
	gm.mu.Unlock()

	s.Close()
	log.Printf("removed game %s", gameID)
	return nil
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.sessions)
}
