package service

import (
	"errors"
	"fmt"

	"github.com/chrisrobison/RSG-Chess-mobile/internal/model"
)

const (
	SetupStandard = "standard"
	SetupEmpty    = "empty"
)

var ErrUnknownSetup = errors.New("unknown setup")

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func newGameForSetup(setup string) (*model.Game, error) {
	switch setup {
	case "", SetupStandard:
		return model.NewStandardGame(), nil
	case SetupEmpty:
		return model.NewGame(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSetup, setup)
}

// CreateGame starts a new session and returns its id and initial state.
func (gs *GameService) CreateGame(setup string) (string, model.GameState, error) {
	game, err := newGameForSetup(setup)
	if err != nil {
		return "", model.GameState{}, err
	}
	s := gs.gameManager.CreateSession(game)
	var state model.GameState
	s.View(func(g *model.Game) { state = g.State() })
	return s.ID, state, nil
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.RemoveSession(gameID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	var state model.GameState
	s.View(func(g *model.Game) { state = g.State() })
	return state, nil
}

func (gs *GameService) PlacePiece(gameID string, kind model.PieceKind, color model.Color, sq model.Square) (model.GameState, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return s.Do(func(g *model.Game) error {
		_, err := g.PlacePiece(kind, sq, color)
		return err
	})
}

// SelectPiece selects the piece on sq and returns its legal destinations.
func (gs *GameService) SelectPiece(gameID string, sq model.Square) ([]model.Square, model.GameState, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return nil, model.GameState{}, err
	}
	var moves []model.Square
	state, err := s.Do(func(g *model.Game) error {
		var err error
		moves, err = g.SelectPiece(sq)
		return err
	})
	return moves, state, err
}

func (gs *GameService) LegalMoves(gameID string, sq model.Square) ([]model.Square, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return nil, err
	}
	var moves []model.Square
	s.View(func(g *model.Game) { moves = g.LegalMovesAt(sq) })
	return moves, nil
}

func (gs *GameService) HandleMove(gameID string, from, to model.Square) (model.MoveResult, model.GameState, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return model.MoveResult{}, model.GameState{}, err
	}
	var result model.MoveResult
	state, err := s.Do(func(g *model.Game) error {
		var err error
		result, err = g.ApplyMove(from, to)
		return err
	})
	return result, state, err
}

func (gs *GameService) CompletePromotion(gameID string, kind model.PieceKind) (model.MoveResult, model.GameState, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return model.MoveResult{}, model.GameState{}, err
	}
	var result model.MoveResult
	state, err := s.Do(func(g *model.Game) error {
		var err error
		result, err = g.CompletePromotion(kind)
		return err
	})
	return result, state, err
}

// Replay replaces the session's game with a fresh standard game.
func (gs *GameService) Replay(gameID string) (model.GameState, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return s.Replace(model.NewStandardGame())
}

func (gs *GameService) RegisterConnection(gameID string, connectionID string, w StateWriter) error {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return err
	}
	return s.Register(connectionID, w)
}

func (gs *GameService) UnregisterConnection(gameID string, connectionID string) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return
	}
	s.Unregister(connectionID)
}
