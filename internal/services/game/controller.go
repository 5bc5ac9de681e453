package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mcoot/frogfen/internal/dependencies/clock"
	"github.com/mcoot/frogfen/internal/dependencies/random"
	"github.com/mcoot/frogfen/internal/model"
	"github.com/mcoot/frogfen/internal/rules"
	"github.com/mcoot/frogfen/internal/services/board"
	"github.com/mcoot/frogfen/internal/services/generator"
	"github.com/mcoot/frogfen/internal/storage"
)

const (
	sessionIDLength   = 12
	sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxIDAttempts     = 5
)

// ErrSessionIDExhausted is returned when no unused session ID could be generated
var ErrSessionIDExhausted = errors.New("could not allocate a session id")

// Controller owns session lifecycle and serialises every mutation of a session
type Controller struct {
	storage      storage.Storage
	engine       *Engine
	boardService *board.Service
	generator    *generator.Service
	rules        *rules.Rules
	clock        clock.Clock
	random       random.Random
	seeds        random.Source
	logger       *slog.Logger

	mu    sync.Mutex
	locks map[model.SessionID]*sessionLock
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	engine *Engine,
	boardService *board.Service,
	generator *generator.Service,
	r *rules.Rules,
	clock clock.Clock,
	random random.Random,
	seeds random.Source,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		engine:       engine,
		boardService: boardService,
		generator:    generator,
		rules:        r,
		clock:        clock,
		random:       random,
		seeds:        seeds,
		logger:       logger,
		locks:        make(map[model.SessionID]*sessionLock),
	}
}

// sessionLock is a per-session mutex shared by every caller currently waiting on
// or holding it
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// lock takes the per-session mutex and returns its release func. The entry is
// dropped once no caller holds or waits on it, so unknown IDs leave nothing behind.
func (c *Controller) lock(id model.SessionID) func() {
	c.mu.Lock()
	l, ok := c.locks[id]
	if !ok {
		l = &sessionLock{}
		c.locks[id] = l
	}
	l.refs++
	c.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		c.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(c.locks, id)
		}
		c.mu.Unlock()
	}
}

// CreateSession generates a board and rack from seed and stores a new session.
// An empty seed means today's date, so every player gets the same daily board.
func (c *Controller) CreateSession(ctx context.Context, seed string) (*model.Session, error) {
	now := c.clock.Now()
	seed = c.seedOrToday(seed)

	rng := c.seeds.ForSeed(seed)
	b, seedWords, err := c.generator.NewBoard(rng)
	if err != nil {
		return nil, err
	}
	rack := c.generator.DrawRack(rng)

	id, err := c.newSessionID(ctx)
	if err != nil {
		return nil, err
	}

	session := &model.Session{
		ID:        id,
		Seed:      seed,
		Board:     b,
		Rack:      rack,
		Turn:      model.NewTurnState(c.rules.MaxTurns),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(id)),
		slog.String("seed", seed),
		slog.Int("seed_words", len(seedWords)),
	)

	return session, nil
}

func (c *Controller) newSessionID(ctx context.Context) (model.SessionID, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := model.SessionID(c.random.String(sessionIDLength, sessionIDAlphabet))
		if id == "" {
			continue
		}
		exists, err := c.storage.SessionExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrSessionIDExhausted
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// ListSessions returns every live session played on the given seed, or on
// today's board when seed is empty
func (c *Controller) ListSessions(ctx context.Context, seed string) ([]*model.Session, error) {
	return c.storage.GetSessionsForSeed(ctx, c.seedOrToday(seed))
}

func (c *Controller) seedOrToday(seed string) string {
	if seed != "" {
		return seed
	}
	return clock.Today(c.clock)
}

// DeleteSession removes a session
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	unlock := c.lock(id)
	defer unlock()

	if _, err := c.storage.GetSession(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	c.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// mutate loads a session under its lock, applies fn and saves the result if fn succeeds
func (c *Controller) mutate(ctx context.Context, id model.SessionID, fn func(session *model.Session) error) (*model.Session, error) {
	unlock := c.lock(id)
	defer unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// PlaceTile moves a rack tile onto the board for the current turn
func (c *Controller) PlaceTile(ctx context.Context, id model.SessionID, tileID model.TileID, pos model.Position) (*model.Session, error) {
	return c.mutate(ctx, id, func(session *model.Session) error {
		if session.Turn.IsOver() {
			return model.ErrGameAlreadyOver
		}
		return c.boardService.PlaceTile(session.Board, &session.Rack, tileID, pos)
	})
}

// UnplaceTile returns the tile at pos to the rack
func (c *Controller) UnplaceTile(ctx context.Context, id model.SessionID, pos model.Position) (*model.Session, error) {
	return c.mutate(ctx, id, func(session *model.Session) error {
		_, err := c.boardService.UnplaceTile(session.Board, &session.Rack, pos)
		return err
	})
}

// ResetPlacements returns every tile placed this turn to the rack
func (c *Controller) ResetPlacements(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.mutate(ctx, id, func(session *model.Session) error {
		c.boardService.ResetPlacements(session.Board, &session.Rack)
		return nil
	})
}

// SubmitMove runs the engine on the session's placed tiles. A rejected move
// returns a *model.RejectionError and leaves the stored session untouched.
func (c *Controller) SubmitMove(ctx context.Context, id model.SessionID) (*model.TurnResult, error) {
	var result *model.TurnResult
	_, err := c.mutate(ctx, id, func(session *model.Session) error {
		res, err := c.engine.Submit(session.Board, session.Turn)
		if err != nil {
			if rej, ok := model.AsRejection(err); ok {
				c.logger.Info("move rejected",
					slog.String("session_id", string(id)),
					slog.Int("turn", session.Turn.Number),
					slog.String("reason", string(rej.Reason)),
					slog.String("word", rej.Word),
				)
			}
			return err
		}

		// Locked tiles leave the rack for good
		var used []model.TileID
		for _, t := range session.Rack.OnBoard() {
			used = append(used, t.ID)
		}
		session.Rack.Remove(used...)

		session.Turn = res.Turn
		session.LastResult = res
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("move accepted",
		slog.String("session_id", string(id)),
		slog.Int("turn", result.Turn.Number),
		slog.Int("turn_score", result.TurnScore),
		slog.Int("score", result.Turn.Score),
	)
	if result.Turn.IsOver() {
		c.logger.Info("game over",
			slog.String("session_id", string(id)),
			slog.Int("score", result.Turn.Score),
		)
	}

	return result, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateSession(ctx context.Context, seed string) (*model.Session, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	ListSessions(ctx context.Context, seed string) ([]*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	PlaceTile(ctx context.Context, id model.SessionID, tileID model.TileID, pos model.Position) (*model.Session, error)
	UnplaceTile(ctx context.Context, id model.SessionID, pos model.Position) (*model.Session, error)
	ResetPlacements(ctx context.Context, id model.SessionID) (*model.Session, error)
	SubmitMove(ctx context.Context, id model.SessionID) (*model.TurnResult, error)
}

var _ ControllerInterface = (*Controller)(nil)
