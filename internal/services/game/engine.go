package game

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/frogfen/internal/model"
	"github.com/mcoot/frogfen/internal/services/board"
	"github.com/mcoot/frogfen/internal/services/dictionary"
	"github.com/mcoot/frogfen/internal/services/scoring"
	"github.com/mcoot/frogfen/internal/services/words"
)

// Engine runs the submit pipeline for one move: validate, extract, check, score, lock
type Engine struct {
	dictionary     dictionary.ServiceInterface
	scoringService scoring.ServiceInterface
	logger         *slog.Logger
}

// NewEngine creates a new Engine
func NewEngine(dictionary dictionary.ServiceInterface, scoringService scoring.ServiceInterface, logger *slog.Logger) *Engine {
	return &Engine{
		dictionary:     dictionary,
		scoringService: scoringService,
		logger:         logger,
	}
}

// Submit evaluates the tiles placed on b this turn. On acceptance the placed cells
// are locked and the returned result carries the advanced turn state. On rejection
// it returns a *model.RejectionError and b is left exactly as it was.
func (e *Engine) Submit(b *model.Board, turn model.TurnState) (*model.TurnResult, error) {
	if turn.IsOver() {
		return nil, model.Reject(model.ReasonGameAlreadyOver)
	}
	if !e.dictionary.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}

	placed := b.PlacedPositions()
	if err := board.ValidateMove(b, placed, turn.Number); err != nil {
		return nil, err
	}

	found, err := words.Extract(b, placed)
	if err != nil {
		return nil, err
	}

	// No partial credit: one bad word rejects the whole move
	for _, w := range found {
		if !e.dictionary.IsValidWord(w.Text) {
			return nil, model.RejectWord(w.Text)
		}
	}

	scores, turnScore := e.scoringService.ScoreTurn(found)

	for _, pos := range placed {
		if err := b.Lock(pos); err != nil {
			panic(fmt.Sprintf("lock %d,%d: %v", pos.Row, pos.Col, err))
		}
	}

	next := turn.Advance(turnScore)
	e.logger.Debug("move accepted",
		slog.Int("turn", next.Number),
		slog.Int("turn_score", turnScore),
		slog.Int("words", len(scores)),
	)

	return &model.TurnResult{
		Words:     scores,
		TurnScore: turnScore,
		Turn:      next,
	}, nil
}
