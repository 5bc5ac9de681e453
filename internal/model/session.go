package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// TurnPhase is the state of the turn state machine
type TurnPhase string

const (
	PhaseAwaitingMove TurnPhase = "awaiting_move"
	PhaseGameOver     TurnPhase = "game_over"
)

// TurnState tracks turn progression and the running score
type TurnState struct {
	Number   int       `json:"number"` // 0-indexed turn number
	MaxTurns int       `json:"max_turns"`
	Score    int       `json:"score"` // Accumulated across accepted turns
	Phase    TurnPhase `json:"phase"`
}

// NewTurnState returns the initial state for a game with maxTurns turns
func NewTurnState(maxTurns int) TurnState {
	return TurnState{
		Number:   0,
		MaxTurns: maxTurns,
		Score:    0,
		Phase:    PhaseAwaitingMove,
	}
}

// IsOver returns true once the turn limit has been reached
func (t TurnState) IsOver() bool {
	return t.Phase == PhaseGameOver
}

// TurnsRemaining returns the number of moves the player may still submit
func (t TurnState) TurnsRemaining() int {
	if t.IsOver() {
		return 0
	}
	return t.MaxTurns - t.Number
}

// Advance records an accepted turn
func (t TurnState) Advance(turnScore int) TurnState {
	next := t
	next.Number++
	next.Score += turnScore
	if next.Number >= next.MaxTurns {
		next.Phase = PhaseGameOver
	}
	return next
}

// TurnResult describes an accepted move
type TurnResult struct {
	Words     []WordScore `json:"words"`
	TurnScore int         `json:"turn_score"`
	Turn      TurnState   `json:"turn"` // State after the move
}

// Session owns one player's board, rack and turn state
type Session struct {
	ID    SessionID `json:"id"`
	Seed  string    `json:"seed"`
	Board *Board    `json:"board"`
	Rack  Rack      `json:"rack"`
	Turn  TurnState `json:"turn"`

	// LastResult is the outcome of the most recent accepted turn
	LastResult *TurnResult `json:"last_result,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	clone := *s
	if s.Board != nil {
		clone.Board = s.Board.Clone()
	}
	clone.Rack = s.Rack.Clone()
	if s.LastResult != nil {
		result := *s.LastResult
		result.Words = append([]WordScore(nil), s.LastResult.Words...)
		clone.LastResult = &result
	}
	return &clone
}
