package response

import (
	"time"

	"github.com/mcoot/frogfen/internal/model"
)

// Position is a board coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionFromModel converts model.Position
func PositionFromModel(p model.Position) Position {
	return Position{Row: p.Row, Col: p.Col}
}

// Bonus describes a cell multiplier
type Bonus struct {
	Kind       string `json:"kind"`
	Multiplier string `json:"multiplier"`
	Label      string `json:"label"`
}

// Cell is one board cell. Empty cells have an empty letter.
type Cell struct {
	Letter string `json:"letter"`
	Origin string `json:"origin"`
	Bonus  *Bonus `json:"bonus,omitempty"`
}

// Board represents a session board
type Board struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"`
}

// BoardFromModel converts model.Board to response Board
func BoardFromModel(b *model.Board) Board {
	cells := make([][]Cell, b.Size)
	for row := 0; row < b.Size; row++ {
		cells[row] = make([]Cell, b.Size)
		for col := 0; col < b.Size; col++ {
			c := b.Cells[row][col]
			cell := Cell{Origin: string(c.Origin)}
			if c.Origin == "" {
				cell.Origin = string(model.OriginEmpty)
			}
			if c.Letter != 0 {
				cell.Letter = string(c.Letter)
			}
			if c.Bonus != nil {
				cell.Bonus = &Bonus{
					Kind:       string(c.Bonus.Kind),
					Multiplier: model.RatString(c.Bonus.Multiplier),
					Label:      c.Bonus.Label(),
				}
			}
			cells[row][col] = cell
		}
	}
	return Board{Size: b.Size, Cells: cells}
}

// Tile is a rack tile. Position is set when the tile sits on the board.
type Tile struct {
	ID       int       `json:"id"`
	Letter   string    `json:"letter"`
	Points   int       `json:"points"`
	OnBoard  bool      `json:"on_board"`
	Slot     int       `json:"slot"`
	Position *Position `json:"position,omitempty"`
}

// TileFromModel converts model.Tile
func TileFromModel(t model.Tile) Tile {
	tile := Tile{
		ID:      int(t.ID),
		Letter:  string(t.Letter),
		Points:  t.Points,
		OnBoard: t.Location.OnBoard,
		Slot:    t.Location.Slot,
	}
	if t.Location.OnBoard {
		pos := PositionFromModel(t.Location.Position)
		tile.Position = &pos
	}
	return tile
}

// Turn represents turn progression
type Turn struct {
	Number         int    `json:"number"`
	MaxTurns       int    `json:"max_turns"`
	TurnsRemaining int    `json:"turns_remaining"`
	Score          int    `json:"score"`
	Phase          string `json:"phase"`
}

// TurnFromModel converts model.TurnState
func TurnFromModel(t model.TurnState) Turn {
	return Turn{
		Number:         t.Number,
		MaxTurns:       t.MaxTurns,
		TurnsRemaining: t.TurnsRemaining(),
		Score:          t.Score,
		Phase:          string(t.Phase),
	}
}

// WordScore is the scoring breakdown for one word
type WordScore struct {
	Word           string   `json:"word"`
	Start          Position `json:"start"`
	Horizontal     bool     `json:"horizontal"`
	LetterTotal    string   `json:"letter_total"`
	WordMultiplier string   `json:"word_multiplier"`
	Points         int      `json:"points"`
	Breakdown      string   `json:"breakdown"`
}

// WordScoreFromModel converts model.WordScore
func WordScoreFromModel(s model.WordScore) WordScore {
	return WordScore{
		Word:           s.Word,
		Start:          PositionFromModel(s.Start),
		Horizontal:     s.Horizontal,
		LetterTotal:    model.RatString(s.LetterTotal),
		WordMultiplier: model.RatString(s.WordMultiplier),
		Points:         s.Points,
		Breakdown:      s.Breakdown(),
	}
}

// Session represents a game session in API responses
type Session struct {
	ID         string      `json:"id"`
	Seed       string      `json:"seed"`
	Board      Board       `json:"board"`
	Rack       []Tile      `json:"rack"`
	Turn       Turn        `json:"turn"`
	LastResult *MoveResult `json:"last_result,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// SessionFromModel converts model.Session
func SessionFromModel(s *model.Session) Session {
	rack := make([]Tile, len(s.Rack.Tiles))
	for i, t := range s.Rack.Tiles {
		rack[i] = TileFromModel(t)
	}

	var last *MoveResult
	if s.LastResult != nil {
		r := AcceptedFromModel(s.LastResult)
		last = &r
	}

	return Session{
		ID:         string(s.ID),
		Seed:       s.Seed,
		Board:      BoardFromModel(s.Board),
		Rack:       rack,
		Turn:       TurnFromModel(s.Turn),
		LastResult: last,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// SessionSummary is the list view of a session
type SessionSummary struct {
	ID        string    `json:"id"`
	Seed      string    `json:"seed"`
	Turn      Turn      `json:"turn"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionSummaryFromModel converts model.Session to its list view
func SessionSummaryFromModel(s *model.Session) SessionSummary {
	return SessionSummary{
		ID:        string(s.ID),
		Seed:      s.Seed,
		Turn:      TurnFromModel(s.Turn),
		UpdatedAt: s.UpdatedAt,
	}
}

// SessionList is the response for listing sessions
type SessionList struct {
	Sessions []SessionSummary `json:"sessions"`
}

// MoveResult is the outcome of a submitted move. Rejected moves carry a
// reason and leave Words empty.
type MoveResult struct {
	Accepted    bool        `json:"accepted"`
	Reason      string      `json:"reason,omitempty"`
	Message     string      `json:"message,omitempty"`
	InvalidWord string      `json:"invalid_word,omitempty"`
	Words       []WordScore `json:"words"`
	TurnScore   int         `json:"turn_score"`
	Turn        Turn        `json:"turn"`
}

// AcceptedFromModel converts an accepted model.TurnResult
func AcceptedFromModel(r *model.TurnResult) MoveResult {
	words := make([]WordScore, len(r.Words))
	for i, w := range r.Words {
		words[i] = WordScoreFromModel(w)
	}
	return MoveResult{
		Accepted:  true,
		Words:     words,
		TurnScore: r.TurnScore,
		Turn:      TurnFromModel(r.Turn),
	}
}

// RejectedFromModel builds the result for a rejected move. turn is the
// unchanged turn state.
func RejectedFromModel(rej *model.RejectionError, turn model.TurnState) MoveResult {
	return MoveResult{
		Accepted:    false,
		Reason:      string(rej.Reason),
		Message:     rej.Error(),
		InvalidWord: rej.Word,
		Words:       []WordScore{},
		Turn:        TurnFromModel(turn),
	}
}

// Health is the response for the health endpoint
type Health struct {
	Status          string `json:"status"`
	DictionaryWords int    `json:"dictionary_words"`
}
