package model

import (
	"fmt"
	"math/big"
	"strings"
)

// Word is a maximal contiguous run of letters along one axis. It is derived from
// the board on every submit and never stored.
type Word struct {
	Text       string
	Start      Position
	Horizontal bool   // true = left-to-right, false = top-to-bottom
	Cells      []Cell // In reading order
}

// Len returns the number of cells in the word
func (w Word) Len() int {
	return len(w.Cells)
}

// Positions returns the board position of each cell in reading order
func (w Word) Positions() []Position {
	positions := make([]Position, len(w.Cells))
	for i := range w.Cells {
		if w.Horizontal {
			positions[i] = Position{Row: w.Start.Row, Col: w.Start.Col + i}
		} else {
			positions[i] = Position{Row: w.Start.Row + i, Col: w.Start.Col}
		}
	}
	return positions
}

// Key identifies the cell sequence of the word. Two runs with the same key cover
// exactly the same cells.
func (w Word) Key() string {
	axis := "v"
	if w.Horizontal {
		axis = "h"
	}
	return fmt.Sprintf("%d:%d:%s:%d", w.Start.Row, w.Start.Col, axis, len(w.Cells))
}

// WordScore is the scoring breakdown for a single word
type WordScore struct {
	Word           string   `json:"word"`
	Start          Position `json:"start"`
	Horizontal     bool     `json:"horizontal"`
	LetterTotal    *big.Rat `json:"letter_total"`
	WordMultiplier *big.Rat `json:"word_multiplier"`
	Points         int      `json:"points"`
}

// Breakdown renders the score as "CAT: 5 x 2 = 10"
func (s WordScore) Breakdown() string {
	return fmt.Sprintf("%s: %s x %s = %d",
		strings.ToUpper(s.Word), RatString(s.LetterTotal), RatString(s.WordMultiplier), s.Points)
}
