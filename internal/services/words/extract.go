package words

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mcoot/frogfen/internal/model"
)

type axis struct {
	horizontal bool
	dRow, dCol int
}

func (a axis) next(p model.Position) model.Position {
	return model.Position{Row: p.Row + a.dRow, Col: p.Col + a.dCol}
}

func (a axis) prev(p model.Position) model.Position {
	return model.Position{Row: p.Row - a.dRow, Col: p.Col - a.dCol}
}

var axes = []axis{
	{horizontal: true, dRow: 0, dCol: 1},
	{horizontal: false, dRow: 1, dCol: 0},
}

// Extract returns every word of two or more letters that contains at least one
// placed cell. Words are reported once each, in discovery order: placed cells are
// visited row-major and each is scanned horizontally then vertically.
func Extract(board *model.Board, placed []model.Position) ([]model.Word, error) {
	ordered := append([]model.Position(nil), placed...)
	model.SortPositions(ordered)

	var found []model.Word
	for _, pos := range ordered {
		if board.IsEmpty(pos) {
			panic(fmt.Sprintf("placed position %d,%d holds no letter", pos.Row, pos.Col))
		}
		for _, ax := range axes {
			word := runThrough(board, pos, ax)
			if word.Len() >= 2 {
				found = append(found, word)
			}
		}
	}

	found = lo.UniqBy(found, func(w model.Word) string { return w.Key() })
	if len(found) == 0 {
		return nil, model.Reject(model.ReasonWordTooShort)
	}
	return found, nil
}

// runThrough walks from pos to both ends of its maximal non-empty run along ax
func runThrough(board *model.Board, pos model.Position, ax axis) model.Word {
	start := pos
	for {
		prev := ax.prev(start)
		if !board.IsValidPosition(prev) || board.IsEmpty(prev) {
			break
		}
		start = prev
	}

	word := model.Word{Start: start, Horizontal: ax.horizontal}
	var text []rune
	for cur := start; board.IsValidPosition(cur) && !board.IsEmpty(cur); cur = ax.next(cur) {
		cell := board.Cell(cur)
		word.Cells = append(word.Cells, cell)
		text = append(text, cell.Letter)
	}
	word.Text = string(text)
	return word
}
