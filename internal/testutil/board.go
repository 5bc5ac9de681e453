package testutil

import (
	"unicode"

	"github.com/mcoot/frogfen/internal/model"
)

// BoardFromRows builds a square board from row strings. Uppercase letters are
// seed cells, lowercase letters are tiles placed this turn and '.' is empty.
// The board size is the number of rows.
func BoardFromRows(rows ...string) *model.Board {
	board := model.NewBoard(len(rows))
	for row, line := range rows {
		for col, ch := range []rune(line) {
			pos := model.Position{Row: row, Col: col}
			switch {
			case ch == '.' || ch == ' ':
			case unicode.IsUpper(ch):
				board.Seed(pos, ch)
			default:
				if err := board.Place(pos, ch); err != nil {
					panic(err)
				}
			}
		}
	}
	return board
}

// EmptyRows returns n rows of n dots, handy as a starting point for BoardFromRows
func EmptyRows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		line := make([]rune, n)
		for j := range line {
			line[j] = '.'
		}
		rows[i] = string(line)
	}
	return rows
}
