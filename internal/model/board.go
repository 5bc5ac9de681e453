package model

import (
	"sort"
	"unicode"
)

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Neighbours returns the four orthogonally adjacent positions (may be off-board)
func (p Position) Neighbours() [4]Position {
	return [4]Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
}

// Board is the square playing grid. It owns its cells.
type Board struct {
	Size  int      `json:"size"`  // Grid dimension (e.g., 11 for 11x11)
	Cells [][]Cell `json:"cells"` // Row-major: Cells[row][col]
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) *Board {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
		for j := range cells[i] {
			cells[i][j].Origin = OriginEmpty
		}
	}
	return &Board{
		Size:  size,
		Cells: cells,
	}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// Cell returns the cell at the given position, or an empty cell if out of bounds
func (b *Board) Cell(pos Position) Cell {
	if !b.IsValidPosition(pos) {
		return Cell{Origin: OriginEmpty}
	}
	return b.Cells[pos.Row][pos.Col]
}

// Get returns the letter at the given position, or 0 if empty
func (b *Board) Get(pos Position) rune {
	return b.Cell(pos).Letter
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Cell(pos).IsEmpty()
}

// SetBonus attaches a bonus to a cell. Only used during board generation.
func (b *Board) SetBonus(pos Position, bonus *Bonus) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col].Bonus = bonus
	}
}

// Seed writes a permanent seed letter. Only used during board generation.
func (b *Board) Seed(pos Position, letter rune) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col].Letter = unicode.ToUpper(letter)
		b.Cells[pos.Row][pos.Col].Origin = OriginSeed
	}
}

// Place puts a letter into an empty cell for the current turn
func (b *Board) Place(pos Position, letter rune) error {
	if !b.IsValidPosition(pos) {
		return ErrInvalidPosition
	}
	if !b.IsEmpty(pos) {
		return ErrCellOccupied
	}
	b.Cells[pos.Row][pos.Col].Letter = unicode.ToUpper(letter)
	b.Cells[pos.Row][pos.Col].Origin = OriginPlaced
	return nil
}

// Unplace reverts a cell placed this turn back to empty and returns its letter
func (b *Board) Unplace(pos Position) (rune, error) {
	if !b.IsValidPosition(pos) {
		return 0, ErrInvalidPosition
	}
	cell := &b.Cells[pos.Row][pos.Col]
	if cell.Origin != OriginPlaced {
		return 0, ErrCellNotPlaced
	}
	letter := cell.Letter
	cell.Letter = 0
	cell.Origin = OriginEmpty
	return letter, nil
}

// Lock makes a cell placed this turn permanent
func (b *Board) Lock(pos Position) error {
	if !b.IsValidPosition(pos) {
		return ErrInvalidPosition
	}
	cell := &b.Cells[pos.Row][pos.Col]
	if cell.Origin != OriginPlaced {
		return ErrCellNotPlaced
	}
	cell.Origin = OriginLocked
	return nil
}

// PlacedPositions returns every cell placed this turn in row-major order
func (b *Board) PlacedPositions() []Position {
	var placed []Position
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col].Origin == OriginPlaced {
				placed = append(placed, Position{Row: row, Col: col})
			}
		}
	}
	return placed
}

// HasFixedNeighbour returns true if any orthogonal neighbour of pos is fixed
// (seed or locked)
func (b *Board) HasFixedNeighbour(pos Position) bool {
	for _, n := range pos.Neighbours() {
		if b.IsValidPosition(n) && b.Cell(n).Origin.IsFixed() {
			return true
		}
	}
	return false
}

// CountOrigin returns the number of cells with the given origin
func (b *Board) CountOrigin(origin Origin) int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col].Origin == origin {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the board. Bonuses are shared since they never change.
func (b *Board) Clone() *Board {
	clone := &Board{Size: b.Size, Cells: make([][]Cell, b.Size)}
	for i := range b.Cells {
		clone.Cells[i] = make([]Cell, len(b.Cells[i]))
		copy(clone.Cells[i], b.Cells[i])
	}
	return clone
}

// Equal reports whether two boards have the same letters, origins and bonuses
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.Size != other.Size {
		return false
	}
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			x, y := b.Cells[row][col], other.Cells[row][col]
			if x.Letter != y.Letter || x.Origin != y.Origin {
				return false
			}
			if (x.Bonus == nil) != (y.Bonus == nil) {
				return false
			}
			if x.Bonus != nil && (x.Bonus.Kind != y.Bonus.Kind || x.Bonus.Multiplier.Cmp(y.Bonus.Multiplier) != 0) {
				return false
			}
		}
	}
	return true
}

// SortPositions orders positions row-major in place
func SortPositions(positions []Position) {
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})
}
