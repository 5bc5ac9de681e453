package board

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/samber/lo"

	"github.com/mcoot/frogfen/internal/model"
)

// Service moves rack tiles on and off a board during a turn
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// PlaceTile moves a rack tile onto an empty cell
func (s *Service) PlaceTile(board *model.Board, rack *model.Rack, tileID model.TileID, pos model.Position) error {
	tile := rack.Find(tileID)
	if tile == nil {
		return model.ErrTileNotFound
	}
	if tile.Location.OnBoard {
		return model.ErrTileAlreadyPlaced
	}
	if err := s.ValidatePlacement(board, pos); err != nil {
		return err
	}
	if err := ValidateLetter(tile.Letter); err != nil {
		return err
	}

	if err := board.Place(pos, tile.Letter); err != nil {
		return err
	}
	tile.Location = model.TileLocation{OnBoard: true, Position: pos}
	return nil
}

// UnplaceTile returns the tile placed at pos this turn to the first free rack slot
func (s *Service) UnplaceTile(board *model.Board, rack *model.Rack, pos model.Position) (*model.Tile, error) {
	if !board.IsValidPosition(pos) {
		return nil, model.ErrInvalidPosition
	}
	tile := rack.TileAt(pos)
	if tile == nil {
		return nil, model.ErrCellNotPlaced
	}
	if _, err := board.Unplace(pos); err != nil {
		return nil, err
	}
	tile.Location = model.TileLocation{Slot: rack.FreeSlot()}
	return tile, nil
}

// ResetPlacements returns every tile placed this turn to the rack and reports how many moved
func (s *Service) ResetPlacements(board *model.Board, rack *model.Rack) int {
	count := 0
	for _, pos := range board.PlacedPositions() {
		if _, err := s.UnplaceTile(board, rack, pos); err != nil {
			// A placed cell with no matching tile means the rack and board disagree
			s.logger.Warn("placed cell has no rack tile", "row", pos.Row, "col", pos.Col, "error", err)
			_, _ = board.Unplace(pos)
		}
		count++
	}
	return count
}

// ValidatePlacement checks if a position is valid and empty
func (s *Service) ValidatePlacement(board *model.Board, pos model.Position) error {
	if !board.IsValidPosition(pos) {
		return model.ErrInvalidPosition
	}
	if !board.IsEmpty(pos) {
		return model.ErrCellOccupied
	}
	return nil
}

// ValidateLetter checks if a letter is a valid A-Z character
func ValidateLetter(letter rune) error {
	upper := unicode.ToUpper(letter)
	if upper < 'A' || upper > 'Z' {
		return model.ErrInvalidLetter
	}
	return nil
}

// ValidateMove checks the geometry of the tiles placed this turn. It does not
// look for gaps: a gapped line simply produces more than one word later.
func ValidateMove(board *model.Board, placed []model.Position, turnNumber int) error {
	if len(placed) == 0 {
		return model.Reject(model.ReasonNoTilesPlaced)
	}

	for _, pos := range placed {
		if !board.IsValidPosition(pos) || board.Cell(pos).Origin != model.OriginPlaced {
			panic(fmt.Sprintf("position %d,%d is not a cell placed this turn", pos.Row, pos.Col))
		}
	}

	first := placed[0]
	sameRow := lo.EveryBy(placed, func(p model.Position) bool { return p.Row == first.Row })
	sameCol := lo.EveryBy(placed, func(p model.Position) bool { return p.Col == first.Col })
	if !sameRow && !sameCol {
		return model.Reject(model.ReasonNotStraightLine)
	}

	// The opening move may go anywhere. Later moves must touch the existing letters.
	if turnNumber > 0 && !lo.SomeBy(placed, board.HasFixedNeighbour) {
		return model.Reject(model.ReasonNotConnected)
	}

	return nil
}
