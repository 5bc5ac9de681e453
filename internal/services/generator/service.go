package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/frogfen/internal/dependencies/random"
	"github.com/mcoot/frogfen/internal/model"
	"github.com/mcoot/frogfen/internal/rules"
	"github.com/mcoot/frogfen/internal/services/dictionary"
)

// ErrNoSeedWords is returned when the dictionary has no word short enough to seed the board
var ErrNoSeedWords = errors.New("no dictionary words fit the board")

// SeedWord records a starter word written onto a generated board
type SeedWord struct {
	Word       string
	Start      model.Position
	Horizontal bool
}

// Service builds fresh boards and racks from the rules
type Service struct {
	rules      *rules.Rules
	dictionary *dictionary.Service
	logger     *slog.Logger
}

// New creates a new GeneratorService
func New(r *rules.Rules, dictionary *dictionary.Service, logger *slog.Logger) *Service {
	return &Service{
		rules:      r,
		dictionary: dictionary,
		logger:     logger,
	}
}

// NewBoard lays out the bonus plan and the seed words on an empty board. Seed
// words come from the dictionary, so it must be loaded first.
func (s *Service) NewBoard(rng random.Random) (*model.Board, []SeedWord, error) {
	if s.rules.SeedWords.Count > 0 && !s.dictionary.IsLoaded() {
		return nil, nil, model.ErrDictionaryNotLoaded
	}
	board := model.NewBoard(s.rules.BoardSize)
	if err := s.placeBonuses(board, rng); err != nil {
		return nil, nil, err
	}
	seeds, err := s.placeSeedWords(board, rng)
	if err != nil {
		return nil, nil, err
	}
	return board, seeds, nil
}

// DrawRack draws the rack's tiles with replacement from the distribution string
func (s *Service) DrawRack(rng random.Random) model.Rack {
	letters := []rune(s.rules.Distribution)
	tiles := make([]model.Tile, s.rules.RackSize)
	for i := range tiles {
		letter := letters[rng.Intn(len(letters))]
		points, _ := s.rules.LetterValues.Value(letter)
		tiles[i] = model.Tile{
			ID:       model.TileID(i + 1),
			Letter:   letter,
			Points:   points,
			Location: model.TileLocation{Slot: i},
		}
	}
	return model.Rack{Tiles: tiles}
}

// placeBonuses puts every bonus of the plan on its own cell
func (s *Service) placeBonuses(board *model.Board, rng random.Random) error {
	// Partial Fisher-Yates over the cell indices gives distinct cells in plan order
	cells := lo.Range(board.Size * board.Size)
	next := 0
	for _, plan := range s.rules.Bonuses {
		mult, err := plan.Rat()
		if err != nil {
			return err
		}
		for i := 0; i < plan.Count; i++ {
			if next >= len(cells) {
				return fmt.Errorf("bonus plan needs more than %d cells", len(cells))
			}
			j := next + rng.Intn(len(cells)-next)
			cells[next], cells[j] = cells[j], cells[next]
			idx := cells[next]
			next++

			pos := model.Position{Row: idx / board.Size, Col: idx % board.Size}
			board.SetBonus(pos, &model.Bonus{Kind: plan.Kind, Multiplier: mult})
		}
	}
	return nil
}

// placeSeedWords centres one word on the middle row, then tries to cross further
// words through letters already on the board until the count or the attempt budget
// runs out
func (s *Service) placeSeedWords(board *model.Board, rng random.Random) ([]SeedWord, error) {
	sw := s.rules.SeedWords
	if sw.Count <= 0 {
		return nil, nil
	}

	maxLen := min(sw.MaxLength, board.Size)
	if maxLen <= 0 {
		maxLen = board.Size
	}
	candidates := lo.Map(s.dictionary.Words(2, maxLen), func(w string, _ int) string {
		return strings.ToUpper(w)
	})
	candidates = lo.Filter(candidates, func(w string, _ int) bool {
		return lo.EveryBy([]rune(w), func(r rune) bool { return r >= 'A' && r <= 'Z' })
	})
	if len(candidates) == 0 {
		return nil, ErrNoSeedWords
	}

	first := candidates[rng.Intn(len(candidates))]
	mid := board.Size / 2
	start := model.Position{Row: mid, Col: (board.Size - len(first)) / 2}
	writeWord(board, first, start, true)
	placed := []SeedWord{{Word: first, Start: start, Horizontal: true}}

	for attempts := 0; len(placed) < sw.Count && attempts < sw.Attempts; attempts++ {
		word := []rune(candidates[rng.Intn(len(candidates))])
		anchorIdx := rng.Intn(len(word))

		anchors := cellsWithLetter(board, word[anchorIdx])
		if len(anchors) == 0 {
			continue
		}
		anchor := anchors[rng.Intn(len(anchors))]
		horizontal := rng.Intn(2) == 0

		start := model.Position{Row: anchor.Row - anchorIdx, Col: anchor.Col}
		if horizontal {
			start = model.Position{Row: anchor.Row, Col: anchor.Col - anchorIdx}
		}
		if !canPlace(board, word, start, horizontal) {
			continue
		}
		writeWord(board, string(word), start, horizontal)
		placed = append(placed, SeedWord{Word: string(word), Start: start, Horizontal: horizontal})
	}

	s.logger.Debug("seed words placed", "count", len(placed), "words", lo.Map(placed, func(w SeedWord, _ int) string { return w.Word }))
	return placed, nil
}

func step(start model.Position, i int, horizontal bool) model.Position {
	if horizontal {
		return model.Position{Row: start.Row, Col: start.Col + i}
	}
	return model.Position{Row: start.Row + i, Col: start.Col}
}

// canPlace reports whether word fits at start without clashing with existing letters
// and adds at least one new letter
func canPlace(board *model.Board, word []rune, start model.Position, horizontal bool) bool {
	fresh := false
	for i, letter := range word {
		pos := step(start, i, horizontal)
		if !board.IsValidPosition(pos) {
			return false
		}
		existing := board.Get(pos)
		if existing == 0 {
			fresh = true
			continue
		}
		if existing != letter {
			return false
		}
	}
	return fresh
}

func writeWord(board *model.Board, word string, start model.Position, horizontal bool) {
	for i, letter := range []rune(word) {
		pos := step(start, i, horizontal)
		if board.IsEmpty(pos) {
			board.Seed(pos, letter)
		}
	}
}

func cellsWithLetter(board *model.Board, letter rune) []model.Position {
	var result []model.Position
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			pos := model.Position{Row: row, Col: col}
			if board.Get(pos) == letter {
				result = append(result, pos)
			}
		}
	}
	return result
}
