package factory

import (
	"context"
	"time"

	"github.com/mcoot/frogfen/internal/dependencies/mocks"
	"github.com/mcoot/frogfen/internal/dependencies/random"
	"github.com/mcoot/frogfen/internal/model"
	"github.com/mcoot/frogfen/internal/rules"
	"github.com/mcoot/frogfen/internal/storage/memory"
	"github.com/mcoot/frogfen/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Board generation still uses real seeded randomness so a seed always gives
// the same board.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, random.NewSource(), rules.Default(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"am", "an", "as", "at", "be", "do", "go", "he", "if", "in", "is", "it",
		"me", "my", "no", "of", "on", "or", "so", "to", "up", "us", "we",
		// 3-letter words
		"act", "ant", "art", "ate", "bat", "cat", "eat", "fog", "hat", "mat",
		"net", "oat", "pat", "rat", "sat", "sea", "set", "tan", "tea", "ten",
		"toe", "ton", "two", "wet",
		// longer words
		"cats", "coat", "east", "frog", "lily", "moss", "newt", "note", "pond",
		"reed", "seat", "stone", "toad", "water", "heron", "marsh", "tadpole",
	}
	return t.DictionaryService.LoadWords(words)
}

// FixtureRows is the board of every fixture session. CAT is a seed word on
// the middle row.
var FixtureRows = []string{
	".....",
	".....",
	".CAT.",
	".....",
	".....",
}

// SaveFixtureSession stores a hand-built session with a predictable board and
// a rack of S, A and X so tests can play known moves
func (t *TestApp) SaveFixtureSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	now := t.MockClock.Now()
	session := &model.Session{
		ID:    id,
		Seed:  "fixture",
		Board: testutil.BoardFromRows(FixtureRows...),
		Rack: model.Rack{Tiles: []model.Tile{
			{ID: 1, Letter: 'S', Points: 1, Location: model.TileLocation{Slot: 0}},
			{ID: 2, Letter: 'A', Points: 1, Location: model.TileLocation{Slot: 1}},
			{ID: 3, Letter: 'X', Points: 8, Location: model.TileLocation{Slot: 2}},
		}},
		Turn:      model.NewTurnState(t.Rules.MaxTurns),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.Storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
