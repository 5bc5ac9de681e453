package memory

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/frogfen/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newSession(id model.SessionID, seed string) *model.Session {
	board := model.NewBoard(5)
	board.Seed(model.Position{Row: 2, Col: 1}, 'C')
	board.SetBonus(model.Position{Row: 0, Col: 0}, &model.Bonus{Kind: model.BonusWord, Multiplier: big.NewRat(3, 2)})
	return &model.Session{
		ID:        id,
		Seed:      seed,
		Board:     board,
		Rack:      model.Rack{Tiles: []model.Tile{{ID: 1, Letter: 'A', Points: 1}}},
		Turn:      model.NewTurnState(3),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := newSession("s-1", "2026-01-01")

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "s-1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.True(session.Board.Equal(retrieved.Board))
	s.Equal(session.Rack, retrieved.Rack)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionIsCopiedOnSave() {
	session := newSession("s-1", "seed")
	_ = s.storage.SaveSession(s.ctx, session)

	// Mutating the caller's copy must not leak into storage
	_ = session.Board.Place(model.Position{Row: 0, Col: 0}, 'Z')
	session.Rack.Remove(1)

	retrieved, err := s.storage.GetSession(s.ctx, "s-1")
	s.Require().NoError(err)
	s.True(retrieved.Board.IsEmpty(model.Position{Row: 0, Col: 0}))
	s.Len(retrieved.Rack.Tiles, 1)
}

func (s *StorageSuite) TestSessionIsCopiedOnGet() {
	_ = s.storage.SaveSession(s.ctx, newSession("s-1", "seed"))

	first, _ := s.storage.GetSession(s.ctx, "s-1")
	_ = first.Board.Place(model.Position{Row: 1, Col: 1}, 'Q')

	second, err := s.storage.GetSession(s.ctx, "s-1")
	s.Require().NoError(err)
	s.True(second.Board.IsEmpty(model.Position{Row: 1, Col: 1}))
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "s-1")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveSession(s.ctx, newSession("s-1", "seed"))

	exists, err = s.storage.SessionExists(s.ctx, "s-1")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, newSession("s-1", "seed"))

	err := s.storage.DeleteSession(s.ctx, "s-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "s-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestGetSessionsForSeed() {
	_ = s.storage.SaveSession(s.ctx, newSession("s-2", "2026-01-01"))
	_ = s.storage.SaveSession(s.ctx, newSession("s-1", "2026-01-01"))
	_ = s.storage.SaveSession(s.ctx, newSession("s-3", "2026-01-02"))

	sessions, err := s.storage.GetSessionsForSeed(s.ctx, "2026-01-01")
	s.Require().NoError(err)
	s.Require().Len(sessions, 2)
	s.Equal(model.SessionID("s-1"), sessions[0].ID)
	s.Equal(model.SessionID("s-2"), sessions[1].ID)
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}
