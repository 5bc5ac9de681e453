package redis

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/frogfen/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func newSession(id model.SessionID, seed string) *model.Session {
	board := model.NewBoard(5)
	board.Seed(model.Position{Row: 2, Col: 1}, 'C')
	board.SetBonus(model.Position{Row: 0, Col: 0}, &model.Bonus{Kind: model.BonusWord, Multiplier: big.NewRat(11, 10)})
	board.SetBonus(model.Position{Row: 4, Col: 4}, &model.Bonus{Kind: model.BonusLetter, Multiplier: big.NewRat(3, 1)})
	_ = board.Place(model.Position{Row: 2, Col: 2}, 'A')
	return &model.Session{
		ID:    id,
		Seed:  seed,
		Board: board,
		Rack: model.Rack{Tiles: []model.Tile{
			{ID: 1, Letter: 'A', Points: 1, Location: model.TileLocation{OnBoard: true, Position: model.Position{Row: 2, Col: 2}}},
			{ID: 2, Letter: 'T', Points: 1, Location: model.TileLocation{Slot: 1}},
		}},
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
	s.Equal(session.Seed, retrieved.Seed)
	s.Equal(session.Turn, retrieved.Turn)
	s.Equal(session.Rack, retrieved.Rack)
	s.True(session.CreatedAt.Equal(retrieved.CreatedAt))
	s.True(session.Board.Equal(retrieved.Board), "board should survive a round trip")
}

func (s *StorageSuite) TestBonusMultiplierSurvivesRoundTrip() {
	_ = s.storage.SaveSession(s.ctx, newSession("s-1", "seed"))

	retrieved, err := s.storage.GetSession(s.ctx, "s-1")
	s.Require().NoError(err)

	bonus := retrieved.Board.Cell(model.Position{Row: 0, Col: 0}).Bonus
	s.Require().NotNil(bonus)
	s.Equal(model.BonusWord, bonus.Kind)
	s.Equal(0, bonus.Multiplier.Cmp(big.NewRat(11, 10)))
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
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

	sessions, err := s.storage.GetSessionsForSeed(s.ctx, "seed")
	s.Require().NoError(err)
	s.Empty(sessions)
}

func (s *StorageSuite) TestDeleteSessionNotFoundIsNoop() {
	err := s.storage.DeleteSession(s.ctx, "nonexistent")
	s.NoError(err)
}

func (s *StorageSuite) TestSessionTTL() {
	session := newSession("s-1", "seed")
	_ = s.storage.SaveSession(s.ctx, session)

	s.True(s.mini.TTL(sessionKey(session.ID)) > 0, "Session should have TTL")
	s.True(s.mini.TTL(sessionsForSeedIndexKey(session.Seed)) > 0, "Seed index should have TTL")
}

func (s *StorageSuite) TestSessionExpires() {
	_ = s.storage.SaveSession(s.ctx, newSession("s-1", "seed"))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "s-1")
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

func (s *StorageSuite) TestGetSessionsForSeedEmpty() {
	sessions, err := s.storage.GetSessionsForSeed(s.ctx, "nonexistent")
	s.Require().NoError(err)
	s.Empty(sessions)
}

func (s *StorageSuite) TestGetSessionsForSeedSkipsExpired() {
	_ = s.storage.SaveSession(s.ctx, newSession("s-1", "seed"))
	_ = s.storage.SaveSession(s.ctx, newSession("s-2", "seed"))
	s.mini.Del(sessionKey("s-1"))

	sessions, err := s.storage.GetSessionsForSeed(s.ctx, "seed")
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)
	s.Equal(model.SessionID("s-2"), sessions[0].ID)
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words, retrieved) // Order may differ (SET)
}

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveDictionaryWordsReplacesExisting() {
	words1 := []string{"apple", "banana"}
	words2 := []string{"cherry", "date", "elderberry"}

	_ = s.storage.SaveDictionaryWords(s.ctx, words1)
	_ = s.storage.SaveDictionaryWords(s.ctx, words2)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words2, retrieved)
}

func (s *StorageSuite) TestDictionaryNoTTL() {
	words := []string{"apple"}
	_ = s.storage.SaveDictionaryWords(s.ctx, words)

	ttl := s.mini.TTL(dictionaryKey())
	s.Equal(time.Duration(0), ttl, "Dictionary should not have TTL")
}
