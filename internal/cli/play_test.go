package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/frogfen/internal/factory"
	"github.com/mcoot/frogfen/internal/model"
)

type PlaySuite struct {
	suite.Suite
	app *factory.TestApp
	ctx context.Context
	out *bytes.Buffer
}

func TestPlaySuite(t *testing.T) {
	suite.Run(t, new(PlaySuite))
}

func (s *PlaySuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.ctx = context.Background()
	s.out = &bytes.Buffer{}
	s.Require().NoError(s.app.LoadTestDictionary())
	_, err := s.app.SaveFixtureSession(s.ctx, "LOCAL")
	s.Require().NoError(err)
}

func (s *PlaySuite) play(lines ...string) {
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	s.Require().NoError(RunPlay(s.ctx, s.app.GameController, "LOCAL", in, s.out))
}

func (s *PlaySuite) session() *model.Session {
	session, err := s.app.GameController.GetSession(s.ctx, "LOCAL")
	s.Require().NoError(err)
	return session
}

func (s *PlaySuite) TestShowsSessionAndHelp() {
	s.play("quit")

	s.Contains(s.out.String(), "Session LOCAL (seed fixture)")
	s.Contains(s.out.String(), "Turn 1 of 3. Score: 0")
	s.Contains(s.out.String(), "Commands:")
}

func (s *PlaySuite) TestPlaceAndSubmit() {
	s.play("place 1 2 4", "submit", "quit")

	s.Contains(s.out.String(), "Accepted: +6")
	s.Contains(s.out.String(), "CATS: 6 x 1 = 6")

	session := s.session()
	s.Equal(1, session.Turn.Number)
	s.Equal(6, session.Turn.Score)
}

func (s *PlaySuite) TestRejectionKeepsPlaying() {
	s.play("p 3 2 4", "s", "u 2 4", "p 1 2 4", "s", "q")

	s.Contains(s.out.String(), "Rejected: invalid word: CATX")
	s.Contains(s.out.String(), "Accepted: +6")
	s.Equal(1, s.session().Turn.Number)
}

func (s *PlaySuite) TestReset() {
	s.play("place 1 2 4", "place 2 3 4", "reset", "quit")

	session := s.session()
	s.Empty(session.Board.PlacedPositions())
	s.Empty(session.Rack.OnBoard())
}

func (s *PlaySuite) TestBadCommands() {
	s.play("dance", "place 1 2", "place one 2 4", "unplace 0 0", "quit")

	s.Contains(s.out.String(), `unknown command "dance"`)
	s.Contains(s.out.String(), "usage: place <tile> <row> <col>")
	s.Contains(s.out.String(), "invalid tile")
	s.Contains(s.out.String(), "Error: cell does not hold a tile placed this turn")
}

func (s *PlaySuite) TestStopsAtGameOver() {
	session := s.session()
	session.Turn.Number = 2
	s.Require().NoError(s.app.Storage.SaveSession(s.ctx, session))

	// Commands after the final move are never read
	s.play("place 1 2 4", "submit", "place 2 1 4")

	s.Contains(s.out.String(), "Game over. Final score: 6")
	s.True(s.session().Turn.IsOver())
	s.Len(s.session().Rack.OnBoard(), 0)
}

func (s *PlaySuite) TestEndOfInput() {
	s.play("board")

	s.Contains(s.out.String(), "#3")
}
