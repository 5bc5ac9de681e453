package scoring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/frogfen/internal/model"
	"github.com/mcoot/frogfen/internal/rules"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(rules.Default().LetterValues)
}

// Helper to build a word from letters, all placed this turn
func placedWord(text string) model.Word {
	w := model.Word{Text: text, Horizontal: true}
	for _, r := range text {
		w.Cells = append(w.Cells, model.Cell{Letter: r, Origin: model.OriginPlaced})
	}
	return w
}

func bonus(kind model.BonusKind, num, den int64) *model.Bonus {
	return &model.Bonus{Kind: kind, Multiplier: big.NewRat(num, den)}
}

// Plain scoring tests

func (s *ServiceSuite) TestScorePlainWord() {
	score := s.service.ScoreWord(placedWord("CAT"))

	s.Equal(5, score.Points)
	s.Equal(0, score.LetterTotal.Cmp(big.NewRat(5, 1)))
	s.Equal(0, score.WordMultiplier.Cmp(big.NewRat(1, 1)))
	s.Equal("CAT: 5 x 1 = 5", score.Breakdown())
}

func (s *ServiceSuite) TestScoreHighValueLetters() {
	s.Equal(22, s.service.ScoreWord(placedWord("QUIZ")).Points)
}

// Letter bonus tests

func (s *ServiceSuite) TestLetterBonusOnPlacedCell() {
	w := placedWord("CAT")
	w.Cells[1].Bonus = bonus(model.BonusLetter, 3, 1)

	score := s.service.ScoreWord(w)
	s.Equal(7, score.Points) // 3 + 1*3 + 1
}

func (s *ServiceSuite) TestLetterBonusIgnoredOnSeedCell() {
	w := placedWord("CAT")
	w.Cells[1].Origin = model.OriginSeed
	w.Cells[1].Bonus = bonus(model.BonusLetter, 3, 1)

	s.Equal(5, s.service.ScoreWord(w).Points)
}

func (s *ServiceSuite) TestLetterBonusIgnoredOnLockedCell() {
	w := placedWord("CAT")
	w.Cells[0].Origin = model.OriginLocked
	w.Cells[0].Bonus = bonus(model.BonusLetter, 5, 1)

	s.Equal(5, s.service.ScoreWord(w).Points)
}

// Word bonus tests

func (s *ServiceSuite) TestWordBonus() {
	w := placedWord("CAT")
	w.Cells[2].Bonus = bonus(model.BonusWord, 2, 1)

	score := s.service.ScoreWord(w)
	s.Equal(10, score.Points)
	s.Equal("CAT: 5 x 2 = 10", score.Breakdown())
}

func (s *ServiceSuite) TestWordBonusesMultiply() {
	w := placedWord("CAT")
	w.Cells[0].Bonus = bonus(model.BonusWord, 2, 1)
	w.Cells[2].Bonus = bonus(model.BonusWord, 3, 2)

	score := s.service.ScoreWord(w)
	s.Equal(0, score.WordMultiplier.Cmp(big.NewRat(3, 1)))
	s.Equal(15, score.Points)
}

func (s *ServiceSuite) TestWordBonusIgnoredOnSeedCell() {
	w := placedWord("CAT")
	w.Cells[0].Origin = model.OriginSeed
	w.Cells[0].Bonus = bonus(model.BonusWord, 2, 1)

	s.Equal(5, s.service.ScoreWord(w).Points)
}

func (s *ServiceSuite) TestLetterAndWordBonusTogether() {
	w := placedWord("CAT")
	w.Cells[0].Bonus = bonus(model.BonusLetter, 2, 1)
	w.Cells[1].Bonus = bonus(model.BonusWord, 2, 1)

	// (3*2 + 1 + 1) * 2
	s.Equal(16, s.service.ScoreWord(w).Points)
}

// Rounding tests

func (s *ServiceSuite) TestFractionalMultiplierRoundsHalfUp() {
	w := placedWord("CAT")
	w.Cells[0].Bonus = bonus(model.BonusWord, 3, 2)

	// 5 * 1.5 = 7.5
	s.Equal(8, s.service.ScoreWord(w).Points)
}

func (s *ServiceSuite) TestTenPercentWordBonus() {
	w := placedWord("CAT")
	w.Cells[0].Bonus = bonus(model.BonusWord, 11, 10)

	// 5 * 1.1 = 5.5
	s.Equal(6, s.service.ScoreWord(w).Points)

	// 4 * 1.1 = 4.4
	at := placedWord("DOT")
	at.Cells[0].Bonus = bonus(model.BonusWord, 11, 10)
	s.Equal(4, s.service.ScoreWord(at).Points)
}

func (s *ServiceSuite) TestRound() {
	cases := []struct {
		num, den int64
		want     int
	}{
		{0, 1, 0},
		{5, 1, 5},
		{15, 2, 8},
		{22, 5, 4},
		{23, 5, 5},
		{-15, 2, -8},
		{-22, 5, -4},
		{1, 3, 0},
		{2, 3, 1},
	}
	for _, tc := range cases {
		s.Equal(tc.want, Round(big.NewRat(tc.num, tc.den)), "%d/%d", tc.num, tc.den)
	}
}

// Turn scoring tests

func (s *ServiceSuite) TestScoreTurnSumsWords() {
	scores, total := s.service.ScoreTurn([]model.Word{placedWord("CAT"), placedWord("AT")})

	s.Len(scores, 2)
	s.Equal(7, total)
	s.Equal("AT", scores[1].Word)
}

func (s *ServiceSuite) TestScoreTurnEmpty() {
	scores, total := s.service.ScoreTurn(nil)
	s.Empty(scores)
	s.Equal(0, total)
}

func (s *ServiceSuite) TestUnknownLetterPanics() {
	s.Panics(func() {
		s.service.ScoreWord(placedWord("A1"))
	})
}
