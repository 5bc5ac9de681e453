package scoring

import (
	"fmt"
	"math/big"

	"github.com/mcoot/frogfen/internal/model"
	"github.com/mcoot/frogfen/internal/rules"
)

// Service scores words under the board's bonus multipliers
type Service struct {
	values rules.LetterValues
}

// New creates a new ScoringService
func New(values rules.LetterValues) *Service {
	return &Service{
		values: values,
	}
}

// LetterValue returns the point value of a letter. Unknown letters panic: every
// letter on the board came from the rules' own distribution.
func (s *Service) LetterValue(letter rune) int {
	v, ok := s.values.Value(letter)
	if !ok {
		panic(fmt.Sprintf("no value for letter %q", letter))
	}
	return v
}

// ScoreWord scores one word. Bonuses only count on cells placed this turn.
func (s *Service) ScoreWord(word model.Word) model.WordScore {
	letterTotal := new(big.Rat)
	wordMultiplier := big.NewRat(1, 1)

	for _, cell := range word.Cells {
		value := new(big.Rat).SetInt64(int64(s.LetterValue(cell.Letter)))
		if cell.Origin == model.OriginPlaced && cell.Bonus != nil {
			switch cell.Bonus.Kind {
			case model.BonusLetter:
				value.Mul(value, cell.Bonus.Multiplier)
			case model.BonusWord:
				wordMultiplier.Mul(wordMultiplier, cell.Bonus.Multiplier)
			}
		}
		letterTotal.Add(letterTotal, value)
	}

	return model.WordScore{
		Word:           word.Text,
		Start:          word.Start,
		Horizontal:     word.Horizontal,
		LetterTotal:    letterTotal,
		WordMultiplier: wordMultiplier,
		Points:         Round(new(big.Rat).Mul(letterTotal, wordMultiplier)),
	}
}

// ScoreTurn scores each word and returns the breakdowns with their sum
func (s *Service) ScoreTurn(words []model.Word) ([]model.WordScore, int) {
	scores := make([]model.WordScore, 0, len(words))
	total := 0
	for _, w := range words {
		score := s.ScoreWord(w)
		scores = append(scores, score)
		total += score.Points
	}
	return scores, total
}

// Round rounds to the nearest integer with halves away from zero
func Round(r *big.Rat) int {
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()

	// floor((2*|num| + den) / (2*den))
	twice := new(big.Int).Lsh(num, 1)
	twice.Add(twice, den)
	result := new(big.Int).Quo(twice, new(big.Int).Lsh(den, 1))

	if r.Sign() < 0 {
		result.Neg(result)
	}
	return int(result.Int64())
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreWord(word model.Word) model.WordScore
	ScoreTurn(words []model.Word) ([]model.WordScore, int)
}

var _ ServiceInterface = (*Service)(nil)
