package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/frogfen/internal/model"
)

//go:embed default.yaml
var defaultRulesYAML []byte

// LetterValues maps an uppercase letter to its point value
type LetterValues map[rune]int

// Value returns the point value of a letter (case-insensitive) and whether it is known
func (lv LetterValues) Value(letter rune) (int, bool) {
	v, ok := lv[unicode.ToUpper(letter)]
	return v, ok
}

// BonusSpec describes how many cells of one bonus type a generated board gets
type BonusSpec struct {
	Kind       model.BonusKind `yaml:"kind"`
	Multiplier string          `yaml:"multiplier"` // "2", "1.5" or "3/2"
	Count      int             `yaml:"count"`
}

// Rat parses the multiplier as an exact rational
func (b BonusSpec) Rat() (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(b.Multiplier))
	if !ok {
		return nil, fmt.Errorf("invalid bonus multiplier %q", b.Multiplier)
	}
	return r, nil
}

// SeedWordSpec controls starter word placement
type SeedWordSpec struct {
	Count     int `yaml:"count"`
	MaxLength int `yaml:"max_length"`
	Attempts  int `yaml:"attempts"`
}

// Rules is the static configuration of a game
type Rules struct {
	BoardSize    int            `yaml:"board_size"`
	RackSize     int            `yaml:"rack_size"`
	MaxTurns     int            `yaml:"max_turns"`
	LetterValues LetterValues   `yaml:"-"`
	RawValues    map[string]int `yaml:"letter_values"`
	Distribution string         `yaml:"distribution"`
	Bonuses      []BonusSpec    `yaml:"bonuses"`
	SeedWords    SeedWordSpec   `yaml:"seed_words"`
}

// Default returns the embedded default rules
func Default() *Rules {
	r, err := Parse(defaultRulesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded rules are invalid: %v", err))
	}
	return r
}

// Load reads rules from path, falling back to the embedded defaults when path is empty
func Load(path string) (*Rules, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates a YAML rules document
func Parse(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, err
	}

	r.LetterValues = make(LetterValues, len(r.RawValues))
	for k, v := range r.RawValues {
		letters := []rune(strings.ToUpper(k))
		if len(letters) != 1 || letters[0] < 'A' || letters[0] > 'Z' {
			return nil, fmt.Errorf("invalid letter %q in letter_values", k)
		}
		r.LetterValues[letters[0]] = v
	}
	r.Distribution = strings.ToUpper(r.Distribution)

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the rules for internal consistency
func (r *Rules) Validate() error {
	var errs []error
	if r.BoardSize < 2 {
		errs = append(errs, fmt.Errorf("board_size must be at least 2, got %d", r.BoardSize))
	}
	if r.RackSize < 1 {
		errs = append(errs, fmt.Errorf("rack_size must be positive, got %d", r.RackSize))
	}
	if r.MaxTurns < 1 {
		errs = append(errs, fmt.Errorf("max_turns must be positive, got %d", r.MaxTurns))
	}
	if r.Distribution == "" {
		errs = append(errs, errors.New("distribution must not be empty"))
	}
	for _, letter := range r.Distribution {
		if _, ok := r.LetterValues[letter]; !ok {
			errs = append(errs, fmt.Errorf("distribution letter %q has no value", letter))
			break
		}
	}

	bonusCells := 0
	for _, b := range r.Bonuses {
		if b.Kind != model.BonusLetter && b.Kind != model.BonusWord {
			errs = append(errs, fmt.Errorf("invalid bonus kind %q", b.Kind))
		}
		rat, err := b.Rat()
		if err != nil {
			errs = append(errs, err)
		} else if rat.Sign() <= 0 {
			errs = append(errs, fmt.Errorf("bonus multiplier %q must be positive", b.Multiplier))
		}
		bonusCells += b.Count
	}
	if bonusCells > r.BoardSize*r.BoardSize {
		errs = append(errs, fmt.Errorf("%d bonus cells do not fit on a %dx%d board", bonusCells, r.BoardSize, r.BoardSize))
	}

	return errors.Join(errs...)
}
