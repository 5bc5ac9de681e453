package model

import "math/big"

// Origin records how a letter came to occupy a cell
type Origin string

const (
	OriginEmpty  Origin = "empty"  // No tile
	OriginSeed   Origin = "seed"   // Pre-filled at board generation, immutable
	OriginPlaced Origin = "placed" // Placed this turn, still revertible
	OriginLocked Origin = "locked" // Placed in a prior turn, immutable
)

// IsFixed returns true for origins that can never change again
func (o Origin) IsFixed() bool {
	return o == OriginSeed || o == OriginLocked
}

// BonusKind distinguishes letter multipliers from word multipliers
type BonusKind string

const (
	BonusLetter BonusKind = "letter"
	BonusWord   BonusKind = "word"
)

// Bonus is a multiplier attached to a cell at board generation
type Bonus struct {
	Kind       BonusKind `json:"kind" yaml:"kind"`
	Multiplier *big.Rat  `json:"multiplier" yaml:"multiplier"`
}

// Label returns a short display label such as "1.5xW" or "3xL"
func (b *Bonus) Label() string {
	suffix := "L"
	if b.Kind == BonusWord {
		suffix = "W"
	}
	return RatString(b.Multiplier) + "x" + suffix
}

// Cell is one grid position
type Cell struct {
	Letter rune   `json:"letter,omitempty"` // 0 when empty
	Origin Origin `json:"origin"`
	Bonus  *Bonus `json:"bonus,omitempty"`
}

// IsEmpty returns true if no tile occupies the cell
func (c Cell) IsEmpty() bool {
	return c.Origin == OriginEmpty || c.Origin == ""
}

// RatString formats a rational compactly: integers as "2", terminating decimals as
// "1.5", anything else as "a/b"
func RatString(r *big.Rat) string {
	if r == nil {
		return "1"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	for prec := 1; prec <= 4; prec++ {
		s := r.FloatString(prec)
		check, ok := new(big.Rat).SetString(s)
		if ok && check.Cmp(r) == 0 {
			return s
		}
	}
	return r.RatString()
}
