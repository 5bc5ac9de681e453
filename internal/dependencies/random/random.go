package random

import (
	"golang.org/x/crypto/blake2b"
	"lukechampine.com/frand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// Source hands out a deterministic Random for a seed string
type Source interface {
	ForSeed(seed string) Random
}

// CryptoRandom implements Random with frand's process-wide generator, which
// reseeds itself from the OS
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return frand.Intn(n)
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	return randomString(r, length, alphabet)
}

// SeededRandom is a deterministic ChaCha-based generator. The same seed string always
// produces the same sequence, which is what makes a daily board reproducible.
// Not safe for concurrent use.
type SeededRandom struct {
	rng *frand.RNG
}

// NewSeeded creates a SeededRandom from an arbitrary seed string
func NewSeeded(seed string) *SeededRandom {
	key := blake2b.Sum256([]byte(seed))
	return &SeededRandom{rng: frand.NewCustom(key[:], 1024, 12)}
}

// Intn returns a deterministic int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// String generates a deterministic string of the given length from the given alphabet
func (r *SeededRandom) String(length int, alphabet string) string {
	return randomString(r, length, alphabet)
}

// SeededSource implements Source with SeededRandom
type SeededSource struct{}

// NewSource creates a SeededSource
func NewSource() *SeededSource {
	return &SeededSource{}
}

// ForSeed returns a fresh SeededRandom for the seed
func (s *SeededSource) ForSeed(seed string) Random {
	return NewSeeded(seed)
}

func randomString(r Random, length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
