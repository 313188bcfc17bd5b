// Package random implements the deterministic pseudo-random source that
// seeds every grid synthesis pass. It is intentionally a plain linear
// congruential generator: reproducibility matters here, security does not.
package random

// Numerical Recipes constants; the modulus is the natural uint32 wrap.
const (
	multiplier = 1664525
	increment  = 1013904223
)

// Source is a seedable linear congruential generator.
type Source struct {
	state uint32
}

func NewSource(seed uint32) *Source {
	return &Source{state: seed}
}

// Reset rewinds the generator to the given seed. A synthesis pass resets
// exactly once, before the first draw.
func (s *Source) Reset(seed uint32) {
	s.state = seed
}

// Next advances the generator and returns a value in [0, 1).
func (s *Source) Next() float64 {
	s.state = s.state*multiplier + increment
	return float64(s.state) / (1 << 32)
}

// Intn returns an integer in [0, n). It panics if n is not positive.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn with non-positive bound")
	}
	return int(s.Next() * float64(n))
}

// Uint8 returns a channel value in [0, 256).
func (s *Source) Uint8() uint8 {
	return uint8(s.Next() * 256)
}
