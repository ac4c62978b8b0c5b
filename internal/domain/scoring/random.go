package scoring

import "math/rand/v2"

// Random is the subset of math/rand/v2 the scoring formulas need.
// *rand.Rand satisfies it, which keeps tests deterministic.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// SystemRandom uses the goroutine-safe package-level generator.
type SystemRandom struct{}

func (SystemRandom) IntN(n int) int   { return rand.IntN(n) }
func (SystemRandom) Float64() float64 { return rand.Float64() }

// between returns a value in [min, min+span).
func between(r Random, min, span int) int {
	return r.IntN(span) + min
}

// Pick returns a random element of options.
func Pick(r Random, options []string) string {
	return options[r.IntN(len(options))]
}
