package scoring

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubRandom always returns the same values so formulas can be checked exactly.
type stubRandom struct {
	n int
	f float64
}

func (s stubRandom) IntN(n int) int {
	if s.n >= n {
		return n - 1
	}
	return s.n
}
func (s stubRandom) Float64() float64 { return s.f }

func TestSimulationConfidenceBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		live := SimulationConfidence(r, true)
		assert.GreaterOrEqual(t, live, 75)
		assert.LessOrEqual(t, live, 94)

		fb := SimulationConfidence(r, false)
		assert.GreaterOrEqual(t, fb, 60)
		assert.LessOrEqual(t, fb, 74)
	}
}

func TestValidationPoints(t *testing.T) {
	zero := stubRandom{}
	assert.Equal(t, 8, ValidationPoints(zero, "credible", ""))
	assert.Equal(t, 5, ValidationPoints(zero, "not_credible", ""))

	long := "this reasoning is deliberately longer than fifty characters total"
	assert.Equal(t, 11, ValidationPoints(zero, "credible", long))
	assert.Equal(t, 15, ValidationPoints(stubRandom{n: 4}, "credible", long))
}

func TestValidatorLevelThresholds(t *testing.T) {
	assert.Equal(t, 1, ValidatorLevel(0))
	assert.Equal(t, 1, ValidatorLevel(24))
	assert.Equal(t, 2, ValidatorLevel(25))
	assert.Equal(t, 3, ValidatorLevel(50))
	assert.Equal(t, 4, ValidatorLevel(75))
	assert.Equal(t, 5, ValidatorLevel(100))
}

func TestValidationAchievements(t *testing.T) {
	got := ValidationAchievements(stubRandom{f: 0.9}, 12, "credible")
	assert.Equal(t, []string{"🎯 Sharp Analyst", "🔍 Truth Seeker", "⭐ Community Hero"}, got)

	got = ValidationAchievements(stubRandom{f: 0.1}, 5, "not_credible")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestCredibilityScore(t *testing.T) {
	assert.Equal(t, 75, CredibilityScore(stubRandom{}, "credible"))
	assert.Equal(t, 89, CredibilityScore(stubRandom{n: 99}, "credible"))
	assert.Equal(t, 15, CredibilityScore(stubRandom{}, "not_credible"))
	assert.Equal(t, 44, CredibilityScore(stubRandom{n: 99}, "not_credible"))
}

func TestVerificationPoints(t *testing.T) {
	zero := stubRandom{}
	assert.Equal(t, 20, VerificationPoints(zero, 75, "short"))
	assert.Equal(t, 25, VerificationPoints(zero, 83, "short"))

	claim := string(make([]byte, 101))
	assert.Equal(t, 30, VerificationPoints(zero, 83, claim))
	assert.Equal(t, 37, VerificationPoints(stubRandom{n: 7}, 83, claim))
}

func TestAnalystLevel(t *testing.T) {
	assert.Equal(t, "Citizen Analyst", AnalystLevel(14))
	assert.Equal(t, "Junior Validator", AnalystLevel(15))
	assert.Equal(t, "Verified Analyst", AnalystLevel(25))
	assert.Equal(t, "Senior Validator", AnalystLevel(35))
	assert.Equal(t, "Expert Analyst", AnalystLevel(50))
}

func TestVerificationAchievements(t *testing.T) {
	got := VerificationAchievements(stubRandom{f: 0.99}, 31, 85, "High", 5)
	assert.Len(t, got, 5)

	got = VerificationAchievements(stubRandom{f: 0.1}, 20, 75, "Medium", 3)
	assert.Empty(t, got)
}

func TestExpertiseBounds(t *testing.T) {
	a, r, v := Expertise(stubRandom{})
	assert.Equal(t, []int{10, 15, 20}, []int{a, r, v})
	a, r, v = Expertise(stubRandom{n: 1000})
	assert.Equal(t, []int{34, 34, 49}, []int{a, r, v})
}

func TestThreatsFoundNeverZero(t *testing.T) {
	assert.Equal(t, 1, ThreatsFound(stubRandom{}, 10))
	assert.Equal(t, 10, ThreatsFound(stubRandom{n: 50}, 10))
}

func TestPick(t *testing.T) {
	opts := []string{"a", "b", "c"}
	assert.Equal(t, "a", Pick(stubRandom{}, opts))
	assert.Equal(t, "c", Pick(stubRandom{n: 9}, opts))
}
