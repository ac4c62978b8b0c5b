// Package scoring holds the confidence, points and achievement formulas.
// Every value is a fixed base plus a bounded random offset.
package scoring

import "github.com/bryanwahyu/global-sentinel/internal/domain/validation"

// SimulationConfidence is 75..94 for live analysis and 60..74 for the fallback.
func SimulationConfidence(r Random, live bool) int {
	if live {
		return between(r, 75, 20)
	}
	return between(r, 60, 15)
}

// ==== validation ====

// ValidationPoints: 8 for a credible vote, 5 otherwise, +3 for reasoning over 50 chars, +0..4.
func ValidationPoints(r Random, vote, reasoning string) int {
	base := 5
	if vote == validation.VoteCredible {
		base = 8
	}
	bonus := 0
	if len(reasoning) > 50 {
		bonus = 3
	}
	return base + bonus + r.IntN(5)
}

// CredibilityScore is 75..89 for credible votes and 15..44 otherwise.
func CredibilityScore(r Random, vote string) int {
	if vote == validation.VoteCredible {
		return between(r, 75, 15)
	}
	return between(r, 15, 30)
}

// ValidationConfidence is 70..89.
func ValidationConfidence(r Random) int {
	return between(r, 70, 20)
}

// Community synthesizes crowd statistics.
func Community(r Random) validation.Community {
	return validation.Community{
		TotalValidators: between(r, 25, 50),
		ConsensusLevel:  between(r, 60, 30),
		ExpertReviews:   between(r, 2, 5),
	}
}

// ValidatorLevel maps points to a 1..5 level.
func ValidatorLevel(points int) int {
	switch {
	case points >= 100:
		return 5
	case points >= 75:
		return 4
	case points >= 50:
		return 3
	case points >= 25:
		return 2
	default:
		return 1
	}
}

// ValidationAchievements awards badges for a single vote.
func ValidationAchievements(r Random, points int, vote string) []string {
	achievements := []string{}
	if points >= 10 {
		achievements = append(achievements, "🎯 Sharp Analyst")
	}
	if vote == validation.VoteCredible {
		achievements = append(achievements, "🔍 Truth Seeker")
	}
	if r.Float64() > 0.7 {
		achievements = append(achievements, "⭐ Community Hero")
	}
	return achievements
}

// ValidationLeaderboard is 5..24.
func ValidationLeaderboard(r Random) int {
	return between(r, 5, 20)
}

// ==== verification ====

// VerificationPoints: 15 + quality bonus (10 above 80 confidence, else 5) + 5 for claims over 100 chars + 0..7.
func VerificationPoints(r Random, confidence int, claim string) int {
	quality := 5
	if confidence > 80 {
		quality = 10
	}
	detail := 0
	if len(claim) > 100 {
		detail = 5
	}
	return 15 + quality + detail + r.IntN(8)
}

// AnalystLevel maps verification points to a title.
func AnalystLevel(points int) string {
	switch {
	case points >= 50:
		return "Expert Analyst"
	case points >= 35:
		return "Senior Validator"
	case points >= 25:
		return "Verified Analyst"
	case points >= 15:
		return "Junior Validator"
	default:
		return "Citizen Analyst"
	}
}

// VerificationAchievements awards badges based on points and analysis quality.
func VerificationAchievements(r Random, points, confidence int, evidenceQuality string, sourceCount int) []string {
	achievements := []string{}
	if points >= 30 {
		achievements = append(achievements, "🎯 Elite Intelligence Analyst")
	}
	if confidence >= 85 {
		achievements = append(achievements, "🔍 Truth Seeker Supreme")
	}
	if evidenceQuality == "High" {
		achievements = append(achievements, "📊 Evidence Master")
	}
	if r.Float64() > 0.6 {
		achievements = append(achievements, "⭐ Community Guardian")
	}
	if sourceCount >= 5 {
		achievements = append(achievements, "🌐 Source Network Expert")
	}
	return achievements
}

// VerificationLeaderboard is 3..17.
func VerificationLeaderboard(r Random) int {
	return between(r, 3, 15)
}

// Expertise returns analysis 10..34, research 15..34 and verification 20..49.
func Expertise(r Random) (analysis, research, verification int) {
	return between(r, 10, 25), between(r, 15, 20), between(r, 20, 30)
}

// ==== deep analysis / sigint ====

// LiveConfidence is 75..94, used when the live client answered.
func LiveConfidence(r Random) int {
	return between(r, 75, 20)
}

// ThreatsFound is 1..max.
func ThreatsFound(r Random, max int) int {
	return r.IntN(max) + 1
}
