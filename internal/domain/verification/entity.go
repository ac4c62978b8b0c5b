package verification

// ExpertisePoints breaks down the points earned per skill.
type ExpertisePoints struct {
	Analysis     int `json:"analysis"`
	Research     int `json:"research"`
	Verification int `json:"verification"`
}

// Verification is a fact-checked claim plus gamification fields.
type Verification struct {
	ID                  string          `json:"id"`
	ThreatID            string          `json:"threatId,omitempty"`
	Claim               string          `json:"claim"`
	UserID              string          `json:"userId"`
	Timestamp           string          `json:"timestamp"`
	PointsEarned        int             `json:"pointsEarned"`
	Processed           bool            `json:"processed"`
	Verdict             string          `json:"verdict"`
	Confidence          int             `json:"confidence"`
	Reasoning           string          `json:"reasoning"`
	SupportingEvidence  []string        `json:"supportingEvidence"`
	ChallengingEvidence []string        `json:"challengingEvidence"`
	KeyInsights         []string        `json:"keyInsights"`
	EvidenceQuality     string          `json:"evidenceQuality"`
	SourceCredibility   string          `json:"sourceCredibility"`
	Sources             []string        `json:"sources"`
	NewUserLevel        string          `json:"newUserLevel"`
	Achievements        []string        `json:"achievements"`
	LeaderboardPosition int             `json:"leaderboardPosition"`
	ExpertisePoints     ExpertisePoints `json:"expertisePoints"`
}

// UserStats is the summary block returned alongside a verification.
type UserStats struct {
	PointsEarned    int      `json:"pointsEarned"`
	NewLevel        string   `json:"newLevel"`
	Achievements    []string `json:"achievements"`
	LeaderboardRank int      `json:"leaderboardRank"`
}
