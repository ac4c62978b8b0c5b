package validation

// Vote values accepted from citizens
const (
	VoteCredible    = "credible"
	VoteNotCredible = "not_credible"
)

// Community holds the synthesized crowd statistics shown next to a validation.
// The numbers are not aggregated from other users.
type Community struct {
	TotalValidators int `json:"totalValidators"`
	ConsensusLevel  int `json:"consensusLevel"`
	ExpertReviews   int `json:"expertReviews"`
}

// Validation is one citizen vote on a threat.
type Validation struct {
	ID               string    `json:"id"`
	ThreatID         string    `json:"threatId"`
	Vote             string    `json:"vote"`
	UserID           string    `json:"userId"`
	Reasoning        string    `json:"reasoning"`
	Timestamp        string    `json:"timestamp"`
	PointsEarned     int       `json:"pointsEarned"`
	CredibilityScore int       `json:"credibilityScore"`
	Processed        bool      `json:"processed"`
	Confidence       int       `json:"confidence"`
	Impact           []string  `json:"impact"`
	Community        Community `json:"community"`
}

// Result wraps the validation with the gamification fields.
type Result struct {
	Validation          *Validation `json:"validation"`
	UserPoints          int         `json:"userPoints"`
	NewUserLevel        int         `json:"newUserLevel"`
	Achievements        []string    `json:"achievements"`
	LeaderboardPosition int         `json:"leaderboardPosition"`
}
