package verification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bryanwahyu/global-sentinel/internal/application"
	"github.com/bryanwahyu/global-sentinel/internal/domain/document"
	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	"github.com/bryanwahyu/global-sentinel/internal/domain/scoring"
	domain "github.com/bryanwahyu/global-sentinel/internal/domain/verification"
)

// PoweredBy labels every verification response.
const PoweredBy = "Global Sentinel Intelligence Engine (Demo Mode)"

// Service fact-checks claims and scores the analyst.
type Service struct {
	Verifier intel.Verifier
	Store    document.Store
	Rand     scoring.Random
	Clock    application.Clock
	Log      *zap.Logger
}

type VerifyCommand struct {
	ThreatID string `json:"threatId"`
	Claim    string `json:"claim"`
	UserID   string `json:"userId"`
}

type VerifyResult struct {
	Verification *domain.Verification `json:"verification"`
	UserStats    domain.UserStats     `json:"userStats"`
}

func (s *Service) Verify(ctx context.Context, cmd VerifyCommand) (*VerifyResult, error) {
	if strings.TrimSpace(cmd.Claim) == "" {
		return nil, application.BadRequest("Claim is required for verification")
	}
	log := s.logger()
	log.Info("verifying claim", zap.String("claim", intel.Preview(cmd.Claim, 50)))

	a, err := s.Verifier.Verify(ctx, cmd.Claim)
	if err != nil {
		return nil, fmt.Errorf("verification analysis: %w", err)
	}

	r := s.random()
	now := s.now()
	userID := cmd.UserID
	if userID == "" {
		userID = fmt.Sprintf("citizen_%d", now.UnixMilli())
	}
	points := scoring.VerificationPoints(r, a.Confidence, cmd.Claim)
	analysis, research, verification := scoring.Expertise(r)

	v := &domain.Verification{
		ID:                  uuid.NewString(),
		ThreatID:            cmd.ThreatID,
		Claim:               cmd.Claim,
		UserID:              userID,
		Timestamp:           intel.FormatTimestamp(now),
		PointsEarned:        points,
		Processed:           true,
		Verdict:             a.Verdict,
		Confidence:          a.Confidence,
		Reasoning:           a.Reasoning,
		SupportingEvidence:  a.SupportingEvidence,
		ChallengingEvidence: a.ChallengingEvidence,
		KeyInsights:         a.KeyInsights,
		EvidenceQuality:     a.EvidenceQuality,
		SourceCredibility:   a.SourceCredibility,
		Sources:             a.Sources,
		NewUserLevel:        scoring.AnalystLevel(points),
		Achievements: scoring.VerificationAchievements(r, points, a.Confidence,
			a.EvidenceQuality, len(a.Sources)),
		LeaderboardPosition: scoring.VerificationLeaderboard(r),
		ExpertisePoints: domain.ExpertisePoints{
			Analysis:     analysis,
			Research:     research,
			Verification: verification,
		},
	}

	application.Persist(ctx, s.Store, log, document.CollectionVerifications, v.ID, v)
	log.Info("verification completed",
		zap.String("verdict", v.Verdict), zap.Int("points", points))

	return &VerifyResult{
		Verification: v,
		UserStats: domain.UserStats{
			PointsEarned:    points,
			NewLevel:        v.NewUserLevel,
			Achievements:    v.Achievements,
			LeaderboardRank: v.LeaderboardPosition,
		},
	}, nil
}

func (s *Service) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Service) random() scoring.Random {
	if s.Rand == nil {
		return scoring.SystemRandom{}
	}
	return s.Rand
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}
