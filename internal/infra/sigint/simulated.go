// Package sigint holds the scrape collectors behind the SIGINT test endpoints.
package sigint

import (
	"context"
	"slices"

	"github.com/bryanwahyu/global-sentinel/internal/domain/scoring"
	domain "github.com/bryanwahyu/global-sentinel/internal/domain/sigint"
)

type simulatedProfile struct {
	max     int
	sources []string
}

var profiles = map[domain.Channel]simulatedProfile{
	domain.ChannelRSS:    {max: 10, sources: []string{"BBC RSS", "Reuters RSS", "AP News RSS"}},
	domain.ChannelAPI:    {max: 8, sources: []string{"GDELT API", "World Bank API", "WHO API"}},
	domain.ChannelHTML:   {max: 6, sources: []string{"News Websites", "Government Sites", "Research Portals"}},
	domain.ChannelReddit: {max: 12, sources: []string{"r/worldnews", "r/geopolitics", "r/security"}},
}

// Simulated reports a random threat count against a fixed source list.
type Simulated struct {
	channel domain.Channel
	rand    scoring.Random
}

func NewSimulated(ch domain.Channel, r scoring.Random) *Simulated {
	if r == nil {
		r = scoring.SystemRandom{}
	}
	return &Simulated{channel: ch, rand: r}
}

// SimulatedAll returns one simulated collector per channel.
func SimulatedAll(r scoring.Random) []domain.Collector {
	return []domain.Collector{
		NewSimulated(domain.ChannelRSS, r),
		NewSimulated(domain.ChannelAPI, r),
		NewSimulated(domain.ChannelHTML, r),
		NewSimulated(domain.ChannelReddit, r),
	}
}

func (s *Simulated) Channel() domain.Channel { return s.channel }

func (s *Simulated) Collect(ctx context.Context) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := profiles[s.channel]
	if !ok {
		p = simulatedProfile{max: 5, sources: []string{s.channel.Label()}}
	}
	return &domain.Report{
		Channel:      s.channel,
		ThreatsFound: scoring.ThreatsFound(s.rand, p.max),
		Sources:      slices.Clone(p.sources),
	}, nil
}
