package sigint

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bryanwahyu/global-sentinel/internal/application"
	domain "github.com/bryanwahyu/global-sentinel/internal/domain/sigint"
)

// Service runs the scrape test for a channel. Later collectors for the same
// channel replace earlier ones, so live collectors can override simulated ones.
type Service struct {
	collectors map[domain.Channel]domain.Collector
	log        *zap.Logger
}

func NewService(log *zap.Logger, collectors ...domain.Collector) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	m := make(map[domain.Channel]domain.Collector, len(collectors))
	for _, c := range collectors {
		m[c.Channel()] = c
	}
	return &Service{collectors: m, log: log}
}

func (s *Service) Test(ctx context.Context, ch domain.Channel) (*domain.Report, error) {
	c, ok := s.collectors[ch]
	if !ok {
		return nil, fmt.Errorf("sigint channel %q: %w", ch, application.ErrNotFound)
	}
	s.log.Info("testing scraper", zap.String("channel", string(ch)))
	rep, err := c.Collect(ctx)
	if err != nil {
		s.log.Error("scraping test failed", zap.String("channel", string(ch)), zap.Error(err))
		return nil, fmt.Errorf("%s collector: %w", ch, err)
	}
	rep.Channel = ch
	s.log.Info("scraping test completed",
		zap.String("channel", string(ch)),
		zap.Int("threats_found", rep.ThreatsFound),
		zap.Bool("live", rep.Live))
	return rep, nil
}
