package sigint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	domain "github.com/bryanwahyu/global-sentinel/internal/domain/sigint"
)

const maxPerFeed = 50

// RSSCollector parses configured feeds and counts threat-matching items.
type RSSCollector struct {
	feeds   []Source
	parser  *gofeed.Parser
	timeout time.Duration
	log     *zap.Logger
}

func NewRSSCollector(feeds []Source, timeout time.Duration, log *zap.Logger) *RSSCollector {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &RSSCollector{feeds: feeds, parser: gofeed.NewParser(), timeout: timeout, log: log}
}

func (c *RSSCollector) Channel() domain.Channel { return domain.ChannelRSS }

// Collect succeeds when at least one feed parses; the others are logged and skipped.
func (c *RSSCollector) Collect(ctx context.Context) (*domain.Report, error) {
	if len(c.feeds) == 0 {
		return nil, errors.New("no rss feeds configured")
	}
	rep := &domain.Report{Channel: domain.ChannelRSS, Sources: []string{}, Live: true}
	var errs []error
	for _, f := range c.feeds {
		n, err := c.parseFeed(ctx, f)
		if err != nil {
			c.log.Warn("failed to parse feed", zap.String("url", f.URL), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", f.URL, err))
			continue
		}
		rep.ThreatsFound += n
		rep.Sources = append(rep.Sources, f.label()+" RSS")
		c.log.Debug("parsed feed", zap.String("url", f.URL), zap.Int("threats", n))
	}
	if len(rep.Sources) == 0 {
		return nil, errors.Join(errs...)
	}
	return rep, nil
}

func (c *RSSCollector) parseFeed(ctx context.Context, f Source) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	feed, err := c.parser.ParseURLWithContext(f.URL, ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for i, item := range feed.Items {
		if i >= maxPerFeed {
			break
		}
		if intel.MatchesThreat(item.Title + " " + item.Description) {
			n++
		}
	}
	return n, nil
}
