package sigint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	domain "github.com/bryanwahyu/global-sentinel/internal/domain/sigint"
)

const defaultMaxBytes = 2 << 20

// HTMLCollector fetches pages and counts headlines that match threat keywords.
type HTMLCollector struct {
	pages    []Source
	client   *http.Client
	maxBytes int64
	log      *zap.Logger
}

func NewHTMLCollector(pages []Source, timeout time.Duration, log *zap.Logger) *HTMLCollector {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &HTMLCollector{
		pages:    pages,
		client:   &http.Client{Timeout: timeout},
		maxBytes: defaultMaxBytes,
		log:      log,
	}
}

func (c *HTMLCollector) Channel() domain.Channel { return domain.ChannelHTML }

func (c *HTMLCollector) Collect(ctx context.Context) (*domain.Report, error) {
	if len(c.pages) == 0 {
		return nil, errors.New("no html pages configured")
	}
	rep := &domain.Report{Channel: domain.ChannelHTML, Sources: []string{}, Live: true}
	var errs []error
	for _, p := range c.pages {
		n, err := c.scan(ctx, p.URL)
		if err != nil {
			c.log.Warn("failed to scrape page", zap.String("url", p.URL), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", p.URL, err))
			continue
		}
		rep.ThreatsFound += n
		rep.Sources = append(rep.Sources, p.label())
	}
	if len(rep.Sources) == 0 {
		return nil, errors.Join(errs...)
	}
	return rep, nil
}

func (c *HTMLCollector) scan(ctx context.Context, u string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "GlobalSentinel/1.0 (+sigint)")
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if ct != "" && !strings.Contains(ct, "html") {
		return 0, fmt.Errorf("unsupported content-type: %s", ct)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return 0, err
	}
	n := 0
	doc.Find("h1,h2,h3").Each(func(_ int, s *goquery.Selection) {
		if intel.MatchesThreat(strings.TrimSpace(s.Text())) {
			n++
		}
	})
	return n, nil
}
