package sigint

import "context"

// Channel enum
type Channel string

const (
	ChannelRSS    Channel = "rss"
	ChannelAPI    Channel = "api"
	ChannelHTML   Channel = "html"
	ChannelReddit Channel = "reddit"
)

// Label is the human name used in messages, e.g. "RSS scraping test completed".
func (c Channel) Label() string {
	switch c {
	case ChannelRSS:
		return "RSS"
	case ChannelAPI:
		return "API"
	case ChannelHTML:
		return "HTML"
	case ChannelReddit:
		return "Reddit"
	default:
		return string(c)
	}
}

// Report is the outcome of one scrape run.
type Report struct {
	Channel      Channel  `json:"-"`
	ThreatsFound int      `json:"threatsFound"`
	Sources      []string `json:"sources"`
	Live         bool     `json:"live,omitempty"`
}

// Collector port (interface untuk scraper per channel)
type Collector interface {
	Channel() Channel
	Collect(ctx context.Context) (*Report, error)
}
