package sigint

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "github.com/bryanwahyu/global-sentinel/internal/domain/sigint"
)

const feedXML = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>World</title>
<item><title>Cyber attack hits ports</title><description>Ransomware spreads</description></item>
<item><title>Local bakery opens</title><description>Fresh bread</description></item>
<item><title>Heat wave</title><description>Climate records fall</description></item>
</channel></rss>`

const pageHTML = `<html><body>
<h1>Pandemic preparedness review</h1>
<h2>Sports results</h2>
<h3>Hackers breach ministry</h3>
<p>cyber mention in body is ignored</p>
</body></html>`

func TestSimulatedBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	for _, c := range SimulatedAll(r) {
		p := profiles[c.Channel()]
		for i := 0; i < 50; i++ {
			rep, err := c.Collect(context.Background())
			require.NoError(t, err)
			assert.GreaterOrEqual(t, rep.ThreatsFound, 1)
			assert.LessOrEqual(t, rep.ThreatsFound, p.max)
			assert.Equal(t, p.sources, rep.Sources)
			assert.False(t, rep.Live)
		}
	}
}

func TestSimulatedHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSimulated(domain.ChannelRSS, nil).Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRSSCollectorCountsThreatItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, feedXML)
	}))
	defer srv.Close()

	c := NewRSSCollector([]Source{
		{URL: srv.URL + "/feed", Name: "World"},
		{URL: srv.URL + "/broken"},
	}, time.Second, zaptest.NewLogger(t))

	rep, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, rep.ThreatsFound)
	assert.Equal(t, []string{"World RSS"}, rep.Sources)
	assert.True(t, rep.Live)
}

func TestRSSCollectorAllFeedsFail(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	c := NewRSSCollector([]Source{{URL: srv.URL}}, time.Second, zaptest.NewLogger(t))
	_, err := c.Collect(context.Background())
	assert.Error(t, err)
}

func TestHTMLCollectorCountsHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, pageHTML)
	}))
	defer srv.Close()

	c := NewHTMLCollector([]Source{{URL: srv.URL, Name: "Gov Portal"}}, time.Second, zaptest.NewLogger(t))
	rep, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, rep.ThreatsFound)
	assert.Equal(t, []string{"Gov Portal"}, rep.Sources)
}

func TestHTMLCollectorRejectsNonHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()
	c := NewHTMLCollector([]Source{{URL: srv.URL}}, time.Second, zaptest.NewLogger(t))
	_, err := c.Collect(context.Background())
	assert.ErrorContains(t, err, "unsupported content-type")
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "Bbc", sourceName("https://feeds.bbc.co.uk/news/rss.xml"))
	assert.Equal(t, "Reuters", sourceName("https://www.reuters.com/world"))
	assert.Equal(t, "not a url", sourceName("not a url"))
}
