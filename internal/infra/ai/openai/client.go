package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	"github.com/bryanwahyu/global-sentinel/internal/infra/ai/prompt"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	reasoningModel = "perplexity/sonar-reasoning"
	searchModel    = "perplexity/sonar-large-online"

	reasoningMaxTokens = 2500
	searchMaxTokens    = 3000

	referer = "https://global-sentinel.ai"
)

// Options tune the OpenRouter connection; zero values use the defaults.
type Options struct {
	BaseURL        string
	ReasoningModel string
	SearchModel    string
	Timeout        time.Duration
}

// Client talks to Perplexity Sonar models through OpenRouter's
// OpenAI-compatible chat completions API.
type Client struct {
	api            *openai.Client
	apiKey         string
	reasoningModel string
	searchModel    string
	log            *zap.Logger
}

func NewClient(apiKey string, opts Options, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	apiKey = strings.TrimSpace(apiKey)
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = DefaultBaseURL
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	cfg.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: &headerTransport{base: http.DefaultTransport},
	}

	c := &Client{
		api:            openai.NewClientWithConfig(cfg),
		apiKey:         apiKey,
		reasoningModel: reasoningModel,
		searchModel:    searchModel,
		log:            log,
	}
	if opts.ReasoningModel != "" {
		c.reasoningModel = opts.ReasoningModel
	}
	if opts.SearchModel != "" {
		c.searchModel = opts.SearchModel
	}
	if apiKey == "" {
		log.Error("OPENROUTER_API_KEY not found, live analysis will fail over to templates")
	}
	return c
}

// headerTransport adds the attribution headers OpenRouter expects.
type headerTransport struct {
	base http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", referer)
	req.Header.Set("X-Title", "Global Sentinel Crisis Intelligence")
	return t.base.RoundTrip(req)
}

func (c *Client) Reasoning(ctx context.Context, hypothesis string, counter bool) (string, error) {
	if c.apiKey == "" {
		return "", intel.ErrNoAPIKey
	}
	c.log.Debug("sonar reasoning starting", zap.Bool("counter", counter))
	out, err := c.complete(ctx, openai.ChatCompletionRequest{
		Model: c.reasoningModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.ReasoningSystem(counter)},
			{Role: openai.ChatMessageRoleUser, Content: prompt.ReasoningUser(hypothesis)},
		},
		Temperature: 0.3,
		MaxTokens:   reasoningMaxTokens,
		TopP:        0.9,
	})
	if err != nil {
		return "", fmt.Errorf("sonar reasoning failed: %w", err)
	}
	return out, nil
}

func (c *Client) DeepSearch(ctx context.Context, query string, domains []string, citations bool) (string, error) {
	if c.apiKey == "" {
		return "", intel.ErrNoAPIKey
	}
	c.log.Debug("sonar deep search starting", zap.Strings("domains", domains))
	out, err := c.complete(ctx, openai.ChatCompletionRequest{
		Model: c.searchModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.ResearchSystem()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.ResearchUser(query, domains, citations)},
		},
		Temperature: 0.2,
		MaxTokens:   searchMaxTokens,
		TopP:        0.9,
	})
	if err != nil {
		return "", fmt.Errorf("sonar deep search failed: %w", err)
	}
	return out, nil
}

// Hybrid runs reasoning and deep search in parallel; either failure fails the call.
func (c *Client) Hybrid(ctx context.Context, scenario string) (*intel.Analysis, error) {
	c.log.Info("hybrid sonar analysis starting", zap.String("scenario", intel.Preview(scenario, 50)))

	var reasoning, research string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reasoning, err = c.Reasoning(gctx, scenario, false)
		return err
	})
	g.Go(func() error {
		var err error
		research, err = c.DeepSearch(gctx, prompt.HybridQuery(scenario), nil, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &intel.Analysis{
		Reasoning: reasoning,
		Research:  research,
		Timestamp: intel.FormatTimestamp(time.Now()),
	}, nil
}

func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", c.classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// classify maps provider status codes onto domain errors.
func (c *Client) classify(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", intel.ErrQuotaExceeded, err)
	case http.StatusUnauthorized:
		c.log.Error("authentication failed, check OPENROUTER_API_KEY", zap.String("key", intel.Preview(c.apiKey, 10)))
	}
	return err
}
