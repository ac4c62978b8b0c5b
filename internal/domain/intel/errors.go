package intel

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrNoAPIKey is returned by the live client when OPENROUTER_API_KEY is not set.
var ErrNoAPIKey = errors.New("OPENROUTER_API_KEY not found in environment variables")
