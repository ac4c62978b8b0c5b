package document

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Collections used by the services
const (
	CollectionSimulations   = "simulations"
	CollectionValidations   = "validations"
	CollectionVerifications = "verifications"
)

// ErrNotFound is returned by Get when no document matches.
var ErrNotFound = errors.New("document not found")

// Record is a stored document with its raw JSON payload.
type Record struct {
	Collection string          `json:"collection"`
	ID         string          `json:"id"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Store port (interface untuk persistence dokumen)
type Store interface {
	Set(ctx context.Context, collection, id string, doc any) error
	Get(ctx context.Context, collection, id string) (*Record, error)
	Latest(ctx context.Context, collection string, limit int) ([]*Record, error)
	Ping(ctx context.Context) error
}
