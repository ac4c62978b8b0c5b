package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bryanwahyu/global-sentinel/internal/domain/document"
	"github.com/bryanwahyu/global-sentinel/internal/infra/db"
)

type DocumentRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewDocumentRepository(conn *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: conn, now: time.Now}
}

func (r *DocumentRepository) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS sentinel_documents (
  collection VARCHAR(64) NOT NULL,
  id VARCHAR(64) NOT NULL,
  payload JSONB NOT NULL,
  created_at TIMESTAMPTZ NOT NULL,
  PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_sentinel_documents_created ON sentinel_documents (collection, created_at DESC);
`
	_, err := r.db.ExecContext(ctx, q)
	return err
}

// Set inserts or updates a document
func (r *DocumentRepository) Set(ctx context.Context, collection, id string, doc any) error {
	if err := db.CheckKey(collection, id); err != nil {
		return err
	}
	payload, err := db.MarshalPayload(doc)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO sentinel_documents (collection, id, payload, created_at)
VALUES ($1,$2,$3,$4)
ON CONFLICT (collection, id) DO UPDATE SET
  payload=EXCLUDED.payload;
`
	_, err = r.db.ExecContext(ctx, q, collection, id, string(payload), r.now().UTC())
	return err
}

func (r *DocumentRepository) Get(ctx context.Context, collection, id string) (*document.Record, error) {
	const q = `
SELECT collection, id, payload, created_at
FROM sentinel_documents
WHERE collection=$1 AND id=$2
LIMIT 1;`
	return db.ScanRow(r.db.QueryRowContext(ctx, q, collection, id))
}

func (r *DocumentRepository) Latest(ctx context.Context, collection string, limit int) ([]*document.Record, error) {
	const q = `
SELECT collection, id, payload, created_at
FROM sentinel_documents
WHERE collection=$1
ORDER BY created_at DESC, id DESC
LIMIT $2;`
	rows, err := r.db.QueryContext(ctx, q, collection, db.Limit(limit))
	if err != nil {
		return nil, err
	}
	return db.ScanRows(rows)
}

func (r *DocumentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
