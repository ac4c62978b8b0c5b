package mysql

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

// EnsureSchema creates the documents table if it does not exist.
func (r *DocumentRepository) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS sentinel_documents (
  collection VARCHAR(64) NOT NULL,
  id VARCHAR(64) NOT NULL,
  payload JSON NOT NULL,
  created_at DATETIME(3) NOT NULL,
  PRIMARY KEY (collection, id),
  KEY idx_sentinel_documents_created (collection, created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`
	_, err := r.db.ExecContext(ctx, q)
	return err
}

// Set upserts a document; created_at is kept from the first write.
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
VALUES (?,?,?,?)
ON DUPLICATE KEY UPDATE payload=VALUES(payload);
`
	_, err = r.db.ExecContext(ctx, q, collection, id, payload, r.now().UTC())
	return err
}

func (r *DocumentRepository) Get(ctx context.Context, collection, id string) (*document.Record, error) {
	const q = `
SELECT collection, id, payload, created_at
FROM sentinel_documents
WHERE collection=? AND id=? LIMIT 1;
`
	return db.ScanRow(r.db.QueryRowContext(ctx, q, collection, id))
}

func (r *DocumentRepository) Latest(ctx context.Context, collection string, limit int) ([]*document.Record, error) {
	const q = `
SELECT collection, id, payload, created_at
FROM sentinel_documents
WHERE collection=?
ORDER BY created_at DESC, id DESC
LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, collection, db.Limit(limit))
	if err != nil {
		return nil, err
	}
	return db.ScanRows(rows)
}

func (r *DocumentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
