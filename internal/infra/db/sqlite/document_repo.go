package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/bryanwahyu/global-sentinel/internal/domain/document"
	"github.com/bryanwahyu/global-sentinel/internal/infra/db"
)

// DocumentRepository stores created_at as unix nanoseconds so ordering
// does not depend on driver time parsing.
type DocumentRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewDocumentRepository(conn *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: conn, now: time.Now}
}

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
ON CONFLICT (collection, id) DO UPDATE SET payload=excluded.payload;
`
	_, err = r.db.ExecContext(ctx, q, collection, id, string(payload), r.now().UnixNano())
	return err
}

func (r *DocumentRepository) Get(ctx context.Context, collection, id string) (*document.Record, error) {
	const q = `
SELECT collection, id, payload, created_at
FROM sentinel_documents
WHERE collection=? AND id=?;`
	return scan(r.db.QueryRowContext(ctx, q, collection, id))
}

func (r *DocumentRepository) Latest(ctx context.Context, collection string, limit int) ([]*document.Record, error) {
	const q = `
SELECT collection, id, payload, created_at
FROM sentinel_documents
WHERE collection=?
ORDER BY created_at DESC, id DESC
LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, collection, db.Limit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*document.Record
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *DocumentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func scan(row interface{ Scan(...any) error }) (*document.Record, error) {
	var rec document.Record
	var payload string
	var created int64
	if err := row.Scan(&rec.Collection, &rec.ID, &payload, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, document.ErrNotFound
		}
		return nil, err
	}
	rec.Payload = json.RawMessage(payload)
	rec.CreatedAt = time.Unix(0, created).UTC()
	return &rec, nil
}
