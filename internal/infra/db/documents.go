// Package db holds helpers shared by the driver-specific document stores.
package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bryanwahyu/global-sentinel/internal/domain/document"
)

// Table is the single table every driver stores documents in.
const Table = "sentinel_documents"

// MarshalPayload encodes a document; nil becomes an empty object so the JSON column stays valid.
func MarshalPayload(doc any) ([]byte, error) {
	if doc == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return b, nil
}

// CheckKey rejects blank collection or id values.
func CheckKey(collection, id string) error {
	if strings.TrimSpace(collection) == "" {
		return errors.New("collection is required")
	}
	if strings.TrimSpace(id) == "" {
		return errors.New("document id is required")
	}
	return nil
}

// ScanRow reads one record from a row with columns (collection, id, payload, created_at).
func ScanRow(row interface{ Scan(...any) error }) (*document.Record, error) {
	var rec document.Record
	var payload []byte
	var created time.Time
	if err := row.Scan(&rec.Collection, &rec.ID, &payload, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, document.ErrNotFound
		}
		return nil, err
	}
	rec.Payload = json.RawMessage(payload)
	rec.CreatedAt = created
	return &rec, nil
}

// ScanRows drains rows into records.
func ScanRows(rows *sql.Rows) ([]*document.Record, error) {
	defer rows.Close()
	var out []*document.Record
	for rows.Next() {
		rec, err := ScanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Limit clamps page sizes to 1..100, defaulting to 20.
func Limit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
