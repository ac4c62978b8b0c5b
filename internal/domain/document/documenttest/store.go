// Package documenttest provides an in-memory document.Store for tests.
package documenttest

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/bryanwahyu/global-sentinel/internal/domain/document"
)

type Store struct {
	mu      sync.Mutex
	records map[string]*document.Record
	seq     int

	// SetErr, when non-nil, is returned by every Set call.
	SetErr error
}

func NewStore() *Store {
	return &Store{records: map[string]*document.Record{}}
}

func key(collection, id string) string { return collection + "/" + id }

func (s *Store) Set(_ context.Context, collection, id string, doc any) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(collection, id)
	if rec, ok := s.records[k]; ok {
		rec.Payload = b
		return nil
	}
	s.seq++
	s.records[k] = &document.Record{
		Collection: collection,
		ID:         id,
		Payload:    b,
		CreatedAt:  time.Unix(int64(s.seq), 0).UTC(),
	}
	return nil
}

func (s *Store) Get(_ context.Context, collection, id string) (*document.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[key(collection, id)]
	if !ok {
		return nil, document.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (s *Store) Latest(_ context.Context, collection string, limit int) ([]*document.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*document.Record
	for _, rec := range s.records {
		if rec.Collection == collection {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) Ping(context.Context) error { return nil }

// Count returns how many documents a collection holds.
func (s *Store) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rec := range s.records {
		if rec.Collection == collection {
			n++
		}
	}
	return n
}
