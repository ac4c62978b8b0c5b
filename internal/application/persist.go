package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/bryanwahyu/global-sentinel/internal/domain/document"
)

// Persist writes doc to the store when one is configured.
// Failures are logged and swallowed; the caller still returns its result.
func Persist(ctx context.Context, store document.Store, log *zap.Logger, collection, id string, doc any) bool {
	if log == nil {
		log = zap.NewNop()
	}
	if store == nil {
		log.Debug("demo mode, skipping persistence",
			zap.String("collection", collection), zap.String("id", id))
		return false
	}
	if err := store.Set(ctx, collection, id, doc); err != nil {
		log.Warn("document store write failed, continuing with response",
			zap.String("collection", collection), zap.String("id", id), zap.Error(err))
		return false
	}
	log.Debug("document stored", zap.String("collection", collection), zap.String("id", id))
	return true
}
