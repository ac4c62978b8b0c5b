package report

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/bryanwahyu/global-sentinel/internal/domain/simulation"
)

// ObjectStore is the upload side of the MinIO store.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) (string, error)
}

// Archiver uploads simulations/<id>.json and simulations/<id>.html.
type Archiver struct {
	objects ObjectStore
	prefix  string
	log     *zap.Logger
}

var _ simulation.ReportArchive = (*Archiver)(nil)

func NewArchiver(objects ObjectStore, prefix string, log *zap.Logger) *Archiver {
	if prefix == "" {
		prefix = "simulations"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Archiver{objects: objects, prefix: prefix, log: log}
}

func (a *Archiver) Archive(ctx context.Context, s *simulation.Simulation) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode simulation: %w", err)
	}
	html, err := HTML(Markdown(s))
	if err != nil {
		return err
	}

	base := fmt.Sprintf("%s/%s", a.prefix, s.ID)
	jsonURL, err := a.objects.Put(ctx, base+".json", raw)
	if err != nil {
		return err
	}
	htmlURL, err := a.objects.Put(ctx, base+".html", html)
	if err != nil {
		return err
	}
	a.log.Debug("simulation archived",
		zap.String("id", string(s.ID)),
		zap.String("json_url", jsonURL),
		zap.String("html_url", htmlURL))
	return nil
}
