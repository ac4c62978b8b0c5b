package simulation

import "context"

// ReportArchive stores a rendered copy of each simulation outside the document store.
type ReportArchive interface {
	Archive(ctx context.Context, s *Simulation) error
}
