package extract

import (
	"bytes"
	"context"
	"path"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AdamBaali/windows-mdm-commands/ddf"
)

// Document pairs a source name with raw DDF XML content.
type Document struct {
	Name    string
	Content []byte
}

// Run parses and walks each document, returning the deduplicated records in
// (Source, OMA_URI) order. Documents that fail to parse or lack a
// management tree are logged and skipped; they never fail the run.
// Independent documents are walked concurrently, the merge and dedup step is
// single threaded. logger may be nil.
func Run(ctx context.Context, docs []Document, logger *zap.Logger, opts ...Option) ([]Record, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := NewWalker(opts...)

	var (
		mu  sync.Mutex
		all []Record
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			roots, err := ddf.Parse(bytes.NewReader(doc.Content))
			if err != nil {
				logger.Warn("skipping document",
					zap.String("source", doc.Name), zap.Error(err))
				return nil
			}
			records := w.Document(path.Base(doc.Name), roots)
			mu.Lock()
			all = append(all, records...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Dedupe(all), nil
}
