package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

type codeStore interface {
	ListColumns(ctx context.Context) ([]domain.ColumnDescriptor, error)
	InsertBatch(ctx context.Context, recs []domain.CodeRecord) (int, error)
}

// Result summarizes one import run.
type Result struct {
	Stats    Stats
	Inserted int
	Existing int
	Batches  int
	DryRun   bool
	Elapsed  time.Duration
}

// Importer writes parsed CSV rows to the code store in batches. Rows whose
// code already exists are left untouched. Bulk import bypasses the audit log.
type Importer struct {
	store codeStore
	cfg   Config
	log   *slog.Logger
}

// New creates an Importer.
func New(store codeStore, cfg Config, logger *slog.Logger) *Importer {
	return &Importer{
		store: store,
		cfg:   cfg,
		log:   logger.With("component", "importer"),
	}
}

// Run parses r and inserts its rows. Every CSV header must name an existing
// column of the codes table. In dry-run mode nothing is written.
func (im *Importer) Run(ctx context.Context, r io.Reader) (*Result, error) {
	start := time.Now()

	parsed, err := Parse(r)
	if err != nil {
		return nil, err
	}

	if err := im.checkColumns(ctx, parsed.Columns); err != nil {
		return nil, err
	}

	res := &Result{Stats: parsed.Stats, DryRun: im.cfg.DryRun}
	im.log.InfoContext(ctx, "csv parsed",
		slog.Int("rows", parsed.Stats.Rows),
		slog.Int("parsed", parsed.Stats.Parsed),
		slog.Int("skipped", parsed.Stats.Skipped),
	)

	if im.cfg.DryRun {
		res.Elapsed = time.Since(start)
		return res, nil
	}

	size := im.cfg.BatchSize
	if size <= 0 {
		size = 500
	}

	for lo := 0; lo < len(parsed.Records); lo += size {
		hi := min(lo+size, len(parsed.Records))
		batch := parsed.Records[lo:hi]

		n, err := im.store.InsertBatch(ctx, batch)
		if err != nil {
			return res, fmt.Errorf("importer.Run: batch %d: %w", res.Batches+1, err)
		}
		res.Batches++
		res.Inserted += n
		res.Existing += len(batch) - n

		im.log.DebugContext(ctx, "batch inserted",
			slog.Int("batch", res.Batches),
			slog.Int("size", len(batch)),
			slog.Int("inserted", n),
		)
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

func (im *Importer) checkColumns(ctx context.Context, columns []string) error {
	live, err := im.store.ListColumns(ctx)
	if err != nil {
		return fmt.Errorf("importer.Run: list columns: %w", err)
	}

	known := make(map[string]struct{}, len(live))
	for _, c := range live {
		known[c.Name] = struct{}{}
	}
	for _, c := range columns {
		if _, ok := known[c]; !ok {
			return fmt.Errorf("importer.Run: column %q: %w", c, domain.ErrSchemaConflict)
		}
	}
	return nil
}
