// Package runner sequences a load run: startup banner, data directory
// listing, completion banner, then the load itself.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/gnafload/internal/gnaf"
	"github.com/vvka-141/gnafload/internal/pgcopy"
	"github.com/vvka-141/gnafload/pkg/gnafload"
)

// datasetLoader is the slice of pgcopy.Loader the runner needs.
type datasetLoader interface {
	LoadFile(ctx context.Context, path, schema, table string, opts pgcopy.CopyOptions) (int64, error)
}

// Callbacks receive per-dataset progress notifications. Both fields are
// optional. Used by the interactive progress display.
type Callbacks struct {
	DatasetStarted func(table string)
	DatasetLoaded  func(report gnafload.TableReport)
}

// Runner executes the fixed launch sequence. The four steps always run
// in the same order; a listing failure is reported and does not stop
// the run, matching the behavior of the shell launcher this replaces.
type Runner struct {
	connector gnafload.Connector
	logger    gnafload.Logger
	out       io.Writer
	callbacks Callbacks

	// newLoader is a seam for tests; defaults to pgcopy.NewLoader.
	newLoader func(pool *pgxpool.Pool, logger gnafload.Logger) datasetLoader
}

// New creates a Runner writing banners and the listing to out.
// Panics if connector, logger or out is nil.
func New(connector gnafload.Connector, logger gnafload.Logger, out io.Writer) *Runner {
	if connector == nil {
		panic("connector cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	return &Runner{
		connector: connector,
		logger:    logger,
		out:       out,
		newLoader: func(pool *pgxpool.Pool, logger gnafload.Logger) datasetLoader {
			return pgcopy.NewLoader(pool, logger)
		},
	}
}

// WithCallbacks returns a new Runner with progress callbacks configured.
// The receiver is not modified.
func (r *Runner) WithCallbacks(cb Callbacks) *Runner {
	clone := *r
	clone.callbacks = cb
	return &clone
}

// Run executes the launch sequence against the given configuration.
// host is the resolved database host, shown in the startup banner.
// The returned error carries the load outcome; banners and the listing
// have already been emitted by the time any load error surfaces.
func (r *Runner) Run(ctx context.Context, cfg gnafload.LoadConfig, host string) (*gnafload.LoadReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	started := time.Now()
	runID := uuid.New()

	fmt.Fprintf(r.out, "=== gnafload: loading G-NAF and boundary data to %s (database %q) ===\n",
		host, cfg.DatabaseName)

	if err := gnaf.WriteListing(r.out, cfg.DataDir); err != nil {
		// Listing is informational; the load proceeds regardless.
		r.logger.Error("data directory listing failed: %v", err)
	}

	fmt.Fprintf(r.out, "=== data directory listing complete, starting load ===\n")

	report, err := r.load(ctx, cfg, runID)
	if err != nil {
		return nil, err
	}

	report.Duration = time.Since(started)
	r.logger.Info("run %s: loaded %d rows into %d tables in %s",
		runID, report.TotalRows(), len(report.Tables), report.Duration.Round(time.Millisecond))

	return report, nil
}

// load discovers datasets, connects, and copies each file in order.
func (r *Runner) load(ctx context.Context, cfg gnafload.LoadConfig, runID uuid.UUID) (*gnafload.LoadReport, error) {
	datasets, err := gnaf.Discover(cfg.GNAFPath, cfg.BoundariesPath, cfg.TablePrefix)
	if err != nil {
		return nil, err
	}

	r.logger.Verbose("discovered %d datasets", len(datasets))

	pool, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gnafload.ErrConnectionFailed, err)
	}
	if pool != nil {
		defer pool.Close()
	}

	loader := r.newLoader(pool, r.logger)
	report := &gnafload.LoadReport{RunID: runID}

	for _, ds := range datasets {
		if r.callbacks.DatasetStarted != nil {
			r.callbacks.DatasetStarted(ds.Table)
		}

		// Configured delimiters beat the extension defaults.
		delimiter := ds.Delimiter
		switch ds.Kind {
		case gnaf.KindGNAF:
			if cfg.GNAFDelimiter != 0 {
				delimiter = cfg.GNAFDelimiter
			}
		case gnaf.KindBoundary:
			if cfg.BoundaryDelimiter != 0 {
				delimiter = cfg.BoundaryDelimiter
			}
		}

		tableStarted := time.Now()
		rows, err := loader.LoadFile(ctx, ds.Path, cfg.Schema, ds.Table, pgcopy.CopyOptions{
			Delimiter: delimiter,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", ds.Table, errors.Join(gnafload.ErrLoadFailed, err))
		}

		tableReport := gnafload.TableReport{
			Table:    ds.Table,
			Source:   ds.Path,
			Rows:     rows,
			Duration: time.Since(tableStarted),
		}
		report.Tables = append(report.Tables, tableReport)

		if r.callbacks.DatasetLoaded != nil {
			r.callbacks.DatasetLoaded(tableReport)
		}

		r.logger.Info("loaded %s: %d rows from %s in %s",
			ds.Table, rows, ds.Path, tableReport.Duration.Round(time.Millisecond))
	}

	return report, nil
}
