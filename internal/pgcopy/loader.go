package pgcopy

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/gnafload/pkg/gnafload"
)

// Loader creates tables and bulk loads delimited files via COPY.
type Loader struct {
	pool   *pgxpool.Pool
	logger gnafload.Logger
}

// NewLoader creates a Loader on top of an established connection pool.
// Panics if pool or logger is nil.
func NewLoader(pool *pgxpool.Pool, logger gnafload.Logger) *Loader {
	if pool == nil {
		panic("pool cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Loader{pool: pool, logger: logger}
}

// EnsureTable creates the target table if it does not exist, one varchar
// column per header field.
func (l *Loader) EnsureTable(ctx context.Context, schema, table string, columns []string) error {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = pgx.Identifier{col}.Sanitize() + " varchar"
	}

	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		pgx.Identifier{schema, table}.Sanitize(),
		strings.Join(defs, ", "))

	if _, err := l.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to create table %s.%s: %w", schema, table, err)
	}
	return nil
}

// LoadFile creates the table from the file's header and copies the file
// into it. Returns the number of rows loaded.
func (l *Loader) LoadFile(ctx context.Context, path, schema, table string, opts CopyOptions) (int64, error) {
	opts = opts.withDefaults()

	columns, err := ReadHeaderFile(path, opts)
	if err != nil {
		return 0, err
	}

	l.logger.Verbose("creating table %s.%s (%d columns)", schema, table, len(columns))
	if err := l.EnsureTable(ctx, schema, table, columns); err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	l.logger.Verbose("copying %s into %s.%s", path, schema, table)
	rows, err := l.copyFrom(ctx, NewSanitizingReader(f), schema, table, columns, opts)
	if err != nil {
		return 0, fmt.Errorf("failed to copy %s into %s.%s: %w", path, schema, table, err)
	}

	return rows, nil
}

// copyFrom streams r into the table using COPY ... FROM STDIN.
func (l *Loader) copyFrom(ctx context.Context, r *SanitizingReader, schema, table string, columns []string, opts CopyOptions) (int64, error) {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = pgx.Identifier{col}.Sanitize()
	}

	// COPY requires an escape character; fall back to the quote char
	// when none is configured, matching PostgreSQL's CSV default.
	escape := opts.Escape
	if escape == 0 {
		escape = opts.Quote
	}

	stmt := fmt.Sprintf("COPY %s (%s) FROM STDIN WITH CSV HEADER DELIMITER '%c' QUOTE '%c' ESCAPE '%c'",
		pgx.Identifier{schema, table}.Sanitize(),
		strings.Join(quoted, ", "),
		opts.Delimiter, opts.Quote, escape)

	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tag, err := conn.Conn().PgConn().CopyFrom(ctx, r, stmt)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
