package pgcopy

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// CopyOptions controls how a delimited file is parsed by COPY.
type CopyOptions struct {
	// Delimiter separates fields. Defaults to ','.
	Delimiter rune

	// Quote wraps fields containing special characters. Defaults to '"'.
	Quote rune

	// Escape escapes the quote character inside quoted fields.
	// Zero (or equal to Quote) means the quote character doubles as
	// the escape, PostgreSQL's CSV default.
	Escape rune
}

// withDefaults fills in unset options.
func (o CopyOptions) withDefaults() CopyOptions {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.Quote == 0 {
		o.Quote = '"'
	}
	if o.Escape == o.Quote {
		o.Escape = 0
	}
	return o
}

var nonIdentifierChars = regexp.MustCompile(`[^0-9a-zA-Z]+`)

// NormalizeIdentifier simplifies text into a safe lowercase SQL identifier:
// runs of special characters collapse to a single underscore, letters are
// lowercased, and a leading underscore is stripped.
func NormalizeIdentifier(text string) string {
	unified := strings.ToLower(nonIdentifierChars.ReplaceAllString(text, "_"))
	return strings.TrimPrefix(unified, "_")
}

// NormalizeHeader applies NormalizeIdentifier to every column name.
func NormalizeHeader(columns []string) []string {
	normalized := make([]string, len(columns))
	for i, col := range columns {
		normalized[i] = NormalizeIdentifier(col)
	}
	return normalized
}

// TableNameFromFile derives a table name from a file's base name,
// normalized and prefixed. G-NAF standard exports carry a "_psv" suffix
// in the base name ("VIC_ADDRESS_DETAIL_psv.psv") which is stripped.
func TableNameFromFile(prefix, path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.TrimSuffix(base, "_psv")
	return prefix + NormalizeIdentifier(base)
}

// ReadHeaderFile reads the first record of the file at path and returns
// the normalized column names.
func ReadHeaderFile(path string, opts CopyOptions) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ReadHeader(f, opts)
}

// ReadHeader reads the first record from r and returns the normalized
// column names. The stream is sanitized first so a stray byte in the
// header cannot corrupt a column name.
func ReadHeader(r io.Reader, opts CopyOptions) ([]string, error) {
	opts = opts.withDefaults()

	reader := csv.NewReader(NewSanitizingReader(r))
	reader.Comma = opts.Delimiter
	reader.LazyQuotes = true

	record, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(record) == 0 {
		return nil, fmt.Errorf("empty header")
	}

	return NormalizeHeader(record), nil
}
