// Package gnaf discovers loadable G-NAF and administrative-boundary
// files and renders directory listings.
package gnaf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/gnafload/internal/pgcopy"
	"github.com/vvka-141/gnafload/pkg/gnafload"
)

// Kind classifies a discovered dataset.
type Kind int

const (
	// KindGNAF is a G-NAF standard PSV export (pipe-delimited).
	KindGNAF Kind = iota
	// KindBoundary is an administrative-boundary CSV export.
	KindBoundary
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGNAF:
		return "gnaf"
	case KindBoundary:
		return "boundary"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Dataset is one loadable file.
type Dataset struct {
	// Path is the absolute or caller-relative path of the file
	Path string

	// Table is the prefixed table name the file loads into
	Table string

	// Kind classifies the dataset
	Kind Kind

	// Delimiter is the field separator ('|' for PSV, ',' for CSV)
	Delimiter rune
}

// Discover scans the G-NAF and boundary directories (non-recursive) and
// returns datasets in deterministic order: G-NAF directory first, then
// boundaries, each sorted by file name. Kind follows the file extension,
// so a flat directory holding both PSV and CSV exports works as either
// input. boundariesDir may be empty or equal to gnafDir; it is scanned
// only when it is a distinct directory.
// Returns gnafload.ErrNoDatasets when neither directory yields a file.
func Discover(gnafDir, boundariesDir, tablePrefix string) ([]Dataset, error) {
	var datasets []Dataset

	gnafSets, err := discoverDir(gnafDir, tablePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan G-NAF directory: %w", err)
	}
	datasets = append(datasets, gnafSets...)

	if boundariesDir != "" && boundariesDir != gnafDir {
		boundarySets, err := discoverDir(boundariesDir, tablePrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to scan boundaries directory: %w", err)
		}
		datasets = append(datasets, boundarySets...)
	}

	if len(datasets) == 0 {
		return nil, fmt.Errorf("no .psv or .csv files under %s: %w", gnafDir, gnafload.ErrNoDatasets)
	}

	return datasets, nil
}

func discoverDir(dir, tablePrefix string) ([]Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var datasets []Dataset
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		var kind Kind
		var delimiter rune
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".psv":
			kind = KindGNAF
			delimiter = gnafload.GNAFDelimiter
		case ".csv":
			kind = KindBoundary
			delimiter = gnafload.BoundaryDelimiter
		default:
			continue
		}

		path := filepath.Join(dir, entry.Name())
		datasets = append(datasets, Dataset{
			Path:      path,
			Table:     pgcopy.TableNameFromFile(tablePrefix, path),
			Kind:      kind,
			Delimiter: delimiter,
		})
	}

	sort.Slice(datasets, func(i, j int) bool {
		return datasets[i].Path < datasets[j].Path
	})

	return datasets, nil
}
