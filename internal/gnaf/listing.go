package gnaf

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// WriteListing writes a non-recursive long-format listing of dir to w,
// one entry per line: mode, size, modification time, name. Entries are
// sorted by name. Returns an error if the directory cannot be read;
// callers decide whether that is fatal.
func WriteListing(w io.Writer, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	fmt.Fprintf(w, "%s: %d entries\n", dir, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info; list the name anyway.
			fmt.Fprintf(w, "?????????? %12s %16s %s\n", "?", "?", entry.Name())
			continue
		}
		fmt.Fprintf(w, "%s %12d %s %s\n",
			info.Mode(), info.Size(), info.ModTime().Format("2006-01-02 15:04"), info.Name())
	}

	return nil
}
