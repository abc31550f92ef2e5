package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// pgpassPath returns the platform-appropriate .pgpass file path.
func pgpassPath() string {
	if custom := os.Getenv("PGPASSFILE"); custom != "" {
		return custom
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "postgresql", "pgpass.conf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pgpass")
}

// lookupPgpass returns the password for the given connection from the
// .pgpass file, or "" when no entry matches. Follows the PostgreSQL
// format: host:port:database:username:password with '*' wildcards and
// backslash-escaped ':' and '\'.
func lookupPgpass(host string, port int, database, username string) string {
	path := pgpassPath()
	if path == "" {
		return ""
	}

	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	portStr := fmt.Sprintf("%d", port)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitPgpassLine(line)
		if len(fields) != 5 {
			continue
		}

		if matchPgpassField(fields[0], host) &&
			matchPgpassField(fields[1], portStr) &&
			matchPgpassField(fields[2], database) &&
			matchPgpassField(fields[3], username) {
			return fields[4]
		}
	}

	return ""
}

// splitPgpassLine splits a .pgpass line on unescaped colons and
// unescapes the resulting fields.
func splitPgpassLine(line string) []string {
	var fields []string
	var field strings.Builder

	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())

	return fields
}

func matchPgpassField(pattern, value string) bool {
	return pattern == "*" || pattern == value
}

// escapePgpass escapes colons and backslashes in a .pgpass field value.
func escapePgpass(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `:`, `\:`)
	return s
}
