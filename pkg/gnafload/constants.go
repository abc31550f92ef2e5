package gnafload

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Load completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitConnectionError = 11 // Failed to connect to database
	ExitLoadFailed      = 13 // COPY or table creation failed
	ExitNoDatasets      = 14 // No loadable files found in the input directories
)

const (
	// DefaultDataDir is the directory listed before the load starts.
	// The original deployment images mounted the G-NAF extract here.
	DefaultDataDir = "/data"

	// DefaultSchema is the schema tables are created in.
	DefaultSchema = "public"

	// DefaultTablePrefix is prepended to every generated table name.
	DefaultTablePrefix = "gnaf_"

	// GNAFDelimiter is the field separator of G-NAF standard PSV exports.
	GNAFDelimiter = '|'

	// BoundaryDelimiter is the field separator of administrative
	// boundary CSV exports.
	BoundaryDelimiter = ','

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 1 * time.Minute

	// DefaultRetryMaxAttempts is the default maximum number of retry attempts.
	DefaultRetryMaxAttempts = 3
)
