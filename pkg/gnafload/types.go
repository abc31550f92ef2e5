package gnafload

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LoadConfig contains all parameters needed for a load run.
type LoadConfig struct {
	// DataDir is the directory listed at the start of the run.
	// Typically the mount point containing both extracts.
	DataDir string

	// GNAFPath is the directory containing G-NAF standard PSV exports.
	GNAFPath string

	// BoundariesPath is the directory containing administrative
	// boundary CSV exports. Optional.
	BoundariesPath string

	// DatabaseName is the target database name
	DatabaseName string

	// Schema is the schema tables are created in (default: public)
	Schema string

	// TablePrefix is prepended to generated table names (default: gnaf_)
	TablePrefix string

	// GNAFDelimiter overrides the field separator for G-NAF PSV files
	// (default: '|')
	GNAFDelimiter rune

	// BoundaryDelimiter overrides the field separator for boundary CSV
	// files (default: ',')
	BoundaryDelimiter rune

	// Timeout is the global timeout for the entire run
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.DataDir == "" {
		errs = append(errs, fmt.Errorf("DataDir is required: %w", ErrInvalidConfig))
	}

	if c.GNAFPath == "" {
		errs = append(errs, fmt.Errorf("GNAFPath is required: %w", ErrInvalidConfig))
	}

	if c.DatabaseName == "" {
		errs = append(errs, fmt.Errorf("DatabaseName is required: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ApplyDefaults fills in Schema, TablePrefix and the delimiters when unset.
func (c *LoadConfig) ApplyDefaults() {
	if c.Schema == "" {
		c.Schema = DefaultSchema
	}
	if c.TablePrefix == "" {
		c.TablePrefix = DefaultTablePrefix
	}
	if c.GNAFDelimiter == 0 {
		c.GNAFDelimiter = GNAFDelimiter
	}
	if c.BoundaryDelimiter == 0 {
		c.BoundaryDelimiter = BoundaryDelimiter
	}
}

// ConnectionConfig represents resolved connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// AuthMethod indicates the authentication mechanism to use
	AuthMethod AuthMethod

	// Additional connection parameters
	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string

	// Azure Entra ID authentication parameters (used when AuthMethod is AuthMethodAzureEntraID)
	// If all three are provided, Service Principal authentication is used.
	// If none are provided, DefaultAzureCredential chain is used (env vars, managed identity, CLI, etc.)
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string

	// AWSRegion is the region of the RDS instance (used when AuthMethod is AuthMethodAWSIAM)
	AWSRegion string

	// GoogleInstance is the Cloud SQL instance connection name in
	// project:region:instance form (used when AuthMethod is AuthMethodGoogleIAM)
	GoogleInstance string
}

// AuthMethod represents the type of authentication to use.
type AuthMethod int

const (
	AuthMethodStandard     AuthMethod = iota // Username/Password
	AuthMethodAWSIAM                         // AWS RDS IAM Database Authentication
	AuthMethodGoogleIAM                      // Google Cloud SQL IAM
	AuthMethodAzureEntraID                   // Azure Active Directory (Entra ID)
)

// String returns a human-readable string representation of the AuthMethod.
func (a AuthMethod) String() string {
	switch a {
	case AuthMethodStandard:
		return "Standard"
	case AuthMethodAWSIAM:
		return "AWS IAM"
	case AuthMethodGoogleIAM:
		return "Google IAM"
	case AuthMethodAzureEntraID:
		return "Azure Entra ID"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// IsValid returns true if the AuthMethod is a valid, defined value.
func (a AuthMethod) IsValid() bool {
	return a >= AuthMethodStandard && a <= AuthMethodAzureEntraID
}

// TableReport describes the outcome of loading a single file.
type TableReport struct {
	// Table is the fully prefixed table name the file was loaded into
	Table string

	// Source is the path of the loaded file
	Source string

	// Rows is the number of rows copied
	Rows int64

	// Duration is the wall time of the CREATE TABLE + COPY
	Duration time.Duration
}

// LoadReport summarizes a completed run.
type LoadReport struct {
	// RunID uniquely identifies this run in logs
	RunID uuid.UUID

	// Tables holds one entry per loaded file, in load order
	Tables []TableReport

	// Duration is the wall time of the whole run
	Duration time.Duration
}

// TotalRows returns the number of rows copied across all tables.
func (r *LoadReport) TotalRows() int64 {
	var total int64
	for _, t := range r.Tables {
		total += t.Rows
	}
	return total
}
