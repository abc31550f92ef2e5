package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vvka-141/gnafload/internal/config"
	"github.com/vvka-141/gnafload/pkg/gnafload"
)

// GranularConnFlags represents connection parameters from CLI flags.
// These follow PostgreSQL standard flag conventions (-h, -p, -U, -d).
//
// Note: Password is NOT included as a CLI flag for security reasons.
// Use one of these methods instead:
//  1. $PGPASSWORD environment variable
//  2. .pgpass file (PostgreSQL standard)
//  3. Connection string with embedded password
type GranularConnFlags struct {
	Host     string
	Port     int
	Username string
	Database string
	SSLMode  string
}

// IsEmpty returns true if no connection-related granular flags were provided.
// Database is excluded because it can override the connection string database.
func (g *GranularConnFlags) IsEmpty() bool {
	return g.Host == "" && g.Port == 0 && g.Username == "" && g.SSLMode == ""
}

// AzureFlags represents Azure Entra ID CLI flags.
// These override the corresponding AZURE_* environment variables.
// Client secret is NOT a flag; use AZURE_CLIENT_SECRET.
type AzureFlags struct {
	Enabled  bool   // --azure
	TenantID string // Overrides AZURE_TENANT_ID
	ClientID string // Overrides AZURE_CLIENT_ID
}

// IsEmpty returns true if no Azure flags were provided.
func (a *AzureFlags) IsEmpty() bool {
	return a == nil || (!a.Enabled && a.TenantID == "" && a.ClientID == "")
}

// AWSFlags represents AWS RDS IAM CLI flags.
type AWSFlags struct {
	Enabled bool   // --aws-iam
	Region  string // Overrides AWS_REGION
}

// IsEmpty returns true if no AWS flags were provided.
func (a *AWSFlags) IsEmpty() bool {
	return a == nil || (!a.Enabled && a.Region == "")
}

// GoogleFlags represents Google Cloud SQL IAM CLI flags.
type GoogleFlags struct {
	Instance string // --google-instance, project:region:instance
}

// IsEmpty returns true if no Google flags were provided.
func (g *GoogleFlags) IsEmpty() bool {
	return g == nil || g.Instance == ""
}

// EnvVars represents PostgreSQL standard environment variables.
// See: https://www.postgresql.org/docs/current/libpq-envars.html
type EnvVars struct {
	PGHOST       string
	PGPORT       string
	PGUSER       string
	PGPASSWORD   string
	PGDATABASE   string
	PGSSLMODE    string
	DATABASE_URL string

	// Azure Entra ID environment variables (Azure SDK standard names)
	AZURE_TENANT_ID     string
	AZURE_CLIENT_ID     string
	AZURE_CLIENT_SECRET string

	// AWS region (standard SDK name)
	AWS_REGION string
}

// LoadFromEnvironment loads PostgreSQL and cloud provider environment variables.
func LoadFromEnvironment() *EnvVars {
	return &EnvVars{
		PGHOST:              os.Getenv("PGHOST"),
		PGPORT:              os.Getenv("PGPORT"),
		PGUSER:              os.Getenv("PGUSER"),
		PGPASSWORD:          os.Getenv("PGPASSWORD"),
		PGDATABASE:          os.Getenv("PGDATABASE"),
		PGSSLMODE:           os.Getenv("PGSSLMODE"),
		DATABASE_URL:        os.Getenv("DATABASE_URL"),
		AZURE_TENANT_ID:     os.Getenv("AZURE_TENANT_ID"),
		AZURE_CLIENT_ID:     os.Getenv("AZURE_CLIENT_ID"),
		AZURE_CLIENT_SECRET: os.Getenv("AZURE_CLIENT_SECRET"),
		AWS_REGION:          os.Getenv("AWS_REGION"),
	}
}

// ResolveConnectionParams resolves connection parameters using
// PostgreSQL-standard precedence:
//
//  1. Connection string flag (--connection) - if provided, parse and use directly
//  2. Granular flags (-h, -p, -U, -d) - if any provided, build config from flags
//  3. Environment variables (PGHOST, PGPORT, etc.)
//  4. DATABASE_URL environment variable - fallback if no granular params
//  5. gnafload.yaml connection block
//  6. Defaults (localhost:5432, prefer SSL)
//
// Cloud authentication: if Azure, AWS or Google flags (or the matching
// environment variables) are present, the AuthMethod switches to the
// corresponding token-based method. Returns an error when both
// --connection and granular flags are given, or when more than one cloud
// auth method is requested.
func ResolveConnectionParams(
	connStringFlag string,
	granularFlags *GranularConnFlags,
	azureFlags *AzureFlags,
	awsFlags *AWSFlags,
	googleFlags *GoogleFlags,
	envVars *EnvVars,
	projectConfig *config.ProjectConfig,
) (*gnafload.ConnectionConfig, error) {
	if granularFlags == nil {
		granularFlags = &GranularConnFlags{}
	}
	if azureFlags == nil {
		azureFlags = &AzureFlags{}
	}
	if awsFlags == nil {
		awsFlags = &AWSFlags{}
	}
	if googleFlags == nil {
		googleFlags = &GoogleFlags{}
	}
	if envVars == nil {
		envVars = &EnvVars{}
	}

	if connStringFlag != "" && !granularFlags.IsEmpty() {
		return nil, fmt.Errorf(
			"cannot specify both --connection and granular flags (-h, -p, -U)\n" +
				"Choose one approach:\n" +
				"  1. Connection string: --connection \"postgresql://user@localhost:5432/gnaf\"\n" +
				"  2. Granular flags: -h localhost -p 5432 -U loader -d gnaf\n" +
				"  3. Environment variables: export PGHOST=localhost PGPORT=5432 PGUSER=loader",
		)
	}

	var cfg *gnafload.ConnectionConfig
	var err error

	switch {
	case connStringFlag != "":
		cfg, err = resolveFromConnectionString(connStringFlag, envVars)
	case granularFlags.IsEmpty() && envVars.DATABASE_URL != "":
		cfg, err = resolveFromConnectionString(envVars.DATABASE_URL, envVars)
	default:
		cfg, err = resolveFromGranularParams(granularFlags, envVars, projectConfig)
	}
	if err != nil {
		return nil, err
	}

	if err := applyCloudAuth(cfg, azureFlags, awsFlags, googleFlags, envVars, projectConfig); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyCloudAuth switches the config to a token-based auth method when
// cloud flags, environment variables or yaml config request one.
func applyCloudAuth(
	cfg *gnafload.ConnectionConfig,
	azure *AzureFlags,
	aws *AWSFlags,
	google *GoogleFlags,
	env *EnvVars,
	projectConfig *config.ProjectConfig,
) error {
	var yamlAuth config.ConnectionConfig
	if projectConfig != nil {
		yamlAuth = projectConfig.Connection
	}

	azureRequested := !azure.IsEmpty() || yamlAuth.AuthMethod == "azure"
	awsRequested := !aws.IsEmpty() || yamlAuth.AuthMethod == "aws"
	googleRequested := !google.IsEmpty() || yamlAuth.GoogleInstance != "" || yamlAuth.AuthMethod == "google"

	requested := 0
	for _, r := range []bool{azureRequested, awsRequested, googleRequested} {
		if r {
			requested++
		}
	}
	if requested > 1 {
		return fmt.Errorf("conflicting cloud auth methods requested: %w", gnafload.ErrInvalidConfig)
	}

	switch {
	case azureRequested:
		cfg.AuthMethod = gnafload.AuthMethodAzureEntraID
		cfg.AzureTenantID = firstNonEmpty(azure.TenantID, env.AZURE_TENANT_ID, yamlAuth.AzureTenantID)
		cfg.AzureClientID = firstNonEmpty(azure.ClientID, env.AZURE_CLIENT_ID, yamlAuth.AzureClientID)
		// Client secret only comes from the environment (no flag for security)
		cfg.AzureClientSecret = env.AZURE_CLIENT_SECRET
	case awsRequested:
		cfg.AuthMethod = gnafload.AuthMethodAWSIAM
		cfg.AWSRegion = firstNonEmpty(aws.Region, env.AWS_REGION, yamlAuth.AWSRegion)
	case googleRequested:
		cfg.AuthMethod = gnafload.AuthMethodGoogleIAM
		cfg.GoogleInstance = firstNonEmpty(google.Instance, yamlAuth.GoogleInstance)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveFromConnectionString parses a connection string, applying
// PGSSLMODE as a fallback the way libpq does.
func resolveFromConnectionString(connStr string, envVars *EnvVars) (*gnafload.ConnectionConfig, error) {
	cfg, err := ParseConnectionString(connStr)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}

	if cfg.SSLMode == "" && envVars != nil && envVars.PGSSLMODE != "" {
		cfg.SSLMode = envVars.PGSSLMODE
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "prefer"
	}

	return cfg, nil
}

// resolveFromGranularParams builds a ConnectionConfig from granular flags,
// environment variables and gnafload.yaml.
//
// Precedence for each parameter (following PostgreSQL standards):
//  1. CLI flag
//  2. Environment variable
//  3. gnafload.yaml
//  4. Default value
func resolveFromGranularParams(
	flags *GranularConnFlags,
	envVars *EnvVars,
	projectConfig *config.ProjectConfig,
) (*gnafload.ConnectionConfig, error) {
	cfg := &gnafload.ConnectionConfig{
		AuthMethod:       gnafload.AuthMethodStandard,
		AdditionalParams: make(map[string]string),
	}

	var pc config.ConnectionConfig
	if projectConfig != nil {
		pc = projectConfig.Connection
	}

	cfg.Host = firstNonEmpty(flags.Host, envVars.PGHOST, pc.Host, "localhost")

	switch {
	case flags.Port != 0:
		cfg.Port = flags.Port
	case envVars.PGPORT != "":
		port, err := strconv.Atoi(envVars.PGPORT)
		if err != nil {
			return nil, fmt.Errorf("invalid $PGPORT value '%s': must be an integer", envVars.PGPORT)
		}
		cfg.Port = port
	case pc.Port != 0:
		cfg.Port = pc.Port
	default:
		cfg.Port = 5432
	}

	cfg.Username = firstNonEmpty(flags.Username, envVars.PGUSER, pc.Username,
		os.Getenv("USER"), os.Getenv("USERNAME"))

	cfg.Password = envVars.PGPASSWORD

	cfg.Database = firstNonEmpty(flags.Database, envVars.PGDATABASE, pc.Database)

	cfg.SSLMode = firstNonEmpty(flags.SSLMode, envVars.PGSSLMODE, pc.SSLMode, "prefer")

	return cfg, nil
}
