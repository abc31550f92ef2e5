package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConnectionConfig holds connection defaults from gnafload.yaml.
// Flags and PG* environment variables take precedence over these.
type ConnectionConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	Username       string `yaml:"username"`
	Database       string `yaml:"database"`
	SSLMode        string `yaml:"sslmode"`
	AuthMethod     string `yaml:"auth_method,omitempty"`
	AzureTenantID  string `yaml:"azure_tenant_id,omitempty"`
	AzureClientID  string `yaml:"azure_client_id,omitempty"`
	AWSRegion      string `yaml:"aws_region,omitempty"`
	GoogleInstance string `yaml:"google_instance,omitempty"`
}

// LoadOptions holds loader defaults from gnafload.yaml.
// The delimiter fields are single-character overrides for the standard
// '|' (G-NAF PSV) and ',' (boundary CSV) separators.
type LoadOptions struct {
	Schema            string `yaml:"schema,omitempty"`
	TablePrefix       string `yaml:"table_prefix,omitempty"`
	GNAFDir           string `yaml:"gnaf_dir,omitempty"`
	BoundaryDir       string `yaml:"boundary_dir,omitempty"`
	GNAFDelimiter     string `yaml:"gnaf_delimiter,omitempty"`
	BoundaryDelimiter string `yaml:"boundary_delimiter,omitempty"`
}

// ProjectConfig is the parsed gnafload.yaml.
type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Load       LoadOptions      `yaml:"load"`
	Timeout    string           `yaml:"timeout"`
}

const ConfigFileName = "gnafload.yaml"

// Load reads gnafload.yaml from the given directory.
func Load(dataDir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dataDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
