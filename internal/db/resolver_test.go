package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/gnafload/internal/config"
	"github.com/vvka-141/gnafload/pkg/gnafload"
)

func TestResolveConnectionParams_ConflictingFlags(t *testing.T) {
	_, err := ResolveConnectionParams(
		"postgresql://user@host/db",
		&GranularConnFlags{Host: "otherhost"},
		nil, nil, nil, &EnvVars{}, nil,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot specify both")
}

func TestResolveConnectionParams_ConnectionString(t *testing.T) {
	cfg, err := ResolveConnectionParams(
		"postgresql://loader:pw@gnaf-db:5433/gnaf",
		nil, nil, nil, nil, &EnvVars{}, nil,
	)
	require.NoError(t, err)
	assert.Equal(t, "gnaf-db", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, "gnaf", cfg.Database)
	assert.Equal(t, "loader", cfg.Username)
}

func TestResolveConnectionParams_DatabaseURLFallback(t *testing.T) {
	env := &EnvVars{DATABASE_URL: "postgresql://loader@dburl-host/gnaf"}
	cfg, err := ResolveConnectionParams("", nil, nil, nil, nil, env, nil)
	require.NoError(t, err)
	assert.Equal(t, "dburl-host", cfg.Host)
}

func TestResolveConnectionParams_GranularPrecedence(t *testing.T) {
	env := &EnvVars{
		PGHOST:     "env-host",
		PGPORT:     "5433",
		PGUSER:     "env-user",
		PGPASSWORD: "env-pass",
		PGDATABASE: "env-db",
	}
	projectCfg := &config.ProjectConfig{
		Connection: config.ConnectionConfig{
			Host:     "yaml-host",
			Username: "yaml-user",
		},
	}

	// Flags win over env, env wins over yaml.
	cfg, err := ResolveConnectionParams(
		"",
		&GranularConnFlags{Host: "flag-host"},
		nil, nil, nil, env, projectCfg,
	)
	require.NoError(t, err)
	assert.Equal(t, "flag-host", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, "env-user", cfg.Username)
	assert.Equal(t, "env-pass", cfg.Password)
	assert.Equal(t, "env-db", cfg.Database)
}

func TestResolveConnectionParams_YamlFallback(t *testing.T) {
	projectCfg := &config.ProjectConfig{
		Connection: config.ConnectionConfig{
			Host:     "yaml-host",
			Port:     6543,
			Username: "yaml-user",
			Database: "yaml-db",
			SSLMode:  "require",
		},
	}

	cfg, err := ResolveConnectionParams("", &GranularConnFlags{}, nil, nil, nil, &EnvVars{}, projectCfg)
	require.NoError(t, err)
	assert.Equal(t, "yaml-host", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, "yaml-user", cfg.Username)
	assert.Equal(t, "yaml-db", cfg.Database)
	assert.Equal(t, "require", cfg.SSLMode)
}

func TestResolveConnectionParams_Defaults(t *testing.T) {
	cfg, err := ResolveConnectionParams("", &GranularConnFlags{}, nil, nil, nil, &EnvVars{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "prefer", cfg.SSLMode)
	assert.Equal(t, gnafload.AuthMethodStandard, cfg.AuthMethod)
}

func TestResolveConnectionParams_InvalidPGPORT(t *testing.T) {
	env := &EnvVars{PGPORT: "fivefourthreetwo"}
	_, err := ResolveConnectionParams("", &GranularConnFlags{}, nil, nil, nil, env, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PGPORT")
}

func TestResolveConnectionParams_AzureFromFlags(t *testing.T) {
	cfg, err := ResolveConnectionParams(
		"",
		&GranularConnFlags{Host: "gnaf.postgres.database.azure.com"},
		&AzureFlags{Enabled: true, TenantID: "tenant", ClientID: "client"},
		nil, nil,
		&EnvVars{AZURE_CLIENT_SECRET: "secret"},
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, gnafload.AuthMethodAzureEntraID, cfg.AuthMethod)
	assert.Equal(t, "tenant", cfg.AzureTenantID)
	assert.Equal(t, "client", cfg.AzureClientID)
	assert.Equal(t, "secret", cfg.AzureClientSecret)
}

func TestResolveConnectionParams_AzureEnvFallback(t *testing.T) {
	cfg, err := ResolveConnectionParams(
		"",
		&GranularConnFlags{},
		&AzureFlags{Enabled: true},
		nil, nil,
		&EnvVars{AZURE_TENANT_ID: "env-tenant", AZURE_CLIENT_ID: "env-client"},
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, "env-tenant", cfg.AzureTenantID)
	assert.Equal(t, "env-client", cfg.AzureClientID)
}

func TestResolveConnectionParams_AWS(t *testing.T) {
	cfg, err := ResolveConnectionParams(
		"",
		&GranularConnFlags{Host: "gnaf.cluster.ap-southeast-2.rds.amazonaws.com"},
		nil,
		&AWSFlags{Enabled: true, Region: "ap-southeast-2"},
		nil, &EnvVars{}, nil,
	)
	require.NoError(t, err)
	assert.Equal(t, gnafload.AuthMethodAWSIAM, cfg.AuthMethod)
	assert.Equal(t, "ap-southeast-2", cfg.AWSRegion)
}

func TestResolveConnectionParams_Google(t *testing.T) {
	cfg, err := ResolveConnectionParams(
		"", &GranularConnFlags{}, nil, nil,
		&GoogleFlags{Instance: "proj:region:inst"},
		&EnvVars{}, nil,
	)
	require.NoError(t, err)
	assert.Equal(t, gnafload.AuthMethodGoogleIAM, cfg.AuthMethod)
	assert.Equal(t, "proj:region:inst", cfg.GoogleInstance)
}

func TestResolveConnectionParams_ConflictingCloudAuth(t *testing.T) {
	_, err := ResolveConnectionParams(
		"", &GranularConnFlags{},
		&AzureFlags{Enabled: true},
		&AWSFlags{Enabled: true},
		nil, &EnvVars{}, nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, gnafload.ErrInvalidConfig)
}

func TestNewConnector_Factory(t *testing.T) {
	std, err := NewConnector(&gnafload.ConnectionConfig{AuthMethod: gnafload.AuthMethodStandard})
	require.NoError(t, err)
	assert.IsType(t, &StandardConnector{}, std)

	_, err = NewConnector(&gnafload.ConnectionConfig{AuthMethod: gnafload.AuthMethod(99)})
	assert.ErrorIs(t, err, gnafload.ErrUnsupportedAuthMethod)

	_, err = NewConnector(&gnafload.ConnectionConfig{AuthMethod: gnafload.AuthMethodGoogleIAM})
	assert.Error(t, err, "google requires instance")
}
