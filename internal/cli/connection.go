package cli

import (
	"fmt"
	"os"

	"github.com/vvka-141/gnafload/internal/config"
	"github.com/vvka-141/gnafload/internal/db"
	"github.com/vvka-141/gnafload/pkg/gnafload"
)

// connectionStringFromEnv returns the first non-empty connection string from
// GNAFLOAD_CONNECTION_STRING or DATABASE_URL environment variables.
func connectionStringFromEnv() string {
	if s := os.Getenv("GNAFLOAD_CONNECTION_STRING"); s != "" {
		return s
	}
	return os.Getenv("DATABASE_URL")
}

// resolveConnection consolidates connection resolution: connection
// string flag, granular flags, cloud auth flags, environment variables
// and gnafload.yaml, in that order of precedence.
func resolveConnection(
	connStringFlag string,
	granularFlags *db.GranularConnFlags,
	azureFlags *db.AzureFlags,
	awsFlags *db.AWSFlags,
	googleFlags *db.GoogleFlags,
	projectConfig *config.ProjectConfig,
) (*gnafload.ConnectionConfig, error) {
	connString := connStringFlag
	if connString == "" {
		connString = connectionStringFromEnv()
	}

	envVars := db.LoadFromEnvironment()

	return db.ResolveConnectionParams(
		connString,
		granularFlags,
		azureFlags,
		awsFlags,
		googleFlags,
		envVars,
		projectConfig,
	)
}

// resolveTargetDatabase applies database precedence: the -d flag beats
// the connection string database.
func resolveTargetDatabase(flagDatabase, connConfigDatabase string, verbose bool) (string, error) {
	targetDB := flagDatabase

	if targetDB != "" {
		if verbose && connConfigDatabase != "" && targetDB != connConfigDatabase {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Using --database flag (%s) instead of connection string database (%s)\n",
				targetDB, connConfigDatabase)
		}
	} else {
		targetDB = connConfigDatabase
	}

	if targetDB == "" {
		return "", fmt.Errorf("database name is required: %w\n"+
			"Provide via:\n"+
			"  1. --database/-d flag: gnafload load /data -d gnaf\n"+
			"  2. Connection string: gnafload load --connection \"postgresql://user@host/gnaf\"\n"+
			"  3. Environment variable: export PGDATABASE=gnaf",
			gnafload.ErrInvalidConfig)
	}

	return targetDB, nil
}
