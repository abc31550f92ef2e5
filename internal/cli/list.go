package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/gnafload/internal/config"
	"github.com/vvka-141/gnafload/internal/gnaf"
	"github.com/vvka-141/gnafload/pkg/gnafload"
)

var listCmd = &cobra.Command{
	Use:   "list [data_dir]",
	Short: "Show the datasets a load would pick up",
	Long: `List scans the data directory the same way load does and prints the
datasets that would be loaded, with their target table names. No
database connection is made.`,
	Args: maxArgs(1),
	RunE: runList,
}

var listFlags struct {
	gnafDir, boundariesDir, tablePrefix string
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFlags.gnafDir, "gnaf", "",
		"Directory containing G-NAF PSV exports (default: the data directory)")
	listCmd.Flags().StringVar(&listFlags.boundariesDir, "boundaries", "",
		"Directory containing administrative boundary CSV exports\n"+
			"(default: the data directory)")
	listCmd.Flags().StringVar(&listFlags.tablePrefix, "table-prefix", "",
		"Prefix for generated table names (default: gnaf_)")
}

func runList(cmd *cobra.Command, args []string) error {
	dataDir := gnafload.DefaultDataDir
	if len(args) == 1 {
		dataDir = args[0]
	}

	var yamlLoad config.LoadOptions
	projectCfg, err := config.Load(dataDir)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	if projectCfg != nil {
		yamlLoad = projectCfg.Load
	}

	gnafDir := resolveDir(dataDir, firstNonEmpty(listFlags.gnafDir, yamlLoad.GNAFDir, dataDir))
	boundariesDir := resolveDir(dataDir, firstNonEmpty(listFlags.boundariesDir, yamlLoad.BoundaryDir, dataDir))
	tablePrefix := firstNonEmpty(listFlags.tablePrefix, yamlLoad.TablePrefix, gnafload.DefaultTablePrefix)

	datasets, err := gnaf.Discover(gnafDir, boundariesDir, tablePrefix)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, ds := range datasets {
		fmt.Fprintf(out, "%-8s %-40s %s\n", ds.Kind, ds.Table, ds.Path)
	}
	fmt.Fprintf(os.Stderr, "%d datasets\n", len(datasets))

	return nil
}
