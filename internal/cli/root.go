package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/gnafload/pkg/gnafload"
)

const asciiLogo = `                      __ _                 _
  __ _ _ __   __ _  / _| | ___   __ _  __| |
 / _` + "`" + ` | '_ \ / _` + "`" + ` || |_| |/ _ \ / _` + "`" + ` |/ _` + "`" + ` |
| (_| | | | | (_| ||  _| | (_) | (_| | (_| |
 \__, |_| |_|\__,_||_| |_|\___/ \__,_|\__,_|
 |___/`

var rootCmd = &cobra.Command{
	Use:   "gnafload",
	Short: "G-NAF to PostgreSQL bulk loader",
	Long: asciiLogo + `

gnafload loads Australian G-NAF (Geocoded National Address File) PSV
exports and administrative-boundary CSV exports into PostgreSQL using
the COPY protocol. Tables are created on the fly from each file's
header row; every run starts with a listing of the data directory so
the input set is visible in the logs.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Database connection failed
  13 - COPY or table creation failed
  14 - No loadable files found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for gnafload")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%v: %w", err, gnafload.ErrUsage)
	})
}

// maxArgs is cobra.MaximumNArgs with the error marked as a usage error
// so it maps to the usage exit code.
func maxArgs(n int) cobra.PositionalArgs {
	inner := cobra.MaximumNArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := inner(cmd, args); err != nil {
			return fmt.Errorf("%v: %w", err, gnafload.ErrUsage)
		}
		return nil
	}
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
