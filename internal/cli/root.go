/*
PURPOSE:
  Defines the root Cobra command for the bench-merge CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - A bare `bench-merge` invocation must run the default merge; the
    tool's main use needs zero arguments.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/bench-merge/main.go
  - Calls: Child commands (merge, stats)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - The root's RunE delegates to the merge command logic so the two
    paths cannot drift apart.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/bench-merge/main.go

MAINTENANCE:
  - Update when adding new global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "bench-merge",
		Short: "Merge benchmark dataset files into one deduplicated collection",
		Long: `Merges the current benchmark dataset with supplemental files,
dropping records whose id already appeared, and writes the union as an
indented JSON array. Run without arguments to merge the default data/ files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge()
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./bench_merge.yaml)")
}
