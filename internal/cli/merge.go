/*
PURPOSE:
  Defines the 'merge' subcommand.
  Runs the full load -> union -> tally -> write pipeline.

REQUIREMENTS:
  User-specified:
  - Merge the datasets.
  - Specific flags for path overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/merge.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or the merge run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> merge.Run.

USAGE:
  bench-merge merge --current data/benchmarks.json -o out.json

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/Maxamed/gaza-genocide/internal/config"
	"github.com/Maxamed/gaza-genocide/internal/merge"
	"github.com/spf13/cobra"
)

var (
	currentOverride     string
	supplementsOverride []string
	outputOverride      string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge the benchmark dataset files",
	Long: `Merges the current dataset with the supplemental files in precedence
order: every record of the current dataset is kept, then each supplement
contributes only records whose id has not been seen yet. Duplicate ids are
reported and dropped. A missing or unreadable input counts as empty; the
merge still runs with the remaining files.`,
	Example: `  # Merge the default data/ files
  bench-merge merge

  # Merge explicit files
  bench-merge merge --current data/benchmarks.json \
    --supplement data/new_bench.json --supplement data/new_bench1.json

  # Write the result somewhere else
  bench-merge merge -o /tmp/merged.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge()
	},
}

// runMerge is shared between the root command and the merge subcommand.
func runMerge() error {
	// 1. Load Config
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// 2. Overrides
	if currentOverride != "" {
		cfg.CurrentPath = currentOverride
	}
	if len(supplementsOverride) > 0 {
		cfg.SupplementPaths = supplementsOverride
	}
	if outputOverride != "" {
		cfg.OutputPath = outputOverride
	}

	// 3. Execution
	return merge.Run(cfg)
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&currentOverride, "current", "", "Path to the current (highest-precedence) dataset")
	mergeCmd.Flags().StringSliceVar(&supplementsOverride, "supplement", nil, "Supplemental dataset path (repeatable, merged in order)")
	mergeCmd.Flags().StringVarP(&outputOverride, "output", "o", "", "Path for the merged JSON output")
}
