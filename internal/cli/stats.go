package cli

import (
	"fmt"

	"github.com/Maxamed/gaza-genocide/internal/config"
	"github.com/Maxamed/gaza-genocide/internal/merge"
	"github.com/spf13/cobra"
)

var statsIn string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record count and category distribution of one dataset file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		path := cfg.CurrentPath
		if statsIn != "" {
			path = statsIn
		}

		c := merge.LoadCollection(path)
		fmt.Printf("%s: %d benchmarks\n", path, len(c))

		tally := merge.Tally(c)
		for _, cat := range merge.SortedCategories(tally) {
			fmt.Printf("  - %s: %d\n", cat, tally[cat])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsIn, "in", "", "Dataset file to inspect (default: the current dataset)")
}
