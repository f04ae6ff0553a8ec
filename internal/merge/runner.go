/*
PURPOSE:
  High-level runner that orchestrates a merge.
  Load inputs -> union -> tally -> write -> report.

REQUIREMENTS:
  User-specified:
  - Merge the current dataset with the supplemental files.
  - Print a readable summary of what happened.

  Implementation-discovered:
  - Per-file load failures degrade that file to empty (recoverable);
    malformed records and write failures abort (unrecoverable).

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns the first unrecoverable error to the CLI for exit-code
    handling; everything recoverable is logged and absorbed.

IMPLEMENTATION RULES:
  - Strictly sequential: load, merge, tally, write. No goroutines;
    two concurrent runs against one output path would race anyway.

USAGE:
  merge.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/merge/merge.go
  - internal/output/report.go

MAINTENANCE:
  - Update if inputs stop being "one current plus N supplements".
*/

package merge

import (
	"fmt"
	"io"
	"os"

	"github.com/Maxamed/gaza-genocide/internal/config"
	"github.com/Maxamed/gaza-genocide/internal/output"
)

// Run executes a full merge per cfg, reporting to stdout.
func Run(cfg *config.Config) error {
	return RunTo(cfg, os.Stdout)
}

// RunTo is Run with the summary report directed at w.
func RunTo(cfg *config.Config, w io.Writer) error {
	current := LoadCollection(cfg.CurrentPath)

	supplements := make([]Source, 0, len(cfg.SupplementPaths))
	for _, path := range cfg.SupplementPaths {
		supplements = append(supplements, Source{
			Name:    path,
			Records: LoadCollection(path),
		})
	}

	reporter := output.NewReporter(w)

	counts := make([]output.SourceCount, 0, len(supplements)+1)
	counts = append(counts, output.SourceCount{Name: cfg.CurrentPath, Count: len(current)})
	for _, s := range supplements {
		counts = append(counts, output.SourceCount{Name: s.Name, Count: len(s.Records)})
	}
	reporter.Loaded(counts)

	merged, skipped, err := Merge(current, supplements...)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	for _, s := range skipped {
		reporter.Skipped(s.ID, s.Source)
	}
	reporter.MergedTotal(len(merged))

	reporter.Distribution(Tally(merged))

	if err := output.WriteCollection(cfg.OutputPath, merged); err != nil {
		return fmt.Errorf("failed to write merged dataset to %s: %w", cfg.OutputPath, err)
	}
	reporter.Saved(cfg.OutputPath, len(merged))

	return nil
}
