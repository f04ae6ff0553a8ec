/*
PURPOSE:
  Plain-text summary reporting for a merge run.
  Mirrors the output of the original merge script: per-source counts,
  skipped duplicates, total, category distribution, final confirmation.

REQUIREMENTS:
  User-specified:
  - Output is for humans, not machines. Keep the familiar shape.

  Implementation-discovered:
  - Tests need to capture the report, so the sink is an injected
    io.Writer rather than a hardwired os.Stdout.

ARCHITECTURE INTEGRATION:
  - Called by: internal/merge/runner.go, internal/cli (stats)
  - Consumes: merge results and tallies.

ERROR HANDLING:
  - Write errors to stdout are ignored; a broken terminal should not
    fail a merge that already completed.

IMPLEMENTATION RULES:
  - Category listing must be sorted (SortedCategories) or the report
    is nondeterministic.

USAGE:
  r := output.NewReporter(os.Stdout)
  r.Loaded(counts)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/merge/tally.go

MAINTENANCE:
  - Update alongside any change to the merge pipeline's phases.
*/

package output

import (
	"fmt"
	"io"
	"sort"
)

// SourceCount pairs an input name with how many records it yielded.
type SourceCount struct {
	Name  string
	Count int
}

// Reporter prints the human-readable merge summary.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Loaded prints one line per input source with its record count.
func (r *Reporter) Loaded(sources []SourceCount) {
	fmt.Fprintln(r.w, "Loaded benchmarks:")
	for _, s := range sources {
		fmt.Fprintf(r.w, "  - %s: %d benchmarks\n", s.Name, s.Count)
	}
}

// Skipped prints a diagnostic for one dropped duplicate.
func (r *Reporter) Skipped(id any, source string) {
	fmt.Fprintf(r.w, "  - Skipped duplicate ID: %v (%s)\n", id, source)
}

// MergedTotal prints the size of the merged dataset.
func (r *Reporter) MergedTotal(n int) {
	fmt.Fprintf(r.w, "\nMerged dataset: %d total benchmarks\n", n)
}

// Distribution prints the per-category counts, sorted by category name.
func (r *Reporter) Distribution(tally map[string]int) {
	fmt.Fprintln(r.w, "\nCategory distribution:")
	names := make([]string, 0, len(tally))
	for name := range tally {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(r.w, "  - %s: %d benchmarks\n", name, tally[name])
	}
}

// Saved prints the final confirmation naming the output file.
func (r *Reporter) Saved(path string, total int) {
	fmt.Fprintf(r.w, "\nMerged file saved to: %s\n", path)
	fmt.Fprintf(r.w, "Total unique benchmarks: %d\n", total)
}
