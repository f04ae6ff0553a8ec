/*
PURPOSE:
  Defines the core data structures for benchmark datasets.
  A benchmark is a free-form JSON object; only two fields carry meaning
  for merging: "id" (uniqueness key) and "category" (tally grouping).

REQUIREMENTS:
  User-specified:
  - Records must round-trip through merge untouched (no fixed schema).
  - "category" may be absent; absent means "unknown".

  Implementation-discovered:
  - map[string]any keeps arbitrary fields intact across decode/encode.
  - "id" can be a string or a JSON number depending on the source file;
    both must participate in the same seen-set.

ARCHITECTURE INTEGRATION:
  - Used by: internal/merge, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - ID() reports absence via its second return; callers decide whether
    a missing id is fatal (it is, during merge).

IMPLEMENTATION RULES:
  - Keep the accessor helpers here; no merge logic in this package.

USAGE:
  id, ok := b.ID()
  cat := b.Category()

SELF-HEALING INSTRUCTIONS:
  - If a new well-known field appears, add an accessor rather than
    spreading raw map lookups around.

RELATED FILES:
  - internal/merge/merge.go
  - internal/merge/tally.go

MAINTENANCE:
  - Update when the dataset grows new fields with merge semantics.
*/

package model

// Benchmark is one record from a benchmark dataset. Fields beyond "id"
// and "category" are carried through unmodified.
type Benchmark map[string]any

// Collection is an ordered sequence of benchmarks. Order is significant
// and preserved on output.
type Collection []Benchmark

// UnknownCategory is the tally bucket for records without a usable
// "category" field.
const UnknownCategory = "unknown"

// ID returns the record's "id" value and whether the field is present.
// The value is returned as-is; string and numeric ids stay distinct.
func (b Benchmark) ID() (any, bool) {
	id, ok := b["id"]
	return id, ok
}

// Category returns the record's "category" if it is a string, or
// UnknownCategory otherwise.
func (b Benchmark) Category() string {
	cat, ok := b["category"].(string)
	if !ok {
		return UnknownCategory
	}
	return cat
}
