/*
PURPOSE:
  Core union logic: combine the current dataset with supplemental
  datasets, dropping records whose id was already accumulated.

REQUIREMENTS:
  User-specified:
  - First-seen wins: current > first supplement > second supplement.
  - Output order: all of current, then surviving supplements in order.
  - Report every skipped duplicate so the operator can audit drops.

  Implementation-discovered:
  - The seen-set must thread across supplements: a duplicate between
    two supplements is also a drop.
  - Duplicates inside `current` itself pass through untouched; only
    records arriving after seen-set construction are checked.

ARCHITECTURE INTEGRATION:
  - Called by: internal/merge/runner.go
  - Consumes: internal/model.Collection

ERROR HANDLING:
  - A record with no "id" field is malformed input. There is no sane
    recovery (we cannot dedupe a keyless record), so the error aborts
    the whole run. Original script behavior: KeyError, hard stop.

IMPLEMENTATION RULES:
  - Pure function; no I/O, no logging. Skips are returned as data.
  - Never mutate the input collections.

USAGE:
  merged, skipped, err := merge.Merge(current,
      merge.Source{Name: "data/new_bench.json", Records: a},
      merge.Source{Name: "data/new_bench1.json", Records: b})

SELF-HEALING INSTRUCTIONS:
  - If dedupe misbehaves, check that ids compare as their decoded JSON
    types (string "1" and number 1 are intentionally distinct keys).

RELATED FILES:
  - internal/model/types.go
  - internal/merge/runner.go

MAINTENANCE:
  - Update if a dedupe key other than "id" is ever introduced.
*/

package merge

import (
	"fmt"

	"github.com/Maxamed/gaza-genocide/internal/model"
)

// Source is a named supplemental collection. The name appears in skip
// diagnostics and error messages; the runner uses the file path.
type Source struct {
	Name    string
	Records model.Collection
}

// Skip describes one record dropped because its id was already present.
type Skip struct {
	ID     any
	Source string
}

// Merge unions current with the given supplements in order, keeping the
// first record seen for each id. Records from current are copied
// verbatim and in order; each supplement then contributes only records
// whose id has not appeared yet. Dropped records are reported in
// skipped, in drop order.
//
// Any record lacking an "id" field makes the whole merge fail.
func Merge(current model.Collection, supplements ...Source) (model.Collection, []Skip, error) {
	total := len(current)
	for _, s := range supplements {
		total += len(s.Records)
	}

	merged := make(model.Collection, 0, total)
	merged = append(merged, current...)

	seen := make(map[any]struct{}, total)
	for i, b := range merged {
		id, ok := b.ID()
		if !ok {
			return nil, nil, fmt.Errorf("current dataset: record %d has no \"id\" field", i)
		}
		seen[id] = struct{}{}
	}

	var skipped []Skip
	for _, src := range supplements {
		for i, b := range src.Records {
			id, ok := b.ID()
			if !ok {
				return nil, nil, fmt.Errorf("%s: record %d has no \"id\" field", src.Name, i)
			}
			if _, dup := seen[id]; dup {
				skipped = append(skipped, Skip{ID: id, Source: src.Name})
				continue
			}
			merged = append(merged, b)
			seen[id] = struct{}{}
		}
	}

	return merged, skipped, nil
}
