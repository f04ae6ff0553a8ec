/*
PURPOSE:
  Fail-soft loading of benchmark collections from JSON files.
  A source that cannot be read contributes zero records, not a crash.

REQUIREMENTS:
  User-specified:
  - A missing or corrupt input file must degrade to "empty source";
    the merge continues with whatever did load.

  Implementation-discovered:
  - The diagnostic must name the file and the underlying error, or
    silent data loss becomes invisible.

ARCHITECTURE INTEGRATION:
  - Called by: internal/merge/runner.go, internal/cli (stats)
  - Uses: internal/output.Logger

ERROR HANDLING:
  - Deliberately swallows every failure after logging it. This is the
    recoverable tier; malformed records inside a file that *did* parse
    are handled later, in Merge.

IMPLEMENTATION RULES:
  - Always return a usable (possibly empty) collection, never nil error
    handling burden for callers.

USAGE:
  current := merge.LoadCollection("data/benchmarks.json")

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/merge/merge.go

MAINTENANCE:
  - Update if inputs ever move off the local filesystem.
*/

package merge

import (
	"encoding/json"
	"os"

	"github.com/Maxamed/gaza-genocide/internal/model"
	"github.com/Maxamed/gaza-genocide/internal/output"
)

// LoadCollection reads a JSON array of benchmark objects from path.
// Any failure is logged and yields an empty collection.
func LoadCollection(path string) model.Collection {
	data, err := os.ReadFile(path)
	if err != nil {
		output.Logger.Error("Failed to load benchmark file", "file", path, "error", err)
		return model.Collection{}
	}

	var c model.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		output.Logger.Error("Failed to parse benchmark file", "file", path, "error", err)
		return model.Collection{}
	}

	return c
}
