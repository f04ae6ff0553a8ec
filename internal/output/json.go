/*
PURPOSE:
  Writes a merged benchmark collection to a JSON file.
  Human-readable output: indented, UTF-8 kept literal.

REQUIREMENTS:
  User-specified:
  - 2-space indentation.
  - Non-ASCII text (Arabic names in the data) must not be escaped.

  Implementation-discovered:
  - encoding/json escapes <, >, & by default for HTML embedding;
    SetEscapeHTML(false) turns that off. Non-ASCII runes are already
    left alone by the encoder. Original script used ensure_ascii=False
    for the same effect.

ARCHITECTURE INTEGRATION:
  - Called by: internal/merge/runner.go
  - Consumes: internal/model.Collection

ERROR HANDLING:
  - Returns error on file creation or write failure. An unwritable
    output path aborts the run; there is nothing useful to do with a
    merge result we cannot persist.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder; single document, single Encode call.

USAGE:
  err := output.WriteCollection("data/benchmarks_merged.json", merged)

SELF-HEALING INSTRUCTIONS:
  - If diffs show \u escapes creeping in, check SetEscapeHTML is still off.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update if output ever needs to stream instead of encode-at-once.
*/

package output

import (
	"encoding/json"
	"os"

	"github.com/Maxamed/gaza-genocide/internal/model"
)

// WriteCollection serializes c as an indented JSON array to path,
// overwriting any existing file.
func WriteCollection(path string, c model.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
