package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/votesim/simulation"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// JSON writes out as indented JSON.
func JSON(w io.Writer, out *simulation.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Write renders out in the named format.
func Write(w io.Writer, out *simulation.Outcome, format string) error {
	switch format {
	case FormatText, "":
		return Summary(w, out)
	case FormatJSON:
		return JSON(w, out)
	default:
		return fmt.Errorf("report: unknown format %q (valid: text, json)", format)
	}
}
