package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/phrasal/extract"
)

// JSONRenderer writes analyses as JSON to a writer.
type JSONRenderer struct {
	W io.Writer

	// Indent pretty prints the output with two spaces.
	Indent bool
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the analyses as a JSON array. A nil slice is written as
// an empty array.
func (r *JSONRenderer) Render(analyses []extract.Analysis) error {
	if analyses == nil {
		analyses = []extract.Analysis{}
	}

	enc := json.NewEncoder(r.W)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(analyses)
}
