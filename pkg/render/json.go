package render

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/kundali/pkg/chart"
)

// RenderJSON encodes the layout as indented JSON with a trailing newline.
// Identical layouts encode to identical bytes.
func RenderJSON(l chart.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return append(data, '\n'), nil
}
