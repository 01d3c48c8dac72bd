package renderer

import (
	"fmt"
	"io"

	"github.com/ChainSafe/mips-explain/explainer"
	"github.com/ChainSafe/mips-explain/profile"
)

// Renderer defines the interface for rendering explanation reports in different formats.
type Renderer interface {
	// Render takes a list of reports and outputs them in the desired format to the provided writer.
	Render(reports []*explainer.Report, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}

// New returns the renderer for the given format name.
func New(format string, prof *profile.Profile) (Renderer, error) {
	switch format {
	case "text":
		return NewTextRenderer(prof), nil
	case "json":
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}
