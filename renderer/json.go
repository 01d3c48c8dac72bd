package renderer

import (
	"encoding/json"
	"io"

	"github.com/ChainSafe/mips-explain/explainer"
)

// JSONRenderer renders reports in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(reports []*explainer.Report, output io.Writer) error {
	return json.NewEncoder(output).Encode(reports)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
