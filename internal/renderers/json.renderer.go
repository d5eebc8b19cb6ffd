package renderers

import (
	"io"

	"vmhealth/internal/models"

	"github.com/goccy/go-json"
)

// JSONRenderer writes the report as a single JSON document
type JSONRenderer struct {
	Indent string
}

func (j *JSONRenderer) Render(w io.Writer, report *models.SystemHealthReport) error {
	enc := json.NewEncoder(w)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	return enc.Encode(report)
}
