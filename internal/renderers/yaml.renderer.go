package renderers

import (
	"io"

	"vmhealth/internal/models"

	"gopkg.in/yaml.v3"
)

type YAMLRenderer struct{}

func (y *YAMLRenderer) Render(w io.Writer, report *models.SystemHealthReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
