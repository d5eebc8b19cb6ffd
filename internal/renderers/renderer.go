package renderers

import (
	"fmt"
	"io"
	"strings"

	"vmhealth/internal/models"
)

const GB = 1024 * 1024 * 1024

// Renderer writes a finished report to an output sink. Implementations only
// read report fields; alert verdicts are never recomputed.
type Renderer interface {
	Render(w io.Writer, report *models.SystemHealthReport) error
}

// Output formats
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Formats lists the accepted --format values
var Formats = []string{FormatText, FormatMarkdown, FormatJSON, FormatYAML}

// New returns the renderer for format. color only affects the text renderer.
func New(format string, color bool) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return &TextRenderer{Color: color}, nil
	case FormatMarkdown, "md":
		return &MarkdownRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{Indent: "  "}, nil
	case FormatYAML, "yml":
		return &YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (valid: %s)", format, strings.Join(Formats, ", "))
	}
}

const timeLayout = "2006-01-02 15:04:05"

func toGB(b uint64) float64 {
	return float64(b) / GB
}

// formatLimit prints 80 as "80" and 87.5 as "87.5"
func formatLimit(limit float64) string {
	return fmt.Sprintf("%g", limit)
}

func uptimeText(u models.UptimeInfo) string {
	days, hours, minutes := u.Decompose()
	return fmt.Sprintf("%d days, %d hours, %d minutes", days, hours, minutes)
}
