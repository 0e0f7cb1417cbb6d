// Package export renders schema documents in interchange and
// documentation formats: YAML pass-through, JSON, and Markdown tables.
package export

import (
	"fmt"
	"io"

	"github.com/c360studio/schemaprofile/schema"
)

// Format identifies an export format.
type Format string

const (
	// FormatYAML writes the document as schema YAML.
	FormatYAML Format = "yaml"

	// FormatJSON writes the document as indented JSON.
	FormatJSON Format = "json"

	// FormatMarkdown writes documentation tables.
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format string. Common aliases are accepted.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (supported: yaml, json, markdown)", s)
	}
}

// Write renders a document in the given format.
func Write(w io.Writer, doc *schema.Document, format Format) error {
	switch format {
	case FormatYAML:
		return schema.Write(w, doc)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
