package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/schemaprofile/schema"
)

// writeJSON converts the document through its YAML form so that the
// order-preserving marshalling in the schema package stays the single
// source of serialization truth.
func writeJSON(w io.Writer, doc *schema.Document) error {
	var buf bytes.Buffer
	if err := schema.Write(&buf, doc); err != nil {
		return err
	}
	var tree any
	if err := yaml.Unmarshal(buf.Bytes(), &tree); err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tree)
}
