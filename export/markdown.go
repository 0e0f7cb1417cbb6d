package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/schemaprofile/schema"
)

// writeMarkdown renders per-class documentation tables: one section per
// class in document order, with a slot table listing range and required
// flag.
func writeMarkdown(w io.Writer, doc *schema.Document) error {
	var b strings.Builder

	title := doc.Title
	if title == "" {
		title = doc.Name
	}
	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	if doc.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", collapse(doc.Description))
	}

	for _, class := range doc.Classes.All() {
		fmt.Fprintf(&b, "## %s\n\n", class.Name)
		if class.IsA != "" {
			fmt.Fprintf(&b, "*is_a: %s*\n\n", class.IsA)
		}
		if class.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", collapse(class.Description))
		}
		slots := class.Slots()
		if len(slots) == 0 {
			continue
		}
		b.WriteString("| Slot | Range | Required | Description |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, slot := range slots {
			required := ""
			if slot.Required {
				required = "yes"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				slot.Name, slot.Range, required, collapse(slot.Description))
		}
		b.WriteString("\n")
	}

	for _, enum := range doc.Enums.All() {
		fmt.Fprintf(&b, "## %s\n\n", enum.Name)
		if enum.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", collapse(enum.Description))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// collapse keeps table cells on one line.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
