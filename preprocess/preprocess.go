// Package preprocess prepares a schema for a downstream code generator
// by renaming class attributes to snake_case. Explicit overrides take
// precedence over the mechanical conversion.
package preprocess

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/c360studio/schemaprofile/schema"
)

// SnakeCaseAttributes returns a copy of the document with every class
// attribute renamed to snake_case. The overrides map routes specific
// attribute names to a chosen replacement. Slot order within each class
// is preserved.
func SnakeCaseAttributes(doc *schema.Document, overrides map[string]string, logger *slog.Logger) *schema.Document {
	if logger == nil {
		logger = slog.Default()
	}

	out := *doc
	if doc.Classes.Len() == 0 {
		return &out
	}

	classes := schema.NewClassSet()
	for _, class := range doc.Classes.All() {
		copied := *class
		if slots := class.Slots(); len(slots) > 0 {
			attrs := schema.NewSlotSet()
			for _, slot := range slots {
				name, ok := overrides[slot.Name]
				if !ok {
					name = ToSnakeCase(slot.Name)
				}
				if name != slot.Name {
					logger.Debug("Renamed attribute",
						"class", class.Name, "from", slot.Name, "to", name)
				}
				renamed := *slot
				renamed.Name = name
				attrs.Add(&renamed)
			}
			copied.Attributes = attrs
		}
		classes.Add(&copied)
	}
	out.Classes = classes
	return &out
}

// ToSnakeCase converts camelCase and PascalCase identifiers to
// snake_case. Runs of upper-case letters are treated as one word, so
// "HTTPHeader" becomes "http_header".
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || (unicode.IsUpper(runes[i-1]) && nextLower)) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == ' ' || r == '-' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
