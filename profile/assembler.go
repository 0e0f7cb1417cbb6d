package profile

import (
	"regexp"
	"strings"

	"github.com/c360studio/schemaprofile/schema"
)

// DefaultPrefix is the prefix the assembled profile binds to the source
// schema's own identifier.
const DefaultPrefix = "this"

var whitespaceRe = regexp.MustCompile(`\s+`)

// AssembleOptions configures profile materialization.
type AssembleOptions struct {
	// FixDoc collapses embedded line breaks and runs of whitespace in
	// every copied definition's documentation into single spaces.
	FixDoc bool
}

// Assemble materializes a resolved closure as a fresh, self-contained
// schema document. No source entity is mutated; replaced ranges produce
// new slot values pointing at the placeholder type. Source ordering of
// classes, slots, enums, types and prefixes is preserved, so assembly is
// deterministic given the same closure.
func Assemble(view *schema.View, result *Result, opts AssembleOptions) *schema.Document {
	src := view.Doc()
	out := &schema.Document{
		ID:            src.ID,
		Name:          src.Name,
		Title:         src.Title,
		Description:   src.Description,
		DefaultPrefix: DefaultPrefix,
	}

	if prefixes := copyPrefixes(src); prefixes.Len() > 0 {
		out.Prefixes = prefixes
	}

	types := schema.NewTypeSet()
	for _, def := range src.Types.All() {
		if !result.Included.HasType(def.Name) {
			continue
		}
		copied := *def
		copied.Description = fixDoc(def.Description, opts.FixDoc)
		types.Add(&copied)
	}
	if result.Included.Placeholder {
		types.Add(&schema.TypeDef{
			Name:        PlaceholderType,
			Description: "Range was replaced by the profiler",
		})
	}
	if types.Len() > 0 {
		out.Types = types
	}

	enums := schema.NewEnumSet()
	for _, def := range src.Enums.All() {
		if !result.Included.HasEnum(def.Name) {
			continue
		}
		copied := *def
		copied.Description = fixDoc(def.Description, opts.FixDoc)
		enums.Add(&copied)
	}
	if enums.Len() > 0 {
		out.Enums = enums
	}

	classes := schema.NewClassSet()
	for _, def := range src.Classes.All() {
		if !result.Included.HasClass(def.Name) {
			continue
		}
		copied := &schema.ClassDef{
			Name:        def.Name,
			IsA:         def.IsA,
			Description: fixDoc(def.Description, opts.FixDoc),
		}
		if slots := def.Slots(); len(slots) > 0 {
			attrs := schema.NewSlotSet()
			for _, slot := range slots {
				attrs.Add(&schema.SlotDef{
					Name:        slot.Name,
					Owner:       def.Name,
					Range:       result.Included.RangeFor(def.Name, slot.Name, slot.Range),
					Required:    slot.Required,
					Identifier:  slot.Identifier,
					Description: fixDoc(slot.Description, opts.FixDoc),
				})
			}
			copied.Attributes = attrs
		}
		classes.Add(copied)
	}
	if classes.Len() > 0 {
		out.Classes = classes
	}

	return out
}

// copyPrefixes copies every source prefix unfiltered, then binds the
// default prefix to the source document's identifier unless the prefix
// is taken or the URI is already bound.
func copyPrefixes(src *schema.Document) *schema.PrefixSet {
	prefixes := schema.NewPrefixSet()
	for _, p := range src.Prefixes.All() {
		prefixes.Add(p.Prefix, p.URI)
	}
	if _, bound := prefixes.Get(DefaultPrefix); !bound && src.ID != "" && !prefixes.HasURI(src.ID) {
		prefixes.Add(DefaultPrefix, src.ID)
	}
	return prefixes
}

func fixDoc(doc string, enabled bool) string {
	if !enabled || doc == "" {
		return doc
	}
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(doc), " ")
}
