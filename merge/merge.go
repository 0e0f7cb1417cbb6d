// Package merge combines several schema documents into one. Definitions
// are unioned in encounter order; on a name collision the later document
// wins and the conflict is logged.
package merge

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/schemaprofile/schema"
)

// ResolvePatterns expands doublestar glob patterns to schema file paths.
// Literal paths pass through unchanged. The result is deduplicated and
// kept in pattern order, with matches of a single pattern sorted.
func ResolvePatterns(patterns []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matched no files", pattern)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}

// Files loads and merges the schema documents at the given paths. The
// first document contributes the header (id, name, title, description);
// later documents contribute definitions and prefixes.
func Files(paths []string, logger *slog.Logger) (*schema.Document, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no schema files to merge")
	}

	var merged *schema.Document
	for _, path := range paths {
		doc, err := schema.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = base(doc)
		}
		mergeInto(merged, doc, path, logger)
		logger.Debug("Merged schema", "path", path)
	}

	// Empty sections are dropped rather than serialized as {}.
	if merged.Prefixes.Len() == 0 {
		merged.Prefixes = nil
	}
	if merged.Types.Len() == 0 {
		merged.Types = nil
	}
	if merged.Enums.Len() == 0 {
		merged.Enums = nil
	}
	if merged.Classes.Len() == 0 {
		merged.Classes = nil
	}
	return merged, nil
}

func base(doc *schema.Document) *schema.Document {
	return &schema.Document{
		ID:            doc.ID,
		Name:          doc.Name,
		Title:         doc.Title,
		Description:   doc.Description,
		DefaultPrefix: doc.DefaultPrefix,
		Prefixes:      schema.NewPrefixSet(),
		Types:         schema.NewTypeSet(),
		Enums:         schema.NewEnumSet(),
		Classes:       schema.NewClassSet(),
	}
}

func mergeInto(merged, doc *schema.Document, path string, logger *slog.Logger) {
	for _, p := range doc.Prefixes.All() {
		if uri, ok := merged.Prefixes.Get(p.Prefix); ok && uri != p.URI {
			logger.Warn("Prefix redefined", "prefix", p.Prefix, "path", path)
		}
		merged.Prefixes.Add(p.Prefix, p.URI)
	}
	for _, def := range doc.Types.All() {
		if _, ok := merged.Types.Get(def.Name); ok {
			logger.Warn("Type redefined, later definition wins", "type", def.Name, "path", path)
		}
		merged.Types.Add(def)
	}
	for _, def := range doc.Enums.All() {
		if _, ok := merged.Enums.Get(def.Name); ok {
			logger.Warn("Enum redefined, later definition wins", "enum", def.Name, "path", path)
		}
		merged.Enums.Add(def)
	}
	for _, def := range doc.Classes.All() {
		if _, ok := merged.Classes.Get(def.Name); ok {
			logger.Warn("Class redefined, later definition wins", "class", def.Name, "path", path)
		}
		merged.Classes.Add(def)
	}
}
