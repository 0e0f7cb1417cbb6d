package profile

import (
	"log/slog"

	"github.com/c360studio/schemaprofile/schema"
)

// DataProduct flattens a single class into a standalone logical model:
// inherited slots are materialized onto the class, every class-typed
// range is rewritten to the range of the referred class's identifier
// slot, and the parent link is dropped. A range class without an
// identifier slot keeps its original range and is logged, so the caller
// can follow up by hand.
func DataProduct(view *schema.View, className string, logger *slog.Logger) (*schema.Document, error) {
	if logger == nil {
		logger = slog.Default()
	}

	class, ok := view.Class(className)
	if !ok {
		return nil, &SeedNotFoundError{Name: className}
	}
	ancestors, err := view.Ancestors(className)
	if err != nil {
		return nil, err
	}

	// Inherited slots come first, root downward, so an override declared
	// nearer the class wins while keeping the inherited position.
	attrs := schema.NewSlotSet()
	addSlots := func(slots []*schema.SlotDef) {
		for _, slot := range slots {
			copied := *slot
			copied.Owner = className
			attrs.Add(&copied)
		}
	}
	for i := len(ancestors) - 1; i >= 0; i-- {
		addSlots(ancestors[i].Slots())
	}
	addSlots(class.Slots())

	for _, slot := range attrs.All() {
		rangeClass, ok := view.Class(slot.Range)
		if !ok {
			continue
		}
		idSlot, ok := view.IdentifierSlot(rangeClass.Name)
		if !ok {
			logger.Warn("No identifier slot for range class",
				"class", className,
				"slot", slot.Name,
				"range", rangeClass.Name)
			continue
		}
		logger.Debug("Rewrote range to identifier type",
			"slot", slot.Name,
			"from", slot.Range,
			"to", idSlot.Range)
		slot.Range = idSlot.Range
	}

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

	// Carry the types and enums the flattened slots still refer to.
	referenced := make(map[string]bool)
	for _, slot := range attrs.All() {
		referenced[slot.Range] = true
	}
	types := schema.NewTypeSet()
	for _, def := range src.Types.All() {
		if referenced[def.Name] {
			copied := *def
			types.Add(&copied)
		}
	}
	if types.Len() > 0 {
		out.Types = types
	}
	enums := schema.NewEnumSet()
	for _, def := range src.Enums.All() {
		if referenced[def.Name] {
			copied := *def
			enums.Add(&copied)
		}
	}
	if enums.Len() > 0 {
		out.Enums = enums
	}

	flattened := &schema.ClassDef{
		Name:        className,
		Description: class.Description,
	}
	if attrs.Len() > 0 {
		flattened.Attributes = attrs
	}
	classes := schema.NewClassSet()
	classes.Add(flattened)
	out.Classes = classes

	logger.Info("Processed class as data product",
		"class", className,
		"slots", attrs.Len())
	return out, nil
}
