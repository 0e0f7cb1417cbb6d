package schema

import (
	"fmt"
)

// View provides relationship accessors over a loaded Document. The
// underlying document is treated as read-only; a View is safe for
// concurrent readers.
type View struct {
	doc      *Document
	elements map[string]Element
	children map[string][]string
}

// NewView indexes a document. It fails if the same name is defined as
// more than one kind, since classes, enums and types share a single
// namespace.
func NewView(doc *Document) (*View, error) {
	v := &View{
		doc:      doc,
		elements: make(map[string]Element),
		children: make(map[string][]string),
	}
	for _, def := range doc.Types.All() {
		if err := v.index(def); err != nil {
			return nil, err
		}
	}
	for _, def := range doc.Enums.All() {
		if err := v.index(def); err != nil {
			return nil, err
		}
	}
	for _, def := range doc.Classes.All() {
		if err := v.index(def); err != nil {
			return nil, err
		}
		if def.IsA != "" {
			v.children[def.IsA] = append(v.children[def.IsA], def.Name)
		}
	}
	return v, nil
}

func (v *View) index(def Element) error {
	name := def.ElementName()
	if existing, ok := v.elements[name]; ok {
		return fmt.Errorf("duplicate definition %q: %s and %s", name, elementKind(existing), elementKind(def))
	}
	v.elements[name] = def
	return nil
}

func elementKind(e Element) string {
	switch e.(type) {
	case *ClassDef:
		return "class"
	case *EnumDef:
		return "enum"
	case *TypeDef:
		return "type"
	default:
		return "unknown"
	}
}

// Doc returns the underlying document.
func (v *View) Doc() *Document { return v.doc }

// Resolve looks up a name in the shared definition namespace.
func (v *View) Resolve(name string) (Element, bool) {
	e, ok := v.elements[name]
	return e, ok
}

// Class returns the class with the given name.
func (v *View) Class(name string) (*ClassDef, bool) {
	def, ok := v.elements[name].(*ClassDef)
	return def, ok
}

// Enum returns the enum with the given name.
func (v *View) Enum(name string) (*EnumDef, bool) {
	def, ok := v.elements[name].(*EnumDef)
	return def, ok
}

// Type returns the type with the given name.
func (v *View) Type(name string) (*TypeDef, bool) {
	def, ok := v.elements[name].(*TypeDef)
	return def, ok
}

// Ancestors returns the inheritance chain of a class, from immediate
// parent to root. The parent relation must form a forest; a cycle or a
// parent naming a non-class is reported as an error.
func (v *View) Ancestors(name string) ([]*ClassDef, error) {
	def, ok := v.Class(name)
	if !ok {
		return nil, fmt.Errorf("no class named %q", name)
	}
	var chain []*ClassDef
	seen := map[string]bool{def.Name: true}
	for def.IsA != "" {
		parent, ok := v.Class(def.IsA)
		if !ok {
			return nil, fmt.Errorf("class %q: parent %q is not a class", def.Name, def.IsA)
		}
		if seen[parent.Name] {
			return nil, fmt.Errorf("inheritance cycle through %q", parent.Name)
		}
		seen[parent.Name] = true
		chain = append(chain, parent)
		def = parent
	}
	return chain, nil
}

// Children returns the direct subclasses of a class, in document order.
func (v *View) Children(name string) []*ClassDef {
	var out []*ClassDef
	for _, child := range v.children[name] {
		if def, ok := v.Class(child); ok {
			out = append(out, def)
		}
	}
	return out
}

// Descendants returns every class whose ancestor chain includes the given
// class, in breadth-first document order.
func (v *View) Descendants(name string) []*ClassDef {
	var out []*ClassDef
	queue := append([]string(nil), v.children[name]...)
	seen := make(map[string]bool)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next] {
			continue
		}
		seen[next] = true
		if def, ok := v.Class(next); ok {
			out = append(out, def)
			queue = append(queue, v.children[next]...)
		}
	}
	return out
}

// Leaves returns every class with no subclasses, in document order.
func (v *View) Leaves() []*ClassDef {
	var out []*ClassDef
	for _, def := range v.doc.Classes.All() {
		if len(v.children[def.Name]) == 0 {
			out = append(out, def)
		}
	}
	return out
}

// SlotsOf returns the slots owned directly by a class, in declaration
// order. Inherited slots are not flattened in.
func (v *View) SlotsOf(name string) []*SlotDef {
	def, ok := v.Class(name)
	if !ok {
		return nil
	}
	return def.Slots()
}

// IdentifierSlot returns the slot carrying the identifier flag for a
// class, searching the class's own slots first and then its ancestors.
func (v *View) IdentifierSlot(name string) (*SlotDef, bool) {
	class, ok := v.Class(name)
	if !ok {
		return nil, false
	}
	for _, slot := range class.Slots() {
		if slot.Identifier {
			return slot, true
		}
	}
	ancestors, err := v.Ancestors(name)
	if err != nil {
		return nil, false
	}
	for _, ancestor := range ancestors {
		for _, slot := range ancestor.Slots() {
			if slot.Identifier {
				return slot, true
			}
		}
	}
	return nil, false
}
