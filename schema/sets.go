package schema

import (
	"gopkg.in/yaml.v3"
)

// ClassSet is an order-preserving map of class name to definition.
type ClassSet struct {
	names []string
	defs  map[string]*ClassDef
}

// NewClassSet returns an empty ClassSet.
func NewClassSet() *ClassSet {
	return &ClassSet{defs: make(map[string]*ClassDef)}
}

// Add inserts or replaces a class, keeping first-insertion order.
func (s *ClassSet) Add(def *ClassDef) {
	if _, ok := s.defs[def.Name]; !ok {
		s.names = append(s.names, def.Name)
	}
	s.defs[def.Name] = def
}

// Get returns the class with the given name.
func (s *ClassSet) Get(name string) (*ClassDef, bool) {
	if s == nil {
		return nil, false
	}
	def, ok := s.defs[name]
	return def, ok
}

// Names returns class names in document order.
func (s *ClassSet) Names() []string {
	if s == nil {
		return nil
	}
	return s.names
}

// All returns definitions in document order.
func (s *ClassSet) All() []*ClassDef {
	if s == nil {
		return nil
	}
	out := make([]*ClassDef, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.defs[name])
	}
	return out
}

// Len returns the number of classes.
func (s *ClassSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// UnmarshalYAML decodes a mapping of class name to definition, preserving
// document order.
func (s *ClassSet) UnmarshalYAML(node *yaml.Node) error {
	s.names = nil
	s.defs = make(map[string]*ClassDef)
	return decodeMapping(node, "classes", func(key string, value *yaml.Node) error {
		def := &ClassDef{Name: key}
		if value.Tag != "!!null" {
			if err := value.Decode(def); err != nil {
				return err
			}
		}
		def.Name = key
		if def.Attributes != nil {
			def.Attributes.setOwner(key)
		}
		s.Add(def)
		return nil
	})
}

// MarshalYAML encodes the set as a mapping in document order.
func (s *ClassSet) MarshalYAML() (any, error) {
	return encodeMapping(s.Names(), func(key string) (any, error) {
		return s.defs[key], nil
	})
}

// SlotSet is an order-preserving map of slot name to definition.
type SlotSet struct {
	names []string
	defs  map[string]*SlotDef
}

// NewSlotSet returns an empty SlotSet.
func NewSlotSet() *SlotSet {
	return &SlotSet{defs: make(map[string]*SlotDef)}
}

// Add inserts or replaces a slot, keeping first-insertion order.
func (s *SlotSet) Add(def *SlotDef) {
	if _, ok := s.defs[def.Name]; !ok {
		s.names = append(s.names, def.Name)
	}
	s.defs[def.Name] = def
}

// Get returns the slot with the given name.
func (s *SlotSet) Get(name string) (*SlotDef, bool) {
	if s == nil {
		return nil, false
	}
	def, ok := s.defs[name]
	return def, ok
}

// All returns definitions in document order.
func (s *SlotSet) All() []*SlotDef {
	if s == nil {
		return nil
	}
	out := make([]*SlotDef, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.defs[name])
	}
	return out
}

// Len returns the number of slots.
func (s *SlotSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

func (s *SlotSet) setOwner(owner string) {
	for _, def := range s.defs {
		def.Owner = owner
	}
}

// UnmarshalYAML decodes a mapping of slot name to definition, preserving
// document order.
func (s *SlotSet) UnmarshalYAML(node *yaml.Node) error {
	s.names = nil
	s.defs = make(map[string]*SlotDef)
	return decodeMapping(node, "attributes", func(key string, value *yaml.Node) error {
		def := &SlotDef{Name: key}
		if value.Tag != "!!null" {
			if err := value.Decode(def); err != nil {
				return err
			}
		}
		def.Name = key
		s.Add(def)
		return nil
	})
}

// MarshalYAML encodes the set as a mapping in document order.
func (s *SlotSet) MarshalYAML() (any, error) {
	return encodeMapping(s.names, func(key string) (any, error) {
		return s.defs[key], nil
	})
}

// EnumSet is an order-preserving map of enum name to definition.
type EnumSet struct {
	names []string
	defs  map[string]*EnumDef
}

// NewEnumSet returns an empty EnumSet.
func NewEnumSet() *EnumSet {
	return &EnumSet{defs: make(map[string]*EnumDef)}
}

// Add inserts or replaces an enum, keeping first-insertion order.
func (s *EnumSet) Add(def *EnumDef) {
	if _, ok := s.defs[def.Name]; !ok {
		s.names = append(s.names, def.Name)
	}
	s.defs[def.Name] = def
}

// Get returns the enum with the given name.
func (s *EnumSet) Get(name string) (*EnumDef, bool) {
	if s == nil {
		return nil, false
	}
	def, ok := s.defs[name]
	return def, ok
}

// Names returns enum names in document order.
func (s *EnumSet) Names() []string {
	if s == nil {
		return nil
	}
	return s.names
}

// All returns definitions in document order.
func (s *EnumSet) All() []*EnumDef {
	if s == nil {
		return nil
	}
	out := make([]*EnumDef, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.defs[name])
	}
	return out
}

// Len returns the number of enums.
func (s *EnumSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// UnmarshalYAML decodes a mapping of enum name to definition, preserving
// document order.
func (s *EnumSet) UnmarshalYAML(node *yaml.Node) error {
	s.names = nil
	s.defs = make(map[string]*EnumDef)
	return decodeMapping(node, "enums", func(key string, value *yaml.Node) error {
		def := &EnumDef{Name: key}
		if value.Tag != "!!null" {
			if err := value.Decode(def); err != nil {
				return err
			}
		}
		def.Name = key
		s.Add(def)
		return nil
	})
}

// MarshalYAML encodes the set as a mapping in document order.
func (s *EnumSet) MarshalYAML() (any, error) {
	return encodeMapping(s.Names(), func(key string) (any, error) {
		return s.defs[key], nil
	})
}

// TypeSet is an order-preserving map of type name to definition.
type TypeSet struct {
	names []string
	defs  map[string]*TypeDef
}

// NewTypeSet returns an empty TypeSet.
func NewTypeSet() *TypeSet {
	return &TypeSet{defs: make(map[string]*TypeDef)}
}

// Add inserts or replaces a type, keeping first-insertion order.
func (s *TypeSet) Add(def *TypeDef) {
	if _, ok := s.defs[def.Name]; !ok {
		s.names = append(s.names, def.Name)
	}
	s.defs[def.Name] = def
}

// Get returns the type with the given name.
func (s *TypeSet) Get(name string) (*TypeDef, bool) {
	if s == nil {
		return nil, false
	}
	def, ok := s.defs[name]
	return def, ok
}

// Names returns type names in document order.
func (s *TypeSet) Names() []string {
	if s == nil {
		return nil
	}
	return s.names
}

// All returns definitions in document order.
func (s *TypeSet) All() []*TypeDef {
	if s == nil {
		return nil
	}
	out := make([]*TypeDef, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.defs[name])
	}
	return out
}

// Len returns the number of types.
func (s *TypeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// UnmarshalYAML decodes a mapping of type name to definition, preserving
// document order.
func (s *TypeSet) UnmarshalYAML(node *yaml.Node) error {
	s.names = nil
	s.defs = make(map[string]*TypeDef)
	return decodeMapping(node, "types", func(key string, value *yaml.Node) error {
		def := &TypeDef{Name: key}
		if value.Tag != "!!null" {
			if err := value.Decode(def); err != nil {
				return err
			}
		}
		def.Name = key
		s.Add(def)
		return nil
	})
}

// MarshalYAML encodes the set as a mapping in document order.
func (s *TypeSet) MarshalYAML() (any, error) {
	return encodeMapping(s.Names(), func(key string) (any, error) {
		return s.defs[key], nil
	})
}

// PrefixSet is an order-preserving map of prefix to namespace URI.
type PrefixSet struct {
	names []string
	uris  map[string]string
}

// NewPrefixSet returns an empty PrefixSet.
func NewPrefixSet() *PrefixSet {
	return &PrefixSet{uris: make(map[string]string)}
}

// Add binds a prefix to a URI, keeping first-insertion order.
func (s *PrefixSet) Add(prefix, uri string) {
	if _, ok := s.uris[prefix]; !ok {
		s.names = append(s.names, prefix)
	}
	s.uris[prefix] = uri
}

// Get returns the URI bound to a prefix.
func (s *PrefixSet) Get(prefix string) (string, bool) {
	if s == nil {
		return "", false
	}
	uri, ok := s.uris[prefix]
	return uri, ok
}

// HasURI reports whether any prefix is bound to the given URI.
func (s *PrefixSet) HasURI(uri string) bool {
	if s == nil {
		return false
	}
	for _, u := range s.uris {
		if u == uri {
			return true
		}
	}
	return false
}

// All returns prefix bindings in document order.
func (s *PrefixSet) All() []PrefixDef {
	if s == nil {
		return nil
	}
	out := make([]PrefixDef, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, PrefixDef{Prefix: name, URI: s.uris[name]})
	}
	return out
}

// Len returns the number of bindings.
func (s *PrefixSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// UnmarshalYAML decodes a mapping of prefix to URI, preserving document
// order.
func (s *PrefixSet) UnmarshalYAML(node *yaml.Node) error {
	s.names = nil
	s.uris = make(map[string]string)
	return decodeMapping(node, "prefixes", func(key string, value *yaml.Node) error {
		var uri string
		if err := value.Decode(&uri); err != nil {
			return err
		}
		s.Add(key, uri)
		return nil
	})
}

// MarshalYAML encodes the set as a mapping in document order.
func (s *PrefixSet) MarshalYAML() (any, error) {
	return encodeMapping(s.names, func(key string) (any, error) {
		return s.uris[key], nil
	})
}
