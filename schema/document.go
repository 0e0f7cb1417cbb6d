// Package schema provides the in-memory model for LinkML-flavoured schema
// documents: classes with single-parent inheritance, slots (typed class
// attributes), enumerations, primitive type definitions, and namespace
// prefixes.
//
// Mapping order from the source document is preserved through load and
// write, so that identical inputs always serialize to identical outputs.
package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a complete schema document.
//
// Field order here controls serialization order: header fields first,
// then prefixes, then definitions with classes last.
type Document struct {
	ID            string     `yaml:"id,omitempty"`
	Name          string     `yaml:"name,omitempty"`
	Title         string     `yaml:"title,omitempty"`
	Description   string     `yaml:"description,omitempty"`
	DefaultPrefix string     `yaml:"default_prefix,omitempty"`
	Prefixes      *PrefixSet `yaml:"prefixes,omitempty"`
	Types         *TypeSet   `yaml:"types,omitempty"`
	Enums         *EnumSet   `yaml:"enums,omitempty"`
	Classes       *ClassSet  `yaml:"classes,omitempty"`
}

// ClassDef is a class definition. Classes have at most one parent (is_a)
// and own an ordered sequence of slots declared as attributes.
type ClassDef struct {
	Name        string   `yaml:"-"`
	IsA         string   `yaml:"is_a,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Attributes  *SlotSet `yaml:"attributes,omitempty"`
}

// SlotDef is a typed attribute owned by exactly one class. Range names a
// class, an enum, or a type; the three kinds share one namespace. At most
// one slot per class hierarchy carries the identifier flag.
type SlotDef struct {
	Name        string `yaml:"-"`
	Owner       string `yaml:"-"`
	Range       string `yaml:"range,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
	Identifier  bool   `yaml:"identifier,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// EnumDef is an enumeration. Permissible values are opaque to the
// profiler and copied verbatim.
type EnumDef struct {
	Name              string     `yaml:"-"`
	Description       string     `yaml:"description,omitempty"`
	PermissibleValues *yaml.Node `yaml:"permissible_values,omitempty"`
}

// TypeDef is a primitive type definition. Base may chain to another type
// or to a primitive in the target representation.
type TypeDef struct {
	Name        string `yaml:"-"`
	Base        string `yaml:"base,omitempty"`
	URI         string `yaml:"uri,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// PrefixDef binds a namespace prefix to a URI.
type PrefixDef struct {
	Prefix string
	URI    string
}

// Element is the tagged variant over the three definition kinds that share
// the schema's name namespace. Resolve returns one of *ClassDef, *EnumDef
// or *TypeDef.
type Element interface {
	// ElementName returns the definition's name.
	ElementName() string
	// Doc returns the definition's documentation string.
	Doc() string
}

// ElementName implements Element.
func (c *ClassDef) ElementName() string { return c.Name }

// Doc implements Element.
func (c *ClassDef) Doc() string { return c.Description }

// ElementName implements Element.
func (e *EnumDef) ElementName() string { return e.Name }

// Doc implements Element.
func (e *EnumDef) Doc() string { return e.Description }

// ElementName implements Element.
func (t *TypeDef) ElementName() string { return t.Name }

// Doc implements Element.
func (t *TypeDef) Doc() string { return t.Description }

// Slots returns the class's owned slots in declaration order. Inherited
// slots are not included; inheritance stays a schema-level declaration.
func (c *ClassDef) Slots() []*SlotDef {
	if c.Attributes == nil {
		return nil
	}
	return c.Attributes.All()
}

// decodeMapping walks a YAML mapping node in document order, calling fn
// for each key/value pair.
func decodeMapping(node *yaml.Node, kind string, fn func(key string, value *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected a mapping at line %d", kind, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if err := fn(keyNode.Value, valueNode); err != nil {
			return err
		}
	}
	return nil
}

// encodeMapping builds a YAML mapping node from ordered keys, encoding
// each value through fn.
func encodeMapping(keys []string, fn func(key string) (any, error)) (*yaml.Node, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range keys {
		value, err := fn(key)
		if err != nil {
			return nil, err
		}
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valueNode := &yaml.Node{}
		if node, ok := value.(*yaml.Node); ok {
			valueNode = node
		} else if err := valueNode.Encode(value); err != nil {
			return nil, fmt.Errorf("encode %q: %w", key, err)
		}
		mapping.Content = append(mapping.Content, keyNode, valueNode)
	}
	return mapping, nil
}
