// Package profile computes the dependency closure of a set of seed
// classes over a schema graph and materializes it as a new, self-
// contained schema document.
//
// The resolver is an iterative graph walk with an explicit visited set,
// so cyclic range relations (A has a slot ranging over B, B over A)
// terminate. A pluggable policy decides at each class-typed slot edge
// whether to follow the range or replace it with the placeholder type.
package profile

import (
	"fmt"

	"github.com/c360studio/schemaprofile/schema"
)

// PlaceholderType is the name of the synthesized type that stands in for
// ranges the profiler intentionally did not follow.
const PlaceholderType = "ReplacedByProfiler"

type slotKey struct {
	Owner string
	Slot  string
}

// ClosureSet is the immutable outcome of a resolve: which classes, enums
// and types belong in the profile, plus the slot ranges rewritten to the
// placeholder type.
type ClosureSet struct {
	classes  map[string]struct{}
	enums    map[string]struct{}
	types    map[string]struct{}
	rewrites map[slotKey]string

	// Placeholder reports whether the placeholder type must be part of
	// the output.
	Placeholder bool
}

func newClosureSet() *ClosureSet {
	return &ClosureSet{
		classes:  make(map[string]struct{}),
		enums:    make(map[string]struct{}),
		types:    make(map[string]struct{}),
		rewrites: make(map[slotKey]string),
	}
}

// HasClass reports whether a class is part of the closure.
func (c *ClosureSet) HasClass(name string) bool {
	_, ok := c.classes[name]
	return ok
}

// HasEnum reports whether an enum is part of the closure.
func (c *ClosureSet) HasEnum(name string) bool {
	_, ok := c.enums[name]
	return ok
}

// HasType reports whether a type is part of the closure.
func (c *ClosureSet) HasType(name string) bool {
	_, ok := c.types[name]
	return ok
}

// RangeFor returns the effective range of a slot in the profile: the
// placeholder type name if the edge was replaced, otherwise the original
// range unchanged.
func (c *ClosureSet) RangeFor(owner, slot, original string) string {
	if replaced, ok := c.rewrites[slotKey{Owner: owner, Slot: slot}]; ok {
		return replaced
	}
	return original
}

// Counts returns the number of classes, enums and types in the closure.
func (c *ClosureSet) Counts() (classes, enums, types int) {
	return len(c.classes), len(c.enums), len(c.types)
}

// Result pairs the closure with the ordered log of skip decisions made
// while computing it. Events appear in traversal order, so identical
// inputs always produce an identical sequence.
type Result struct {
	Included *ClosureSet
	Skipped  []SkipEvent
}

// Resolve computes the dependency closure of the seed classes under the
// given policy. Ancestors of every reached class are always pulled in
// full; enum- and type-valued ranges are inert leaves; class-valued
// ranges go through the policy.
//
// Unknown seeds fail with SeedNotFoundError before any traversal, and a
// slot range missing from the source fails with UnresolvedRangeError.
// Neither produces partial output.
func Resolve(view *schema.View, seeds []string, policy Policy) (*Result, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seed classes given")
	}

	seeded := make(map[string]bool, len(seeds))
	for _, name := range seeds {
		if _, ok := view.Class(name); !ok {
			return nil, &SeedNotFoundError{Name: name}
		}
		seeded[name] = true
	}

	included := newClosureSet()
	var skipped []SkipEvent
	visited := make(map[string]bool)
	queue := append([]string(nil), seeds...)

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited[name] {
			continue
		}
		visited[name] = true
		included.classes[name] = struct{}{}

		// Ancestors are included unconditionally so the hierarchy stays
		// connected to its root; they are enqueued so their own slots
		// get the same treatment.
		ancestors, err := view.Ancestors(name)
		if err != nil {
			return nil, err
		}
		for _, ancestor := range ancestors {
			included.classes[ancestor.Name] = struct{}{}
			if !visited[ancestor.Name] {
				queue = append(queue, ancestor.Name)
			}
		}

		for _, slot := range view.SlotsOf(name) {
			if slot.Range == "" {
				return nil, &UnresolvedRangeError{Class: name, Slot: slot.Name}
			}
			elem, ok := view.Resolve(slot.Range)
			if !ok {
				return nil, &UnresolvedRangeError{Class: name, Slot: slot.Name, Range: slot.Range}
			}
			switch rangeDef := elem.(type) {
			case *schema.TypeDef:
				included.types[rangeDef.Name] = struct{}{}
			case *schema.EnumDef:
				included.enums[rangeDef.Name] = struct{}{}
			case *schema.ClassDef:
				edge := Edge{
					Slot:     slot,
					Range:    rangeDef,
					Seeded:   seeded[rangeDef.Name],
					Included: included.HasClass(rangeDef.Name),
				}
				switch policy.Decide(edge) {
				case DecisionFollow:
					if !visited[rangeDef.Name] {
						queue = append(queue, rangeDef.Name)
					}
				case DecisionReplace:
					skipped = append(skipped, SkipEvent{
						Slot:          slot.Name,
						OwningClass:   name,
						OriginalRange: rangeDef.Name,
						Required:      slot.Required,
					})
					included.rewrites[slotKey{Owner: name, Slot: slot.Name}] = PlaceholderType
					included.Placeholder = true
				}
			}
		}
	}

	return &Result{Included: included, Skipped: skipped}, nil
}
