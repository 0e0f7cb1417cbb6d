package profile

import "fmt"

// SeedNotFoundError reports a requested seed name that does not resolve
// to a class in the source schema. It aborts profiling before any
// traversal work is done.
type SeedNotFoundError struct {
	Name string
}

func (e *SeedNotFoundError) Error() string {
	return fmt.Sprintf("no class named %q in the source schema", e.Name)
}

// UnresolvedRangeError reports a slot whose range is missing from the
// source schema. This is a malformed input, not a policy decision, and
// aborts the whole operation with no partial output.
type UnresolvedRangeError struct {
	Class string
	Slot  string
	Range string
}

func (e *UnresolvedRangeError) Error() string {
	if e.Range == "" {
		return fmt.Sprintf("slot %s.%s has no range", e.Class, e.Slot)
	}
	return fmt.Sprintf("slot %s.%s: range %q does not resolve to a class, enum or type", e.Class, e.Slot, e.Range)
}
