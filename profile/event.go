package profile

import "fmt"

// SkipEvent records one replaced slot edge: which attribute was affected,
// on which class, what range it originally had, and whether the slot was
// required. Required-slot replacements leave the profile unusable without
// manual follow-up; optional ones narrow it but keep it valid.
type SkipEvent struct {
	Slot          string
	OwningClass   string
	OriginalRange string
	Required      bool
}

func (e SkipEvent) String() string {
	kind := "optional"
	if e.Required {
		kind = "required"
	}
	return fmt.Sprintf("replaced %s slot %s.%s (was %s)", kind, e.OwningClass, e.Slot, e.OriginalRange)
}
