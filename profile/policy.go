package profile

import (
	"fmt"

	"github.com/c360studio/schemaprofile/schema"
)

// Decision is a policy's verdict on a single class-typed slot edge.
type Decision int

const (
	// DecisionFollow pulls the range class into the closure.
	DecisionFollow Decision = iota

	// DecisionReplace rewrites the slot's range to the placeholder type
	// and logs a SkipEvent instead of following the edge.
	DecisionReplace
)

// Mode selects a skip policy. The three modes are mutually exclusive.
type Mode string

const (
	// ModeIncludeAll follows every class-typed range; the unrestricted
	// closure. No SkipEvents are ever produced.
	ModeIncludeAll Mode = "include-all"

	// ModeExplicitOnly follows a class-typed range only when the range
	// class was named in the seed set or has already been pulled in
	// through an ancestor or explicit path.
	ModeExplicitOnly Mode = "explicit-only"

	// ModeSkipOptional is the historical variant keyed purely on the
	// required flag: optional slots are replaced, required slots are
	// always followed.
	ModeSkipOptional Mode = "skip-optional"
)

// ParseMode validates a policy mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeIncludeAll, ModeExplicitOnly, ModeSkipOptional:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown policy %q (supported: %s, %s, %s)",
			s, ModeIncludeAll, ModeExplicitOnly, ModeSkipOptional)
	}
}

// Edge describes one class-typed slot edge presented to a policy.
type Edge struct {
	// Slot is the slot whose range points at a class.
	Slot *schema.SlotDef

	// Range is the class the slot's range resolves to.
	Range *schema.ClassDef

	// Seeded reports whether the range class was named in the original
	// seed set.
	Seeded bool

	// Included reports whether the range class is already part of the
	// closure at the time the edge is evaluated.
	Included bool
}

// Policy decides, for each class-typed slot edge met during traversal,
// whether to follow the edge or replace it with the placeholder type.
// Policies must be pure: the same edge always yields the same decision.
type Policy interface {
	Mode() Mode
	Decide(edge Edge) Decision
}

// PolicyFor returns the policy implementation for a mode.
func PolicyFor(mode Mode) (Policy, error) {
	switch mode {
	case ModeIncludeAll:
		return includeAll{}, nil
	case ModeExplicitOnly:
		return explicitOnly{}, nil
	case ModeSkipOptional:
		return skipOptional{}, nil
	default:
		return nil, fmt.Errorf("unknown policy mode %q", mode)
	}
}

type includeAll struct{}

func (includeAll) Mode() Mode           { return ModeIncludeAll }
func (includeAll) Decide(Edge) Decision { return DecisionFollow }

type explicitOnly struct{}

func (explicitOnly) Mode() Mode { return ModeExplicitOnly }

func (explicitOnly) Decide(edge Edge) Decision {
	if edge.Seeded || edge.Included {
		return DecisionFollow
	}
	return DecisionReplace
}

type skipOptional struct{}

func (skipOptional) Mode() Mode { return ModeSkipOptional }

func (skipOptional) Decide(edge Edge) Decision {
	if edge.Slot.Required {
		return DecisionFollow
	}
	return DecisionReplace
}
