package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/schemaprofile/schema"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "include-all", want: ModeIncludeAll},
		{input: "explicit-only", want: ModeExplicitOnly},
		{input: "skip-optional", want: ModeSkipOptional},
		{input: "", wantErr: true},
		{input: "everything", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestPolicyDecisions(t *testing.T) {
	required := &schema.SlotDef{Name: "ref", Owner: "Owner", Range: "Target", Required: true}
	optional := &schema.SlotDef{Name: "ref", Owner: "Owner", Range: "Target"}
	target := &schema.ClassDef{Name: "Target"}

	tests := []struct {
		name string
		mode Mode
		edge Edge
		want Decision
	}{
		{
			name: "include-all follows everything",
			mode: ModeIncludeAll,
			edge: Edge{Slot: optional, Range: target},
			want: DecisionFollow,
		},
		{
			name: "include-all follows required",
			mode: ModeIncludeAll,
			edge: Edge{Slot: required, Range: target},
			want: DecisionFollow,
		},
		{
			name: "explicit-only follows seeded ranges",
			mode: ModeExplicitOnly,
			edge: Edge{Slot: optional, Range: target, Seeded: true},
			want: DecisionFollow,
		},
		{
			name: "explicit-only follows already-included ranges",
			mode: ModeExplicitOnly,
			edge: Edge{Slot: optional, Range: target, Included: true},
			want: DecisionFollow,
		},
		{
			name: "explicit-only replaces unseeded ranges even when required",
			mode: ModeExplicitOnly,
			edge: Edge{Slot: required, Range: target},
			want: DecisionReplace,
		},
		{
			name: "skip-optional never replaces required slots",
			mode: ModeSkipOptional,
			edge: Edge{Slot: required, Range: target},
			want: DecisionFollow,
		},
		{
			name: "skip-optional replaces optional slots even when seeded",
			mode: ModeSkipOptional,
			edge: Edge{Slot: optional, Range: target, Seeded: true},
			want: DecisionReplace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := PolicyFor(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, policy.Decide(tt.edge))
			assert.Equal(t, tt.mode, policy.Mode())
		})
	}
}

func TestSkipEventString(t *testing.T) {
	event := SkipEvent{Slot: "wearsCollar", OwningClass: "Dog", OriginalRange: "Collar"}
	assert.Equal(t, "replaced optional slot Dog.wearsCollar (was Collar)", event.String())

	event.Required = true
	assert.Equal(t, "replaced required slot Dog.wearsCollar (was Collar)", event.String())
}
