package profile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/schemaprofile/schema"
)

func assemble(t *testing.T, text string, seeds []string, mode Mode, opts AssembleOptions) *schema.Document {
	t.Helper()
	view := mustView(t, text)
	result, err := Resolve(view, seeds, mustPolicy(t, mode))
	require.NoError(t, err)
	return Assemble(view, result, opts)
}

func TestAssembleIncludeAll(t *testing.T) {
	out := assemble(t, collarYAML, []string{"Dog"}, ModeIncludeAll, AssembleOptions{})

	assert.Equal(t, []string{"Animal", "Dog", "Collar"}, out.Classes.Names())
	assert.Equal(t, []string{"string"}, out.Types.Names())
	assert.Nil(t, out.Enums)

	dog, ok := out.Classes.Get("Dog")
	require.True(t, ok)
	assert.Equal(t, "Animal", dog.IsA)
	slots := dog.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, "Collar", slots[0].Range)
}

func TestAssembleExplicitOnlyRewritesRange(t *testing.T) {
	out := assemble(t, collarYAML, []string{"Dog"}, ModeExplicitOnly, AssembleOptions{})

	assert.Equal(t, []string{"Animal", "Dog"}, out.Classes.Names())
	_, ok := out.Classes.Get("Collar")
	assert.False(t, ok, "Collar must be absent")

	placeholder, ok := out.Types.Get(PlaceholderType)
	require.True(t, ok, "placeholder type must be present")
	assert.Empty(t, placeholder.Base)
	assert.NotEmpty(t, placeholder.Description)

	dog, ok := out.Classes.Get("Dog")
	require.True(t, ok)
	slots := dog.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, PlaceholderType, slots[0].Range)
}

func TestAssembleSourceNotMutated(t *testing.T) {
	view := mustView(t, collarYAML)
	result, err := Resolve(view, []string{"Dog"}, mustPolicy(t, ModeExplicitOnly))
	require.NoError(t, err)
	Assemble(view, result, AssembleOptions{})

	dog, ok := view.Class("Dog")
	require.True(t, ok)
	assert.Equal(t, "Collar", dog.Slots()[0].Range, "source slot must keep its original range")
}

func TestAssemblePrefixes(t *testing.T) {
	out := assemble(t, `id: https://example.org/animals
prefixes:
  linkml: https://w3id.org/linkml/
  unused: https://example.org/unused/
classes:
  Animal:
`, []string{"Animal"}, ModeIncludeAll, AssembleOptions{})

	assert.Equal(t, DefaultPrefix, out.DefaultPrefix)

	// Prefixes are copied unfiltered, used or not.
	prefixes := out.Prefixes.All()
	require.Len(t, prefixes, 3)
	assert.Equal(t, "linkml", prefixes[0].Prefix)
	assert.Equal(t, "unused", prefixes[1].Prefix)
	assert.Equal(t, schema.PrefixDef{Prefix: "this", URI: "https://example.org/animals"}, prefixes[2])
}

func TestAssemblePrefixInjectionSuppressed(t *testing.T) {
	out := assemble(t, `id: https://example.org/animals
prefixes:
  ex: https://example.org/animals
classes:
  Animal:
`, []string{"Animal"}, ModeIncludeAll, AssembleOptions{})

	_, ok := out.Prefixes.Get("this")
	assert.False(t, ok, "no this prefix when the URI is already bound")
}

func TestAssembleFixDoc(t *testing.T) {
	text := `classes:
  Animal:
    description: "A beast\nthat   roams\nthe earth"
    attributes:
      name:
        range: string
        description: "the\nname"
types:
  string:
    base: str
`
	out := assemble(t, text, []string{"Animal"}, ModeIncludeAll, AssembleOptions{FixDoc: true})

	animal, ok := out.Classes.Get("Animal")
	require.True(t, ok)
	assert.Equal(t, "A beast that roams the earth", animal.Description)
	assert.Equal(t, "the name", animal.Slots()[0].Description)

	// Without the flag, documentation is copied verbatim.
	out = assemble(t, text, []string{"Animal"}, ModeIncludeAll, AssembleOptions{})
	animal, _ = out.Classes.Get("Animal")
	assert.Equal(t, "A beast\nthat   roams\nthe earth", animal.Description)
}

func TestAssembleDeterministic(t *testing.T) {
	first := assemble(t, collarYAML, []string{"Dog"}, ModeExplicitOnly, AssembleOptions{})
	second := assemble(t, collarYAML, []string{"Dog"}, ModeExplicitOnly, AssembleOptions{})

	var a, b bytes.Buffer
	require.NoError(t, schema.Write(&a, first))
	require.NoError(t, schema.Write(&b, second))
	assert.Equal(t, a.String(), b.String(), "identical inputs must serialize byte-identically")
}

func TestAssembleIdempotent(t *testing.T) {
	first := assemble(t, collarYAML, []string{"Dog"}, ModeIncludeAll, AssembleOptions{})

	var buf bytes.Buffer
	require.NoError(t, schema.Write(&buf, first))

	// Profiling the profile with the same seeds and the unrestricted
	// policy is a fixed point.
	second := assemble(t, buf.String(), []string{"Dog"}, ModeIncludeAll, AssembleOptions{})
	var again bytes.Buffer
	require.NoError(t, schema.Write(&again, second))
	assert.Equal(t, buf.String(), again.String())
}

// No range referenced by any emitted slot may dangle, whatever the policy.
func TestAssembleClosureValidity(t *testing.T) {
	for _, mode := range []Mode{ModeIncludeAll, ModeExplicitOnly, ModeSkipOptional} {
		t.Run(string(mode), func(t *testing.T) {
			out := assemble(t, collarYAML, []string{"Dog"}, mode, AssembleOptions{})

			outView, err := schema.NewView(out)
			require.NoError(t, err)
			for _, class := range out.Classes.All() {
				if class.IsA != "" {
					_, ok := outView.Resolve(class.IsA)
					assert.True(t, ok, "parent %q of %q must be present", class.IsA, class.Name)
				}
				for _, slot := range class.Slots() {
					_, ok := outView.Resolve(slot.Range)
					assert.True(t, ok, "range %q of %s.%s must be present", slot.Range, class.Name, slot.Name)
				}
			}
		})
	}
}
