package profile

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/schemaprofile/schema"
)

const collarYAML = `id: https://example.org/animals
name: animals
types:
  string:
    base: str
classes:
  Animal:
    attributes:
      name:
        range: string
        required: true
  Dog:
    is_a: Animal
    attributes:
      wearsCollar:
        range: Collar
  Collar:
    attributes:
      material:
        range: string
`

func mustView(t *testing.T, text string) *schema.View {
	t.Helper()
	doc, err := schema.Load(strings.NewReader(text))
	require.NoError(t, err)
	view, err := schema.NewView(doc)
	require.NoError(t, err)
	return view
}

func mustPolicy(t *testing.T, mode Mode) Policy {
	t.Helper()
	policy, err := PolicyFor(mode)
	require.NoError(t, err)
	return policy
}

func TestResolveIncludeAll(t *testing.T) {
	view := mustView(t, collarYAML)

	result, err := Resolve(view, []string{"Dog"}, mustPolicy(t, ModeIncludeAll))
	require.NoError(t, err)

	assert.True(t, result.Included.HasClass("Animal"), "ancestors are always pulled in")
	assert.True(t, result.Included.HasClass("Dog"))
	assert.True(t, result.Included.HasClass("Collar"))
	assert.True(t, result.Included.HasType("string"))
	assert.Empty(t, result.Skipped)
	assert.False(t, result.Included.Placeholder)
}

func TestResolveExplicitOnlyReplacesUnseededRange(t *testing.T) {
	view := mustView(t, collarYAML)

	result, err := Resolve(view, []string{"Dog"}, mustPolicy(t, ModeExplicitOnly))
	require.NoError(t, err)

	assert.True(t, result.Included.HasClass("Animal"))
	assert.True(t, result.Included.HasClass("Dog"))
	assert.False(t, result.Included.HasClass("Collar"), "unseeded range must not be followed")
	assert.True(t, result.Included.Placeholder)

	require.Len(t, result.Skipped, 1)
	event := result.Skipped[0]
	assert.Equal(t, "wearsCollar", event.Slot)
	assert.Equal(t, "Dog", event.OwningClass)
	assert.Equal(t, "Collar", event.OriginalRange)
	assert.False(t, event.Required)

	assert.Equal(t, PlaceholderType, result.Included.RangeFor("Dog", "wearsCollar", "Collar"))
	assert.Equal(t, "string", result.Included.RangeFor("Animal", "name", "string"), "untouched slots keep their range")
}

func TestResolveExplicitOnlyFollowsSeededRange(t *testing.T) {
	view := mustView(t, collarYAML)

	result, err := Resolve(view, []string{"Dog", "Collar"}, mustPolicy(t, ModeExplicitOnly))
	require.NoError(t, err)

	assert.True(t, result.Included.HasClass("Collar"))
	assert.Empty(t, result.Skipped)
}

func TestResolveCycleTerminates(t *testing.T) {
	view := mustView(t, `
classes:
  A:
    attributes:
      toB:
        range: B
        required: true
  B:
    attributes:
      toA:
        range: A
        required: true
`)

	result, err := Resolve(view, []string{"A"}, mustPolicy(t, ModeIncludeAll))
	require.NoError(t, err)

	assert.True(t, result.Included.HasClass("A"))
	assert.True(t, result.Included.HasClass("B"))
	classes, _, _ := result.Included.Counts()
	assert.Equal(t, 2, classes)
}

func TestResolveSelfReference(t *testing.T) {
	view := mustView(t, `
classes:
  Node:
    attributes:
      next:
        range: Node
`)

	result, err := Resolve(view, []string{"Node"}, mustPolicy(t, ModeExplicitOnly))
	require.NoError(t, err)

	// The owning class is already part of the closure when its own edge
	// is evaluated, so a self-reference is followed, not replaced.
	assert.True(t, result.Included.HasClass("Node"))
	assert.Empty(t, result.Skipped)
}

func TestResolveSeedNotFound(t *testing.T) {
	view := mustView(t, collarYAML)

	_, err := Resolve(view, []string{"Ghost"}, mustPolicy(t, ModeIncludeAll))
	require.Error(t, err)

	var notFound *SeedNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Ghost", notFound.Name)
}

func TestResolveUnresolvedRange(t *testing.T) {
	view := mustView(t, `
classes:
  Broken:
    attributes:
      field:
        range: Missing
`)

	_, err := Resolve(view, []string{"Broken"}, mustPolicy(t, ModeIncludeAll))
	require.Error(t, err)

	var unresolved *UnresolvedRangeError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "Broken", unresolved.Class)
	assert.Equal(t, "field", unresolved.Slot)
	assert.Equal(t, "Missing", unresolved.Range)
}

func TestResolveEmptyRangeIsMalformed(t *testing.T) {
	view := mustView(t, `
classes:
  Broken:
    attributes:
      field:
        required: true
`)

	_, err := Resolve(view, []string{"Broken"}, mustPolicy(t, ModeIncludeAll))
	var unresolved *UnresolvedRangeError
	require.True(t, errors.As(err, &unresolved))
	assert.Empty(t, unresolved.Range)
}

func TestResolveEmptySeeds(t *testing.T) {
	view := mustView(t, collarYAML)

	_, err := Resolve(view, nil, mustPolicy(t, ModeIncludeAll))
	assert.Error(t, err)
}

func TestResolveClassWithoutParentOrSlots(t *testing.T) {
	view := mustView(t, `
classes:
  Lonely:
`)

	result, err := Resolve(view, []string{"Lonely"}, mustPolicy(t, ModeExplicitOnly))
	require.NoError(t, err)
	assert.True(t, result.Included.HasClass("Lonely"))
	assert.Empty(t, result.Skipped)
}

func TestResolveSkipEventOrder(t *testing.T) {
	view := mustView(t, `
classes:
  Root:
    attributes:
      first:
        range: A
      second:
        range: B
        required: true
  A:
  B:
`)

	result, err := Resolve(view, []string{"Root"}, mustPolicy(t, ModeExplicitOnly))
	require.NoError(t, err)

	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "first", result.Skipped[0].Slot)
	assert.Equal(t, "second", result.Skipped[1].Slot)
	assert.True(t, result.Skipped[1].Required)
}

func TestResolveDeterministic(t *testing.T) {
	view := mustView(t, collarYAML)

	first, err := Resolve(view, []string{"Dog"}, mustPolicy(t, ModeExplicitOnly))
	require.NoError(t, err)
	second, err := Resolve(view, []string{"Dog"}, mustPolicy(t, ModeExplicitOnly))
	require.NoError(t, err)

	assert.Equal(t, first.Skipped, second.Skipped)
	c1, e1, t1 := first.Included.Counts()
	c2, e2, t2 := second.Included.Counts()
	assert.Equal(t, []int{c1, e1, t1}, []int{c2, e2, t2})
}
