package mark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
marks:
  - name: flaky
    kind: skip
    reason: network dependent
  - name: known-bug
    kind: xfail
    reason: see issue 42
  - slow
`
	registry, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.Equal(t, 3, registry.Len())

	// Check flaky
	flaky, ok := registry.Get("flaky")
	require.True(t, ok)
	assert.Equal(t, KindSkip, flaky.Kind)
	assert.Equal(t, "network dependent", flaky.Reason)

	// Check known-bug
	kb, ok := registry.Get("known-bug")
	require.True(t, ok)
	assert.Equal(t, KindXFail, kb.Kind)

	// Shorthand entries default to custom
	slow, ok := registry.Get("slow")
	require.True(t, ok)
	assert.Equal(t, KindCustom, slow.Kind)
	assert.Empty(t, slow.Reason)
}

func TestParse_UnknownKind(t *testing.T) {
	yaml := `
marks:
  - name: broken
    kind: sometimes
`
	_, err := Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `mark "broken"`)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestParse_MissingName(t *testing.T) {
	yaml := `
marks:
  - kind: skip
`
	_, err := Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestParse_BadShape(t *testing.T) {
	_, err := Parse([]byte(`marks: just-a-string`))
	require.Error(t, err)

	_, err = Parse([]byte(`marks: [[nested]]`))
	require.Error(t, err)
}

func TestRegistry_Resolve(t *testing.T) {
	yaml := `
marks:
  - name: flaky
    kind: skip
  - slow
`
	registry, err := Parse([]byte(yaml))
	require.NoError(t, err)

	marks, err := registry.Resolve("slow", "flaky")
	require.NoError(t, err)
	require.Len(t, marks, 2)
	assert.Equal(t, "slow", marks[0].Name)
	assert.Equal(t, KindSkip, marks[1].Kind)

	_, err = registry.Resolve("slow", "unheard-of")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unheard-of")

	marks, err = registry.Resolve()
	require.NoError(t, err)
	assert.Empty(t, marks)

	assert.True(t, registry.Has("slow"))
	assert.False(t, registry.Has("fast"))
}

func TestMarshal_ShorthandRoundTrip(t *testing.T) {
	mf := &File{
		Version: "1",
		Marks: DefArray{
			{Name: "slow", Kind: "custom"},
			{Name: "flaky", Kind: "skip", Reason: "network dependent"},
		},
	}

	data, err := Marshal(mf)
	require.NoError(t, err)

	// Custom marks without a reason collapse to the string shorthand.
	assert.Contains(t, string(data), "- slow")
	assert.Contains(t, string(data), "kind: skip")

	registry, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 2, registry.Len())
}
