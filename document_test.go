package ydraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/ydraw/encoding"
	"honnef.co/go/ydraw/gfx"
)

func TestParseDocumentShapes(t *testing.T) {
	// A stream mixing a bare list, a body container and a settings
	// mapping.
	src := `
- circle:
    radius: 5
- body:
    - box:
        size: [10, 10]
---
background: "#112233"
flags: [show_bounds, show_grid]
body:
  - segment:
      from: [0, 0]
`
	doc, err := ParseDocument([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Entries, 3)
	assert.Equal(t, "circle", doc.Entries[0].Kind)
	assert.Equal(t, "box", doc.Entries[1].Kind)
	assert.Equal(t, "segment", doc.Entries[2].Kind)
	assert.True(t, doc.HasBackground)
	assert.Equal(t, gfx.MustParseColor("#112233"), doc.Background)
	assert.Equal(t, encoding.FlagShowBounds|encoding.FlagShowTiles, doc.Flags)
}

func TestParseDocumentFlagForms(t *testing.T) {
	doc, err := ParseDocument([]byte(`flags: show_eval_count`))
	require.NoError(t, err)
	assert.Equal(t, encoding.FlagShowEvalCount, doc.Flags)

	// Unknown flag names are ignored.
	doc, err = ParseDocument([]byte(`flags: [show_bounds, show_sparkles]`))
	require.NoError(t, err)
	assert.Equal(t, encoding.FlagShowBounds, doc.Flags)
}

func TestParseDocumentEmptyDocs(t *testing.T) {
	doc, err := ParseDocument([]byte("---\n---\n- circle:\n---\n"))
	require.NoError(t, err)
	require.Len(t, doc.Entries, 1)
	assert.Nil(t, doc.Entries[0].Fields)
}

func TestParseDocumentStructuralErrors(t *testing.T) {
	_, err := ParseDocument([]byte(`"just a string"`))
	assert.ErrorIs(t, err, ErrStructure)

	_, err = ParseDocument([]byte("42"))
	assert.ErrorIs(t, err, ErrStructure)

	_, err = ParseDocument([]byte("foo: [unclosed"))
	assert.ErrorIs(t, err, ErrStructure)
}

func TestParseDocumentKeepsUnknownKinds(t *testing.T) {
	// Parsing preserves unknown kinds; skipping them is the packer's
	// job.
	doc, err := ParseDocument([]byte("- blorb:\n    radius: 3\n"))
	require.NoError(t, err)
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "blorb", doc.Entries[0].Kind)
}

func TestParseDocumentExtraKeys(t *testing.T) {
	// Widget expansion can leave decoration next to the kind key; the
	// known kind wins.
	src := `
- circle:
    radius: 3
  animate: {duration: 2}
`
	doc, err := ParseDocument([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "circle", doc.Entries[0].Kind)
}
