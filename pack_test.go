package ydraw

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/ydraw/encoding"
	"honnef.co/go/ydraw/gfx"
	"honnef.co/go/ydraw/schema"
)

func TestPackSkipsUnknownKinds(t *testing.T) {
	src := `
- circle:
    position: [100, 80]
    radius: 35
    fill: "#112233"
- blorb:
    wobble: 9000
- box:
    position: [10, 10]
    size: [4, 4]
`
	data, err := PackDocument([]byte(src))
	require.NoError(t, err)

	// The unknown kind consumes no layer and no record.
	require.Len(t, data, encoding.HeaderSize+2*encoding.RecordSize)
	enc, err := Unpack(data)
	require.NoError(t, err)
	require.Len(t, enc.Records, 2)
	assert.Equal(t, schema.Circle, enc.Records[0].Type)
	assert.Equal(t, uint32(0), enc.Records[0].Layer)
	assert.Equal(t, schema.Box, enc.Records[1].Type)
	assert.Equal(t, uint32(1), enc.Records[1].Layer)

	assert.Equal(t, gfx.Color(0xFF332211), enc.Records[0].FillColor)
	assert.Equal(t, encoding.DefaultBackground, enc.Background)
}

func TestPackHeader(t *testing.T) {
	src := `
background: "#000000"
flags: show_tiles
body:
  - circle:
`
	data, err := PackDocument([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(data[0:4]))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, uint32(0xFF000000), binary.LittleEndian.Uint32(data[8:12]))
	assert.Equal(t, encoding.FlagShowTiles, binary.LittleEndian.Uint32(data[12:16]))
}

func TestPackPropagatesColorErrors(t *testing.T) {
	_, err := PackDocument([]byte("- circle:\n    fill: nope\n"))
	assert.ErrorIs(t, err, gfx.ErrInvalidColorLiteral)
}

func TestPackEmptyDocument(t *testing.T) {
	data, err := PackDocument(nil)
	require.NoError(t, err)
	assert.Len(t, data, encoding.HeaderSize)
}

func TestScene(t *testing.T) {
	s := NewScene()
	require.NoError(t, s.Add("circle", map[string]any{"radius": 5}))
	require.NoError(t, s.Add("segment", nil))
	s.SetBackground(gfx.MustParseColor("#334455"))
	s.SetFlags(encoding.FlagShowBounds)

	err := s.Add("blorb", nil)
	assert.ErrorIs(t, err, schema.ErrUnknownKind)

	data := s.Resolve()
	enc, err := Unpack(data)
	require.NoError(t, err)
	require.Len(t, enc.Records, 2)
	assert.Equal(t, gfx.MustParseColor("#334455"), enc.Background)
	assert.Equal(t, encoding.FlagShowBounds, enc.Flags)
}

func TestSceneAppend(t *testing.T) {
	a := NewScene()
	b := NewScene()
	require.NoError(t, a.Add("circle", nil))
	require.NoError(t, b.Add("box", nil))
	require.NoError(t, b.Add("heart", nil))
	a.Append(b)

	recs := a.Encoding.Records
	require.Len(t, recs, 3)
	for i, rec := range recs {
		assert.Equal(t, uint32(i), rec.Layer)
	}
	assert.Equal(t, schema.Heart, recs[2].Type)
	// Hearts default to red.
	assert.Equal(t, gfx.MustParseColor("#ff0000"), recs[2].FillColor)
}

func BenchmarkPackDocument(b *testing.B) {
	src := []byte(`
- body:
    - circle: {position: [100, 80], radius: 35, fill: "#e74c3c"}
    - box: {position: [200, 80], size: [40, 30], fill: "#3498db", round: 8}
    - segment: {from: [150, 160], to: [350, 160], stroke: "#34495e", stroke-width: 3}
    - star: {position: [200, 160], radius: 30, fill: "#f1c40f"}
`)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := PackDocument(src); err != nil {
			b.Fatal(err)
		}
	}
}
