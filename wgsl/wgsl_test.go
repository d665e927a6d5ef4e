package wgsl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/ydraw/schema"
)

func TestConstName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Circle", "SDF_CIRCLE"},
		{"RoundedX", "SDF_ROUNDED_X"},
		{"Bezier2", "SDF_BEZIER2"},
		{"Sphere3D", "SDF_SPHERE_3D"},
		{"VerticalCapsule3D", "SDF_VERTICAL_CAPSULE_3D"},
		{"TextGlyph", "SDF_TEXT_GLYPH"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConstName(tt.in), "ConstName(%q)", tt.in)
	}
}

func TestSubstitute(t *testing.T) {
	circle, ok := schema.ByID(schema.Circle)
	require.True(t, ok)
	got := substitute("length(p - vec2<f32>({cx}, {cy})) - {r}", circle)
	assert.Equal(t, "length(p - vec2<f32>(cardStorage[primOffset + 2u], cardStorage[primOffset + 3u])) - cardStorage[primOffset + 4u]", got)

	// u32 fields load through a bitcast; unknown placeholders survive.
	glyph, ok := schema.ByID(schema.TextGlyph)
	require.True(t, ok)
	got = substitute("{glyphIndex} {nope}", glyph)
	assert.Equal(t, "bitcast<u32>(cardStorage[primOffset + 6u]) {nope}", got)
}

func TestGenerate(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Generate(&b))
	out := b.String()

	assert.Contains(t, out, "const SDF_CIRCLE: u32 = 0u;")
	assert.Contains(t, out, "const SDF_EGG: u32 = 20u;")
	assert.Contains(t, out, "const SDF_PLOT: u32 = 128u;")

	assert.Contains(t, out, "fn evalSDF(primOffset: u32, p: vec2<f32>) -> f32 {")
	assert.Contains(t, out, "fn evalSDF3D(primOffset: u32, p: vec3<f32>) -> f32 {")
	assert.Contains(t, out, "case SDF_CIRCLE: {")
	assert.Contains(t, out, "case SDF_SPHERE_3D: {")

	// Circle layout: position at words 2 and 3, radius at 4.
	assert.Contains(t, out, "return length(p - vec2<f32>(cardStorage[primOffset + 2u], cardStorage[primOffset + 3u])) - cardStorage[primOffset + 4u];")

	assert.Contains(t, out, "fn primColors(primOffset: u32) -> vec4<u32> {")
	assert.Contains(t, out, "fn primStrokeWidth(primOffset: u32) -> f32 {")
	// Image has no color channels and must not be dispatched on.
	assert.NotContains(t, out, "case SDF_IMAGE: {")
}
