// Copyright 2025 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"honnef.co/go/curve"
	"honnef.co/go/ydraw/schema"
)

// Unbounded is the bounding box of primitives that cannot be culled.
// The evaluator treats it as "always visible".
var Unbounded = curve.Rect{X0: -1e10, Y0: -1e10, X1: 1e10, Y1: 1e10}

// ComputeAABB derives the conservative bounding box of a primitive from
// its encoded parameters. Stroked outlines extend the box by half the
// stroke width. Kinds without a derivation rule, including the
// raymarched 3D kinds, report Unbounded.
func ComputeAABB(id uint32, params [12]float32, strokeWidth, round float32) curve.Rect {
	p := func(i int) float64 { return float64(params[i]) }
	expand := float64(strokeWidth) * 0.5

	switch id {
	case schema.Circle:
		r := p(2) + expand
		return centered(p(0), p(1), r, r)
	case schema.Box:
		return centered(p(0), p(1), p(2)+float64(round)+expand, p(3)+float64(round)+expand)
	case schema.Segment, schema.Triangle, schema.Bezier2:
		n := 2
		if id != schema.Segment {
			n = 3
		}
		return points(params, n, expand)
	case schema.Bezier3:
		return points(params, 4, expand)
	case schema.Ellipse:
		return centered(p(0), p(1), p(2)+expand, p(3)+expand)
	case schema.Arc:
		r := max(p(4), p(5)) + expand
		return centered(p(0), p(1), r, r)
	case schema.RoundedBox:
		maxR := max(p(4), p(5), p(6), p(7))
		return centered(p(0), p(1), p(2)+maxR+expand, p(3)+maxR+expand)
	case schema.Rhombus:
		return centered(p(0), p(1), p(2)+expand, p(3)+expand)
	case schema.Pentagon, schema.Hexagon, schema.Star:
		r := p(2) + expand
		return centered(p(0), p(1), r, r)
	case schema.Pie:
		r := p(4) + expand
		return centered(p(0), p(1), r, r)
	case schema.Ring:
		r := p(4) + p(5) + expand
		return centered(p(0), p(1), r, r)
	case schema.Heart:
		s := p(2)*1.5 + expand
		return centered(p(0), p(1), s, s)
	case schema.Cross:
		hw := max(p(2), p(3)) + expand
		return centered(p(0), p(1), hw, hw)
	case schema.RoundedX:
		s := p(2) + p(3) + expand
		return centered(p(0), p(1), s, s)
	case schema.Capsule:
		r := p(4) + expand
		return curve.Rect{
			X0: min(p(0), p(2)) - r,
			Y0: min(p(1), p(3)) - r,
			X1: max(p(0), p(2)) + r,
			Y1: max(p(1), p(3)) + r,
		}
	case schema.Moon:
		// The far side of the second disk extends the box in +x only.
		r := max(p(3), p(4)) + expand
		return curve.Rect{X0: p(0) - r, Y0: p(1) - r, X1: p(0) + r + p(2), Y1: p(1) + r}
	case schema.Egg:
		// The bottom radius extends the box in +y only.
		r := max(p(2), p(3)) + expand
		return curve.Rect{X0: p(0) - r, Y0: p(1) - r, X1: p(0) + r, Y1: p(1) + r + p(2)}
	default:
		return Unbounded
	}
}

// UpdateBounds derives the record's bounding box from its encoded
// parameters and stores it.
func (rec *Record) UpdateBounds() {
	b := ComputeAABB(rec.Type, rec.Params, rec.StrokeWidth, rec.Round)
	rec.Bounds = [4]float32{
		float32(b.X0),
		float32(b.Y0),
		float32(b.X1),
		float32(b.Y1),
	}
}

func centered(x, y, hw, hh float64) curve.Rect {
	return curve.Rect{X0: x - hw, Y0: y - hh, X1: x + hw, Y1: y + hh}
}

// points computes the bounding box of the first n (x, y) parameter
// pairs, expanded on all sides.
func points(params [12]float32, n int, expand float64) curve.Rect {
	r := curve.Rect{
		X0: float64(params[0]), Y0: float64(params[1]),
		X1: float64(params[0]), Y1: float64(params[1]),
	}
	for i := 1; i < n; i++ {
		x, y := float64(params[2*i]), float64(params[2*i+1])
		r.X0 = min(r.X0, x)
		r.Y0 = min(r.Y0, y)
		r.X1 = max(r.X1, x)
		r.Y1 = max(r.Y1, y)
	}
	r.X0 -= expand
	r.Y0 -= expand
	r.X1 += expand
	r.Y1 += expand
	return r
}
