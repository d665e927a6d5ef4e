// Copyright 2025 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package encoding implements the binary primitive stream consumed by
// the GPU evaluator.
package encoding

import (
	"math"
	"structs"

	"honnef.co/go/ydraw/gfx"
)

// Record is one primitive in the fixed-size wire layout. All fields are
// 32-bit words, little-endian on the wire. Integer-valued parameters
// are stored by bit pattern, not converted.
type Record struct {
	_ structs.HostLayout

	Type        uint32
	Layer       uint32
	Params      [12]float32
	FillColor   gfx.Color
	StrokeColor gfx.Color
	StrokeWidth float32
	Round       float32
	// Bounds is minX, minY, maxX, maxY.
	Bounds [4]float32

	_ [2]uint32
}

// RecordSize is the wire size of a Record in bytes.
const RecordSize = 96

// ParamBits returns the bit pattern of the i-th parameter, for
// parameters that hold integer values.
func (rec *Record) ParamBits(i int) uint32 {
	return math.Float32bits(rec.Params[i])
}

// SetParamBits stores an integer value in the i-th parameter by bit
// pattern.
func (rec *Record) SetParamBits(i int, bits uint32) {
	rec.Params[i] = math.Float32frombits(bits)
}
