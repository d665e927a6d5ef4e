// Copyright 2025 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"honnef.co/go/ydraw/gfx"
)

// DefaultBackground is the background color of scenes that don't set
// one.
const DefaultBackground gfx.Color = 0xFF2E1A1A

// Scene flags, stored in the stream header.
const (
	FlagShowBounds uint32 = 1 << iota
	FlagShowTiles
	FlagShowEvalCount
)

// An Encoding is a scene under construction: an ordered sequence of
// primitive records plus the scene-wide header values.
type Encoding struct {
	Records    []Record
	Background gfx.Color
	Flags      uint32
}

func (enc *Encoding) IsEmpty() bool {
	return len(enc.Records) == 0
}

func (enc *Encoding) Reset() {
	enc.Records = enc.Records[:0]
	enc.Background = DefaultBackground
	enc.Flags = 0
}

// Push appends a record, assigning it the next layer. Layers are the
// paint order; they always equal the record's index in the stream.
func (enc *Encoding) Push(rec Record) {
	rec.Layer = uint32(len(enc.Records))
	enc.Records = append(enc.Records, rec)
}

// Append appends all of other's records, re-layering them to follow
// enc's. Header values of other are ignored.
func (enc *Encoding) Append(other *Encoding) {
	for _, rec := range other.Records {
		enc.Push(rec)
	}
}
