// Copyright 2025 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
	"structs"

	"honnef.co/go/safeish"
	"honnef.co/go/ydraw/gfx"
	"honnef.co/go/ydraw/ymath"
)

// Version is the stream format version this package produces.
const Version = 1

// HeaderSize is the wire size of the stream header in bytes.
const HeaderSize = 16

var (
	ErrVersionMismatch = errors.New("unsupported stream version")
	ErrTruncated       = errors.New("truncated stream")
)

type header struct {
	_ structs.HostLayout

	Version    uint32
	PrimCount  uint32
	Background uint32
	Flags      uint32
}

// Resolve assembles the wire form of a scene: the header followed by
// the record array.
func Resolve(enc *Encoding, data []byte) []byte {
	data = slices.Grow(data[:0], ymath.AlignUp(HeaderSize+len(enc.Records)*RecordSize, 64))
	h := header{
		Version:    Version,
		PrimCount:  uint32(len(enc.Records)),
		Background: uint32(enc.Background),
		Flags:      enc.Flags,
	}
	data = append(data, safeish.AsBytes(&h)...)
	data = append(data, safeish.SliceCast[[]byte](enc.Records)...)
	if len(data) != HeaderSize+len(enc.Records)*RecordSize {
		panic("invalid encoding")
	}
	return data
}

// Decode parses a wire buffer back into an Encoding. It fails closed:
// an unknown version, a truncated buffer and trailing bytes are all
// errors.
func Decode(data []byte) (*Encoding, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}
	version := binary.LittleEndian.Uint32(data[0:4])
	if version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, version, Version)
	}
	count := binary.LittleEndian.Uint32(data[4:8])
	if uint64(len(data)) != HeaderSize+uint64(count)*RecordSize {
		return nil, fmt.Errorf("%w: %d bytes for %d records", ErrTruncated, len(data), count)
	}
	// The input may be an unaligned sub-slice of a larger message, so
	// copy into our own allocation instead of casting the input.
	records := make([]Record, count)
	copy(safeish.SliceCast[[]byte](records), data[HeaderSize:])
	enc := &Encoding{
		Records:    records,
		Background: gfx.Color(binary.LittleEndian.Uint32(data[8:12])),
		Flags:      binary.LittleEndian.Uint32(data[12:16]),
	}
	return enc, nil
}
