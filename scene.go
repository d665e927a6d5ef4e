package ydraw

import (
	"fmt"

	"honnef.co/go/ydraw/encoding"
	"honnef.co/go/ydraw/gfx"
	"honnef.co/go/ydraw/schema"
)

// A Scene builds a primitive stream programmatically. Primitives paint
// in the order they are added.
type Scene struct {
	Encoding encoding.Encoding
}

func NewScene() *Scene {
	s := &Scene{}
	s.Encoding.Reset()
	return s
}

func (s *Scene) Reset() {
	s.Encoding.Reset()
}

// Add encodes one primitive. Unlike documents, which skip kinds they
// don't know, Add treats an unknown kind as a caller error.
func (s *Scene) Add(kind string, fields map[string]any) error {
	k, ok := schema.Lookup(kind)
	if !ok {
		return fmt.Errorf("%w: %q", schema.ErrUnknownKind, kind)
	}
	rec, err := encoding.EncodeRecord(k, fields)
	if err != nil {
		return err
	}
	rec.UpdateBounds()
	s.Encoding.Push(rec)
	return nil
}

func (s *Scene) SetBackground(c gfx.Color) {
	s.Encoding.Background = c
}

func (s *Scene) SetFlags(flags uint32) {
	s.Encoding.Flags = flags
}

// Append adds all of other's primitives on top of s's.
func (s *Scene) Append(other *Scene) {
	s.Encoding.Append(&other.Encoding)
}

// Resolve assembles the wire form of the scene.
func (s *Scene) Resolve() []byte {
	return encoding.Resolve(&s.Encoding, nil)
}
