package ydraw

import (
	"honnef.co/go/ydraw/encoding"
	"honnef.co/go/ydraw/schema"
)

var encodings encoding.Pool

// Pack encodes a parsed document into its wire form. Entries whose kind
// the schema doesn't know are skipped and consume no layer, so newer
// documents degrade gracefully on older packers. Invalid field values,
// such as bad color literals, are errors.
func Pack(doc *Document) ([]byte, error) {
	enc := encodings.Get()
	defer encodings.Put(enc)

	if doc.HasBackground {
		enc.Background = doc.Background
	}
	enc.Flags = doc.Flags

	for _, entry := range doc.Entries {
		kind, ok := schema.Lookup(entry.Kind)
		if !ok {
			continue
		}
		rec, err := encoding.EncodeRecord(kind, entry.Fields)
		if err != nil {
			return nil, err
		}
		rec.UpdateBounds()
		enc.Push(rec)
	}
	return encoding.Resolve(enc, nil), nil
}

// PackDocument parses and packs a YAML drawing document in one step.
func PackDocument(src []byte) ([]byte, error) {
	doc, err := ParseDocument(src)
	if err != nil {
		return nil, err
	}
	return Pack(doc)
}

// Unpack parses a wire buffer back into its records. It fails closed on
// version mismatches and truncation.
func Unpack(data []byte) (*encoding.Encoding, error) {
	return encoding.Decode(data)
}
