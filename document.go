package ydraw

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/ydraw/encoding"
	"honnef.co/go/ydraw/gfx"
	"honnef.co/go/ydraw/schema"
)

// ErrStructure reports a document whose top-level shape is not
// recognized. Unlike unknown primitive kinds, which are skipped,
// structural errors abort packing.
var ErrStructure = errors.New("malformed drawing document")

// A Document is the parsed form of a YAML drawing document: an ordered
// list of primitive entries plus scene-wide settings.
type Document struct {
	Entries       []Entry
	Background    gfx.Color
	HasBackground bool
	Flags         uint32
}

// An Entry is one primitive description. Kind is the document key, not
// necessarily one the schema knows.
type Entry struct {
	Kind   string
	Fields map[string]any
}

// ParseDocument parses a YAML stream into a Document. A stream may hold
// several YAML documents; their primitives concatenate in order. Each
// document is either a list of primitives (possibly grouped under
// "body" keys) or a mapping with optional "body", "background" and
// "flags" keys.
func ParseDocument(src []byte) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(strings.NewReader(string(src)))
	for {
		var node any
		err := dec.Decode(&node)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrStructure, err)
		}
		if node == nil {
			continue
		}
		switch node := node.(type) {
		case []any:
			for _, item := range node {
				m, ok := item.(map[string]any)
				if !ok {
					continue
				}
				if body, ok := m["body"]; ok {
					doc.appendBody(body)
				} else {
					doc.appendEntry(m)
				}
			}
		case map[string]any:
			if body, ok := node["body"]; ok {
				doc.appendBody(body)
			}
			if bg, ok := node["background"]; ok {
				c, err := backgroundColor(bg)
				if err != nil {
					return nil, err
				}
				doc.Background = c
				doc.HasBackground = true
			}
			if flags, ok := node["flags"]; ok {
				doc.Flags |= parseFlags(flags)
			}
		default:
			return nil, fmt.Errorf("%w: top-level document is a %T", ErrStructure, node)
		}
	}
	return doc, nil
}

func (doc *Document) appendBody(body any) {
	list, ok := body.([]any)
	if !ok {
		return
	}
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			doc.appendEntry(m)
		}
	}
}

// appendEntry extracts the primitive from a single mapping. The kind is
// the mapping's only key; when widget expansion leaves extra keys next
// to it, the one naming a known kind wins.
func (doc *Document) appendEntry(m map[string]any) {
	var kind string
	switch len(m) {
	case 0:
		return
	case 1:
		for k := range m {
			kind = k
		}
	default:
		for k := range m {
			if _, ok := schema.Lookup(k); ok {
				if kind != "" {
					return
				}
				kind = k
			}
		}
		if kind == "" {
			return
		}
	}
	fields, ok := m[kind].(map[string]any)
	if !ok && m[kind] != nil {
		return
	}
	doc.Entries = append(doc.Entries, Entry{Kind: kind, Fields: fields})
}

func backgroundColor(raw any) (gfx.Color, error) {
	switch raw := raw.(type) {
	case string:
		return gfx.ParseColor(raw)
	case int:
		return gfx.Color(uint32(raw)), nil
	default:
		return 0, fmt.Errorf("%w: %v", gfx.ErrInvalidColorLiteral, raw)
	}
}

// parseFlags converts flag names to header bits. Unknown names are
// ignored. show_grid is an accepted alias for show_tiles.
func parseFlags(raw any) uint32 {
	names, ok := raw.([]any)
	if !ok {
		names = []any{raw}
	}
	var flags uint32
	for _, name := range names {
		switch name {
		case "show_bounds":
			flags |= encoding.FlagShowBounds
		case "show_tiles", "show_grid":
			flags |= encoding.FlagShowTiles
		case "show_eval_count":
			flags |= encoding.FlagShowEvalCount
		}
	}
	return flags
}
