// Package schema describes the primitive kinds of the SDF scene stream.
//
// The table is loaded from an embedded YAML file that is the single
// source of truth for kind IDs, per-kind field layouts, document option
// mappings and shader evaluation bodies. Kind IDs are wire tags shared
// with the GPU evaluator and are never renumbered.
package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed primitives.yaml
var source []byte

var ErrUnknownKind = errors.New("unknown primitive kind")

// Value is the interpretation of a 32-bit field. U32 fields store their
// bit pattern reinterpreted as float32 when they live in the parameter
// block of a fixed-size record.
type Value uint8

const (
	F32 Value = iota
	U32
)

type Category uint8

const (
	SDF2D Category = iota
	SDF3D
	// Aux kinds are written by other producers and never appear in
	// drawing documents.
	Aux
)

type Transform uint8

const (
	TransformNone Transform = iota
	TransformSinDeg
	TransformCosDeg
)

// Option describes how a document value feeds a geometry field.
type Option struct {
	Key       string
	Index     int // element index when the option is a list, -1 for scalars
	Default   float64
	Scale     float64
	Transform Transform
}

type Field struct {
	Name  string
	Value Value
	// Option is nil for channel fields (type, layer, colors, stroke
	// width, corner round) and for fields that documents cannot set.
	Option *Option
}

type Kind struct {
	Name     string
	ID       uint32
	Category Category
	// DocName is the key identifying this kind in drawing documents,
	// or "" if the kind is not document-addressable.
	DocName string
	// Fields in compact layout order, including the channel fields.
	Fields []Field
	// Eval is the WGSL evaluation body, with {field} placeholders.
	Eval string

	// Channel defaults. Fill and Stroke are color literals; an empty
	// Fill or Stroke means the channel is not read from documents and
	// stays zero unless (for stroke) explicitly given.
	Fill        string
	Stroke      string
	StrokeWidth float64
	// HasRound reports whether the kind reads the corner round channel.
	HasRound bool

	geometry []Field
	offsets  map[string]int
	params   map[string]int
}

// WordCount returns the number of 32-bit words in the kind's compact
// layout.
func (k *Kind) WordCount() int { return len(k.Fields) }

// Offset returns the word offset of the named field in the compact
// layout.
func (k *Kind) Offset(name string) (int, bool) {
	off, ok := k.offsets[name]
	return off, ok
}

// ParamIndex returns the index of the named geometry field in the
// parameter block of a fixed-size record.
func (k *Kind) ParamIndex(name string) (int, bool) {
	idx, ok := k.params[name]
	return idx, ok
}

// Geometry returns the kind's non-channel fields in declaration order.
func (k *Kind) Geometry() []Field { return k.geometry }

// Lookup finds a kind by its document key.
func Lookup(docName string) (*Kind, bool) {
	k, ok := byDoc[docName]
	return k, ok
}

// ByID finds a kind by its wire tag.
func ByID(id uint32) (*Kind, bool) {
	k, ok := byID[id]
	return k, ok
}

// Kinds returns all kinds in ascending ID order. The returned slice is
// shared and must not be modified.
func Kinds() []*Kind { return kinds }

// channelFields have dedicated slots in fixed-size records and are not
// part of the parameter block.
var channelFields = map[string]bool{
	"type":        true,
	"layer":       true,
	"fillColor":   true,
	"strokeColor": true,
	"strokeWidth": true,
	"round":       true,
}

// MaxParams is the size of the parameter block in fixed-size records.
const MaxParams = 12

var (
	kinds []*Kind
	byDoc map[string]*Kind
	byID  map[uint32]*Kind
)

type rawField struct {
	Name      string  `yaml:"name"`
	Type      string  `yaml:"type"`
	Option    string  `yaml:"option"`
	Index     *int    `yaml:"index"`
	Default   float64 `yaml:"default"`
	Scale     float64 `yaml:"scale"`
	Transform string  `yaml:"transform"`
}

type rawKind struct {
	Name        string     `yaml:"name"`
	ID          uint32     `yaml:"id"`
	Doc         string     `yaml:"doc"`
	Category    string     `yaml:"category"`
	Fill        string     `yaml:"fill"`
	Stroke      string     `yaml:"stroke"`
	StrokeWidth float64    `yaml:"stroke-width"`
	Round       bool       `yaml:"round"`
	Fields      []rawField `yaml:"fields"`
	Eval        string     `yaml:"eval"`
}

func init() {
	var data struct {
		Primitives []rawKind `yaml:"primitives"`
	}
	if err := yaml.Unmarshal(source, &data); err != nil {
		panic(fmt.Sprintf("schema: malformed primitive table: %s", err))
	}

	byDoc = make(map[string]*Kind)
	byID = make(map[uint32]*Kind)
	for _, raw := range data.Primitives {
		k, err := buildKind(raw)
		if err != nil {
			panic(fmt.Sprintf("schema: kind %s: %s", raw.Name, err))
		}
		if _, ok := byID[k.ID]; ok {
			panic(fmt.Sprintf("schema: duplicate kind ID %d", k.ID))
		}
		byID[k.ID] = k
		if k.DocName != "" {
			if _, ok := byDoc[k.DocName]; ok {
				panic(fmt.Sprintf("schema: duplicate document key %q", k.DocName))
			}
			byDoc[k.DocName] = k
		}
		kinds = append(kinds, k)
	}
	slices.SortFunc(kinds, func(a, b *Kind) int { return int(a.ID) - int(b.ID) })
}

func buildKind(raw rawKind) (*Kind, error) {
	k := &Kind{
		Name:        raw.Name,
		ID:          raw.ID,
		DocName:     raw.Doc,
		Eval:        raw.Eval,
		Fill:        raw.Fill,
		Stroke:      raw.Stroke,
		StrokeWidth: raw.StrokeWidth,
		HasRound:    raw.Round,
		offsets:     make(map[string]int, len(raw.Fields)),
		params:      make(map[string]int),
	}

	switch raw.Category {
	case "sdf2d":
		k.Category = SDF2D
	case "sdf3d":
		k.Category = SDF3D
	case "aux":
		k.Category = Aux
	default:
		return nil, fmt.Errorf("unknown category %q", raw.Category)
	}

	for i, rf := range raw.Fields {
		f := Field{Name: rf.Name}
		switch rf.Type {
		case "f32":
			f.Value = F32
		case "u32":
			f.Value = U32
		default:
			return nil, fmt.Errorf("field %s: unknown type %q", rf.Name, rf.Type)
		}
		if _, ok := k.offsets[rf.Name]; ok {
			return nil, fmt.Errorf("duplicate field %s", rf.Name)
		}
		k.offsets[rf.Name] = i

		if !channelFields[rf.Name] {
			k.params[rf.Name] = len(k.params)
			if rf.Option != "" {
				opt := &Option{
					Key:     rf.Option,
					Index:   -1,
					Default: rf.Default,
					Scale:   rf.Scale,
				}
				if rf.Index != nil {
					opt.Index = *rf.Index
				}
				if opt.Scale == 0 {
					opt.Scale = 1
				}
				switch rf.Transform {
				case "":
				case "sin":
					opt.Transform = TransformSinDeg
				case "cos":
					opt.Transform = TransformCosDeg
				default:
					return nil, fmt.Errorf("field %s: unknown transform %q", rf.Name, rf.Transform)
				}
				f.Option = opt
			}
			k.geometry = append(k.geometry, f)
		}
		k.Fields = append(k.Fields, f)
	}

	if len(k.params) > MaxParams {
		return nil, fmt.Errorf("%d geometry fields exceed the parameter block", len(k.params))
	}
	return k, nil
}
