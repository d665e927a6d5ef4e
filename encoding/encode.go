// Copyright 2025 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"fmt"
	"math"

	"honnef.co/go/ydraw/gfx"
	"honnef.co/go/ydraw/schema"
	"honnef.co/go/ydraw/ymath"
)

// EncodeRecord encodes a primitive from its document field map. Fields
// the kind doesn't declare are ignored; declared fields that are absent
// take their schema defaults. The record's layer is left for
// Encoding.Push to assign and its bounds for UpdateBounds to derive, so
// encoding can be tested apart from both.
func EncodeRecord(kind *schema.Kind, fields map[string]any) (Record, error) {
	rec := Record{Type: kind.ID}

	for _, f := range kind.Geometry() {
		if f.Option == nil {
			continue
		}
		v, err := optionValue(fields, f.Option)
		if err != nil {
			return Record{}, fmt.Errorf("%s: field %s: %w", kind.Name, f.Option.Key, err)
		}
		idx, _ := kind.ParamIndex(f.Name)
		if f.Value == schema.U32 {
			rec.SetParamBits(idx, uint32(v))
		} else {
			rec.Params[idx] = float32(v)
		}
	}

	if kind.Fill != "" {
		c, err := channelColor(fields, "fill", kind.Fill)
		if err != nil {
			return Record{}, fmt.Errorf("%s: %w", kind.Name, err)
		}
		rec.FillColor = c
	}
	if _, ok := fields["stroke"]; ok || kind.Stroke != "" {
		c, err := channelColor(fields, "stroke", kind.Stroke)
		if err != nil {
			return Record{}, fmt.Errorf("%s: %w", kind.Name, err)
		}
		rec.StrokeColor = c
	}

	sw, err := numberField(fields, "stroke-width", kind.StrokeWidth)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", kind.Name, err)
	}
	rec.StrokeWidth = float32(sw)

	if kind.HasRound {
		round, err := numberField(fields, "round", 0)
		if err != nil {
			return Record{}, fmt.Errorf("%s: %w", kind.Name, err)
		}
		rec.Round = float32(round)
	}

	return rec, nil
}

func optionValue(fields map[string]any, opt *schema.Option) (float64, error) {
	v := opt.Default
	if raw, ok := fields[opt.Key]; ok {
		if opt.Index >= 0 {
			list, ok := raw.([]any)
			if !ok {
				return 0, fmt.Errorf("expected a list, got %T", raw)
			}
			// A missing trailing element keeps the default.
			if opt.Index < len(list) {
				f, err := toFloat(list[opt.Index])
				if err != nil {
					return 0, err
				}
				v = f
			}
		} else {
			f, err := toFloat(raw)
			if err != nil {
				return 0, err
			}
			v = f
		}
	}
	switch opt.Transform {
	case schema.TransformSinDeg:
		v = math.Sin(ymath.Radians(v))
	case schema.TransformCosDeg:
		v = math.Cos(ymath.Radians(v))
	}
	return v * opt.Scale, nil
}

func channelColor(fields map[string]any, key, deflt string) (gfx.Color, error) {
	raw, ok := fields[key]
	if !ok {
		return gfx.ParseColor(deflt)
	}
	switch raw := raw.(type) {
	case string:
		return gfx.ParseColor(raw)
	case int:
		return gfx.Color(uint32(raw)), nil
	case uint64:
		return gfx.Color(uint32(raw)), nil
	default:
		return 0, fmt.Errorf("%w: %v", gfx.ErrInvalidColorLiteral, raw)
	}
}

func numberField(fields map[string]any, key string, deflt float64) (float64, error) {
	raw, ok := fields[key]
	if !ok {
		return deflt, nil
	}
	f, err := toFloat(raw)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", key, err)
	}
	return f, nil
}

func toFloat(raw any) (float64, error) {
	switch raw := raw.(type) {
	case int:
		return float64(raw), nil
	case int64:
		return float64(raw), nil
	case uint64:
		return float64(raw), nil
	case float32:
		return float64(raw), nil
	case float64:
		return raw, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", raw)
	}
}
