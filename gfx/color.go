// Copyright 2025 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"errors"
	"fmt"
	"strconv"
)

// Color is a 32-bit color packed in ABGR word order, that is
// (A<<24)|(B<<16)|(G<<8)|R. This is the only order that appears on the
// wire; human-facing literals are converted on input by ParseColor.
type Color uint32

var ErrInvalidColorLiteral = errors.New("invalid color literal")

func FromRGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

func (c Color) R() uint8 { return uint8(c) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c >> 16) }
func (c Color) A() uint8 { return uint8(c >> 24) }

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// ParseColor parses a color literal into the packed ABGR representation.
//
// Supported forms:
//
//	#RGB, #RGBA            shorthand hex, each digit duplicated
//	#RRGGBB, #RRGGBBAA     full hex; a missing alpha defaults to 0xFF
//	0xAARRGGBB             hex literal in ARGB order, repacked to ABGR
//	decimal integers       taken as already packed, passed through
func ParseColor(literal string) (Color, error) {
	switch {
	case len(literal) > 0 && literal[0] == '#':
		return parseHash(literal)
	case len(literal) > 2 && (literal[:2] == "0x" || literal[:2] == "0X"):
		val, err := strconv.ParseUint(literal[2:], 16, 32)
		if err != nil || len(literal) != 10 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColorLiteral, literal)
		}
		a := uint8(val >> 24)
		r := uint8(val >> 16)
		g := uint8(val >> 8)
		b := uint8(val)
		return FromRGBA(r, g, b, a), nil
	default:
		val, err := strconv.ParseUint(literal, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColorLiteral, literal)
		}
		return Color(val), nil
	}
}

func parseHash(literal string) (Color, error) {
	digits := literal[1:]
	switch len(digits) {
	case 3, 4:
		long := make([]byte, 0, 8)
		for i := 0; i < len(digits); i++ {
			long = append(long, digits[i], digits[i])
		}
		digits = string(long)
	}
	switch len(digits) {
	case 6:
		digits += "FF"
	case 8:
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorLiteral, literal)
	}
	val, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorLiteral, literal)
	}
	r := uint8(val >> 24)
	g := uint8(val >> 16)
	b := uint8(val >> 8)
	a := uint8(val)
	return FromRGBA(r, g, b, a), nil
}

// MustParseColor is like ParseColor but panics on invalid input. It is
// intended for literals in tests and tools.
func MustParseColor(literal string) Color {
	c, err := ParseColor(literal)
	if err != nil {
		panic(err)
	}
	return c
}
