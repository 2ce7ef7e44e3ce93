//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package contrast computes WCAG 2.1 contrast ratios between colors.
package contrast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a sRGB color with 8 bit channels.
type Color struct {
	R, G, B uint8
}

var named = map[string]Color{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"silver":  {192, 192, 192},
	"maroon":  {128, 0, 0},
	"olive":   {128, 128, 0},
	"lime":    {0, 255, 0},
	"teal":    {0, 128, 128},
	"navy":    {0, 0, 128},
	"purple":  {128, 0, 128},
	"orange":  {255, 165, 0},
}

// Parse accepts "#rgb", "#rrggbb", "rgb(r,g,b)", and a small set of CSS
// color names.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	if c, found := named[s]; found {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if inner, found := strings.CutPrefix(s, "rgb("); found {
		inner, found = strings.CutSuffix(inner, ")")
		if found {
			return parseTriple(inner)
		}
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(s string) (Color, error) {
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("hex color needs 3 or 6 digits, got %d", len(s))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", "#"+s)
	}
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func parseTriple(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("rgb() needs 3 components, got %d", len(parts))
	}
	var vals [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid rgb() component %q", p)
		}
		vals[i] = uint8(v)
	}
	return Color{vals[0], vals[1], vals[2]}, nil
}

// Luminance returns the relative luminance of the color, as defined by
// WCAG 2.1, in the range [0, 1].
func (c Color) Luminance() float64 {
	r := channel(c.R)
	g := channel(c.G)
	b := channel(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func channel(v uint8) float64 {
	s := float64(v) / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// Ratio returns the contrast ratio between two colors, in the range [1, 21].
func Ratio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Level maps a contrast ratio to the WCAG conformance level. Large text has
// lower thresholds than normal text.
func Level(ratio float64, largeText bool) string {
	aaa, aa := 7.0, 4.5
	if largeText {
		aaa, aa = 4.5, 3.0
	}
	switch {
	case ratio >= aaa:
		return "AAA"
	case ratio >= aa:
		return "AA"
	default:
		return "fail"
	}
}
