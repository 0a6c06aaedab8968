// Package icon renders square placeholder icons: a solid background, a
// centered text label in a bitmap font, and an optional edge border.
package icon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Style describes everything drawn on an icon except its size.
type Style struct {
	Label       string
	Background  color.RGBA
	Foreground  color.RGBA
	Border      color.RGBA
	BorderWidth int
	// LabelLift moves a centered label up by this many pixels.
	LabelLift int
	// Face is the label font. Nil means the built-in 7x13 bitmap face.
	Face font.Face
}

// App icon colors.
const (
	BackgroundHex = "#4CAF50"
	ForegroundHex = "#FFFFFF"
	BorderHex     = "#2E7D32"
)

// DefaultStyle returns the app icon style: white "MC" on #4CAF50 with a
// 3px #2E7D32 border.
func DefaultStyle() Style {
	return Style{
		Label:       "MC",
		Background:  MustParseHex(BackgroundHex),
		Foreground:  MustParseHex(ForegroundHex),
		Border:      MustParseHex(BorderHex),
		BorderWidth: 3,
		LabelLift:   10,
	}
}

func (s Style) face() font.Face {
	if s.Face != nil {
		return s.Face
	}
	return basicfont.Face7x13
}

// ParseHex parses a "#RRGGBB" (or "RRGGBB") string into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// MustParseHex is ParseHex for constant input; it panics on a malformed color.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#RRGGBB", ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
