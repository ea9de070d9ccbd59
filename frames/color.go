package frames

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrUnknownColor is returned when a color name is not in the table.
var ErrUnknownColor = errors.New("unknown color")

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// colorNames lists the recognised names in the order they are reported.
var colorNames = []string{
	"white", "black", "red", "green", "blue", "yellow", "cyan",
	"magenta", "gray", "orange", "purple", "pink", "brown",
}

var namedColors = map[string]color.NRGBA{
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"black":   {A: 255},
	"red":     {R: 255, A: 255},
	"green":   {G: 255, A: 255},
	"blue":    {B: 255, A: 255},
	"yellow":  {R: 255, G: 255, A: 255},
	"cyan":    {G: 255, B: 255, A: 255},
	"magenta": {R: 255, B: 255, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"orange":  {R: 255, G: 165, A: 255},
	"purple":  {R: 128, B: 128, A: 255},
	"pink":    {R: 255, G: 192, B: 203, A: 255},
	"brown":   {R: 165, G: 42, B: 42, A: 255},
}

// ColorNames returns the recognised color names.
func ColorNames() []string {
	return append([]string(nil), colorNames...)
}

// ColorByName resolves a case-insensitive color name to an opaque color.
func ColorByName(name string) (color.NRGBA, error) {
	c, ok := namedColors[strings.ToLower(name)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q, valid colors are: %s",
			ErrUnknownColor, name, strings.Join(colorNames, ", "))
	}
	return c, nil
}

// RGB returns an opaque color from its three components.
func RGB(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// ParseColor accepts a color name, a "#rrggbb" hex triple or a
// comma-separated "r,g,b" triple with components in [0, 255].
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) != 6 {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	case strings.Contains(s, ","):
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return color.NRGBA{}, fmt.Errorf("%w: %q needs three components", ErrInvalidColor, s)
		}
		var rgb [3]uint8
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || v < 0 || v > 255 {
				return color.NRGBA{}, fmt.Errorf("%w: %q component %d out of range", ErrInvalidColor, s, i)
			}
			rgb[i] = uint8(v)
		}
		return RGB(rgb[0], rgb[1], rgb[2]), nil
	default:
		return ColorByName(s)
	}
}
