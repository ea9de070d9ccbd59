package frames

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidAnchor is returned for an anchor name that is not one of
// the four canvas corners.
var ErrInvalidAnchor = errors.New("invalid anchor")

// Anchor is the canvas corner a label is placed against.
type Anchor int

const (
	TopLeft Anchor = iota
	TopRight
	BottomLeft
	BottomRight
)

var anchorNames = [...]string{
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomLeft:  "bottom-left",
	BottomRight: "bottom-right",
}

func (a Anchor) valid() bool {
	return a >= TopLeft && a <= BottomRight
}

func (a Anchor) String() string {
	if !a.valid() {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor resolves a corner name such as "top-right". Matching is
// case-insensitive and accepts underscores or spaces in place of the
// hyphen.
func ParseAnchor(s string) (Anchor, error) {
	norm := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(s)))
	for i, name := range anchorNames {
		if norm == name {
			return Anchor(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q, must be one of %s", ErrInvalidAnchor, s, strings.Join(anchorNames[:], ", "))
}

// LabelOrigin returns the top-left point of a textW x textH label box
// placed against the anchor corner of canvas, padding pixels from both
// edges.
func LabelOrigin(canvas image.Rectangle, textW, textH, padding int, anchor Anchor) image.Point {
	left := canvas.Min.X + padding
	top := canvas.Min.Y + padding
	right := canvas.Max.X - textW - padding
	bottom := canvas.Max.Y - textH - padding
	switch anchor {
	case TopRight:
		return image.Pt(right, top)
	case BottomLeft:
		return image.Pt(left, bottom)
	case BottomRight:
		return image.Pt(right, bottom)
	default:
		return image.Pt(left, top)
	}
}

var (
	fontOnce  sync.Once
	labelFont *truetype.Font
	fontErr   error
)

// bundledFont parses the Go Regular TrueType font once.
func bundledFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		labelFont, fontErr = truetype.Parse(goregular.TTF)
	})
	return labelFont, fontErr
}

// newFace loads the bundled font at the given point size.
func newFace(size float64) (font.Face, error) {
	f, err := bundledFont()
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// MeasureLabel returns the ink bounds of text rendered at size, relative
// to the drawing dot.
func MeasureLabel(text string, size float64) (fixed.Rectangle26_6, error) {
	face, err := newFace(size)
	if err != nil {
		return fixed.Rectangle26_6{}, err
	}
	defer face.Close()
	bounds, _ := font.BoundString(face, text)
	return bounds, nil
}

// DrawLabel renders text in black onto dst, in place, with the top-left
// of its ink box at the position given by LabelOrigin. An anchor other
// than the four corners yields ErrInvalidAnchor and leaves dst untouched.
func DrawLabel(dst draw.Image, text string, size float64, padding int, anchor Anchor) error {
	if !anchor.valid() {
		return fmt.Errorf("%w: %v", ErrInvalidAnchor, anchor)
	}
	if text == "" {
		return nil
	}
	bounds, err := MeasureLabel(text, size)
	if err != nil {
		return err
	}
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	face, err := newFace(size)
	if err != nil {
		return err
	}
	defer face.Close()

	origin := LabelOrigin(dst.Bounds(), textW, textH, padding, anchor)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
	}
	// The dot sits on the baseline; shift it so the ink box starts at origin.
	d.Dot = fixed.P(origin.X, origin.Y).Sub(bounds.Min)
	d.DrawString(text)
	return nil
}
