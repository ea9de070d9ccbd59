// Package frames turns decoded images into fixed-size animation frames:
// aspect-preserving resize, letterboxing onto a solid background and
// corner-anchored text labels.
package frames

import (
	"errors"
	"image"
	"image/color"
)

// ErrEmptySequence is returned when repeating the last frame of an empty
// sequence.
var ErrEmptySequence = errors.New("empty frame sequence")

// Label describes the text drawn onto a single frame.
type Label struct {
	Text     string
	FontSize float64
	Padding  int
	Anchor   Anchor
}

// Compose fits img onto a width x height canvas filled with background
// and draws label onto it when label is not nil.
func Compose(img image.Image, width, height int, background color.Color, label *Label) (*image.NRGBA, error) {
	frame := FitAndPad(img, width, height, background)
	if label != nil {
		err := DrawLabel(frame, label.Text, label.FontSize, label.Padding, label.Anchor)
		if err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// Sequence is an ordered list of equally sized frames.
type Sequence []*image.NRGBA

// RepeatLast appends n more references to the last frame.
func (s Sequence) RepeatLast(n int) (Sequence, error) {
	if n <= 0 {
		return s, nil
	}
	if len(s) == 0 {
		return s, ErrEmptySequence
	}
	last := s[len(s)-1]
	for i := 0; i < n; i++ {
		s = append(s, last)
	}
	return s, nil
}

// Bounds returns the bounds shared by every frame, or the empty
// rectangle for an empty sequence.
func (s Sequence) Bounds() image.Rectangle {
	if len(s) == 0 {
		return image.Rectangle{}
	}
	return s[0].Bounds()
}

// Images returns the frames as a slice of image.Image.
func (s Sequence) Images() []image.Image {
	images := make([]image.Image, len(s))
	for i, f := range s {
		images[i] = f
	}
	return images
}
