// Package encoder writes frame sequences to animated image files.
package encoder

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoFrames is returned when asked to write an empty animation.
var ErrNoFrames = errors.New("no frames to encode")

// ErrInvalidDelay is returned for a frame delay the format cannot store.
var ErrInvalidDelay = errors.New("invalid frame delay")

// ErrUnsupportedFileFormat is returned for an extension no stitcher handles.
var ErrUnsupportedFileFormat = errors.New("unsupported file format")

// Format represents available animation file extensions.
type Format string

const (
	// GIF only supports up to 256 colours per frame.
	GIF Format = ".gif"
	// MJPEG frames are compressed separately as JPEGs inside an AVI container.
	MJPEG Format = ".avi"
)

// DefaultFormat is appended to output paths without a known extension.
const DefaultFormat = GIF

// Stitcher defines the contract for taking equally sized frames and
// stitching them into a looping animation saved to filename.
type Stitcher interface {
	Stitch(frames []image.Image, filename string) error
}

// NormalizePath returns p unchanged when it ends in a supported animation
// extension. Otherwise DefaultFormat is appended and changed is true.
func NormalizePath(p string) (normalized string, changed bool) {
	switch Format(strings.ToLower(filepath.Ext(p))) {
	case GIF, MJPEG:
		return p, false
	}
	return p + string(DefaultFormat), true
}

// ForPath returns the stitcher matching the extension of filename,
// showing each frame for delay.
func ForPath(filename string, delay time.Duration) (Stitcher, error) {
	switch ff := Format(strings.ToLower(filepath.Ext(filename))); ff {
	case GIF:
		return NewGIFStitcher(delay), nil
	case MJPEG:
		return NewMJPEGStitcher(delay), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, ff)
	}
}

// checkFrames verifies frames is non-empty and every frame shares the
// first frame's size, returning that size.
func checkFrames(frames []image.Image) (image.Rectangle, error) {
	if len(frames) == 0 {
		return image.Rectangle{}, ErrNoFrames
	}
	bound := frames[0].Bounds()
	for i, f := range frames[1:] {
		if b := f.Bounds(); b.Dx() != bound.Dx() || b.Dy() != bound.Dy() {
			return image.Rectangle{}, fmt.Errorf("frame %d is %dx%d, want %dx%d",
				i+1, b.Dx(), b.Dy(), bound.Dx(), bound.Dy())
		}
	}
	return bound, nil
}
