// Package maker assembles source images into a looping animation file.
package maker

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"gifmaker/encoder"
	"gifmaker/frames"
)

var (
	// ErrNoImages is returned when Make is given no source images.
	ErrNoImages = errors.New("no source images")
	// ErrLabelCount is returned when the number of labels differs from
	// the number of source images.
	ErrLabelCount = errors.New("label count does not match image count")
)

// Result holds the outcome of a successful Make.
type Result struct {
	path   string
	frames frames.Sequence
}

// Path returns the file the animation was written to.
func (r *Result) Path() string { return r.path }

// Frames returns the frames that were encoded, including the repeated
// trailing frames. The returned slice is a copy; the frames it points
// to must not be modified.
func (r *Result) Frames() frames.Sequence {
	return append(frames.Sequence(nil), r.frames...)
}

// Make composes one frame per path, in order, appends the configured
// repeats of the last frame and writes the animation to output. An
// output path without a supported extension gets ".gif" appended and a
// warning is logged.
func Make(cfg Config, paths []string, output string) (*Result, error) {
	log := cfg.log
	if log == nil {
		log = slog.Default()
	}

	outPath, changed := encoder.NormalizePath(output)
	if changed {
		log.Warn("output path does not have a supported animation extension",
			slog.String("path", output), slog.String("using", outPath))
	}
	stitcher, err := encoder.ForPath(outPath, cfg.frameDuration)
	if err != nil {
		return nil, err
	}

	seq, err := Compose(cfg, paths)
	if err != nil {
		return nil, err
	}
	err = stitcher.Stitch(seq.Images(), outPath)
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", outPath, err)
	}
	size := seq.Bounds().Size()
	log.Debug("animation written", slog.String("path", outPath), slog.Int("frames", len(seq)),
		slog.Int("width", size.X), slog.Int("height", size.Y))

	return &Result{path: outPath, frames: seq}, nil
}

// Compose builds the frame sequence for paths without encoding it.
func Compose(cfg Config, paths []string) (frames.Sequence, error) {
	if len(paths) == 0 {
		return nil, ErrNoImages
	}
	if cfg.labels != nil && len(cfg.labels.Texts) != len(paths) {
		return nil, fmt.Errorf("%w: %d labels for %d images", ErrLabelCount, len(cfg.labels.Texts), len(paths))
	}
	if cfg.width <= 0 || cfg.height <= 0 || cfg.scale < 1 {
		return nil, fmt.Errorf("%w: config was not built with a Builder", ErrInvalidConfig)
	}

	w, h := cfg.Canvas()
	seq := make(frames.Sequence, 0, len(paths)+cfg.repeat)
	for i, p := range paths {
		var label *frames.Label
		if cfg.labels != nil {
			label = &frames.Label{
				Text:     cfg.labels.Texts[i],
				FontSize: cfg.labels.FontSize,
				Padding:  cfg.labels.Padding,
				Anchor:   cfg.labels.Anchor,
			}
		}
		frame, err := composeFile(p, w, h, cfg, label)
		if err != nil {
			return nil, err
		}
		seq = append(seq, frame)
	}
	return seq.RepeatLast(cfg.repeat)
}

// composeFile decodes the image at path and turns it into a frame. The
// file is closed before returning whatever the outcome.
func composeFile(path string, w, h int, cfg Config, label *frames.Label) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	frame, err := frames.Compose(img, w, h, cfg.background, label)
	if err != nil {
		return nil, fmt.Errorf("compose %s: %w", path, err)
	}
	return frame, nil
}
