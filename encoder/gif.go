package encoder

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
	"time"
)

// MaxDelay is the longest frame delay a GIF can store: the format keeps
// delays as 16-bit counts of hundredths of a second.
const MaxDelay = math.MaxUint16 * 10 * time.Millisecond

// GIFStitcher writes frames as an infinitely looping GIF.
type GIFStitcher struct {
	delay time.Duration
}

// NewGIFStitcher returns a GIFStitcher showing each frame for delay.
func NewGIFStitcher(delay time.Duration) *GIFStitcher {
	return &GIFStitcher{delay: delay}
}

// centiseconds converts d to GIF delay units, never below 1.
func centiseconds(d time.Duration) int {
	cs := int((d + 5*time.Millisecond) / (10 * time.Millisecond))
	if cs < 1 {
		cs = 1
	}
	return cs
}

// Stitch will write the frames to filename in GIF format.
func (s *GIFStitcher) Stitch(frames []image.Image, filename string) (err error) {
	bound, err := checkFrames(frames)
	if err != nil {
		return err
	}
	if s.delay > MaxDelay {
		return fmt.Errorf("%w: %v exceeds %v", ErrInvalidDelay, s.delay, MaxDelay)
	}

	outGif := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: 0,
		Config: image.Config{
			ColorModel: color.Palette(palette.Plan9),
			Width:      bound.Dx(),
			Height:     bound.Dy(),
		},
	}
	delay := centiseconds(s.delay)
	cache := make(map[image.Image]*image.Paletted)
	for i, frame := range frames {
		// Repeated frames share one quantized image.
		p, ok := cache[frame]
		if !ok {
			p = toPaletted(frame, palette.Plan9)
			cache[frame] = p
		}
		outGif.Image[i] = p
		outGif.Delay[i] = delay
	}

	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	writer := bufio.NewWriter(out)
	err = gif.EncodeAll(writer, outGif)
	if err != nil {
		return err
	}
	return writer.Flush()
}

// toPaletted converts img to a paletted image at the origin using
// Floyd-Steinberg dithering.
func toPaletted(img image.Image, pal color.Palette) *image.Paletted {
	bound := img.Bounds()
	paletted := image.NewPaletted(image.Rect(0, 0, bound.Dx(), bound.Dy()), pal)
	draw.FloydSteinberg.Draw(paletted, paletted.Rect, img, bound.Min)
	return paletted
}
