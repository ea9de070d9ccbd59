package encoder

import (
	"bytes"
	"image"
	"image/jpeg"
	"math"
	"time"

	"github.com/icza/mjpeg"
)

// MJPEGStitcher writes frames as an MJPEG stream inside an AVI container.
type MJPEGStitcher struct {
	delay time.Duration
}

// NewMJPEGStitcher returns an MJPEGStitcher showing each frame for delay.
func NewMJPEGStitcher(delay time.Duration) *MJPEGStitcher {
	return &MJPEGStitcher{delay: delay}
}

// fps converts a per-frame delay to a whole frame rate, never below 1.
func fps(delay time.Duration) int32 {
	if delay <= 0 {
		return 1
	}
	r := int32(math.Round(float64(time.Second) / float64(delay)))
	if r < 1 {
		r = 1
	}
	return r
}

// Stitch combines the frames to create an MJPEG AVI saved at filename.
func (m *MJPEGStitcher) Stitch(frames []image.Image, filename string) (err error) {
	bound, err := checkFrames(frames)
	if err != nil {
		return err
	}

	aw, err := mjpeg.New(filename, int32(bound.Dx()), int32(bound.Dy()), fps(m.delay))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := aw.Close(); err == nil {
			err = cerr
		}
	}()

	var last image.Image
	buf := &bytes.Buffer{}
	for _, f := range frames {
		if f != last {
			buf.Reset()
			if err := jpeg.Encode(buf, f, nil); err != nil {
				return err
			}
			last = f
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
