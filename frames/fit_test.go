package frames

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		imgW, imgH int
		bgW, bgH   int
		wantW      int
		wantH      int
	}{
		{imgW: 200, imgH: 300, bgW: 1000, bgH: 1000, wantW: 666, wantH: 1000},
		{imgW: 400, imgH: 100, bgW: 1000, bgH: 1000, wantW: 1000, wantH: 250},
		{imgW: 100, imgH: 400, bgW: 1000, bgH: 1000, wantW: 250, wantH: 1000},
		{imgW: 1, imgH: 1, bgW: 500, bgH: 500, wantW: 500, wantH: 500},
		{imgW: 2000, imgH: 1000, bgW: 500, bgH: 500, wantW: 500, wantH: 250},
		{imgW: 2, imgH: 1, bgW: 5, bgH: 5, wantW: 5, wantH: 2},
		{imgW: 10000, imgH: 1, bgW: 100, bgH: 100, wantW: 100, wantH: 0},
	}
	for _, test := range tests {
		w, h := fitSize(test.imgW, test.imgH, test.bgW, test.bgH)
		if w != test.wantW || h != test.wantH {
			t.Errorf("fitSize(%d, %d, %d, %d) = %dx%d, want %dx%d",
				test.imgW, test.imgH, test.bgW, test.bgH, w, h, test.wantW, test.wantH)
		}
		if w > test.bgW || h > test.bgH {
			t.Errorf("fitSize(%d, %d, %d, %d) = %dx%d overflows the canvas",
				test.imgW, test.imgH, test.bgW, test.bgH, w, h)
		}
	}
}

func TestCenterOffset(t *testing.T) {
	if got, want := centerOffset(666, 1000, 1000, 1000), image.Pt(167, 0); got != want {
		t.Errorf("unexpected offset: got %v want %v", got, want)
	}
	// Odd differences put the extra pixel after the image.
	if got, want := centerOffset(5, 2, 5, 5), image.Pt(0, 1); got != want {
		t.Errorf("unexpected offset: got %v want %v", got, want)
	}
}

func TestFitAndPadSize(t *testing.T) {
	white := RGB(255, 255, 255)
	for _, size := range []image.Point{{200, 300}, {400, 100}, {100, 400}, {1, 1}, {1000, 1}, {3, 7}} {
		src := imaging.New(size.X, size.Y, RGB(0, 0, 255))
		for _, canvas := range []image.Point{{1000, 1000}, {640, 480}, {7, 3}} {
			got := FitAndPad(src, canvas.X, canvas.Y, white).Bounds()
			if got != image.Rect(0, 0, canvas.X, canvas.Y) {
				t.Errorf("fitting %v onto %v: got bounds %v", size, canvas, got)
			}
		}
	}
}

func TestFitAndPadPlacement(t *testing.T) {
	red := RGB(255, 0, 0)
	white := RGB(255, 255, 255)

	frame := FitAndPad(imaging.New(200, 300, red), 1000, 1000, white)

	if got := frame.NRGBAAt(0, 0); got != white {
		t.Errorf("unexpected corner pixel: got %v want %v", got, white)
	}
	if got := frame.NRGBAAt(500, 500); got != red {
		t.Errorf("unexpected center pixel: got %v want %v", got, red)
	}
	// The 666 pixel wide image starts at x=167 and ends before x=833.
	if got := frame.NRGBAAt(166, 500); got != white {
		t.Errorf("unexpected left margin pixel: got %v want %v", got, white)
	}
	if got := frame.NRGBAAt(167, 500); got != red {
		t.Errorf("unexpected left image pixel: got %v want %v", got, red)
	}
	if got := frame.NRGBAAt(832, 500); got != red {
		t.Errorf("unexpected right image pixel: got %v want %v", got, red)
	}
	if got := frame.NRGBAAt(833, 500); got != white {
		t.Errorf("unexpected right margin pixel: got %v want %v", got, white)
	}
}

func TestFitAndPadOddMargin(t *testing.T) {
	green := RGB(0, 255, 0)
	black := RGB(0, 0, 0)

	frame := FitAndPad(imaging.New(2, 1, green), 5, 5, black)

	want := []color.NRGBA{black, green, green, black, black}
	for y, w := range want {
		if got := frame.NRGBAAt(2, y); got != w {
			t.Errorf("row %d: got %v want %v", y, got, w)
		}
	}
}

func TestFitAndPadSinglePixel(t *testing.T) {
	red := RGB(255, 0, 0)
	black := RGB(0, 0, 0)

	frame := FitAndPad(imaging.New(1, 1, red), 500, 500, black)

	if frame.Bounds() != image.Rect(0, 0, 500, 500) {
		t.Fatalf("unexpected bounds: %v", frame.Bounds())
	}
	// A 1x1 source scales by 500 on both axes and covers the canvas.
	for _, p := range []image.Point{{0, 0}, {250, 250}, {499, 499}, {0, 499}} {
		if got := frame.NRGBAAt(p.X, p.Y); got != red {
			t.Errorf("pixel %v: got %v want %v", p, got, red)
		}
	}
}

func TestFitAndPadDegenerate(t *testing.T) {
	black := RGB(0, 0, 0)

	frame := FitAndPad(imaging.New(10000, 1, RGB(255, 255, 255)), 100, 100, black)

	for i := 0; i < len(frame.Pix); i += 4 {
		got := color.NRGBA{R: frame.Pix[i], G: frame.Pix[i+1], B: frame.Pix[i+2], A: frame.Pix[i+3]}
		if got != black {
			t.Fatalf("pixel %d: got %v want background %v", i/4, got, black)
		}
	}
}

func TestFitAndPadDropsAlpha(t *testing.T) {
	src := imaging.New(10, 10, color.NRGBA{R: 200, G: 100, B: 50, A: 0})

	frame := FitAndPad(src, 10, 10, RGB(255, 255, 255))

	if got, want := frame.NRGBAAt(5, 5), RGB(200, 100, 50); got != want {
		t.Errorf("unexpected pixel: got %v want %v", got, want)
	}
}
