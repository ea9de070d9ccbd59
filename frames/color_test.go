package frames

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColorByName(t *testing.T) {
	tests := []struct {
		name string
		want color.NRGBA
	}{
		{"white", RGB(255, 255, 255)},
		{"black", RGB(0, 0, 0)},
		{"red", RGB(255, 0, 0)},
		{"green", RGB(0, 255, 0)},
		{"blue", RGB(0, 0, 255)},
		{"yellow", RGB(255, 255, 0)},
		{"cyan", RGB(0, 255, 255)},
		{"magenta", RGB(255, 0, 255)},
		{"gray", RGB(128, 128, 128)},
		{"orange", RGB(255, 165, 0)},
		{"purple", RGB(128, 0, 128)},
		{"pink", RGB(255, 192, 203)},
		{"brown", RGB(165, 42, 42)},
		{"White", RGB(255, 255, 255)},
		{"BlAcK", RGB(0, 0, 0)},
		{"ReD", RGB(255, 0, 0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ColorByName(test.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != test.want {
				t.Errorf("unexpected color: got %v want %v", got, test.want)
			}
		})
	}
}

func TestColorByNameInvalid(t *testing.T) {
	for _, name := range []string{"unknown", "123", ""} {
		_, err := ColorByName(name)
		if !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ColorByName(%q): got error %v, want %v", name, err, ErrUnknownColor)
		}
	}
}

func TestColorNamesResolve(t *testing.T) {
	names := ColorNames()
	if len(names) != len(namedColors) {
		t.Fatalf("name list has %d entries, table has %d", len(names), len(namedColors))
	}
	for _, name := range names {
		c, err := ColorByName(name)
		if err != nil {
			t.Errorf("listed color %q does not resolve: %v", name, err)
		}
		if c.A != 0xff {
			t.Errorf("color %q is not opaque: %v", name, c)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr error
	}{
		{in: "yellow", want: RGB(255, 255, 0)},
		{in: " gray ", want: RGB(128, 128, 128)},
		{in: "#ff8000", want: RGB(255, 128, 0)},
		{in: "#FFFFFF", want: RGB(255, 255, 255)},
		{in: "0,0,0", want: RGB(0, 0, 0)},
		{in: "12, 34, 56", want: RGB(12, 34, 56)},
		{in: "255,255,255", want: RGB(255, 255, 255)},
		{in: "256,0,0", wantErr: ErrInvalidColor},
		{in: "-1,0,0", wantErr: ErrInvalidColor},
		{in: "1,2", wantErr: ErrInvalidColor},
		{in: "1,2,3,4", wantErr: ErrInvalidColor},
		{in: "#fff", wantErr: ErrInvalidColor},
		{in: "#gggggg", wantErr: ErrInvalidColor},
		{in: "chartreuse", wantErr: ErrUnknownColor},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := ParseColor(test.in)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("unexpected error: got %v want %v", err, test.wantErr)
			}
			if err != nil {
				return
			}
			if !cmp.Equal(test.want, got) {
				t.Errorf("unexpected color:\n%s", cmp.Diff(test.want, got))
			}
		})
	}
}
