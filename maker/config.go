package maker

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"gifmaker/encoder"
	"gifmaker/frames"
)

// Defaults applied by NewBuilder.
const (
	DefaultWidth         = 1000
	DefaultHeight        = 1000
	DefaultScale         = 1
	DefaultFrameDuration = 1000 * time.Millisecond
	DefaultRepeat        = 1
	DefaultFontSize      = 24
	DefaultPadding       = 10
)

// ErrInvalidConfig is wrapped by every configuration error that is not
// a color or anchor lookup failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// LabelSpec configures the per-frame text labels.
type LabelSpec struct {
	// Texts holds one label per source image, in image order.
	Texts    []string
	FontSize float64
	Padding  int
	Anchor   frames.Anchor
}

// Config is an immutable animation configuration. Construct it with a
// Builder.
type Config struct {
	width, height int
	scale         int
	background    color.NRGBA
	frameDuration time.Duration
	repeat        int
	labels        *LabelSpec
	log           *slog.Logger
}

// Canvas returns the scaled frame size.
func (c Config) Canvas() (width, height int) {
	return c.width * c.scale, c.height * c.scale
}

// Background returns the canvas fill color.
func (c Config) Background() color.NRGBA { return c.background }

// FrameDuration returns how long each frame is shown.
func (c Config) FrameDuration() time.Duration { return c.frameDuration }

// RepeatLastFrame returns how many extra copies of the last frame are
// appended.
func (c Config) RepeatLastFrame() int { return c.repeat }

// Labels returns a copy of the label configuration, or nil when frames
// are not labelled.
func (c Config) Labels() *LabelSpec {
	if c.labels == nil {
		return nil
	}
	l := *c.labels
	l.Texts = append([]string(nil), c.labels.Texts...)
	return &l
}

// Builder accumulates configuration. The first error encountered is
// kept and returned by Build; later calls do not overwrite it.
type Builder struct {
	cfg Config
	err error
}

// NewBuilder returns a Builder holding the default configuration: a
// white 1000x1000 canvas, one second per frame and the last frame
// repeated once.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{
		width:         DefaultWidth,
		height:        DefaultHeight,
		scale:         DefaultScale,
		background:    frames.RGB(255, 255, 255),
		frameDuration: DefaultFrameDuration,
		repeat:        DefaultRepeat,
	}}
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Size sets the unscaled canvas size in pixels.
func (b *Builder) Size(width, height int) *Builder {
	if width <= 0 || height <= 0 {
		return b.fail(fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, width, height))
	}
	b.cfg.width, b.cfg.height = width, height
	return b
}

// Scale sets the integer multiplier applied to both canvas dimensions.
func (b *Builder) Scale(factor int) *Builder {
	if factor < 1 {
		return b.fail(fmt.Errorf("%w: scale %d must be at least 1", ErrInvalidConfig, factor))
	}
	b.cfg.scale = factor
	return b
}

// Background sets the canvas fill color. Alpha is ignored.
func (b *Builder) Background(c color.Color) *Builder {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	b.cfg.background = frames.RGB(n.R, n.G, n.B)
	return b
}

// BackgroundName sets the canvas fill color from a name, "#rrggbb" or
// "r,g,b" string.
func (b *Builder) BackgroundName(name string) *Builder {
	c, err := frames.ParseColor(name)
	if err != nil {
		return b.fail(err)
	}
	b.cfg.background = c
	return b
}

// Labels enables one text label per frame. The anchor is resolved here
// so an unknown corner fails before any image is processed.
func (b *Builder) Labels(texts []string, fontSize float64, padding int, anchor string) *Builder {
	a, err := frames.ParseAnchor(anchor)
	if err != nil {
		return b.fail(err)
	}
	if fontSize <= 0 {
		return b.fail(fmt.Errorf("%w: font size %v must be positive", ErrInvalidConfig, fontSize))
	}
	if padding < 0 {
		return b.fail(fmt.Errorf("%w: padding %d must not be negative", ErrInvalidConfig, padding))
	}
	b.cfg.labels = &LabelSpec{
		Texts:    append([]string(nil), texts...),
		FontSize: fontSize,
		Padding:  padding,
		Anchor:   a,
	}
	return b
}

// FrameDuration sets how long each frame is shown.
func (b *Builder) FrameDuration(d time.Duration) *Builder {
	if d <= 0 {
		return b.fail(fmt.Errorf("%w: frame duration %v must be positive", ErrInvalidConfig, d))
	}
	if d > encoder.MaxDelay {
		return b.fail(fmt.Errorf("%w: frame duration %v exceeds %v", ErrInvalidConfig, d, encoder.MaxDelay))
	}
	b.cfg.frameDuration = d
	return b
}

// RepeatLastFrame sets how many extra copies of the last frame end the
// animation.
func (b *Builder) RepeatLastFrame(n int) *Builder {
	if n < 0 {
		return b.fail(fmt.Errorf("%w: repeat count %d must not be negative", ErrInvalidConfig, n))
	}
	b.cfg.repeat = n
	return b
}

// Logger sets the logger used for warnings. A nil logger selects
// slog.Default at make time.
func (b *Builder) Logger(log *slog.Logger) *Builder {
	b.cfg.log = log
	return b
}

// Build returns the configuration or the first error recorded.
func (b *Builder) Build() (Config, error) {
	if b.err != nil {
		return Config{}, b.err
	}
	cfg := b.cfg
	cfg.labels = b.cfg.Labels()
	return cfg, nil
}
