package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"gifmaker/frames"
	"gifmaker/maker"
)

const defaultOutput = "output.gif"

// Cmd is the gifmaker command line.
var Cmd = newCommand()

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "gifmaker",
		Usage:     "Compose still images into a looping animated gif",
		ArgsUsage: "<image>... | -d <directory>...",

		// Labels may contain commas.
		DisableSliceFlagSeparator: true,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "dir",
				Usage:   "Use all images in given directories, sorted by name",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "Output file (.gif or .avi, .gif is appended otherwise)",
				Aliases: []string{"o"},
				Value:   defaultOutput,
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML recipe; explicit flags override its settings",
				Aliases: []string{"c"},
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Canvas width in pixels",
				Value: maker.DefaultWidth,
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "Canvas height in pixels",
				Value: maker.DefaultHeight,
			},
			&cli.IntFlag{
				Name:  "scale",
				Usage: "Integer multiplier applied to the canvas size",
				Value: maker.DefaultScale,
			},
			&cli.StringFlag{
				Name:    "background",
				Usage:   "Background color: #rrggbb, r,g,b or one of " + strings.Join(frames.ColorNames(), ", "),
				Aliases: []string{"b"},
				Value:   "white",
			},
			&cli.IntFlag{
				Name:  "duration",
				Usage: "Frame duration in milliseconds",
				Value: maker.DefaultFrameDuration.Milliseconds(),
			},
			&cli.IntFlag{
				Name:  "repeat",
				Usage: "Extra copies of the last frame",
				Value: maker.DefaultRepeat,
			},
			&cli.StringSliceFlag{
				Name:    "label",
				Usage:   "Label text for the next image, repeat once per image",
				Aliases: []string{"l"},
			},
			&cli.FloatFlag{
				Name:  "font-size",
				Usage: "Label font size in points",
				Value: maker.DefaultFontSize,
			},
			&cli.IntFlag{
				Name:  "padding",
				Usage: "Label distance from the canvas edges in pixels",
				Value: maker.DefaultPadding,
			},
			&cli.StringFlag{
				Name:  "anchor",
				Usage: "Label corner: top-left, top-right, bottom-left or bottom-right",
				Value: "top-left",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Logging level (debug, info, warn or error)",
				Value: "info",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, c *cli.Command) (err error) {
	log, err := newLogger(c.String("log-level"))
	if err != nil {
		return err
	}

	var recipe *maker.Recipe
	if p := c.String("config"); p != "" {
		recipe, err = maker.LoadRecipe(p)
		if err != nil {
			return err
		}
	}

	args := c.Args().Slice()
	if len(args) == 0 && (recipe == nil || len(recipe.Images) == 0) {
		cli.ShowAppHelpAndExit(c, 0)
	}

	var paths []string
	switch {
	case len(args) == 0:
		paths = recipe.Images
	case c.Bool("dir"):
		paths, err = flagDirectory(args)
	default:
		paths, err = flagFiles(args)
	}
	if err != nil {
		return err
	}

	cfg, err := builder(c, recipe).Logger(log).Build()
	if err != nil {
		return err
	}

	output := c.String("output")
	if !c.IsSet("output") && recipe != nil && recipe.Output != "" {
		output = recipe.Output
	}

	res, err := maker.Make(cfg, paths, output)
	if err != nil {
		return err
	}
	fmt.Printf("🟢 Saved animation '%s' (%d frames)\n", res.Path(), len(res.Frames()))
	return nil
}

// builder seeds a Builder from the recipe, if any, and applies every
// flag given explicitly on the command line.
func builder(c *cli.Command, recipe *maker.Recipe) *maker.Builder {
	b := maker.NewBuilder()
	if recipe != nil {
		b = recipe.Builder()
	}

	if c.IsSet("width") || c.IsSet("height") {
		w, h := maker.DefaultWidth, maker.DefaultHeight
		if recipe != nil && recipe.Width != 0 {
			w = recipe.Width
		}
		if recipe != nil && recipe.Height != 0 {
			h = recipe.Height
		}
		if c.IsSet("width") {
			w = int(c.Int("width"))
		}
		if c.IsSet("height") {
			h = int(c.Int("height"))
		}
		b.Size(w, h)
	}
	if c.IsSet("scale") {
		b.Scale(int(c.Int("scale")))
	}
	if c.IsSet("background") {
		b.BackgroundName(c.String("background"))
	}
	if c.IsSet("duration") {
		b.FrameDuration(time.Duration(c.Int("duration")) * time.Millisecond)
	}
	if c.IsSet("repeat") {
		b.RepeatLastFrame(int(c.Int("repeat")))
	}

	if c.IsSet("label") || c.IsSet("font-size") || c.IsSet("padding") || c.IsSet("anchor") {
		var texts []string
		size, padding, anchor := float64(maker.DefaultFontSize), maker.DefaultPadding, "top-left"
		if recipe != nil && recipe.Labels != nil {
			l := recipe.Labels
			texts, padding = l.Texts, l.Padding
			if l.FontSize != 0 {
				size = l.FontSize
			}
			if l.Anchor != "" {
				anchor = l.Anchor
			}
		}
		if c.IsSet("label") {
			texts = c.StringSlice("label")
		}
		if c.IsSet("font-size") {
			size = c.Float("font-size")
		}
		if c.IsSet("padding") {
			padding = int(c.Int("padding"))
		}
		if c.IsSet("anchor") {
			anchor = c.String("anchor")
		}
		// Label styling alone does not turn labels on.
		if len(texts) > 0 {
			b.Labels(texts, size, padding, anchor)
		}
	}
	return b
}

// newLogger returns a text logger on stderr at the named level.
func newLogger(level string) (*slog.Logger, error) {
	var lv slog.LevelVar
	err := lv.UnmarshalText([]byte(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &lv})), nil
}
