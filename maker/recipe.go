package maker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Recipe is the on-disk description of an animation. Zero values leave
// the corresponding Builder default in place.
type Recipe struct {
	Output          string        `yaml:"output"`
	Images          []string      `yaml:"images"`
	Width           int           `yaml:"width"`
	Height          int           `yaml:"height"`
	Scale           int           `yaml:"scale"`
	Background      string        `yaml:"background"`
	FrameDuration   int           `yaml:"frame_duration"`
	RepeatLastFrame *int          `yaml:"repeat_last_frame"`
	Labels          *RecipeLabels `yaml:"labels"`
}

// RecipeLabels is the labels section of a Recipe.
type RecipeLabels struct {
	Texts    []string `yaml:"texts"`
	FontSize float64  `yaml:"font_size"`
	Padding  int      `yaml:"padding"`
	Anchor   string   `yaml:"anchor"`
}

// LoadRecipe reads a YAML recipe. Relative image paths are resolved
// against the directory holding the recipe.
func LoadRecipe(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Recipe
	err = yaml.Unmarshal(data, &r)
	if err != nil {
		return nil, fmt.Errorf("parse recipe %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i, img := range r.Images {
		if !filepath.IsAbs(img) {
			r.Images[i] = filepath.Join(dir, img)
		}
	}
	return &r, nil
}

// Builder returns a Builder seeded with the recipe's settings.
func (r *Recipe) Builder() *Builder {
	b := NewBuilder()
	if r.Width != 0 || r.Height != 0 {
		w, h := r.Width, r.Height
		if w == 0 {
			w = DefaultWidth
		}
		if h == 0 {
			h = DefaultHeight
		}
		b.Size(w, h)
	}
	if r.Scale != 0 {
		b.Scale(r.Scale)
	}
	if r.Background != "" {
		b.BackgroundName(r.Background)
	}
	if r.FrameDuration != 0 {
		b.FrameDuration(time.Duration(r.FrameDuration) * time.Millisecond)
	}
	if r.RepeatLastFrame != nil {
		b.RepeatLastFrame(*r.RepeatLastFrame)
	}
	if l := r.Labels; l != nil {
		anchor := l.Anchor
		if anchor == "" {
			anchor = "top-left"
		}
		size := l.FontSize
		if size == 0 {
			size = DefaultFontSize
		}
		b.Labels(l.Texts, size, l.Padding, anchor)
	}
	return b
}
