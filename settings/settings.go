// Package settings persists per-tool brush presets as TOML files.
//
// A preset file carries one section per tool. Loading starts from
// [Defaults] and overlays whatever the file provides, so a missing file or
// a file with only a few keys still yields a complete configuration.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	ink "github.com/shelost/daydream-svelte-sub006"
)

// defaultEraserSize is the eraser brush diameter in internal pixels.
const defaultEraserSize = 24

// ToolPreset is the persisted form of one tool's brush configuration.
// Color is a hex string so preset files stay hand-editable.
type ToolPreset struct {
	Color            string  `toml:"color"`
	Size             float64 `toml:"size"`
	Opacity          float64 `toml:"opacity"`
	Thinning         float64 `toml:"thinning"`
	Smoothing        float64 `toml:"smoothing"`
	Streamline       float64 `toml:"streamline"`
	TaperStart       float64 `toml:"taper_start"`
	TaperEnd         float64 `toml:"taper_end"`
	CapStart         bool    `toml:"cap_start"`
	CapEnd           bool    `toml:"cap_end"`
	SimulatePressure bool    `toml:"simulate_pressure"`
}

// Presets holds the brush configuration for every tool.
type Presets struct {
	Pen    ToolPreset `toml:"pen"`
	Eraser ToolPreset `toml:"eraser"`
}

// Defaults returns the stock presets: the standard pen, and an eraser with
// a wider brush.
func Defaults() Presets {
	pen := ink.DefaultStrokeStyle()
	return Presets{
		Pen:    PresetFrom(pen),
		Eraser: PresetFrom(pen.WithSize(defaultEraserSize)),
	}
}

// PresetFrom converts a stroke style into its persisted form.
func PresetFrom(s ink.StrokeStyle) ToolPreset {
	return ToolPreset{
		Color:            s.Color.HexString(),
		Size:             s.Size,
		Opacity:          s.Opacity,
		Thinning:         s.Thinning,
		Smoothing:        s.Smoothing,
		Streamline:       s.Streamline,
		TaperStart:       s.TaperStart,
		TaperEnd:         s.TaperEnd,
		CapStart:         s.CapStart,
		CapEnd:           s.CapEnd,
		SimulatePressure: s.SimulatePressure,
	}
}

// Style converts the preset back into a stroke style. An unparsable color
// is an error; numeric fields pass through [ink.StrokeStyle.Normalized]
// when the style is used, so they are not validated here.
func (p ToolPreset) Style() (ink.StrokeStyle, error) {
	color, err := ink.ParseHex(p.Color)
	if err != nil {
		return ink.StrokeStyle{}, fmt.Errorf("settings: preset color: %w", err)
	}
	return ink.StrokeStyle{
		Color:            color,
		Size:             p.Size,
		Opacity:          p.Opacity,
		Thinning:         p.Thinning,
		Smoothing:        p.Smoothing,
		Streamline:       p.Streamline,
		TaperStart:       p.TaperStart,
		TaperEnd:         p.TaperEnd,
		CapStart:         p.CapStart,
		CapEnd:           p.CapEnd,
		SimulatePressure: p.SimulatePressure,
	}, nil
}

// Styles converts both tool presets into stroke styles.
func (p Presets) Styles() (pen, eraser ink.StrokeStyle, err error) {
	pen, err = p.Pen.Style()
	if err != nil {
		return pen, eraser, err
	}
	eraser, err = p.Eraser.Style()
	return pen, eraser, err
}

// Load reads presets from a TOML file, overlaying the file's values on top
// of [Defaults]. A missing file returns the defaults with no error; a file
// that exists but cannot be parsed is an error.
func Load(path string) (Presets, error) {
	p := Defaults()
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("settings: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("settings: parsing %s: %w", path, err)
	}
	return p, nil
}

// Save writes presets to a TOML file, creating parent directories as
// needed.
func Save(path string, p Presets) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("settings: encoding presets: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("settings: creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // preset files are not secrets
		return fmt.Errorf("settings: writing %s: %w", path, err)
	}
	return nil
}
