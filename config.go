package geomorph

import (
	"fmt"
	"image/color"
	"io/ioutil"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/mitchellh/go-homedir"
)

// Config includes settings for a Mapper and the tilesets it loads.
type Config struct {
	// in pixels
	TileSize  int  `yaml:"tile_size"`
	ThumbSize uint `yaml:"thumb_size"`

	// drawing surface, in pixels
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Zoom    float64 `yaml:"zoom"`
	MinZoom float64 `yaml:"min_zoom"`
	MaxZoom float64 `yaml:"max_zoom"`

	// strip images live at <path>/<tileset name>.png
	OverheadPath string `yaml:"overhead_path"`
	VerticalPath string `yaml:"vertical_path"`

	// hex colours, #rrggbb or #rrggbbaa
	Cursor      string `yaml:"cursor"`
	CursorLight string `yaml:"cursor_light"`
	Background  string `yaml:"background"`

	Keys KeyMap `yaml:"keys"`

	LoadTimeout time.Duration `yaml:"load_timeout"`
	LogLevel    string        `yaml:"log_level"`
}

// DefaultConfig returns a mapper config with default settings.
func DefaultConfig() *Config {
	return &Config{
		TileSize:     300,
		ThumbSize:    64,
		Width:        1280,
		Height:       720,
		Zoom:         0.5,
		MinZoom:      0.1,
		MaxZoom:      4,
		OverheadPath: "static/tilesets/overhead",
		VerticalPath: "static/tilesets/vertical",
		Cursor:       "#0000ff33",
		CursorLight:  "#0000ff1a",
		Background:   "#00000000",
		Keys:         DefaultKeyMap(),
		LoadTimeout:  30 * time.Second,
		LogLevel:     "info",
	}
}

// LoadConfig reads a yaml config file over the defaults.
// Keys present in the file replace the default key map entirely.
func LoadConfig(fname string) (*Config, error) {
	path, err := homedir.Expand(fname)
	if err != nil {
		return nil, err
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Keys == nil {
		cfg.Keys = DefaultKeyMap()
	}

	return cfg, cfg.Validate()
}

// Validate checks settings that would otherwise break rendering.
func (c *Config) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", c.TileSize)
	}
	if c.ThumbSize == 0 {
		return fmt.Errorf("thumb_size must be positive")
	}
	if c.Zoom <= 0 || c.MinZoom <= 0 || c.MaxZoom < c.MinZoom {
		return fmt.Errorf("invalid zoom settings %v [%v, %v]", c.Zoom, c.MinZoom, c.MaxZoom)
	}
	for _, s := range []string{c.Cursor, c.CursorLight, c.Background} {
		if _, err := ParseColor(s); err != nil {
			return err
		}
	}
	return nil
}

// View returns the initial viewport for a surface of the configured size.
func (c *Config) View() View {
	v := View{Zoom: c.Zoom}
	v.Resize(c.Width, c.Height, c.TileSize)
	return v
}

// ParseColor reads "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("bad length")
	}
	if err != nil {
		return c, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

// mustColor is for colours already checked by Validate.
func mustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
