package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/voidshard/geomorph"
)

const desc = `Renders a geomorph map to a png without a window.

Tilesets are loaded (--tileset and/or those listed in the script), then the script's steps are
replayed against the mapper exactly as key presses & palette clicks would be. The final frame is
written to --output.`

var cli struct {
	Config string `short:"c" help:"yaml config file (defaults used if not given)"`

	Tilesets []string `short:"t" name:"tileset" help:"tileset to load, 'name' or 'name:overhead,vertical'"`

	Script string `short:"s" help:"yaml script of steps to replay"`

	Output string `short:"o" default:"map.png" help:"where to write the rendered png. Overwrites output file if it exists."`

	// override config surface size
	Width  int `help:"output width in px"`
	Height int `help:"output height in px"`
}

// failures remembers tilesets that failed to load.
type failures struct {
	errs []error
}

func (f *failures) TilesetReady(name string) {}

func (f *failures) TilesetFailed(name string, subset geomorph.Subset, err error) {
	f.errs = append(f.errs, err)
}

func config() (*geomorph.Config, error) {
	cfg := geomorph.DefaultConfig()
	if cli.Config != "" {
		var err error
		cfg, err = geomorph.LoadConfig(cli.Config)
		if err != nil {
			return nil, err
		}
	}
	if cli.Width > 0 {
		cfg.Width = cli.Width
	}
	if cli.Height > 0 {
		cfg.Height = cli.Height
	}
	return cfg, cfg.Validate()
}

func run() error {
	cfg, err := config()
	if err != nil {
		return err
	}

	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)

	script := &geomorph.Script{}
	if cli.Script != "" {
		script, err = geomorph.LoadScript(cli.Script)
		if err != nil {
			return err
		}
	}

	requests := script.Tilesets
	for _, t := range cli.Tilesets {
		req, err := geomorph.ParseTilesetRequest(t)
		if err != nil {
			return err
		}
		requests = append(requests, req)
	}

	loader, err := geomorph.NewFileLoader("", geomorph.DefaultCacheBytes)
	if err != nil {
		return err
	}
	defer loader.Close()

	bg, err := geomorph.ParseColor(cfg.Background)
	if err != nil {
		return err
	}
	canvas := geomorph.NewCanvas(cfg.Width, cfg.Height, bg)

	m := geomorph.NewMapper(cfg, canvas, loader)
	defer m.Close()
	failed := &failures{}
	m.Listener = failed

	for _, req := range requests {
		err = m.LoadTileset(req.Name, req.Overhead, req.Vertical)
		if err != nil {
			return fmt.Errorf("tileset %s: %w", req.Name, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	defer cancel()
	err = m.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", geomorph.ErrLoadTimeout, cfg.LoadTimeout)
	} else if err != nil {
		return err
	}
	if len(failed.errs) > 0 {
		return failed.errs[0]
	}

	err = m.Play(script.Steps)
	if err != nil {
		return err
	}

	m.Render()
	err = canvas.SavePNG(cli.Output)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"output":     cli.Output,
		"tilesets":   len(requests),
		"placements": m.Tiles().Len(),
	}).Info("wrote map")
	return nil
}

func main() {
	kong.Parse(&cli, kong.Name("geomorph-render"), kong.Description(desc))

	if err := run(); err != nil {
		logrus.WithError(err).Error("render failed")
		os.Exit(1)
	}
}
