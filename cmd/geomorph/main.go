package main

import (
	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/voidshard/geomorph"
)

const desc = `Interactive isometric map editor.

Arrow keys select a cube face, or step along it once selected. 0 resets the cursor,
d deletes the form under it. Click a palette thumbnail to place it at the cursor.
Mouse wheel zooms, right-drag scrolls.`

var cli struct {
	Config string `short:"c" help:"yaml config file (defaults used if not given)"`

	Tilesets []string `arg:"" optional:"" help:"tilesets to load, 'name' or 'name:overhead,vertical'"`

	Root string `help:"directory strip paths are relative to"`
}

func main() {
	kong.Parse(&cli, kong.Name("geomorph"), kong.Description(desc))

	cfg := geomorph.DefaultConfig()
	if cli.Config != "" {
		var err error
		cfg, err = geomorph.LoadConfig(cli.Config)
		if err != nil {
			logrus.WithError(err).Fatal("failed to read config")
		}
	}

	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("invalid log level")
	}
	logrus.SetLevel(lvl)

	bg, err := geomorph.ParseColor(cfg.Background)
	if err != nil {
		logrus.WithError(err).Fatal("invalid background")
	}

	loader, err := geomorph.NewFileLoader(cli.Root, geomorph.DefaultCacheBytes)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build loader")
	}
	defer loader.Close()

	s := newSurface(cfg.Width, cfg.Height, bg)
	m := geomorph.NewMapper(cfg, s, loader)
	defer m.Close()

	game := NewGame(cfg, m, s, &palette{size: int(cfg.ThumbSize)})

	for _, t := range cli.Tilesets {
		req, err := geomorph.ParseTilesetRequest(t)
		if err != nil {
			logrus.WithError(err).Fatal("invalid tileset")
		}
		err = m.LoadTileset(req.Name, req.Overhead, req.Vertical)
		if err != nil {
			logrus.WithError(err).WithField("tileset", req.Name).Fatal("failed to load tileset")
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("geomorph")

	if err := ebiten.RunGame(game); err != nil {
		logrus.WithError(err).Fatal("game exited")
	}
}
