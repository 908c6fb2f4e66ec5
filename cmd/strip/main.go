package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/ioutil"
	"os"

	"github.com/alecthomas/kong"
	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"
)

const desc = `Glues single tile images into a tileset strip.

A strip is one row of square tiles, left to right. The geomorph mapper slices a strip back into
forms by tile size, so each input is resized to exactly --tile-size x --tile-size first.
Inputs are placed in the order given; a form's offset is its position in that list.`

var cli struct {
	Inputs []string `arg:"" help:"tile images, in strip order"`

	Output string `short:"o" default:"strip.png" help:"where to write the strip"`

	TileSize int `default:"300" help:"width & height of each tile in px"`

	Overwrite bool `help:"overwrite output if it exists"`

	// don't write anything
	DryRun bool `help:"print out what you're planning"`
}

// readImage decodes a png, gif or jpeg from disk
func readImage(fpath string) (image.Image, error) {
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	im, _, err := image.Decode(bytes.NewBuffer(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", fpath, err)
	}
	return im, nil
}

// savePng to disk
func savePng(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}

// fileExists checks if file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// glue resizes every tile to size x size and lays them out in one row.
func glue(tiles []image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size*len(tiles), size))

	for i, t := range tiles {
		b := t.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t = resize.Resize(uint(size), uint(size), t, resize.Lanczos3)
		}
		draw.Draw(
			dst,
			image.Rect(i*size, 0, (i+1)*size, size),
			t,
			t.Bounds().Min,
			draw.Src,
		)
	}

	return dst
}

func main() {
	kong.Parse(
		&cli,
		kong.Name("strip"),
		kong.Description(desc),
	)

	if len(cli.Inputs) == 0 {
		logrus.Fatal("no input tiles given")
	}
	if cli.TileSize <= 0 {
		logrus.Fatalf("invalid tile size %d", cli.TileSize)
	}

	tiles := make([]image.Image, len(cli.Inputs))
	for i, fpath := range cli.Inputs {
		im, err := readImage(fpath)
		if err != nil {
			logrus.WithError(err).Fatal("failed to read tile")
		}
		logrus.WithFields(logrus.Fields{"offset": i, "input": fpath, "size": im.Bounds().Size()}).Info("tile")
		tiles[i] = im
	}

	if cli.DryRun {
		fmt.Printf("dry-run detected: would write %d tiles (%dpx) to %s\n", len(tiles), cli.TileSize, cli.Output)
		return
	}

	if fileExists(cli.Output) && !cli.Overwrite {
		logrus.Fatalf("%s exists, use --overwrite", cli.Output)
	}

	err := savePng(cli.Output, glue(tiles, cli.TileSize))
	if err != nil {
		logrus.WithError(err).Fatal("failed to write strip")
	}

	logrus.WithFields(logrus.Fields{"output": cli.Output, "forms": len(tiles)}).Info("wrote strip")
}
