package geomorph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKey is returned for key codes with no bound input
	ErrUnknownKey = errors.New("unknown key")

	// ErrNoSubsets is returned when a tileset is requested with neither subset
	ErrNoSubsets = errors.New("tileset requests no subsets")

	// ErrEmptyStrip means a strip image is narrower than one tile
	ErrEmptyStrip = errors.New("strip holds no tiles")

	// ErrUnresolvedPlacement means a placement refers to a form that isn't
	// loaded. Placements are only made from loaded forms so this is a bug.
	ErrUnresolvedPlacement = errors.New("placement refers to unknown form")

	// ErrLoadTimeout means tilesets were still loading when time ran out
	ErrLoadTimeout = errors.New("timed out waiting for tilesets")
)

// LoadError is a strip image that could not be loaded
type LoadError struct {
	Tileset string
	Subset  Subset
	Path    string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s %s from %s: %v", e.Tileset, e.Subset, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
