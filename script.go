package geomorph

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/go-yaml/yaml"
	"github.com/mitchellh/go-homedir"
)

// TilesetRequest names a tileset and which of its strips to load.
type TilesetRequest struct {
	Name     string `yaml:"name"`
	Overhead bool   `yaml:"overhead"`
	Vertical bool   `yaml:"vertical"`
}

// ParseTilesetRequest reads "name" (both strips) or "name:overhead,vertical".
func ParseTilesetRequest(s string) (TilesetRequest, error) {
	name, subsets, found := strings.Cut(s, ":")
	req := TilesetRequest{Name: name}
	if name == "" {
		return req, fmt.Errorf("invalid tileset %q", s)
	}
	if !found {
		req.Overhead, req.Vertical = true, true
		return req, nil
	}

	for _, part := range strings.Split(subsets, ",") {
		sub, err := ParseSubset(strings.TrimSpace(part))
		if err != nil {
			return req, err
		}
		switch sub {
		case Overhead:
			req.Overhead = true
		case Vertical:
			req.Vertical = true
		}
	}
	return req, nil
}

// Placement puts a form at an explicit key.
type Placement struct {
	FormRef `yaml:",inline"`
	At      Key `yaml:"at"`
}

// Step is one scripted action. Each field that is set is applied, in the
// order the fields are listed here.
type Step struct {
	// raw key code, decoded with the config's key map
	Key *int `yaml:"key"`

	Input Input `yaml:"input"`

	// place a form at the cursor, as a palette click would
	Select *FormRef `yaml:"select"`

	Place *Placement `yaml:"place"`

	// multiply zoom by this
	Zoom float64 `yaml:"zoom"`

	// pan by [dx, dy] pixels
	Scroll []float64 `yaml:"scroll"`
}

// Script is a recorded mapping session: what to load, then what to do.
type Script struct {
	Tilesets []TilesetRequest `yaml:"tilesets"`
	Steps    []Step           `yaml:"steps"`
}

// LoadScript reads a yaml script from disk.
func LoadScript(fname string) (*Script, error) {
	path, err := homedir.Expand(fname)
	if err != nil {
		return nil, err
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Play applies steps in order, stopping at the first that fails.
// Tilesets used by Select or Place steps must already be ready.
func (m *Mapper) Play(steps []Step) error {
	for i, s := range steps {
		if err := m.step(s); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func (m *Mapper) step(s Step) error {
	if s.Key != nil {
		if err := m.HandleKey(*s.Key); err != nil {
			return err
		}
	}
	if s.Input != InputNone {
		m.Handle(s.Input)
	}
	if s.Select != nil {
		f, ok := m.resolve(*s.Select)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnresolvedPlacement, *s.Select)
		}
		if err := m.Select(f); err != nil {
			return err
		}
	}
	if s.Place != nil {
		if _, err := m.Place(s.Place.FormRef, s.Place.At); err != nil {
			return err
		}
		m.Render()
	}
	if s.Zoom != 0 {
		m.Zoom(s.Zoom)
	}
	if len(s.Scroll) == 2 {
		m.Scroll(s.Scroll[0], s.Scroll[1])
	} else if len(s.Scroll) != 0 {
		return fmt.Errorf("scroll wants [dx, dy], got %v", s.Scroll)
	}
	return nil
}
