package geomorph

import (
	"fmt"
	"image"
)

// SubsetState tracks one strip image of a tileset.
type SubsetState int

const (
	Unrequested SubsetState = iota
	Loading
	Ready
	Failed
)

func (s SubsetState) String() string {
	switch s {
	case Unrequested:
		return "unrequested"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("SubsetState(%d)", int(s))
}

type subset struct {
	state  SubsetState
	forms  []*Form
	loaded int
	err    error
}

// Tileset is a named pair of strips (overhead caps, vertical walls) cut into
// forms.
//
// A requested subset is Loading until its strip has been cut and every form
// has its thumbnail, then Ready. The tileset is ready once every requested
// subset is; it reports becoming ready exactly once.
type Tileset struct {
	Name string

	subsets   [2]subset
	installed bool
}

// NewTileset returns a tileset with the requested subsets marked Loading.
func NewTileset(name string, overhead, vertical bool) (*Tileset, error) {
	if !overhead && !vertical {
		return nil, fmt.Errorf("%s: %w", name, ErrNoSubsets)
	}
	t := &Tileset{Name: name}
	if overhead {
		t.subsets[Overhead].state = Loading
	}
	if vertical {
		t.subsets[Vertical].state = Loading
	}
	return t, nil
}

// State of the given subset.
func (t *Tileset) State(s Subset) SubsetState {
	return t.subsets[s].state
}

// Requested reports whether the subset was asked for at all.
func (t *Tileset) Requested(s Subset) bool {
	return t.subsets[s].state != Unrequested
}

// Forms of the given subset, in offset order.
func (t *Tileset) Forms(s Subset) []*Form {
	return t.subsets[s].forms
}

// Loaded is how many forms of the subset have their thumbnail.
func (t *Tileset) Loaded(s Subset) int {
	return t.subsets[s].loaded
}

// Err is why the subset failed (if it did).
func (t *Tileset) Err(s Subset) error {
	return t.subsets[s].err
}

// Form looks up a single form.
func (t *Tileset) Form(s Subset, offset int) (*Form, bool) {
	forms := t.subsets[s].forms
	if offset < 0 || offset >= len(forms) {
		return nil, false
	}
	return forms[offset], true
}

// Ready reports if every requested subset has all its forms loaded.
func (t *Tileset) Ready() bool {
	for _, sub := range t.subsets {
		if sub.state != Unrequested && sub.state != Ready {
			return false
		}
	}
	return true
}

// Failed reports if any requested subset failed; such a tileset is never
// ready.
func (t *Tileset) Failed() bool {
	for _, sub := range t.subsets {
		if sub.state == Failed {
			return true
		}
	}
	return false
}

// Pending reports if any subset is still loading.
func (t *Tileset) Pending() bool {
	for _, sub := range t.subsets {
		if sub.state == Loading {
			return true
		}
	}
	return false
}

// Installed reports if the tileset has been handed to the palette.
func (t *Tileset) Installed() bool {
	return t.installed
}

// PaletteForms lists vertical forms then overhead forms.
func (t *Tileset) PaletteForms() []*Form {
	forms := make([]*Form, 0, len(t.subsets[Vertical].forms)+len(t.subsets[Overhead].forms))
	forms = append(forms, t.subsets[Vertical].forms...)
	return append(forms, t.subsets[Overhead].forms...)
}

// stripLoaded cuts the subset's strip into forms. This is the only place a
// subset's forms are set; events for subsets not Loading are ignored.
// An ErrEmptyStrip leaves the subset Loading for the caller to fail.
func (t *Tileset) stripLoaded(s Subset, strip image.Image, tileSize int) ([]*Form, error) {
	sub := &t.subsets[s]
	if sub.state != Loading || sub.forms != nil {
		return nil, nil
	}

	forms := sliceStrip(t.Name, s, strip, tileSize)
	if len(forms) == 0 {
		return nil, ErrEmptyStrip
	}
	sub.forms = forms
	return forms, nil
}

// fail marks the subset permanently failed.
func (t *Tileset) fail(s Subset, err error) {
	sub := &t.subsets[s]
	if sub.state != Loading {
		return
	}
	sub.state = Failed
	sub.err = err
}

// formLoaded records a form's thumbnail and reports if this event made the
// whole tileset ready. It returns true at most once.
func (t *Tileset) formLoaded(f *Form, thumb image.Image) bool {
	sub := &t.subsets[f.ref.Subset]
	if sub.state != Loading || f.ready {
		return false
	}

	f.thumb = thumb
	f.ready = true
	sub.loaded++
	if sub.loaded == len(sub.forms) {
		sub.state = Ready
	}

	if t.installed || !t.Ready() {
		return false
	}
	t.installed = true
	return true
}
