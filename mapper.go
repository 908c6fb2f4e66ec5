package geomorph

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/sirupsen/logrus"
)

// stripEvent is a finished strip load.
type stripEvent struct {
	tileset string
	subset  Subset
	path    string
	img     image.Image
	err     error
}

// thumbEvent is a finished form thumbnail.
type thumbEvent struct {
	tileset string
	form    *Form
	thumb   image.Image
}

// Mapper owns a map of placed forms, the cursor and the tilesets forms come
// from, and draws all of it onto a Surface.
//
// A Mapper is not safe for concurrent use. Loads run on their own goroutines
// but their results are only applied by Pump or Wait, on the caller's
// goroutine.
type Mapper struct {
	// Palette receives each tileset's forms once it is ready (optional)
	Palette Palette

	// Listener is told about ready & failed tilesets (optional)
	Listener Listener

	cfg     *Config
	log     *logrus.Entry
	surface Surface
	loader  Loader

	view     View
	cursor   Key
	grid     *Grid
	tilesets map[string]*Tileset

	cursorColor color.Color
	cursorLight color.Color

	ctx    context.Context
	cancel context.CancelFunc
	events chan interface{}
}

// NewMapper returns a mapper drawing on `surface` and loading strips with
// `loader`. The config is expected to be valid (see Config.Validate).
func NewMapper(cfg *Config, surface Surface, loader Loader) *Mapper {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Mapper{
		cfg:         cfg,
		log:         logrus.WithField("component", "mapper"),
		surface:     surface,
		loader:      loader,
		view:        cfg.View(),
		cursor:      Origin,
		grid:        NewGrid(),
		tilesets:    map[string]*Tileset{},
		cursorColor: mustColor(cfg.Cursor),
		cursorLight: mustColor(cfg.CursorLight),
		ctx:         ctx,
		cancel:      cancel,
		events:      make(chan interface{}, 64),
	}

	// with nothing placed this is just the cursor
	m.Render()
	return m
}

// Close abandons any loads in flight. Their results are never applied.
func (m *Mapper) Close() {
	m.cancel()
}

// LoadTileset starts loading the named tileset's strips. Asking for a
// tileset the mapper already has does nothing.
func (m *Mapper) LoadTileset(name string, overhead, vertical bool) error {
	if _, ok := m.tilesets[name]; ok {
		return nil
	}

	ts, err := NewTileset(name, overhead, vertical)
	if err != nil {
		return err
	}
	m.tilesets[name] = ts

	for _, s := range []Subset{Overhead, Vertical} {
		if !ts.Requested(s) {
			continue
		}
		path := stripPath(m.cfg, name, s)
		m.log.WithFields(logrus.Fields{"tileset": name, "subset": s, "path": path}).Debug("loading strip")
		go m.loadStrip(name, s, path)
	}
	return nil
}

// Tileset returns a tileset the mapper has been asked to load.
func (m *Mapper) Tileset(name string) (*Tileset, bool) {
	ts, ok := m.tilesets[name]
	return ts, ok
}

// Loading reports if any tileset still has a subset loading.
func (m *Mapper) Loading() bool {
	for _, ts := range m.tilesets {
		if ts.Pending() {
			return true
		}
	}
	return false
}

// Pump applies every load result that has already arrived, without
// blocking. It returns how many were applied.
func (m *Mapper) Pump() int {
	n := 0
	for m.ctx.Err() == nil {
		select {
		case ev := <-m.events:
			m.dispatch(ev)
			n++
		default:
			return n
		}
	}
	return n
}

// Wait applies load results until no tileset is loading.
func (m *Mapper) Wait(ctx context.Context) error {
	for m.Loading() {
		if err := m.ctx.Err(); err != nil {
			return err
		}
		select {
		case ev := <-m.events:
			m.dispatch(ev)
		case <-ctx.Done():
			return ctx.Err()
		case <-m.ctx.Done():
			return m.ctx.Err()
		}
	}
	return nil
}

// loadStrip runs on its own goroutine.
func (m *Mapper) loadStrip(name string, s Subset, path string) {
	img, err := m.loader.Load(m.ctx, path)
	m.post(stripEvent{tileset: name, subset: s, path: path, img: img, err: err})
}

// prepare makes a form's palette thumbnail. Runs on its own goroutine.
func (m *Mapper) prepare(name string, f *Form) {
	thumb := makeThumbnail(f.Image(), m.cfg.ThumbSize)
	m.post(thumbEvent{tileset: name, form: f, thumb: thumb})
}

func (m *Mapper) post(ev interface{}) {
	select {
	case m.events <- ev:
	case <-m.ctx.Done():
	}
}

func (m *Mapper) dispatch(ev interface{}) {
	switch e := ev.(type) {
	case stripEvent:
		m.onStrip(e)
	case thumbEvent:
		m.onThumb(e)
	}
}

func (m *Mapper) onStrip(e stripEvent) {
	ts, ok := m.tilesets[e.tileset]
	if !ok {
		return
	}
	logger := m.log.WithFields(logrus.Fields{"tileset": e.tileset, "subset": e.subset})

	err := e.err
	var forms []*Form
	if err == nil {
		forms, err = ts.stripLoaded(e.subset, e.img, m.cfg.TileSize)
	}
	if err != nil {
		lerr := &LoadError{Tileset: e.tileset, Subset: e.subset, Path: e.path, Err: err}
		ts.fail(e.subset, lerr)
		logger.WithError(lerr).Error("tileset failed to load")
		if m.Listener != nil {
			m.Listener.TilesetFailed(e.tileset, e.subset, lerr)
		}
		return
	}

	logger.WithField("forms", len(forms)).Debug("strip cut")
	for _, f := range forms {
		go m.prepare(e.tileset, f)
	}
}

func (m *Mapper) onThumb(e thumbEvent) {
	ts, ok := m.tilesets[e.tileset]
	if !ok || !ts.formLoaded(e.form, e.thumb) {
		return
	}

	m.log.WithField("tileset", ts.Name).Info("tileset ready")
	if m.Palette != nil {
		m.Palette.AddForms(ts.PaletteForms())
	}
	if m.Listener != nil {
		m.Listener.TilesetReady(ts.Name)
	}
}

// resolve finds the live form for a placement.
func (m *Mapper) resolve(ref FormRef) (*Form, bool) {
	ts, ok := m.tilesets[ref.Tileset]
	if !ok {
		return nil, false
	}
	return ts.Form(ref.Subset, ref.Offset)
}

// Place toggles `ref` at `k` (see Grid.Toggle). The form must be loaded.
func (m *Mapper) Place(ref FormRef, k Key) (bool, error) {
	if _, ok := m.resolve(ref); !ok {
		return false, fmt.Errorf("%w: %s", ErrUnresolvedPlacement, ref)
	}
	placed := m.grid.Toggle(k, ref)
	m.log.WithFields(logrus.Fields{"key": k, "form": ref, "placed": placed}).Debug("place")
	return placed, nil
}

// Select places a form picked from the palette at the cursor and redraws.
func (m *Mapper) Select(f *Form) error {
	if _, err := m.Place(f.Ref(), m.cursor); err != nil {
		return err
	}
	m.Render()
	return nil
}

// Tiles returns the map's placements.
func (m *Mapper) Tiles() *Grid {
	return m.grid
}

// Cursor returns the highlighted cube face.
func (m *Mapper) Cursor() Key {
	return m.cursor
}

// Curse moves the cursor to `k` and redraws.
func (m *Mapper) Curse(k Key) {
	m.cursor = k
	m.Render()
}

// HandleKey decodes a raw key code and handles it. Unbound codes are
// logged and ignored.
func (m *Mapper) HandleKey(code int) error {
	in, ok := m.cfg.Keys.Lookup(code)
	if !ok {
		m.log.WithField("code", code).Debug("unknown key")
		return fmt.Errorf("%w: %d", ErrUnknownKey, code)
	}
	m.Handle(in)
	return nil
}

// Handle applies an input: navigation moves the cursor, delete removes the
// placement under it. Flip and rotate are accepted but do nothing yet.
func (m *Mapper) Handle(in Input) {
	switch {
	case in.navigates():
		m.Curse(Move(m.cursor, in))
	case in == InputDelete:
		m.grid.Remove(m.cursor)
		m.Render()
	case in == InputFlip, in == InputRotate:
		m.log.WithField("key", m.cursor).Debug(in.String())
	}
}

// View returns the current viewport.
func (m *Mapper) View() View {
	return m.view
}

// Resize recentres the view for a w x h surface and redraws.
func (m *Mapper) Resize(w, h int) {
	m.view.Resize(w, h, m.cfg.TileSize)
	m.Render()
}

// Zoom multiplies the zoom level, within the configured limits, and
// redraws.
func (m *Mapper) Zoom(factor float64) {
	z := m.view.Zoom * factor
	if z < m.cfg.MinZoom {
		z = m.cfg.MinZoom
	}
	if z > m.cfg.MaxZoom {
		z = m.cfg.MaxZoom
	}
	m.view.Zoom = z
	m.Render()
}

// Scroll pans the view by (dx,dy) pixels and redraws.
func (m *Mapper) Scroll(dx, dy float64) {
	m.view.ScrollX += dx
	m.view.ScrollY += dy
	m.Render()
}

// Render redraws everything: every placement, then the cursor on top.
// It panics if a placement refers to a form that doesn't exist.
func (m *Mapper) Render() {
	m.surface.Clear()

	m.grid.Each(func(k Key, ref FormRef) {
		f, ok := m.resolve(ref)
		if !ok {
			panic(fmt.Errorf("%w: %s at %s", ErrUnresolvedPlacement, ref, k))
		}
		m.surface.DrawImage(f.Image(), m.view.Project(m.cfg.TileSize, k.Role, k.X, k.Y, k.Z))
	})

	m.drawCursor()
}

// drawCursor shades all three faces of the cursor's cube, the selected one
// darker.
func (m *Mapper) drawCursor() {
	size := float64(m.cfg.TileSize)
	for _, r := range Roles {
		c := m.cursorLight
		if r == m.cursor.Role {
			c = m.cursorColor
		}
		m.surface.FillRect(c, size, size, m.view.Project(m.cfg.TileSize, r, m.cursor.X, m.cursor.Y, m.cursor.Z))
	}
}
