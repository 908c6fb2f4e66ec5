package geomorph

// Grid is a sparse set of placements keyed by cube face. Iteration follows
// insertion order; overwriting a key keeps its position.
type Grid struct {
	order []Key
	tiles map[Key]FormRef
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{tiles: map[Key]FormRef{}}
}

// Toggle places `ref` at `k`. Placing the ref already at `k` removes it
// instead. Returns whether `k` is occupied afterwards.
func (g *Grid) Toggle(k Key, ref FormRef) bool {
	old, ok := g.tiles[k]
	if ok && old == ref {
		g.Remove(k)
		return false
	}
	if !ok {
		g.order = append(g.order, k)
	}
	g.tiles[k] = ref
	return true
}

// Remove the placement at `k`, reporting if there was one.
func (g *Grid) Remove(k Key) bool {
	if _, ok := g.tiles[k]; !ok {
		return false
	}
	delete(g.tiles, k)
	for i, o := range g.order {
		if o == k {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return true
}

// At returns the form placed at `k` (if any).
func (g *Grid) At(k Key) (FormRef, bool) {
	ref, ok := g.tiles[k]
	return ref, ok
}

func (g *Grid) Len() int {
	return len(g.order)
}

// Each calls fn for every placement in insertion order.
func (g *Grid) Each(fn func(Key, FormRef)) {
	for _, k := range g.order {
		fn(k, g.tiles[k])
	}
}
