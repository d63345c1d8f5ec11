// Package world is the facade over pkg/quadtree: it owns the arena, the
// current root and its level, and the active rule table, and exposes the
// operations a caller actually wants (set a cell, step, grow, load a
// pattern, draw) without exposing hash-consing or memoization directly.
package world

import (
	"errors"
	"iter"

	"github.com/flier/hashlife/pkg/braille"
	"github.com/flier/hashlife/pkg/quadtree"
	"github.com/flier/hashlife/pkg/rle"
	"github.com/flier/hashlife/pkg/ruleset"
	"github.com/flier/hashlife/pkg/tuple"
)

// ErrOutOfBounds is returned by Set when (x, y) falls outside the world's
// current extent. Call Grow, or use SetGrowing, first.
var ErrOutOfBounds = errors.New("world: coordinate out of bounds")

// World is the cellular automaton's hash-consed state: a single quadtree
// root, the level (hence extent) it's currently grown to, and the rule it
// steps under.
type World struct {
	Arena *quadtree.Arena
	Root  quadtree.NodeID
	Level int
	Rule  ruleset.Rule
	Rules *ruleset.Table

	rules *ruleset.Cache
}

// New creates an empty world running r, grown to the minimum level (3, an
// 8x8 leaf).
func New(r ruleset.Rule) *World {
	cache := ruleset.NewCache()
	a := quadtree.New()

	return &World{
		Arena: a,
		Root:  a.Void(),
		Level: 3,
		Rule:  r,
		Rules: cache.Compile(r),
		rules: cache,
	}
}

func (w *World) bound() int64 { return int64(1) << uint(w.Level-1) }

func (w *World) inBounds(x, y int64) bool {
	b := w.bound()
	return x >= -b && x < b && y >= -b && y < b
}

// Set turns on the cell at (x, y). It fails with ErrOutOfBounds if (x, y)
// falls outside the world's current extent; the caller must Grow first
// (or use SetGrowing).
func (w *World) Set(x, y int64) error {
	if !w.inBounds(x, y) {
		return ErrOutOfBounds
	}
	w.Root = w.Arena.Set(w.Root, w.Level, x, y)
	return nil
}

// SetGrowing is Set, but grows the world first whenever (x, y) falls
// outside its current extent — what the RLE loader needs, since a
// pattern can be larger than the tiny universe it's dropped into.
func (w *World) SetGrowing(x, y int64) {
	for !w.inBounds(x, y) {
		w.Grow(1)
	}
	_ = w.Set(x, y)
}

// Grow wraps the world in k more levels of empty margin, doubling its
// side length each time while keeping existing cells fixed relative to
// the origin.
func (w *World) Grow(k int) {
	for i := 0; i < k; i++ {
		w.Root, w.Level = w.Arena.Grow(w.Root, w.Level)
	}
}

// Step advances the world by 2^(Level-1) generations, where Level is the
// level before Step runs. Level itself is unchanged from the caller's
// perspective: growing by one level first gives Result exactly the
// border Arena.Result needs to avoid truncation artifacts (a pattern
// already snug against its root's edge gains a border of half the new
// root's span, which is exactly what a level-(L+1) Result consumes), and
// Result's own level-reducing recursion cancels the growth back out.
func (w *World) Step() {
	w.Grow(1)
	w.Root = w.Arena.Result(w.Root, *w.Rules)
	w.Level--
}

// SetRule switches the active rule, compiling (or fetching from cache)
// its lookup table. Already-memoized results computed under a previous
// rule are not invalidated — same as the reference implementation this
// is ported from, which never tracks which rule a memoized result was
// computed under either.
func (w *World) SetRule(r ruleset.Rule) {
	w.Rule = r
	w.Rules = w.rules.Compile(r)
}

// LoadRLE parses bytes as an RLE pattern file, setting every live cell it
// encodes (growing the world as needed) and switching to its declared
// rule, if it names one.
func (w *World) LoadRLE(bytes []byte) (rle.File, error) {
	file, err := rle.Read(bytes, w.SetGrowing)
	if err != nil {
		return rle.File{}, err
	}

	w.SetRule(file.Rule)

	return file, nil
}

// Cells yields the world coordinates of every live cell, via a
// depth-first walk of the quadtree that skips void subtrees entirely.
func (w *World) Cells() iter.Seq[tuple.Tuple2[int64, int64]] {
	bound := w.bound()
	return func(yield func(tuple.Tuple2[int64, int64]) bool) {
		w.walk(w.Root, w.Level, -bound, -bound, yield)
	}
}

func (w *World) walk(id quadtree.NodeID, level int, xlo, ylo int64, yield func(tuple.Tuple2[int64, int64]) bool) bool {
	if id == w.Arena.Void() {
		return true
	}

	n := w.Arena.Get(id)

	if n.IsLeaf() {
		return walkLeaf(n, xlo, ylo, yield)
	}

	half := int64(1) << uint(level-1)

	children := [4]struct {
		id       quadtree.NodeID
		xlo, ylo int64
	}{
		{n.NW(), xlo, ylo + half},
		{n.NE(), xlo + half, ylo + half},
		{n.SW(), xlo, ylo},
		{n.SE(), xlo + half, ylo},
	}

	for _, c := range children {
		if !w.walk(c.id, level-1, c.xlo, c.ylo, yield) {
			return false
		}
	}

	return true
}

func walkLeaf(n quadtree.Node, xlo, ylo int64, yield func(tuple.Tuple2[int64, int64]) bool) bool {
	const half = 4

	quads := [4]struct {
		bits     uint16
		xlo, ylo int64
	}{
		{n.LeafNW(), xlo, ylo + half},
		{n.LeafNE(), xlo + half, ylo + half},
		{n.LeafSW(), xlo, ylo},
		{n.LeafSE(), xlo + half, ylo},
	}

	for _, q := range quads {
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				if leafBit(q.bits, col, row) {
					x := q.xlo + int64(col)
					y := q.ylo + 3 - int64(row)
					if !yield(tuple.New2(x, y)) {
						return false
					}
				}
			}
		}
	}

	return true
}

func leafBit(word uint16, col, row int) bool {
	shift := 15 - (row*4 + col)
	return (word>>uint(shift))&1 == 1
}

// Draw renders the world into fb at the given scale (screen pixels per
// 2^scale world cells), top-left anchored at (dx, dy). The recursion
// mirrors camera.rs's draw_cell/draw_leaf/draw_rule: a void subtree
// clears its whole square in one call, a square that has shrunk to a
// single pixel is drawn without recursing further, and only a level-3
// leaf ever touches raw bitmaps.
func (w *World) Draw(fb *braille.Framebuffer, dx, dy int, scale uint) {
	w.drawCell(fb, w.Root, dx, dy, uint(w.Level), scale)
}

func (w *World) drawCell(fb *braille.Framebuffer, id quadtree.NodeID, dx, dy int, n, scale uint) {
	if scale > n {
		return
	}

	sw := 1 << (n - scale)

	if id == w.Arena.Void() {
		fb.DrawClearSquare(dx, dy, sw)
		return
	}

	if sw == 1 {
		fb.DrawPixel(dx, dy)
		return
	}

	node := w.Arena.Get(id)

	if n == 3 {
		drawLeaf(fb, node, dx, dy, scale)
		return
	}

	half := sw >> 1
	w.drawCell(fb, node.NW(), dx, dy, n-1, scale)
	w.drawCell(fb, node.NE(), dx+half, dy, n-1, scale)
	w.drawCell(fb, node.SW(), dx, dy+half, n-1, scale)
	w.drawCell(fb, node.SE(), dx+half, dy+half, n-1, scale)
}

// drawLeaf draws a level-3 (8x8) leaf at the given scale: scale 0 draws
// every set bit as its own pixel, scale 1/2 coarsen by OR-ing each
// surviving 2x2/4x4 block down to one pixel, scale 3 collapses the whole
// leaf to a single pixel if it has any live cell at all.
func drawLeaf(fb *braille.Framebuffer, n quadtree.Node, dx, dy int, scale uint) {
	quads := [4]struct {
		bits   uint16
		dx, dy int
	}{
		{n.LeafNW(), dx, dy},
		{n.LeafNE(), dx + 4, dy},
		{n.LeafSW(), dx, dy + 4},
		{n.LeafSE(), dx + 4, dy + 4},
	}

	switch scale {
	case 0:
		for _, q := range quads {
			drawBitmap(fb, q.bits, q.dx, q.dy)
		}
	case 1:
		for _, q := range quads {
			drawBitmapCoarse(fb, q.bits, dx+(q.dx-dx)/2, dy+(q.dy-dy)/2, 1)
		}
	case 2:
		for _, q := range quads {
			drawBitmapCoarse(fb, q.bits, dx+(q.dx-dx)/4, dy+(q.dy-dy)/4, 2)
		}
	case 3:
		if n.LeafNW()|n.LeafNE()|n.LeafSW()|n.LeafSE() != 0 {
			fb.DrawPixel(dx, dy)
		}
	}
}

// drawBitmap draws each of a 4x4 quadrant's set bits as its own pixel at
// (dx, dy).
func drawBitmap(fb *braille.Framebuffer, bits uint16, dx, dy int) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if leafBit(bits, col, row) {
				fb.DrawPixel(dx+col, dy+row)
			}
		}
	}
}

// drawBitmapCoarse draws a 4x4 quadrant collapsed to (4>>level)-wide
// pixels, one pixel per surviving 2^level x 2^level block.
func drawBitmapCoarse(fb *braille.Framebuffer, bits uint16, dx, dy int, level uint) {
	block := 1 << level
	for row := 0; row < 4; row += block {
		for col := 0; col < 4; col += block {
			on := false
			for r := row; r < row+block && !on; r++ {
				for c := col; c < col+block; c++ {
					if leafBit(bits, c, r) {
						on = true
						break
					}
				}
			}
			if on {
				fb.DrawPixel(dx+col/block, dy+row/block)
			}
		}
	}
}
