// Package quadtree implements the hash-consed quadtree node arena at the
// heart of HashLife: canonical node identity, the memoized successor
// recursion, and the coordinate-indexed bit setter.
package quadtree

// NodeID is an index into an [Arena]. On 64 bit machines this leaves half
// the index space unused; we accept the waste in exchange for a node shape
// that is four fixed-width words, matching the arena's hash-consing table.
type NodeID uint32

// leafTag is the most significant bit of the nw field. When set, the node's
// four fields are leaf quadrant bitmaps rather than child indices.
//
// Reserving this bit caps the arena at 2^31-1 distinct interior/leaf nodes.
const leafTag NodeID = 1 << 31

// maxNodes is the largest index the arena can hand out before leafTag
// collides with a legitimate index.
const maxNodes = leafTag - 1

// voidID is the canonical empty node, present at every level: all four
// fields zero, tag clear. It is always index 0; [New] bootstraps it.
const voidID NodeID = 0

// Node is the fixed-width representation described by spec: for an
// interior node the four fields are child indices; for a leaf they are the
// four 4x4 quadrant bitmaps, with leafTag set on nw.
type Node struct {
	nw, ne, sw, se NodeID
}

// IsLeaf reports whether n's fields are leaf quadrant bitmaps rather than
// child indices.
func (n Node) IsLeaf() bool { return n.nw&leafTag != 0 }

// NW, NE, SW, SE return the node's four raw fields: child indices for an
// interior node, quadrant bitmaps (nw with its tag bit still set) for a
// leaf. Use [Node.LeafNW], [Node.LeafNE], [Node.LeafSW] and [Node.LeafSE]
// to read a leaf's bitmaps.
func (n Node) NW() NodeID { return n.nw }
func (n Node) NE() NodeID { return n.ne }
func (n Node) SW() NodeID { return n.sw }
func (n Node) SE() NodeID { return n.se }

// LeafNW, LeafNE, LeafSW, LeafSE return a leaf's four 4x4 quadrant
// bitmaps, with the tag bit cleared from the nw word. Must only be called
// on a node for which IsLeaf() is true.
func (n Node) LeafNW() uint16 { return uint16(n.nw &^ leafTag) }
func (n Node) LeafNE() uint16 { return uint16(n.ne) }
func (n Node) LeafSW() uint16 { return uint16(n.sw) }
func (n Node) LeafSE() uint16 { return uint16(n.se) }

// leafQuadrants is the internal counterpart of the Leaf* accessors, used
// by the result recursion to stitch pseudo-leaves together.
func (n Node) leafQuadrants() quad {
	return quad{nw: n.LeafNW(), ne: n.LeafNE(), sw: n.LeafSW(), se: n.LeafSE()}
}
