package quadtree

import (
	"fmt"

	"github.com/flier/hashlife/internal/debug"
	"github.com/flier/hashlife/pkg/arena"
	"github.com/flier/hashlife/pkg/arena/slice"
	"github.com/flier/hashlife/pkg/opt"
)

// emptySlot marks an unoccupied bucket in the probe table. It is never a
// valid node index: node indices are bounded by maxNodes, well below it.
const emptySlot NodeID = ^NodeID(0)

// noResult marks a result-cache entry that has not yet been computed.
const noResult NodeID = ^NodeID(0)

// loadFactorNum/loadFactorDen bound the probe table's occupancy before a
// rehash is triggered; kept below 0.8 per spec.
const (
	loadFactorNum = 4
	loadFactorDen = 5
)

// Arena is the hash-consed node store: it owns every interior and leaf
// node ever interned during a run, guarantees that structurally equal
// nodes share one index, and carries the per-node memoized successor
// ("result") used by [Arena.Result].
//
// A zero Arena is not ready to use; call [New].
type Arena struct {
	mem *arena.Arena

	nodes   slice.Slice[Node]
	results slice.Slice[NodeID]

	table slice.Slice[NodeID] // buckets hold indices into nodes, or emptySlot
	count int                 // occupied buckets in table
}

// New creates an Arena and interns the canonical void node at index 0.
func New() *Arena {
	a := &Arena{mem: &arena.Arena{}}

	a.nodes = slice.Make[Node](a.mem, 0)
	a.results = slice.Make[NodeID](a.mem, 0)

	a.table = slice.Make[NodeID](a.mem, firstTableSize)
	for i := 0; i < a.table.Len(); i++ {
		a.table.Store(i, emptySlot)
	}

	id := a.push(Node{})
	debug.Assert(id == voidID, "void must be the first interned node")
	a.insertSlot(Node{}, voidID)

	return a
}

const firstTableSize = 17 // smallest prime comfortably above a handful of nodes

// Void returns the canonical empty node's index.
func (a *Arena) Void() NodeID { return voidID }

// Get returns a read-only view of the node at id.
func (a *Arena) Get(id NodeID) Node {
	if debug.Enabled {
		debug.Assert(int(id) < a.nodes.Len(), "node index %d out of range", id)
	}
	return a.nodes.Load(int(id))
}

// GetResult returns the memoized successor of id, if one has been computed.
func (a *Arena) GetResult(id NodeID) opt.Option[NodeID] {
	r := a.results.Load(int(id))
	if r == noResult {
		return opt.None[NodeID]()
	}
	return opt.Some(r)
}

// SetResult stores the memoized successor of id.
func (a *Arena) SetResult(id, result NodeID) {
	a.results.Store(int(id), result)
}

// Intern returns the canonical index for an interior node with the given
// children, inserting it if no equal node exists yet.
func (a *Arena) Intern(nw, ne, sw, se NodeID) NodeID {
	return a.intern(Node{nw: nw, ne: ne, sw: sw, se: se})
}

// Leaf returns the canonical index for a leaf with the given four
// quadrant bitmaps, setting the tag bit on nw at interning time.
func (a *Arena) Leaf(nw, ne, sw, se uint16) NodeID {
	return a.intern(Node{nw: NodeID(nw) | leafTag, ne: NodeID(ne), sw: NodeID(sw), se: NodeID(se)})
}

func (a *Arena) intern(n Node) NodeID {
	h := hash(n)

	if id, ok := a.find(n, h); ok {
		return id
	}

	if a.count+1 > a.table.Len()*loadFactorNum/loadFactorDen {
		a.rehash(nextTableSize(a.table.Len()))
	}

	id := a.push(n)
	a.insertSlot(n, id)

	return id
}

// push appends n to the node/result storage and returns its new index.
func (a *Arena) push(n Node) NodeID {
	if a.nodes.Len() >= int(maxNodes) {
		panic(fmt.Errorf("quadtree: arena exhausted at %d nodes", a.nodes.Len()))
	}

	a.nodes = a.nodes.AppendOne(a.mem, n)
	a.results = a.results.AppendOne(a.mem, noResult)

	return NodeID(a.nodes.Len() - 1)
}

// find probes the table for a node structurally equal to n, whose hash is
// h. It returns the node's index and true if found.
func (a *Arena) find(n Node, h uint32) (NodeID, bool) {
	size := uint32(a.table.Len())

	for i := uint32(0); i < size; i++ {
		slot := probe(h, i, size)
		id := a.table.Load(int(slot))
		if id == emptySlot {
			return 0, false
		}
		if a.nodes.Load(int(id)) == n {
			return id, true
		}
	}

	return 0, false
}

// insertSlot records id's slot in the probe table, assuming n (id's node)
// is not already present.
func (a *Arena) insertSlot(n Node, id NodeID) {
	h := hash(n)
	size := uint32(a.table.Len())

	for i := uint32(0); i < size; i++ {
		slot := probe(h, i, size)
		if a.table.Load(int(slot)) == emptySlot {
			a.table.Store(int(slot), id)
			a.count++
			return
		}
	}

	panic("quadtree: probe table full despite load-factor check")
}

// rehash grows the probe table to newSize (assumed prime) and reinserts
// every occupied node. Node indices and the result cache are untouched:
// only the table that maps a node's fields to its index is rebuilt.
func (a *Arena) rehash(newSize int) {
	a.table = slice.Make[NodeID](a.mem, newSize)
	for i := 0; i < newSize; i++ {
		a.table.Store(i, emptySlot)
	}
	a.count = 0

	for i := 0; i < a.nodes.Len(); i++ {
		a.insertSlot(a.nodes.Load(i), NodeID(i))
	}
}

// probe computes the i'th quadratic-probe slot for hash h in a table of
// the given size (must be odd/prime so every slot is reachable).
func probe(h uint32, i, size uint32) uint32 {
	const c1, c2 = 1, 1
	return (h + c1*i + c2*i*i) % size
}

// hash dispatches to the node- or leaf-hash polynomial depending on the
// node's tag bit.
func hash(n Node) uint32 {
	if n.IsLeaf() {
		return leafHash(n)
	}
	return nodeHash(n)
}

// nodeHash is se + 3*(sw + 3*(ne + 3*nw + 3)) in wrapping uint32 arithmetic.
func nodeHash(n Node) uint32 {
	const c = 3
	nw, ne, sw, se := uint32(n.nw), uint32(n.ne), uint32(n.sw), uint32(n.se)
	return se + c*(sw+c*(ne+c*nw+c))
}

// leafHash is se + 9*(sw + 9*(ne + 9*nw)) in wrapping uint32 arithmetic.
func leafHash(n Node) uint32 {
	const c = 9
	nw, ne, sw, se := uint32(n.nw), uint32(n.ne), uint32(n.sw), uint32(n.se)
	return se + c*(sw+c*(ne+c*nw))
}

// isPrime reports whether n is prime, by trial division up to sqrt(n).
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// nextTableSize returns the next odd value greater than 2*size that passes
// a trial-division primality test.
func nextTableSize(size int) int {
	n := 2*size + 1
	for !isPrime(n) {
		n += 2
	}
	return n
}
