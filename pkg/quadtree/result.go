package quadtree

import "github.com/flier/hashlife/internal/debug"

// Result returns the memoized level-(k-1) successor of the level-k node
// id, computing and caching it on first call. It advances the node's
// square by 2^(k-2) generations. id must not be a leaf: leaves are only
// ever consulted through the level-4 base case below, never passed here
// directly.
//
// table is the compiled 65536-entry rule lookup produced by
// [github.com/flier/hashlife/pkg/ruleset].
func (a *Arena) Result(id NodeID, table []uint16) NodeID {
	if id == voidID {
		return voidID
	}

	if cached := a.GetResult(id); cached.IsSome() {
		return cached.Unwrap()
	}

	n := a.Get(id)
	debug.Assert(!n.IsLeaf(), "Result called on a leaf node %d", id)

	var result NodeID
	if a.Get(n.nw).IsLeaf() || a.Get(n.ne).IsLeaf() || a.Get(n.sw).IsLeaf() || a.Get(n.se).IsLeaf() {
		result = a.resultLevel4(n, table)
	} else {
		result = a.resultLevelN(n, table)
	}

	// id's own entry in a.results may have moved if a rehash occurred
	// during the recursive calls above; re-fetch nothing here, since
	// SetResult indexes by id directly into the result slice, which a
	// rehash never relocates (only the probe table does).
	a.SetResult(id, result)

	return result
}

// resultLevel4 handles a 16x16 node whose four children are leaves: nine
// pseudo-leaves are spliced from the children's quadrants, each reduced by
// two generations via leafResult, then recombined and reduced again.
func (a *Arena) resultLevel4(n Node, table []uint16) NodeID {
	nw := a.Get(n.nw).leafQuadrants()
	ne := a.Get(n.ne).leafQuadrants()
	sw := a.Get(n.sw).leafQuadrants()
	se := a.Get(n.se).leafQuadrants()

	north := hCenter8(nw, ne)
	south := hCenter8(sw, se)
	east := vCenter8(ne, se)
	west := vCenter8(nw, sw)
	center := center16(nw, ne, sw, se)

	n00 := leafResult(table, nw.nw, nw.ne, nw.sw, nw.se)
	n01 := leafResult(table, north.nw, north.ne, north.sw, north.se)
	n02 := leafResult(table, ne.nw, ne.ne, ne.sw, ne.se)
	n10 := leafResult(table, west.nw, west.ne, west.sw, west.se)
	n11 := leafResult(table, center.nw, center.ne, center.sw, center.se)
	n12 := leafResult(table, east.nw, east.ne, east.sw, east.se)
	n20 := leafResult(table, sw.nw, sw.ne, sw.sw, sw.se)
	n21 := leafResult(table, south.nw, south.ne, south.sw, south.se)
	n22 := leafResult(table, se.nw, se.ne, se.sw, se.se)

	tl := leafResult(table, n00, n01, n10, n11)
	tr := leafResult(table, n01, n02, n11, n12)
	bl := leafResult(table, n10, n11, n20, n21)
	br := leafResult(table, n11, n12, n21, n22)

	return a.Leaf(tl, tr, bl, br)
}

// resultLevelN handles a node of level >= 5: nine level-(k-1) pseudo-nodes
// are interned from the children's sub-children, each reduced recursively
// via Result, then recombined and reduced again.
func (a *Arena) resultLevelN(n Node, table []uint16) NodeID {
	north := a.hCenter(n.nw, n.ne)
	south := a.hCenter(n.sw, n.se)
	east := a.vCenter(n.ne, n.se)
	west := a.vCenter(n.nw, n.sw)
	center := a.center(n)

	n00 := a.Result(n.nw, table)
	n01 := a.Result(north, table)
	n02 := a.Result(n.ne, table)
	n10 := a.Result(west, table)
	n11 := a.Result(center, table)
	n12 := a.Result(east, table)
	n20 := a.Result(n.sw, table)
	n21 := a.Result(south, table)
	n22 := a.Result(n.se, table)

	tl := a.Intern(n00, n01, n10, n11)
	tr := a.Intern(n01, n02, n11, n12)
	bl := a.Intern(n10, n11, n20, n21)
	br := a.Intern(n11, n12, n21, n22)

	return a.Intern(a.Result(tl, table), a.Result(tr, table), a.Result(bl, table), a.Result(br, table))
}

// center returns the level-(k-1) pseudo-node centered on n (a level-k
// node), assembled from the inner grandchild of each of n's four children.
func (a *Arena) center(n Node) NodeID {
	nw, ne, sw, se := a.Get(n.nw), a.Get(n.ne), a.Get(n.sw), a.Get(n.se)
	return a.Intern(nw.se, ne.sw, sw.ne, se.nw)
}

// hCenter returns the level-(k-1) pseudo-node straddling the shared
// vertical edge of two adjacent level-k siblings, w (west) and e (east).
func (a *Arena) hCenter(w, e NodeID) NodeID {
	wn, en := a.Get(w), a.Get(e)
	return a.Intern(wn.ne, en.nw, wn.se, en.sw)
}

// vCenter returns the level-(k-1) pseudo-node straddling the shared
// horizontal edge of two adjacent level-k siblings, n (north) and s (south).
func (a *Arena) vCenter(n, s NodeID) NodeID {
	nn, sn := a.Get(n), a.Get(s)
	return a.Intern(nn.sw, nn.se, sn.nw, sn.ne)
}
