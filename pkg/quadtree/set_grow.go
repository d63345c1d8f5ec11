package quadtree

// Set walks from root (of the given level) towards the cell (x, y),
// re-interning every node on the path on the way back up so the result is
// fully canonical. x and y must lie within root's span; the caller is
// responsible for growing the tree first if they don't.
func (a *Arena) Set(root NodeID, level int, x, y int64) NodeID {
	if level == 3 {
		return a.setLeaf(root, x, y)
	}

	n := a.Get(root)
	half := int64(1) << uint(level-2)

	switch {
	case x < 0 && y >= 0: // NW
		n.nw = a.Set(n.nw, level-1, x+half, y-half)
	case x >= 0 && y >= 0: // NE
		n.ne = a.Set(n.ne, level-1, x-half, y-half)
	case x < 0 && y < 0: // SW
		n.sw = a.Set(n.sw, level-1, x+half, y+half)
	default: // SE
		n.se = a.Set(n.se, level-1, x-half, y+half)
	}

	return a.Intern(n.nw, n.ne, n.sw, n.se)
}

// setLeaf sets the single bit for (x, y) within a level-3 leaf, x and y
// each in [-4, 4).
func (a *Arena) setLeaf(root NodeID, x, y int64) (id NodeID) {
	var q quad
	if root != voidID {
		q = a.Get(root).leafQuadrants()
	}

	switch {
	case x < 0 && y >= 0: // NW
		q.nw = setQuadrantBit(q.nw, x, y, -4, 0)
	case x >= 0 && y >= 0: // NE
		q.ne = setQuadrantBit(q.ne, x, y, 0, 0)
	case x < 0 && y < 0: // SW
		q.sw = setQuadrantBit(q.sw, x, y, -4, -4)
	default: // SE
		q.se = setQuadrantBit(q.se, x, y, 0, -4)
	}

	return a.Leaf(q.nw, q.ne, q.sw, q.se)
}

// setQuadrantBit sets the bit for world coordinate (x, y) within a 4x4
// quadrant whose world-space lower bound is (xlo, ylo).
func setQuadrantBit(bitmap uint16, x, y, xlo, ylo int64) uint16 {
	col := int(x - xlo)
	row := int(ylo + 3 - y)
	return setBit(bitmap, col, row)
}

// Grow wraps root (of the given level) in one more level of empty margin,
// preserving its position relative to the origin, and returns the new
// root and its level.
func (a *Arena) Grow(root NodeID, level int) (NodeID, int) {
	n := a.Get(root)

	var newNW, newNE, newSW, newSE NodeID
	if n.IsLeaf() {
		q := n.leafQuadrants()
		newNW = a.Leaf(0, 0, 0, q.nw)
		newNE = a.Leaf(0, 0, q.ne, 0)
		newSW = a.Leaf(0, q.sw, 0, 0)
		newSE = a.Leaf(q.se, 0, 0, 0)
	} else {
		newNW = a.Intern(voidID, voidID, voidID, n.nw)
		newNE = a.Intern(voidID, voidID, n.ne, voidID)
		newSW = a.Intern(voidID, n.sw, voidID, voidID)
		newSE = a.Intern(n.se, voidID, voidID, voidID)
	}

	return a.Intern(newNW, newNE, newSW, newSE), level + 1
}
