package ntree

// Walk runs f on every node in the tree rooted at n, parents before children
// and children in index order. Returning false from f skips the node's
// descendants.
func (n *Node[T]) Walk(f func(n *Node[T]) bool) {
	if !f(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(f)
	}
}

// Search appends to points every DataPoint falling within the bounding box
// between lo and hi. It is assumed that for every dimension i,
// lo[i] <= hi[i]. This is an inclusive search, so points whose coordinates
// are equal to the supplied bounds in a given dimension will match.
//
// Subtrees whose box does not intersect the query box are never visited.
// Matching points are appended by reference; callers clone them before they
// leave the package.
func (n *Node[T]) Search(lo, hi []float64, points []DataPoint[T]) []DataPoint[T] {
	min, max := n.BoundPoints()
	if !BoxesIntersect(min, max, lo, hi) {
		return points
	}
	if n.IsLeaf() {
		// check local points for leaf node
		for _, dp := range n.data {
			if PointInBox(dp.Point, lo, hi) {
				points = append(points, dp)
			}
		}
		return points
	}
	for _, child := range n.children {
		points = child.Search(lo, hi, points)
	}
	return points
}
