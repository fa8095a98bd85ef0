// NTrees are an N-dimensional subdividing spatial representation.
// Common dimension-specific types are the 2-dimensional (quadtree) and
// 3-dimensional (octree) variants. This library supports an arbitrary number of
// dimensions, implemented in the same manner as those specific cases.
//
// Leaves hold a list of DataPoints and split into 2^N children once a
// DivisionPolicy asks them to. An Index wraps a tree spanning the unit
// hyper-cube and answers closest, radius and box queries against it.

package ntree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/cznic/mathutil"
)

// Maximum number of dimensions handled by this lib. A division allocates 2^N
// children, which stops being practical well before the bits of an int run
// out.
const MaxN = 16

// Node is a bounding box in N-dimensional space, holding either DataPoints
// (leaf) or 2^N children (internal).
type Node[T any] struct {
	// The bounding n-dimensional box for this node. It should always be true
	// that center[i] +- span[i] contains every stored point.
	center, span []float64
	// Distance from the root, which has depth 0.
	depth int
	// Points stored on a leaf. Always nil on internal nodes.
	data []DataPoint[T]
	// Slice for child storage, 2^n once divided.
	children []*Node[T]
	// keep track of point counts under each node, useful for
	// histograms, density predictions, etc.
	count uint64
}

// NewNode creates a node using N dimensional slices for the center
// coordinates and the half-width span of the tree space. Span slice values
// must be positive, as they define a range of center[i] +- span[i] for each
// dimension.
//
// Returns an error if center and span don't have the same cardinality,
// or a span dimension is <= 0.
func NewNode[T any](center, span []float64, depth int) (*Node[T], error) {
	if len(center) > MaxN {
		return nil, errors.New("too many dimensions").
			WithType(ErrTypeInvalidConfig).
			WithTag("dimensions", len(center)).
			WithTag("max", MaxN)
	}
	if len(center) != len(span) {
		return nil, errors.New("center and span have mismatched lengths").
			WithType(ErrTypeInvalidConfig).
			WithTag("center", len(center)).
			WithTag("span", len(span))
	}
	if len(center) == 0 {
		return nil, errors.New("can't have 0-dimensional ntree").
			WithType(ErrTypeInvalidConfig)
	}
	for i := range span {
		if !(span[i] > 0) {
			return nil, errors.New("span must be positive").
				WithType(ErrTypeInvalidConfig).
				WithTag("dimension", i).
				WithTag("span", span[i])
		}
	}
	if depth < 0 {
		return nil, errors.New("depth must not be negative").
			WithType(ErrTypeInvalidConfig).
			WithTag("depth", depth)
	}

	n := &Node[T]{
		center: make([]float64, len(center)),
		span:   make([]float64, len(span)),
		depth:  depth,
	}
	copy(n.center, center)
	copy(n.span, span)
	return n, nil
}

// N returns the number of dimensions (N) for this node.
func (n *Node[T]) N() int {
	return len(n.center)
}

// Center returns the center coordinates for this node.
func (n *Node[T]) Center() []float64 {
	return n.center
}

// Span returns the positive half-widths from center for this node. This node
// covers the entire space of Center() +- Span().
func (n *Node[T]) Span() []float64 {
	return n.span
}

// Depth returns how many divisions separate this node from its root.
func (n *Node[T]) Depth() int {
	return n.depth
}

// IsRoot reports whether n was created directly rather than by a Divide.
func (n *Node[T]) IsRoot() bool {
	return n.depth == 0
}

// IsLeaf reports whether n still stores points rather than children.
func (n *Node[T]) IsLeaf() bool {
	return n.children == nil
}

// BoundPoints returns the min and max points for this node.
// This is a shortcut instead of doing the Center() +- Span() math manually.
func (n *Node[T]) BoundPoints() (min, max []float64) {
	min = make([]float64, len(n.center))
	max = make([]float64, len(n.center))
	for i := range n.center {
		min[i] = n.center[i] - n.span[i]
		max[i] = n.center[i] + n.span[i]
	}
	return min, max
}

// Data returns the points stored on a leaf. It returns nil on internal nodes.
// The returned slice must not be modified.
func (n *Node[T]) Data() []DataPoint[T] {
	return n.data
}

// Len returns how many points are stored directly on this node.
func (n *Node[T]) Len() int {
	return len(n.data)
}

// Count returns how many points lie within this node and its descendants.
func (n *Node[T]) Count() uint64 {
	return n.count
}

// ChildCount returns 0 for a leaf, 2^N otherwise.
func (n *Node[T]) ChildCount() int {
	return len(n.children)
}

// Children returns the children of an internal node, indexed by the bitmask
// described in Divide. The returned slice must not be modified.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// Contains checks if p is within the closed bounds of the node.
// Returns an error if len(p) != n.N().
func (n *Node[T]) Contains(p []float64) (bool, error) {
	if len(p) != n.N() {
		return false, errors.New("point has a different dimension count than the node").
			WithType(ErrTypeDimensionMismatch).
			WithTag("point", len(p)).
			WithTag("node", n.N())
	}
	return n.spans(p), nil
}

// spans is Contains without the dimension check. NaN coordinates are never
// spanned.
func (n *Node[T]) spans(p []float64) bool {
	for i := range n.center {
		d := p[i] - n.center[i]
		if d < 0 {
			d = -d
		}
		if !(d <= n.span[i]) {
			return false
		}
	}
	return true
}

// Bitwise operations on array indices are used to keep track of what subset of
// space each child occupies, as described here:
// http://www.brandonpelfrey.com/blog/coding-a-simple-octree/
func hasBit(n int, pos uint) bool {
	val := n & (1 << pos)
	return (val > 0)
}

func setBit(n int, pos uint) int {
	n |= (1 << pos)
	return n
}

// Divide turns a leaf into an internal node with 2^N children. Child i covers
// the upper half of dimension j when bit j of i is set, the lower half
// otherwise, so the children tile the parent span exactly.
//
// Points stored on the leaf stay in its payload slot; the caller is expected
// to take them and re-insert them into the children.
func (n *Node[T]) Divide() error {
	if n.children != nil {
		return errors.New("node is already divided").
			WithType(ErrTypeNotLeaf).
			WithTag("depth", n.depth)
	}

	size := mathutil.ModPowUint64(2, uint64(n.N()), mathutil.MaxInt)
	children := make([]*Node[T], size)
	for i := range children {
		center := make([]float64, n.N())
		span := make([]float64, n.N())
		for j := range center {
			// use bitmask of child index to determine dimension range for child.
			// positive bit means positive range, otherwise negative range.
			span[j] = n.span[j] / 2.0
			if hasBit(i, uint(j)) {
				center[j] = n.center[j] + span[j]
			} else {
				center[j] = n.center[j] - span[j]
			}
		}
		children[i] = &Node[T]{
			center: center,
			span:   span,
			depth:  n.depth + 1,
		}
	}
	n.children = children
	return nil
}

// childFor returns the first child whose closed span contains p, or nil when
// no child does.
func (n *Node[T]) childFor(p []float64) *Node[T] {
	// generate the child bounding bitmask, then confirm it against the
	// child's own span before falling back to a scan in child order.
	var target int
	for j := range n.center {
		if p[j] > n.center[j] {
			target = setBit(target, uint(j))
		}
	}
	if child := n.children[target]; child.spans(p) {
		return child
	}
	for _, child := range n.children {
		if child.spans(p) {
			return child
		}
	}
	return nil
}

// takeData clears the leaf payload slot and returns what it held.
func (n *Node[T]) takeData() []DataPoint[T] {
	data := n.data
	n.data = nil
	return data
}

func (n *Node[T]) appendData(dp DataPoint[T]) {
	n.data = append(n.data, dp)
}
