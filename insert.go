package ntree

import (
	"fmt"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// LeafInfo describes a leaf that is about to accept a new point.
type LeafInfo struct {
	// Len is the number of points the leaf currently stores.
	Len int
	// Depth is the distance of the leaf from the root.
	Depth int
}

// DivisionPolicy decides whether a leaf divides before storing the next point.
type DivisionPolicy interface {
	ShouldDivide(leaf LeafInfo) bool
}

// CountThreshold divides a leaf once it already stores at least that many
// points when another one arrives.
type CountThreshold int

// ShouldDivide implements DivisionPolicy.
func (t CountThreshold) ShouldDivide(leaf LeafInfo) bool {
	return leaf.Len >= int(t)
}

// DivisionPolicyFunc adapts a plain function to a DivisionPolicy.
type DivisionPolicyFunc func(leaf LeafInfo) bool

// ShouldDivide implements DivisionPolicy.
func (f DivisionPolicyFunc) ShouldDivide(leaf LeafInfo) bool {
	return f(leaf)
}

// inserter carries what a single insertion needs while it walks the tree.
type inserter[T any] struct {
	policy   DivisionPolicy
	maxDepth int
	// onDivide is called after every leaf division.
	onDivide func(n *Node[T], points int)
}

// insert stores dp below n. Only the root checks the bounds: every descent
// afterwards picks a child that spans the point.
func (ins *inserter[T]) insert(n *Node[T], dp DataPoint[T]) error {
	if n.IsRoot() && !n.spans(dp.Point) {
		return errors.New("point does not fall within the bounds of the tree").
			WithType(ErrTypeOutOfBounds).
			WithTag("point", dp.Point)
	}

	if !n.IsLeaf() {
		return ins.insertIntoChildren(n, dp)
	}

	if n.depth >= ins.maxDepth || !ins.policy.ShouldDivide(LeafInfo{Len: n.Len(), Depth: n.depth}) {
		n.appendData(dp)
		n.count++
		return nil
	}

	if err := n.Divide(); err != nil {
		return err
	}

	// remove current point data and re-add it so it cascades into the child
	// nodes, followed by the new point.
	points := n.takeData()
	n.count = 0
	if ins.onDivide != nil {
		ins.onDivide(n, len(points))
	}
	for _, p := range append(points, dp) {
		if err := ins.insertIntoChildren(n, p); err != nil {
			return err
		}
	}
	return nil
}

func (ins *inserter[T]) insertIntoChildren(n *Node[T], dp DataPoint[T]) error {
	child := n.childFor(dp.Point)
	if child == nil {
		panic(fmt.Sprintf("ntree: no child of node at depth %d (center %v, span %v) contains point %v",
			n.depth, n.center, n.span, dp.Point))
	}
	if err := ins.insert(child, dp); err != nil {
		return err
	}
	n.count++
	return nil
}
