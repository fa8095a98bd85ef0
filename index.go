package ntree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"
	"github.com/vinerr/ntree/cache"
)

// Index stores DataPoints in an NTree spanning the unit hyper-cube [0,1]^N
// and answers proximity queries against it.
//
// Every method mutates the index, queries included: they fill and reorder the
// result cache. An Index is not safe for concurrent use; callers must
// serialize all calls.
type Index[T any] struct {
	id   string
	name string
	root *Node[T]
	ins  inserter[T]

	cache cache.Cache[string, []DataPoint[T]]
	close func()
}

// Stats describes the shape of an index.
type Stats struct {
	Points        int
	Nodes         int
	Leaves        int
	MaxDepth      int
	CachedResults int
}

// New creates an index over dims dimensions whose leaves divide once they
// hold divisionThreshold points and another one arrives.
func New[T any](dims, divisionThreshold int, opts ...Option) (*Index[T], error) {
	o := options{
		name:          DefaultName,
		maxDepth:      DefaultMaxDepth,
		cachePolicy:   CacheWTinyLFU,
		cacheCapacity: DefaultCacheCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if divisionThreshold < 1 {
		return nil, errors.New("division threshold must be positive").
			WithType(ErrTypeInvalidConfig).
			WithTag("threshold", divisionThreshold)
	}
	if o.maxDepth < 0 {
		return nil, errors.New("max depth must not be negative").
			WithType(ErrTypeInvalidConfig).
			WithTag("max_depth", o.maxDepth)
	}
	if o.policy == nil {
		o.policy = CountThreshold(divisionThreshold)
	}

	center := make([]float64, dims)
	span := make([]float64, dims)
	for i := range center {
		center[i] = 0.5
		span[i] = 0.5
	}
	root, err := NewNode[T](center, span, 0)
	if err != nil {
		return nil, err
	}

	c, closeCache, err := newResultCache[T](o.cachePolicy, o.cacheCapacity)
	if err != nil {
		return nil, err
	}

	idx := &Index[T]{
		id:    uuid.NewString(),
		name:  o.name,
		root:  root,
		cache: c,
		close: closeCache,
	}
	idx.ins = inserter[T]{
		policy:   o.policy,
		maxDepth: o.maxDepth,
		onDivide: idx.onDivide,
	}

	logs.WithTag("index", idx.id).
		WithTag("name", idx.name).
		WithTag("dimensions", dims).
		WithTag("cache", o.cachePolicy.String()).
		Debug("index created")
	return idx, nil
}

func newResultCache[T any](p CachePolicy, capacity int) (cache.Cache[string, []DataPoint[T]], func(), error) {
	nop := func() {}

	switch p {
	case CacheWTinyLFU:
		c, err := cache.NewWTinyLFU[string, []DataPoint[T]](capacity, cache.StringHasher)
		if err != nil {
			return nil, nil, errors.New("creating result cache failed").
				WithType(ErrTypeInvalidConfig).
				Wrap(err)
		}
		return c, nop, nil

	case CacheLRU:
		c, err := cache.NewLRU[string, []DataPoint[T]](capacity)
		if err != nil {
			return nil, nil, errors.New("creating result cache failed").
				WithType(ErrTypeInvalidConfig).
				Wrap(err)
		}
		return c, nop, nil

	case CacheRistretto:
		c, err := cache.NewRistretto[[]DataPoint[T]](capacity)
		if err != nil {
			return nil, nil, errors.New("creating result cache failed").
				WithType(ErrTypeInvalidConfig).
				Wrap(err)
		}
		return c, c.Close, nil

	case CacheNone:
		return cache.Nop[string, []DataPoint[T]]{}, nop, nil

	default:
		return nil, nil, errors.New("unknown cache policy").
			WithType(ErrTypeInvalidConfig).
			WithTag("policy", int(p))
	}
}

func (idx *Index[T]) onDivide(n *Node[T], points int) {
	instrumentDivision(idx.name)
	logs.WithTag("index", idx.id).
		WithTag("depth", n.Depth()).
		WithTag("points", points).
		Debug("leaf divided")
}

// ID returns the identifier generated for this index.
func (idx *Index[T]) ID() string {
	return idx.id
}

// Name returns the name given with WithName.
func (idx *Index[T]) Name() string {
	return idx.name
}

// Dims returns the number of dimensions of the index.
func (idx *Index[T]) Dims() int {
	return idx.root.N()
}

// Len returns the number of points inserted.
func (idx *Index[T]) Len() int {
	return int(idx.root.Count())
}

// Root returns the root node of the tree. It must not be modified.
func (idx *Index[T]) Root() *Node[T] {
	return idx.root
}

// Close releases resources held by the result cache.
func (idx *Index[T]) Close() {
	idx.close()
}

func (idx *Index[T]) checkDims(p []float64) error {
	if len(p) != idx.root.N() {
		return errors.New("point has a different dimension count than the index").
			WithType(ErrTypeDimensionMismatch).
			WithTag("point", len(p)).
			WithTag("index", idx.root.N())
	}
	return nil
}

// Insert stores data at point. Every coordinate of point must lie within
// [0,1]; otherwise an ErrTypeOutOfBounds error is returned and the index is
// left unchanged.
//
// A successful insert purges the result cache so that later box queries see
// the new point.
func (idx *Index[T]) Insert(data T, point []float64) error {
	if err := idx.checkDims(point); err != nil {
		instrumentInsertError(idx.name, err)
		return err
	}

	p := make([]float64, len(point))
	copy(p, point)
	if err := idx.ins.insert(idx.root, DataPoint[T]{Point: p, Data: data}); err != nil {
		instrumentInsertError(idx.name, err)
		return err
	}

	if idx.cache.Len() > 0 {
		idx.cache.Purge()
	}
	instrumentPoints(idx.name, idx.root.Count())
	return nil
}

// FindInBox returns every point within the box whose opposite corners are
// corner1 and corner2. Bounds are inclusive and the corners may be given in
// any order.
//
// Results are cached by the exact bits of the corners, so repeating a query
// without inserting in between does not walk the tree again.
func (idx *Index[T]) FindInBox(corner1, corner2 []float64) ([]DataPoint[T], error) {
	if err := idx.checkDims(corner1); err != nil {
		return nil, err
	}
	if err := idx.checkDims(corner2); err != nil {
		return nil, err
	}

	lo, hi := canonicalBox(corner1, corner2)
	key := boxKey(lo, hi)
	if points, ok := idx.cache.Get(key); ok {
		instrumentBoxCacheHit(idx.name)
		return cloneAll(points), nil
	}

	instrumentBoxCacheMiss(idx.name)
	// the cache keeps references to the tree's own points, which are never
	// mutated; only clones leave the index.
	points := idx.root.Search(lo, hi, nil)
	idx.cache.Put(key, points)
	return cloneAll(points), nil
}

// FindClosest returns the point closest to point among those strictly closer
// than maxDistance. The boolean is false when there is none. When several
// points are at the same smallest distance, the first one met in tree order
// wins.
//
// An ErrTypeOutOfBounds error is returned when point lies outside the unit
// hyper-cube.
func (idx *Index[T]) FindClosest(point []float64, maxDistance float64) (DataPoint[T], bool, error) {
	var closest DataPoint[T]

	if err := idx.checkDims(point); err != nil {
		return closest, false, err
	}
	if !idx.root.spans(point) {
		return closest, false, errors.New("point does not fall within the bounds of the tree").
			WithType(ErrTypeOutOfBounds).
			WithTag("point", point)
	}

	lo, hi := cubeAround(point, maxDistance)
	points, err := idx.FindInBox(lo, hi)
	if err != nil {
		return closest, false, err
	}

	found := false
	closestDistance := maxDistance
	for _, p := range points {
		if d := Distance(p.Point, point); d < closestDistance {
			closest = p
			closestDistance = d
			found = true
		}
	}
	return closest, found, nil
}

// FindInRadius returns every point strictly closer than radius to point.
func (idx *Index[T]) FindInRadius(point []float64, radius float64) ([]DataPoint[T], error) {
	if err := idx.checkDims(point); err != nil {
		return nil, err
	}

	lo, hi := cubeAround(point, radius)
	points, err := idx.FindInBox(lo, hi)
	if err != nil {
		return nil, err
	}

	inRadius := points[:0]
	for _, p := range points {
		if Distance(point, p.Point) < radius {
			inRadius = append(inRadius, p)
		}
	}
	return inRadius, nil
}

// Stats walks the tree and reports its shape.
func (idx *Index[T]) Stats() Stats {
	s := Stats{
		Points:        idx.Len(),
		CachedResults: idx.cache.Len(),
	}
	idx.root.Walk(func(n *Node[T]) bool {
		s.Nodes++
		if n.IsLeaf() {
			s.Leaves++
		}
		if n.Depth() > s.MaxDepth {
			s.MaxDepth = n.Depth()
		}
		return true
	})
	return s
}
