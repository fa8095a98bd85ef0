// Package arrangement maps light ids to positions in an N-dimensional space
// and finds the lights around a location.
package arrangement

import (
	"sort"
	"sync"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/vinerr/ntree"
)

// Arrangement is a set of lights indexed by position. It is safe for
// concurrent use.
type Arrangement struct {
	mutex     sync.Mutex
	index     *ntree.Index[int]
	positions map[int][]float64
}

// New builds an arrangement from cfg. Lights outside the unit hyper-cube are
// skipped with a warning.
func New(cfg Config) (*Arrangement, error) {
	dims := cfg.Dims
	if dims == 0 && len(cfg.Lights) > 0 {
		dims = len(cfg.Lights[0].Position)
	}

	threshold := cfg.DivisionThreshold
	if threshold == 0 {
		threshold = DefaultDivisionThreshold
	}

	capacity := cfg.CacheCapacity
	if capacity == 0 {
		capacity = ntree.DefaultCacheCapacity
	}

	policy, err := ntree.ParseCachePolicy(cfg.CachePolicy)
	if err != nil {
		return nil, err
	}

	idx, err := ntree.New[int](dims, threshold,
		ntree.WithName("arrangement"),
		ntree.WithCachePolicy(policy),
		ntree.WithCacheCapacity(capacity),
	)
	if err != nil {
		return nil, err
	}

	a := &Arrangement{
		index:     idx,
		positions: make(map[int][]float64, len(cfg.Lights)),
	}

	for _, l := range cfg.Lights {
		if _, ok := a.positions[l.ID]; ok {
			idx.Close()
			return nil, errors.New("duplicate light id").
				WithType(ErrTypeConfigParse).
				WithTag("id", l.ID)
		}

		if err := idx.Insert(l.ID, l.Position); err != nil {
			if errors.IsType(err, ntree.ErrTypeOutOfBounds) {
				logs.WithTag("id", l.ID).
					WithTag("position", l.Position).
					Warn("light skipped: position out of bounds")
				continue
			}
			idx.Close()
			return nil, errors.New("adding light failed").
				WithType(ErrTypeConfigParse).
				WithTag("id", l.ID).
				Wrap(err)
		}
		a.positions[l.ID] = append([]float64(nil), l.Position...)
	}

	logs.WithTag("index", idx.ID()).
		WithTag("dimensions", dims).
		WithTag("lights", len(a.positions)).
		Info("arrangement built")
	return a, nil
}

// Closest returns the light closest to loc among those strictly closer than
// maxDistance.
func (a *Arrangement) Closest(loc []float64, maxDistance float64) (ntree.DataPoint[int], bool) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	p, ok, err := a.index.FindClosest(loc, maxDistance)
	if err != nil {
		logs.WithTag("location", loc).
			WithTag("error", errors.Type(err)).
			Debug("closest light lookup dropped")
		return ntree.DataPoint[int]{}, false
	}
	return p, ok
}

// WithinRadius returns the lights strictly closer than radius to loc,
// ordered by id.
func (a *Arrangement) WithinRadius(loc []float64, radius float64) []ntree.DataPoint[int] {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	points, err := a.index.FindInRadius(loc, radius)
	if err != nil {
		logs.WithTag("location", loc).
			WithTag("error", errors.Type(err)).
			Debug("radius lookup dropped")
		return nil
	}
	return sortByID(points)
}

// WithinBox returns the lights within the box between lower and upper,
// bounds included, ordered by id.
func (a *Arrangement) WithinBox(lower, upper []float64) []ntree.DataPoint[int] {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	points, err := a.index.FindInBox(lower, upper)
	if err != nil {
		logs.WithTag("lower", lower).
			WithTag("upper", upper).
			WithTag("error", errors.Type(err)).
			Debug("box lookup dropped")
		return nil
	}
	return sortByID(points)
}

// Position returns the position of the light with the given id.
func (a *Arrangement) Position(id int) ([]float64, bool) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	p, ok := a.positions[id]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), p...), true
}

// Len returns the number of lights in the arrangement.
func (a *Arrangement) Len() int {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.index.Len()
}

// Dims returns the number of dimensions of the arrangement.
func (a *Arrangement) Dims() int {
	return a.index.Dims()
}

// Stats reports the shape of the underlying tree.
func (a *Arrangement) Stats() ntree.Stats {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.index.Stats()
}

// Close releases the resources held by the arrangement.
func (a *Arrangement) Close() {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.index.Close()
}

func sortByID(points []ntree.DataPoint[int]) []ntree.DataPoint[int] {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Data < points[j].Data
	})
	return points
}
