package ntree

// Error types attached to errors returned by this package. Use
// errors.IsType from github.com/aukilabs/go-tooling/pkg/errors to match them.
const (
	// ErrTypeOutOfBounds marks a point lying outside the root span.
	ErrTypeOutOfBounds = "ntree_out_of_bounds"
	// ErrTypeDimensionMismatch marks a coordinate slice whose length differs
	// from the index dimension count.
	ErrTypeDimensionMismatch = "ntree_dimension_mismatch"
	// ErrTypeInvalidConfig marks a rejected constructor argument or option.
	ErrTypeInvalidConfig = "ntree_invalid_config"
	// ErrTypeNotLeaf marks a Divide call on a node that is already internal.
	ErrTypeNotLeaf = "ntree_not_leaf"
)
