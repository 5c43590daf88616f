package unionfind

import "errors"

// Sentinel errors for union-find operations.
var (
	// ErrInvalidSize indicates a universe with fewer than one element was requested.
	ErrInvalidSize = errors.New("unionfind: universe size must be at least 1")

	// ErrInvalidElement indicates an element id outside [0, k).
	ErrInvalidElement = errors.New("unionfind: element out of range")
)

// UnionFind is a disjoint-set forest over the elements [0, Len()).
//
// parent[i] == i marks a root. size[r] is meaningful only for roots and
// holds the number of elements in r's class.
type UnionFind struct {
	parent []int
	size   []int
	count  int // number of disjoint classes remaining
}
