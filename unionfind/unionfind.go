package unionfind

import "fmt"

// New returns a UnionFind of k singleton classes, one per element in [0, k).
// Returns ErrInvalidSize if k < 1.
// Complexity: O(k) time and memory.
func New(k int) (*UnionFind, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, k)
	}
	uf := &UnionFind{
		parent: make([]int, k),
		size:   make([]int, k),
		count:  k,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the universe size k.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint classes.
// It starts at Len() and drops by exactly one on each effective Union.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the canonical representative of x's class.
// Returns ErrInvalidElement if x is outside [0, Len()).
// Complexity: O(α(k)) amortized.
func (uf *UnionFind) Find(x int) (int, error) {
	if err := uf.validate(x); err != nil {
		return 0, err
	}

	return uf.root(x), nil
}

// Union merges the classes containing a and b and reports whether a merge
// happened. Already-connected elements leave the structure untouched.
// The smaller class is attached under the larger one.
func (uf *UnionFind) Union(a, b int) (bool, error) {
	if err := uf.validate(a); err != nil {
		return false, err
	}
	if err := uf.validate(b); err != nil {
		return false, err
	}

	ra, rb := uf.root(a), uf.root(b)
	if ra == rb {
		return false, nil
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.count--

	return true, nil
}

// Connected reports whether a and b share a class.
func (uf *UnionFind) Connected(a, b int) (bool, error) {
	if err := uf.validate(a); err != nil {
		return false, err
	}
	if err := uf.validate(b); err != nil {
		return false, err
	}

	return uf.root(a) == uf.root(b), nil
}

// SizeOf returns the number of elements in x's class.
func (uf *UnionFind) SizeOf(x int) (int, error) {
	if err := uf.validate(x); err != nil {
		return 0, err
	}

	return uf.size[uf.root(x)], nil
}

// root walks to x's root, halving the path on the way:
// every visited node is re-pointed at its grandparent.
func (uf *UnionFind) root(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

func (uf *UnionFind) validate(x int) error {
	if x < 0 || x >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidElement, x, len(uf.parent))
	}

	return nil
}
