// Package unionfind implements a fixed-size disjoint-set (union-find)
// structure over the integer universe [0, k).
//
// What:
//
//   - Partition k elements into equivalence classes, starting from k singletons.
//   - Union merges two classes; Find returns a class's canonical representative.
//   - Connected and Count answer "same class?" and "how many classes?".
//
// Why:
//
//   - Incremental connectivity: answer reachability after each edge insertion
//     without re-traversing the whole structure.
//   - Building block for Kruskal-style merges, clustering and percolation.
//
// Complexity:
//
//   - Union by size bounds tree height by O(log k).
//   - Find applies path halving, giving O(α(k)) amortized per operation.
//   - Memory: O(k).
//
// Errors:
//
//   - ErrInvalidSize:    New called with k < 1.
//   - ErrInvalidElement: an element id lies outside [0, k).
//
// A UnionFind is not safe for concurrent use; callers serialize access.
package unionfind
