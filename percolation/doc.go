// Package percolation tracks an n×n grid of sites that open one at a time
// and answers, after every step, whether an open path joins the top row to
// the bottom row.
//
// What:
//
//   - Percolation owns the open/blocked state of n² sites, addressed by
//     1-indexed (row, col).
//   - Open marks a site open and links it to its open 4-neighbors.
//   - IsOpen, IsFull, NumberOfOpenSites and Percolates query the state.
//
// How:
//
//   - Sites map to union-find elements row-major: (row-1)*n + (col-1).
//   - Two virtual nodes stand for the top and bottom edges. A row-1 site is
//     linked to virtual-top, a row-n site to virtual-bottom, at the moment it
//     opens, so Percolates is a single Connected(top, bottom) query.
//   - Two universes are updated in lockstep. The percolation universe
//     (n²+2 elements) holds both virtual nodes. The fullness universe
//     (n²+1 elements) has no virtual-bottom, so bottom-row components that
//     only meet through the bottom edge never look connected to the top
//     ("backwash").
//
// Complexity:
//
//   - New:      O(n²) time and memory.
//   - Open:     O(α(n²)) amortized (at most 5 unions per universe).
//   - Queries:  O(1) or O(α(n²)) amortized.
//
// Options:
//
//   - WithLogger:      structured debug logging through logrus.
//   - WithOnOpen:      callback after each effective Open.
//   - WithOnPercolate: callback on the Open that first makes the grid percolate.
//
// Errors:
//
//   - ErrInvalidSize:     New called with n < 1.
//   - ErrOutOfBounds:     a coordinate outside [1, n].
//   - ErrOptionViolation: an invalid Option was supplied to New.
//
// A Percolation is not safe for concurrent use. Run one tracker per trial
// and parallelize across trials, or serialize access externally.
package percolation
