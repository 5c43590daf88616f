// Package percolation is an incremental connectivity engine for site
// percolation on an n×n lattice: sites open one at a time, and after each
// step you can ask whether an open path joins the top row to the bottom row.
//
// Under the hood, everything is organized under two subpackages:
//
//	unionfind/   — fixed-size disjoint-set forest: union by size, path halving
//	percolation/ — the grid tracker: open state, virtual top/bottom nodes,
//	               and two union-find universes that keep IsFull free of backwash
//
// Quick ASCII example (O = open, . = blocked):
//
//	O . .
//	O . .      left column percolates;
//	O . O      (3,3) is open but not full
//
// Simulation drivers (random opening orders, threshold statistics) sit
// outside this module and talk to percolation.Percolation only through
// Open, IsOpen, IsFull, NumberOfOpenSites and Percolates.
//
//	go get github.com/katalvlaran/percolation
package percolation
