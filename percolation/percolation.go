package percolation

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/percolation/unionfind"
)

// New creates an n×n grid with every site blocked.
//
// Both union-find universes are allocated up front, but no site is linked
// to a virtual node yet: a boundary site joins its edge only when it opens.
//
// Returns ErrInvalidSize if n < 1 or if n²+2 elements do not fit in an int,
// ErrOptionViolation if an option is invalid.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Percolation, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	// Room for n² sites plus both virtual nodes.
	if n > (math.MaxInt-2)/n {
		return nil, fmt.Errorf("%w: %d×%d overflows", ErrInvalidSize, n, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sites := n * n
	perc, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}
	full, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}

	p := &Percolation{
		n:           n,
		open:        make([]bool, sites),
		perc:        perc,
		full:        full,
		top:         sites,
		bottom:      sites + 1,
		log:         o.Logger,
		onOpen:      o.OnOpen,
		onPercolate: o.OnPercolate,
	}
	if p.debug() {
		p.log.WithField("size", n).Debug("percolation: grid created")
	}

	return p, nil
}

// Open opens site (row, col) and links it to every open neighbor.
//
// Steps:
//  1. Validate coordinates; nothing changes on ErrOutOfBounds.
//  2. Return early if the site is already open (no recount, no callbacks).
//  3. Mark open and bump the open-site counter.
//  4. Union with each in-bounds, open 4-neighbor in both universes.
//  5. Row 1: union with virtual-top in both universes.
//     Row n: union with virtual-bottom in the percolation universe only.
//  6. Fire OnOpen, then OnPercolate if this open is the first to percolate.
func (p *Percolation) Open(row, col int) error {
	if err := p.validate(row, col); err != nil {
		return err
	}
	site := p.index(row, col)
	if p.open[site] {
		return nil
	}
	p.open[site] = true
	p.openSites++

	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !p.InBounds(nr, nc) {
			continue
		}
		nb := p.index(nr, nc)
		if !p.open[nb] {
			continue
		}
		mustUnion(p.perc, site, nb)
		mustUnion(p.full, site, nb)
	}

	if row == 1 {
		mustUnion(p.perc, site, p.top)
		mustUnion(p.full, site, p.top)
	}
	// Never in full: a bottom link there would let bottom-row components
	// reach the top through the virtual-bottom node.
	if row == p.n {
		mustUnion(p.perc, site, p.bottom)
	}

	if p.debug() {
		p.log.WithFields(logrus.Fields{
			"row":        row,
			"col":        col,
			"open_sites": p.openSites,
		}).Debug("percolation: site opened")
	}
	p.onOpen(row, col)

	if !p.percolated && p.Percolates() {
		p.percolated = true
		if p.debug() {
			p.log.WithFields(logrus.Fields{
				"size":       p.n,
				"open_sites": p.openSites,
			}).Debug("percolation: system percolates")
		}
		p.onPercolate(p.openSites)
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrOutOfBounds for coordinates outside [1, n].
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}

	return p.open[p.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and joined to the top row
// by a chain of open sites. The answer comes from the fullness universe,
// so it is unaffected by paths that only meet at the bottom edge.
// Returns ErrOutOfBounds for coordinates outside [1, n].
func (p *Percolation) IsFull(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}
	site := p.index(row, col)
	if !p.open[site] {
		return false, nil
	}

	return mustConnected(p.full, site, p.top), nil
}

// NumberOfOpenSites returns how many distinct sites have been opened.
// Complexity: O(1).
func (p *Percolation) NumberOfOpenSites() int {
	return p.openSites
}

// Percolates reports whether virtual-top and virtual-bottom share a class,
// i.e. some open top-row site reaches some open bottom-row site.
// For n == 1 this holds as soon as the single site is open.
func (p *Percolation) Percolates() bool {
	return mustConnected(p.perc, p.top, p.bottom)
}

// debug reports whether debug entries would be emitted, so Open builds no
// fields on the hot path otherwise.
func (p *Percolation) debug() bool {
	return p.log.IsLevelEnabled(logrus.DebugLevel)
}

// mustUnion panics on unionfind.ErrInvalidElement: element ids are derived
// from validated coordinates, so a failure means the index mapping is broken.
func mustUnion(uf *unionfind.UnionFind, a, b int) {
	if _, err := uf.Union(a, b); err != nil {
		panic(fmt.Sprintf("percolation: index mapping defect: %v", err))
	}
}

func mustConnected(uf *unionfind.UnionFind, a, b int) bool {
	ok, err := uf.Connected(a, b)
	if err != nil {
		panic(fmt.Sprintf("percolation: index mapping defect: %v", err))
	}

	return ok
}
