package percolation

import "fmt"

// neighborOffsets lists the 4-connected (row, col) deltas: N, E, S, W.
// Diagonal sites are never adjacent.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Size returns the grid dimension n.
func (p *Percolation) Size() int {
	return p.n
}

// InBounds reports whether (row, col) lies within [1, n]×[1, n].
// Complexity: O(1).
func (p *Percolation) InBounds(row, col int) bool {
	return row >= 1 && row <= p.n && col >= 1 && col <= p.n
}

// Coordinate converts a row-major site index in [0, n²) back to (row, col).
// An index outside that range yields (0, 0), which InBounds rejects.
// Complexity: O(1).
func (p *Percolation) Coordinate(idx int) (row, col int) {
	if idx < 0 || idx >= len(p.open) {
		return 0, 0
	}

	return idx/p.n + 1, idx%p.n + 1
}

// index maps (row, col) to its site element: (row-1)*n + (col-1).
func (p *Percolation) index(row, col int) int {
	return (row-1)*p.n + (col - 1)
}

func (p *Percolation) validate(row, col int) error {
	if !p.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) not in [1,%d]", ErrOutOfBounds, row, col, p.n)
	}

	return nil
}
