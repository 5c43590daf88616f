package percolation_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/stretchr/testify/require"
)

// floodFromTop recomputes fullness from scratch: a multi-source BFS seeded
// with every open top-row site, expanding through open 4-neighbors.
// Returns the reached flags (row-major) and whether any bottom-row site
// was reached.
//
// Time: O(n²), Memory: O(n²).
func floodFromTop(t *testing.T, p *percolation.Percolation) (reached []bool, percolates bool) {
	t.Helper()
	n := p.Size()
	open := make([]bool, n*n)
	for idx := range open {
		row, col := p.Coordinate(idx)
		ok, err := p.IsOpen(row, col)
		require.NoError(t, err)
		open[idx] = ok
	}

	reached = make([]bool, n*n)
	var queue []int
	for col := 0; col < n; col++ {
		if open[col] {
			reached[col] = true
			queue = append(queue, col)
		}
	}
	offsets := [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	for qi := 0; qi < len(queue); qi++ {
		row, col := p.Coordinate(queue[qi])
		for _, d := range offsets {
			nr, nc := row+d[0], col+d[1]
			if !p.InBounds(nr, nc) {
				continue
			}
			v := (nr-1)*n + (nc - 1)
			if open[v] && !reached[v] {
				reached[v] = true
				queue = append(queue, v)
			}
		}
	}

	for col := 0; col < n; col++ {
		if reached[(n-1)*n+col] {
			return reached, true
		}
	}

	return reached, false
}

// TestAgainstFloodFill opens random sites (repeats included) on grids of
// several sizes and, after every step, compares the incremental answers with
// a from-scratch flood fill. It also checks monotonicity and the counter.
func TestAgainstFloodFill(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 16} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(42 + n)))
			p, err := percolation.New(n)
			require.NoError(t, err)

			opened := map[int]struct{}{}
			for step := 0; step < 2*n*n; step++ {
				idx := r.Intn(n * n)
				row, col := p.Coordinate(idx)
				require.NoError(t, p.Open(row, col))
				opened[idx] = struct{}{}

				require.Equal(t, len(opened), p.NumberOfOpenSites(), "n=%d step=%d", n, step)

				reached, perc := floodFromTop(t, p)
				require.Equal(t, perc, p.Percolates(), "n=%d step=%d", n, step)
				for i := range reached {
					sr, sc := p.Coordinate(i)
					full, err := p.IsFull(sr, sc)
					require.NoError(t, err)
					require.Equal(t, reached[i], full, "n=%d step=%d site=(%d,%d)", n, step, sr, sc)

					if _, ok := opened[i]; ok {
						open, err := p.IsOpen(sr, sc)
						require.NoError(t, err)
						require.True(t, open, "site (%d,%d) reverted to blocked", sr, sc)
					}
				}
			}
		})
	}
}
