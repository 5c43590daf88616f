package percolation

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a grid dimension below 1.
	ErrInvalidSize = errors.New("percolation: grid size must be at least 1")

	// ErrOutOfBounds indicates a row or column outside [1, n].
	ErrOutOfBounds = errors.New("percolation: coordinate out of bounds")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("percolation: invalid option supplied")
)

// Option configures a Percolation via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the logger and callbacks of a Percolation.
type Options struct {
	// Logger receives debug entries for construction, each effective Open,
	// and the first moment the grid percolates. Entries are only built while
	// the logger's level enables Debug.
	Logger *logrus.Logger

	// OnOpen is called after a blocked site has been opened and linked.
	// Re-opening an open site does not trigger it.
	OnOpen func(row, col int)

	// OnPercolate is called once, on the Open that first connects the top
	// row to the bottom row. It receives NumberOfOpenSites at that moment.
	OnPercolate func(openSites int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a logger that discards its output
// and no-op callbacks.
func DefaultOptions() Options {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return Options{
		Logger:      logger,
		OnOpen:      func(int, int) {},
		OnPercolate: func(int) {},
	}
}

// WithLogger routes debug entries to l. A nil logger is an ErrOptionViolation.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger is nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithOnOpen registers a callback to run after each effective Open.
func WithOnOpen(fn func(row, col int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}

// WithOnPercolate registers a callback to run when the grid first percolates.
func WithOnPercolate(fn func(openSites int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPercolate = fn
		}
	}
}

// Percolation is an n×n grid of sites with incremental top-to-bottom
// connectivity. The zero value is not usable; construct with New.
//
// Element layout in both universes: sites occupy [0, n²), virtual-top is n².
// Only perc has virtual-bottom, at n²+1.
type Percolation struct {
	n         int
	open      []bool // row-major, len n²
	openSites int

	perc *unionfind.UnionFind // sites + top + bottom
	full *unionfind.UnionFind // sites + top

	top, bottom int
	percolated  bool // first-percolation latch for OnPercolate

	log         *logrus.Logger
	onOpen      func(row, col int)
	onPercolate func(openSites int)
}
