package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Engine owns a toroidal Game of Life board.
//
// Cells are stored row-major in a flat slice. Step computes the next
// generation into a scratch buffer and swaps it in, so every neighbor read
// during a step observes the previous generation.
//
// The engine does not enforce the running flag against its own mutators,
// callers gate edits themselves (see Session). It is not safe for concurrent use.
type Engine struct {
	width   int
	height  int
	cells   []State
	scratch []State

	stable  bool
	running bool

	rng     *rand.Rand
	workers int
}

// Option configures an Engine at construction
type Option func(*Engine)

// WithSeed makes Randomize deterministic for the given seed
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(uint64(seed), 0))
	}
}

// WithRand sets the random source used by Randomize
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithWorkers splits Step into row bands computed concurrently.
// Values below 2 keep the step on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = max(1, n)
	}
}

// NewEngine creates a width x height board with every cell dead
func NewEngine(width, height int, opts ...Option) (*Engine, error) {
	if width < 1 || height < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewEngine] width=%d height=%d", width, height)
	}
	e := &Engine{
		width:   width,
		height:  height,
		cells:   make([]State, width*height),
		scratch: make([]State, width*height),
		stable:  true,
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return e, nil
}

// Width returns the number of columns
func (e *Engine) Width() int {
	return e.width
}

// Height returns the number of rows
func (e *Engine) Height() int {
	return e.height
}

func (e *Engine) index(row, col int) int {
	return row*e.width + col
}

func (e *Engine) inBounds(row, col int) bool {
	return row >= 0 && row < e.height && col >= 0 && col < e.width
}

func (e *Engine) checkBounds(op string, row, col int) error {
	if !e.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfRange, "[%s] row=%d col=%d on %dx%d grid", op, row, col, e.width, e.height)
	}
	return nil
}

// Get returns the state of the cell at (row, col). Coordinates do not wrap.
func (e *Engine) Get(row, col int) (State, error) {
	if err := e.checkBounds("Get", row, col); err != nil {
		return Dead, err
	}
	return e.cells[e.index(row, col)], nil
}

// Set sets the state of the cell at (row, col)
func (e *Engine) Set(row, col int, s State) error {
	if err := e.checkBounds("Set", row, col); err != nil {
		return err
	}
	e.cells[e.index(row, col)] = s
	return nil
}

// Toggle flips the cell at (row, col). This is the click interaction.
func (e *Engine) Toggle(row, col int) error {
	if err := e.checkBounds("Toggle", row, col); err != nil {
		return err
	}
	idx := e.index(row, col)
	e.cells[idx] = e.cells[idx].Toggle()
	return nil
}

// Paint forces the cell at (row, col) alive. This is the drag interaction,
// which never kills cells.
func (e *Engine) Paint(row, col int) error {
	if err := e.checkBounds("Paint", row, col); err != nil {
		return err
	}
	e.cells[e.index(row, col)] = Alive
	return nil
}

// CountAliveNeighbors counts the live cells in the Moore neighborhood of (row, col).
// Both coordinates wrap around the board edges; row and col must be on the board.
func (e *Engine) CountAliveNeighbors(row, col int) int {
	count := 0
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			wrappedRow := (r + e.height) % e.height
			wrappedCol := (c + e.width) % e.width
			if e.cells[e.index(wrappedRow, wrappedCol)].IsAlive() {
				count++
			}
		}
	}
	return count
}

// Step advances the board by one generation and reports whether any cell changed.
// The stable flag is set to the negation of the result.
func (e *Engine) Step() bool {
	var changed bool
	if e.workers > 1 && e.height > 1 {
		changed = e.stepParallel()
	} else {
		changed = e.stepRows(0, e.height)
	}

	e.cells, e.scratch = e.scratch, e.cells
	e.stable = !changed
	return changed
}

// stepRows writes the next state of rows [startRow, endRow) into the scratch buffer
func (e *Engine) stepRows(startRow, endRow int) (changed bool) {
	for row := startRow; row < endRow; row++ {
		for col := range e.width {
			idx := e.index(row, col)
			alive := e.cells[idx].IsAlive()
			next := rules.ApplyConwayRules(e.CountAliveNeighbors(row, col), alive)
			if next != alive {
				changed = true
			}
			e.scratch[idx] = stateOf(next)
		}
	}
	return
}

// stepParallel computes row bands concurrently. Bands only read cells and
// write disjoint scratch rows.
func (e *Engine) stepParallel() bool {
	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, e.height)
		rowsPerWorker = (e.height + numWorkers - 1) / numWorkers // Ceiling division
		bandChanged   = make([]bool, numWorkers)
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, e.height)
		)
		if startRow >= e.height {
			break
		}

		eg.Go(func() error {
			bandChanged[i] = e.stepRows(startRow, endRow)
			return nil
		})
	}

	// bands never return an error
	_ = eg.Wait()

	for _, c := range bandChanged {
		if c {
			return true
		}
	}
	return false
}

// Reset kills every cell. The running flag is left untouched.
func (e *Engine) Reset() {
	for i := range e.cells {
		e.cells[i] = Dead
	}
}

// Randomize sets every cell alive or dead with equal probability
func (e *Engine) Randomize() {
	for i := range e.cells {
		e.cells[i] = stateOf(e.rng.IntN(2) == 1)
	}
}

// ApplyPattern clears the board and places the pattern at its origin.
// Cells that fall outside the board are skipped.
func (e *Engine) ApplyPattern(p Pattern) {
	e.Reset()
	for _, cell := range p.Cells() {
		row, col := cell[0], cell[1]
		if !e.inBounds(row, col) {
			continue
		}
		e.cells[e.index(row, col)] = Alive
	}
}

// ApplyPatternByName looks up a built-in pattern and applies it
func (e *Engine) ApplyPatternByName(name string) error {
	p, err := LookupPattern(name)
	if err != nil {
		return err
	}
	e.ApplyPattern(p)
	return nil
}

// SetRunning records whether the simulation is running
func (e *Engine) SetRunning(running bool) {
	e.running = running
}

// IsRunning reports the running flag
func (e *Engine) IsRunning() bool {
	return e.running
}

// IsStable reports whether the last Step changed nothing. It is true before the first Step.
func (e *Engine) IsStable() bool {
	return e.stable
}

// Population returns the total number of living cells
func (e *Engine) Population() (count int) {
	for _, s := range e.cells {
		if s.IsAlive() {
			count++
		}
	}
	return
}

// Snapshot returns a copy of the current generation in row-major order
func (e *Engine) Snapshot() []State {
	out := make([]State, len(e.cells))
	copy(out, e.cells)
	return out
}

// Hash returns an MD5 hash of the current generation
func (e *Engine) Hash() string {
	h := md5.New()
	buf := make([]byte, len(e.cells))
	for i, s := range e.cells {
		buf[i] = byte(s)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
