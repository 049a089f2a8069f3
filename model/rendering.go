package model

import (
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	au aurora.Aurora
}

// NewTerminalRenderer returns a renderer, coloring live cells when color is set
func NewTerminalRenderer(color bool) *TerminalRenderer {
	return &TerminalRenderer{au: aurora.NewAurora(color)}
}

// Display writes the current generation as one text frame
func (r *TerminalRenderer) Display(w io.Writer, e *Engine) error {
	alive := r.au.Green(gridPosBlock).String()

	var b strings.Builder
	b.Grow(e.height * (e.width*len(alive) + 1))
	for row := range e.height {
		for col := range e.width {
			if e.cells[e.index(row, col)].IsAlive() {
				b.WriteString(alive)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "[Display] failed to write frame")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear(w io.Writer) error {
	_, err := io.WriteString(w, ansiClear)
	return errors.Wrap(err, "[Clear] failed to clear terminal")
}
