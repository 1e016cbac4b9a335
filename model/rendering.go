package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "■"
	gridPosEmpty = " "
	cellSep      = " "

	ansiCursorUp   = "\x1b[%dA"
	ansiClearToEnd = "\x1b[J"
	lineTerminator = "\n"
)

// Renderer draws a grid somewhere a human can watch it
type Renderer interface {
	Display(g *Grid) error
	Close() error
}

// TerminalRenderer redraws the grid in place on an ANSI terminal stream
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer creates a renderer writing escape sequences and frames to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// MoveCursorUp moves the output cursor n lines up so the next frame overwrites the last one
func (r *TerminalRenderer) MoveCursorUp(n int) error {
	if n <= 0 {
		return nil
	}
	if _, err := fmt.Fprintf(r.out, ansiCursorUp, n); err != nil {
		return errors.Wrapf(err, "[MoveCursorUp] failed to move cursor up %d lines", n)
	}
	return nil
}

// ClearFromCursor erases everything from the cursor to the end of the screen
func (r *TerminalRenderer) ClearFromCursor() error {
	if _, err := io.WriteString(r.out, ansiClearToEnd); err != nil {
		return errors.Wrap(err, "[ClearFromCursor] failed to clear terminal")
	}
	return nil
}

// WriteLine emits text followed by a line terminator
func (r *TerminalRenderer) WriteLine(text string) error {
	if _, err := io.WriteString(r.out, text+lineTerminator); err != nil {
		return errors.Wrap(err, "[WriteLine] failed to write line")
	}
	return nil
}

// Display overwrites the previous frame with the current grid
func (r *TerminalRenderer) Display(g *Grid) error {
	if err := r.MoveCursorUp(g.height); err != nil {
		return err
	}
	if err := r.ClearFromCursor(); err != nil {
		return err
	}
	for y := range g.height {
		if err := r.WriteLine(FormatRow(g, y)); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op; the stream belongs to the caller
func (r *TerminalRenderer) Close() error {
	return nil
}

// FormatRow renders row y as cell glyphs separated by single spaces
func FormatRow(g *Grid, y int) string {
	glyphs := make([]string, g.width)
	for x := range g.width {
		glyphs[x] = glyph(g.Get(x, y))
	}
	return strings.Join(glyphs, cellSep)
}

func glyph(alive bool) string {
	if alive {
		return gridPosBlock
	}
	return gridPosEmpty
}
