package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

var errStreamClosed = errors.New("stream closed")

// failingWriter accepts ok writes and fails every write after that
type failingWriter struct {
	ok int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok <= 0 {
		return 0, errStreamClosed
	}
	w.ok--
	return len(p), nil
}

func TestFormatRow(t *testing.T) {
	t.Parallel()
	g := gridFromStrings(t,
		"101",
		"000",
	)

	if got, want := FormatRow(g, 0), "■   ■"; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
	if got, want := FormatRow(g, 1), "     "; got != want {
		t.Errorf("row 1 = %q, want %q", got, want)
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	t.Parallel()
	g := gridFromStrings(t,
		"10",
		"01",
		"11",
	)

	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)
	if err := r.Display(g); err != nil {
		t.Fatalf("Display failed: %v", err)
	}

	want := "\x1b[3A" + "\x1b[J" +
		"■  \n" +
		"  ■\n" +
		"■ ■\n"
	if got := buf.String(); got != want {
		t.Fatalf("Display wrote %q, want %q", got, want)
	}
}

func TestTerminalRendererFrameShape(t *testing.T) {
	t.Parallel()
	g := NewGrid(80, 20)

	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf).Display(g); err != nil {
		t.Fatalf("Display failed: %v", err)
	}

	body := strings.TrimPrefix(buf.String(), "\x1b[20A\x1b[J")
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("wrote %d lines, want 20", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 2*80-1 {
			t.Fatalf("line %d has %d runes, want %d", i, n, 2*80-1)
		}
	}
}

func TestTerminalRendererPropagatesWriteErrors(t *testing.T) {
	t.Parallel()
	g := gridFromStrings(t, "1", "0")

	// cursor move, clear, then one write per row
	for ok := range 4 {
		err := NewTerminalRenderer(&failingWriter{ok: ok}).Display(g)
		if err == nil {
			t.Fatalf("ok=%d: expected error", ok)
		}
		if errors.Cause(err) != errStreamClosed {
			t.Fatalf("ok=%d: cause = %v, want %v", ok, errors.Cause(err), errStreamClosed)
		}
	}

	if err := NewTerminalRenderer(&failingWriter{ok: 4}).Display(g); err != nil {
		t.Fatalf("unexpected error with a healthy stream: %v", err)
	}
}

func TestMoveCursorUpZeroWritesNothing(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf).MoveCursorUp(0); err != nil {
		t.Fatalf("MoveCursorUp failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("wrote %q", buf.String())
	}
}
