package model

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ErrInterrupted is returned by WatchInterrupt when the user asks to quit
var ErrInterrupted = errors.New("interrupted by user")

var (
	aliveRune = []rune(gridPosBlock)[0]
	deadRune  = ' '
)

// ScreenRenderer draws the grid on a full-screen tcell buffer
type ScreenRenderer struct {
	screen    tcell.Screen
	style     tcell.Style
	closeOnce sync.Once
}

// NewScreenRenderer initializes screen and takes ownership of it
func NewScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialize screen")
	}
	screen.HideCursor()
	screen.Clear()

	return &ScreenRenderer{
		screen: screen,
		style:  tcell.StyleDefault,
	}, nil
}

// Display draws the grid from the top-left corner, two columns per cell.
// A screen too small to hold the whole grid is an error rather than a clipped frame.
func (r *ScreenRenderer) Display(g *Grid) error {
	if width, height := r.screen.Size(); width < 2*g.width-1 || height < g.height {
		return errors.Errorf("[Display] screen is %dx%d, need at least %dx%d for a %dx%d grid",
			width, height, 2*g.width-1, g.height, g.width, g.height)
	}

	r.screen.Clear()
	for y := range g.height {
		for x := range g.width {
			ch := deadRune
			if g.Get(x, y) {
				ch = aliveRune
			}
			r.screen.SetContent(2*x, y, ch, nil, r.style)
		}
	}
	r.screen.Show()
	return nil
}

// WatchInterrupt blocks until the user presses Esc, Ctrl+C or q, the context
// ends, or the screen is closed. Raw mode keeps SIGINT from reaching the process,
// so this is the only way out of a screen run before the last generation.
func (r *ScreenRenderer) WatchInterrupt(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go r.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return ErrInterrupted
				}
			case *tcell.EventResize:
				r.screen.Sync()
			}
		}
	}
}

// Close restores the terminal. Safe to call more than once.
func (r *ScreenRenderer) Close() error {
	r.closeOnce.Do(r.screen.Fini)
	return nil
}
