package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-term/model"
	"github.com/sheikhrachel/go-gol-term/utils"
)

// game owns the one live grid for the length of a run
type game struct {
	config   utils.Config
	grid     *model.Grid
	pool     *model.GridPool
	renderer model.Renderer
	stats    *utils.Stats
}

// newGame seeds a grid from rng and pairs it with the renderer that will draw it
func newGame(config utils.Config, renderer model.Renderer, rng model.IntSource) *game {
	grid := model.NewGrid(config.Columns, config.Rows)
	outcomes, alive := config.SeedRange()
	grid.Randomize(rng, outcomes, alive)

	return &game{
		config:   config,
		grid:     grid,
		pool:     model.NewGridPool(),
		renderer: renderer,
		stats:    utils.NewStats(),
	}
}

/*
Run draws the seeded grid, then advances, waits and redraws once per configured
generation. It stops early only when ctx ends or a frame cannot be drawn.
*/
func (g *game) Run(ctx context.Context) error {
	if err := g.render(0, 0); err != nil {
		return err
	}

	for generation := 1; generation <= g.config.Generations; generation++ {
		stepStart := time.Now()
		g.grid.Advance(g.pool)
		stepTime := time.Since(stepStart)

		if err := sleepContext(ctx, g.config.FrameDelay()); err != nil {
			return err
		}

		if err := g.render(generation, stepTime); err != nil {
			return err
		}
	}
	return nil
}

// render draws the grid and records it; stepTime covers only the advance, not the frame pause
func (g *game) render(generation int, stepTime time.Duration) error {
	if err := g.renderer.Display(g.grid); err != nil {
		return errors.Wrapf(err, "[render] failed to draw generation %d", generation)
	}
	g.stats.Update(generation, g.grid.CountLivingCells(), g.grid.Hash(), stepTime)
	return nil
}

// sleepContext pauses for d, returning early with the context's error if it ends first
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// newRenderer builds the renderer named by the config; the ANSI renderer writes to out
func newRenderer(config utils.Config, out io.Writer) (model.Renderer, error) {
	switch config.Renderer {
	case utils.RendererScreen:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, errors.Wrap(err, "[newRenderer] failed to open terminal screen")
		}
		renderer, err := model.NewScreenRenderer(screen)
		if err != nil {
			return nil, err
		}
		return renderer, nil
	default:
		return model.NewTerminalRenderer(out), nil
	}
}

// newRand returns the random source for seeding, time-based unless the config pins a seed
func newRand(config utils.Config) *rand.Rand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

/*
run plays one full simulation on renderer. The grid is touched only by the
simulation goroutine; a screen renderer adds a second goroutine watching for
quit keys. Cancellation by signal or key is a normal exit.
*/
func run(ctx context.Context, config utils.Config, renderer model.Renderer, rng model.IntSource) (*utils.Stats, error) {
	defer renderer.Close()

	g := newGame(config, renderer, rng)
	eg, ctx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()

	eg.Go(func() error {
		defer stopWatch()
		return g.Run(ctx)
	})
	if screen, ok := renderer.(*model.ScreenRenderer); ok {
		eg.Go(func() error {
			return screen.WatchInterrupt(watchCtx)
		})
	}

	err := eg.Wait()
	if errors.Is(err, model.ErrInterrupted) || errors.Is(err, context.Canceled) {
		err = nil
	}
	return g.stats, err
}

// displaySummary prints how the run ended once the terminal is free again
func displaySummary(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Gen: %d | Living: %d | Status: %s\n",
		stats.TotalGenerations, stats.Population, stats.Outcome())
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
}
