// Package game wires the board, seed loader, and terminal into the driver
// loop: draw the current generation, tick, wait one update interval, repeat
// until the user quits.
package game

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/termlife/golife/board"
	"github.com/termlife/golife/seed"
	"github.com/termlife/golife/term"
	"github.com/termlife/golife/utils"
)

// inputDelay bounds how long a quit key press can go unnoticed. Higher values
// make quitting feel laggy while lower values waste CPU on empty reads.
const inputDelay = 100 * time.Millisecond

const keyCtrlC = 0x03

// errQuit propagates a user-requested shutdown through the errgroup.
var errQuit = errors.New("quit requested")

// Result summarizes a finished run.
type Result struct {
	Generations int
	Population  int
	Runtime     time.Duration
}

// Run seeds a board sized to the terminal and drives it until the user
// presses q (or Ctrl-C) or the process receives SIGINT/SIGTERM. The terminal
// is restored before Run returns, so callers may log or print afterwards.
func Run(cfg Config) (result Result, err error) {
	if err = cfg.Validate(); err != nil {
		return Result{}, err
	}

	screen, err := term.Open()
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if cerr := screen.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err = screen.SetInputDelay(inputDelay); err != nil {
		return Result{}, err
	}

	// The bottom terminal row belongs to the status line, not the board.
	b, err := board.New(screen.Rows()-1, screen.Cols())
	if err != nil {
		return Result{}, err
	}

	positions, err := seed.LoadFile(cfg.InitStatePath)
	if err != nil {
		return Result{}, err
	}
	if err = seed.Apply(b, positions); err != nil {
		return Result{}, err
	}

	stats := utils.NewStats()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watchKeys(ctx, screen)
	})
	g.Go(func() error {
		return drawLoop(ctx, cfg, screen, b, stats)
	})

	err = g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		// User-requested or signal-driven shutdown is a clean exit.
		err = nil
	}
	return Result{
		Generations: stats.Generations,
		Population:  b.Population(),
		Runtime:     stats.Runtime(),
	}, err
}

// watchKeys polls the keyboard until a quit key arrives or the context ends.
// ReadKey returns within the input delay, so cancellation is always observed.
func watchKeys(ctx context.Context, screen *term.Screen) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		key, ok, err := screen.ReadKey()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		switch key {
		case 'q', 'Q', keyCtrlC:
			return errQuit
		}
	}
}

// drawLoop renders the current generation, ticks the board exactly once, and
// waits out the update interval. Termination is checked only between
// iterations, never mid-tick.
func drawLoop(ctx context.Context, cfg Config, screen *term.Screen, b *board.Board, stats *utils.Stats) error {
	var (
		generation int
		lastFrame  = time.Now()
		ticker     = time.NewTicker(cfg.UpdateRate)
	)
	defer ticker.Stop()

	for {
		screen.Clear()
		screen.DrawBoard(b)
		screen.DrawStatus(statusLine(generation, b.Population(), stats))
		if err := screen.Flush(); err != nil {
			return err
		}

		b.Tick()
		generation++
		stats.Update(generation, b.Population(), time.Since(lastFrame))
		lastFrame = time.Now()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// statusLine formats the bottom-row status for the generation on screen.
func statusLine(generation, population int, stats *utils.Stats) string {
	return fmt.Sprintf("press q to quit | gen: %d | live: %d | %.1f gen/s",
		generation, population, stats.GenerationsPerSecond)
}
