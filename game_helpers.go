package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game bundles everything the loop needs
type game struct {
	config   utils.Config
	session  *model.Session
	history  *model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	out      io.Writer
	lastTick time.Time
}

// initializeGame sets up the engine and seeds the board
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	opts := []model.Option{model.WithWorkers(config.Workers)}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}

	engine, err := model.NewEngine(config.Width, config.Height, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create engine")
	}

	g := &game{
		config:   config,
		session:  model.NewSession(engine),
		history:  model.NewHistory(0),
		renderer: model.NewTerminalRenderer(config.Color),
		stats:    utils.NewStats(),
		out:      out,
		lastTick: time.Now(),
	}
	if err = seedBoard(g.session, config); err != nil {
		return nil, err
	}
	return g, nil
}

// seedBoard places the configured pattern or random cells
func seedBoard(s *model.Session, config utils.Config) error {
	switch {
	case config.Pattern != "":
		if err := s.ApplyPattern(config.Pattern); err != nil {
			return errors.Wrap(err, "[seedBoard] failed to apply pattern")
		}
	case config.Randomize:
		if err := s.Randomize(); err != nil {
			return errors.Wrap(err, "[seedBoard] failed to randomize")
		}
	}
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, e *model.Engine) {
	fmt.Fprintf(out, "Grid: %dx%d | Workers: %d | Initial living cells: %d\n",
		e.Width(), e.Height(), config.Workers, e.Population())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, s *model.Session, stats *utils.Stats) {
	fmt.Fprintf(out, "Number of Generations : %d | Living: %d | %.1f gen/sec\n",
		s.Generation(), s.Engine().Population(), stats.GenerationsPerSecond)
}

// tick advances the game by one step and updates stats and cycle history.
// The rate in stats is measured between ticks, so it follows the frame rate.
func (g *game) tick() (stagnant bool) {
	now := time.Now()
	frameDuration := now.Sub(g.lastTick)
	g.lastTick = now

	g.history.Record(g.session.Engine().Hash())
	g.session.Tick()
	g.stats.Update(g.session.Generation(), g.session.Engine().Population(), frameDuration)
	return g.history.IsStagnant(g.session.Engine().Hash())
}

// render draws the current frame when rendering is enabled
func (g *game) render() error {
	if !g.config.Render {
		return nil
	}
	if err := g.renderer.Clear(g.out); err != nil {
		return err
	}
	displayGameStatus(g.out, g.session, g.stats)
	return g.renderer.Display(g.out, g.session.Engine())
}

// checkStopConditions determines if the game should stop
func checkStopConditions(e *model.Engine, ticks, stagnantCount int, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && ticks >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if e.Population() == 0 {
		return true, "extinction"
	}
	if !config.StopWhenStable {
		return false, ""
	}
	if e.IsStable() {
		return true, "board is stable"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
