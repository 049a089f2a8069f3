package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// cliOptions holds command line overrides. Zero values leave the config untouched.
type cliOptions struct {
	configPath string
	width      int
	height     int
	pattern    string
	random     bool
	seed       int64
	interval   time.Duration
	maxGens    int
	workers    int
	noColor    bool
	quiet      bool
	keepGoing  bool
	list       bool
}

func parseFlags() *cliOptions {
	o := &cliOptions{configPath: "config.json"}

	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&o.configPath, "c", "config", "Path to a JSON config file")
	flaggy.Int(&o.width, "x", "width", "Width of the grid")
	flaggy.Int(&o.height, "y", "height", "Height of the grid")
	flaggy.String(&o.pattern, "p", "pattern", "Starting pattern (see --list)")
	flaggy.Bool(&o.random, "r", "random", "Start from a random board")
	flaggy.Int64(&o.seed, "s", "seed", "Seed for the random board")
	flaggy.Duration(&o.interval, "i", "interval", "Delay between generations, for example 50ms")
	flaggy.Int(&o.maxGens, "m", "max", "Stop after this many ticks")
	flaggy.Int(&o.workers, "w", "workers", "Goroutines used per step")
	flaggy.Bool(&o.noColor, "", "no-color", "Disable colored output")
	flaggy.Bool(&o.quiet, "q", "quiet", "Only print the final summary")
	flaggy.Bool(&o.keepGoing, "k", "keep-going", "Keep running when the board becomes stable or starts repeating")
	flaggy.Bool(&o.list, "l", "list", "List the built-in patterns and exit")

	flaggy.Parse()
	return o
}

// apply overlays the command line options onto the config
func (o *cliOptions) apply(config utils.Config) utils.Config {
	if o.width > 0 {
		config.Width = o.width
	}
	if o.height > 0 {
		config.Height = o.height
	}
	if o.pattern != "" {
		config.Pattern = o.pattern
		config.Randomize = false
	}
	if o.random {
		config.Randomize = true
		config.Pattern = ""
	}
	if o.seed != 0 {
		config.Seed = o.seed
	}
	if o.interval > 0 {
		config.FrameRate = o.interval
	}
	if o.maxGens > 0 {
		config.MaxGenerations = o.maxGens
	}
	if o.workers > 0 {
		config.Workers = o.workers
	}
	if o.noColor {
		config.Color = false
	}
	if o.quiet {
		config.Render = false
	}
	if o.keepGoing {
		config.StopWhenStable = false
	}
	return config
}

func listPatterns() {
	for _, p := range model.Patterns() {
		fmt.Printf("  %-20s %3d cells at (%d,%d)\n", p.Slug(), len(p.Offsets), p.OriginRow, p.OriginCol)
	}
}

func main() {
	opts := parseFlags()
	if opts.list {
		listPatterns()
		return
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("config: %+v", err)
		}
		config = utils.DefaultConfig()
	}
	config = opts.apply(config)
	if err = config.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	g, err := initializeGame(config, os.Stdout)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	displayGameInfo(os.Stdout, config, g.session.Engine())

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(max(config.FrameRate, time.Millisecond))
	defer ticker.Stop()

	g.session.Start()
	stagnantCount := 0
	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Println(g.stats.Summary())
			return
		case <-ticker.C:
		}

		if g.tick() {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		if err = g.render(); err != nil {
			log.Fatalf("%+v", err)
		}

		if stop, reason := checkStopConditions(g.session.Engine(), g.stats.Ticks, stagnantCount, config); stop {
			g.session.Stop()
			fmt.Printf("Stopped: %s\n", reason)
			fmt.Println(g.stats.Summary())
			return
		}
	}
}
