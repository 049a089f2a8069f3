package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/utils"
)

func testConfig() utils.Config {
	c := utils.DefaultConfig()
	c.Width, c.Height = 20, 20
	c.Color = false
	c.Seed = 1
	return c
}

func TestInitializeGameWithPattern(t *testing.T) {
	c := testConfig()
	c.Pattern = "glider"

	g, err := initializeGame(c, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.session.Engine().Population(); got != 5 {
		t.Fatalf("population = %d, expected 5", got)
	}
	if g.session.Running() {
		t.Fatal("game should not start running on its own")
	}
}

func TestInitializeGameErrors(t *testing.T) {
	c := testConfig()
	c.Pattern = "nope"
	if _, err := initializeGame(c, &bytes.Buffer{}); err == nil {
		t.Fatal("expected unknown pattern error")
	}

	c = testConfig()
	c.Width = 0
	if _, err := initializeGame(c, &bytes.Buffer{}); err == nil {
		t.Fatal("expected invalid dimensions error")
	}
}

func TestTickAndRender(t *testing.T) {
	c := testConfig()
	c.Pattern = "glider"
	var out bytes.Buffer
	g, err := initializeGame(c, &out)
	if err != nil {
		t.Fatal(err)
	}
	g.session.Start()

	if g.tick() {
		t.Fatal("a glider never repeats within the window")
	}
	if g.session.Generation() != 1 || g.stats.Ticks != 1 {
		t.Fatalf("generation=%d ticks=%d", g.session.Generation(), g.stats.Ticks)
	}
	if err = g.render(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Number of Generations : 1") {
		t.Fatalf("missing generation counter in %q", out.String())
	}

	out.Reset()
	g.config.Render = false
	if err = g.render(); err != nil || out.Len() != 0 {
		t.Fatalf("quiet render wrote %q (err %v)", out.String(), err)
	}
}

func TestBlinkerStagnates(t *testing.T) {
	c := testConfig()
	g, err := initializeGame(c, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	for _, cell := range [][2]int{{5, 4}, {5, 5}, {5, 6}} {
		if err = g.session.Paint(cell[0], cell[1]); err != nil {
			t.Fatal(err)
		}
	}
	g.session.Start()

	if g.tick() {
		t.Fatal("first phase is new")
	}
	if !g.tick() {
		t.Fatal("blinker returns to its first phase")
	}
}

func TestCheckStopConditions(t *testing.T) {
	c := testConfig()
	c.Pattern = "glider"
	g, err := initializeGame(c, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	e := g.session.Engine()
	e.Step()

	if stop, reason := checkStopConditions(e, 1, 0, c); stop {
		t.Fatalf("unexpected stop: %s", reason)
	}
	if stop, reason := checkStopConditions(e, c.MaxGenerations, 0, c); !stop || !strings.Contains(reason, "maximum") {
		t.Fatalf("stop=%v reason=%q", stop, reason)
	}
	if stop, reason := checkStopConditions(e, 1, c.StagnationThreshold, c); !stop || reason != "stagnation detected" {
		t.Fatalf("stop=%v reason=%q", stop, reason)
	}

	e.Reset()
	if stop, reason := checkStopConditions(e, 1, 0, c); !stop || reason != "extinction" {
		t.Fatalf("stop=%v reason=%q", stop, reason)
	}

	for _, cell := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		if err = e.Paint(cell[0], cell[1]); err != nil {
			t.Fatal(err)
		}
	}
	e.Step()
	if stop, reason := checkStopConditions(e, 2, 0, c); !stop || reason != "board is stable" {
		t.Fatalf("stop=%v reason=%q", stop, reason)
	}
	c.StopWhenStable = false
	if stop, _ := checkStopConditions(e, 2, 0, c); stop {
		t.Fatal("stable board should keep going when StopWhenStable is off")
	}
}

func TestKeepGoingStillLife(t *testing.T) {
	c := testConfig()
	c.StopWhenStable = false
	g, err := initializeGame(c, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	for _, cell := range [][2]int{{4, 4}, {4, 5}, {5, 4}, {5, 5}} {
		if err = g.session.Paint(cell[0], cell[1]); err != nil {
			t.Fatal(err)
		}
	}
	g.session.Start()

	stagnantCount := 0
	for range 3 * c.StagnationThreshold {
		if g.tick() {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		if stop, reason := checkStopConditions(g.session.Engine(), g.stats.Ticks, stagnantCount, c); stop {
			t.Fatalf("block stopped at tick %d: %s", g.stats.Ticks, reason)
		}
	}
	if stagnantCount < c.StagnationThreshold {
		t.Fatalf("stagnant count = %d, the block should repeat every tick", stagnantCount)
	}
}

func TestTickMeasuresFrameInterval(t *testing.T) {
	c := testConfig()
	c.Pattern = "glider"
	g, err := initializeGame(c, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	g.lastTick = time.Now().Add(-200 * time.Millisecond)
	g.tick()

	if gps := g.stats.GenerationsPerSecond; gps <= 0 || gps > 5 {
		t.Fatalf("gen/sec = %.2f, expected the rate of one tick per 200ms", gps)
	}
}

func TestCLIOptionsApply(t *testing.T) {
	base := utils.DefaultConfig()
	base.Pattern = "glider"

	got := (&cliOptions{width: 30, random: true, noColor: true, quiet: true, keepGoing: true, workers: 4}).apply(base)
	if got.Width != 30 || got.Height != base.Height {
		t.Fatalf("grid %dx%d", got.Width, got.Height)
	}
	if !got.Randomize || got.Pattern != "" {
		t.Fatal("--random should replace the configured pattern")
	}
	if got.Color || got.Render || got.StopWhenStable || got.Workers != 4 {
		t.Fatalf("boolean overrides not applied: %+v", got)
	}

	untouched := (&cliOptions{}).apply(base)
	if untouched != base {
		t.Fatal("empty options should not change the config")
	}
}
