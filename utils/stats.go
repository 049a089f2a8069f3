package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Generation           int
	Ticks                int
	Population           int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one tick. duration is the time the tick took.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.Generation = generation
	s.Population = population
	s.Ticks++
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.Ticks == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Elapsed returns the time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}

// Summary formats the final report line
func (s *Stats) Summary() string {
	return fmt.Sprintf("%d generations over %d ticks in %.1fs | Avg Pop: %.1f",
		s.Generation, s.Ticks, s.Elapsed().Seconds(), s.AveragePopulation)
}
