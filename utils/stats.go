package utils

import "time"

// Stats for run monitoring: feeds the status row and the shutdown report.
type Stats struct {
	Generations          int
	GenerationsPerSecond float64
	AveragePopulation    float64
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed generation and the time its frame took.
func (s *Stats) Update(generation, population int, frame time.Duration) {
	s.Generations = generation
	if frame > 0 {
		s.GenerationsPerSecond = 1.0 / frame.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the wall time elapsed since the run started.
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
