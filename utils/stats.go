package utils

import "time"

// historySize bounds how many recent states are kept to spot still lifes and short cycles
const historySize = 5

// Outcome classifies the population at the end of a run
type Outcome string

const (
	OutcomeActive      Outcome = "active"
	OutcomeStable      Outcome = "stable"
	OutcomeOscillating Outcome = "oscillating"
	OutcomeExtinct     Outcome = "extinct"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	StartTime            time.Time

	history []string
	outcome Outcome
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now(), outcome: OutcomeActive}
}

// Update records one rendered generation: its population, state hash and the time
// spent computing it. GenerationsPerSecond is derived from that compute time alone.
func (s *Stats) Update(generation, population int, hash string, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if generation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.outcome = s.classify(population, hash)

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

func (s *Stats) classify(population int, hash string) Outcome {
	if population == 0 {
		return OutcomeExtinct
	}
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i] != hash {
			continue
		}
		if i == len(s.history)-1 {
			return OutcomeStable
		}
		return OutcomeOscillating
	}
	return OutcomeActive
}

// Outcome returns the classification of the most recent generation
func (s *Stats) Outcome() Outcome {
	return s.outcome
}
