package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}
	return nil
}

func (s *SRSConfig) validate() error {
	if s.RequestRetention <= 0 || s.RequestRetention >= 1 {
		return fmt.Errorf("request_retention must be in (0, 1) (got %v)", s.RequestRetention)
	}
	if s.MaximumInterval < 1 {
		return fmt.Errorf("maximum_interval must be >= 1 (got %d)", s.MaximumInterval)
	}

	weights, err := ParseWeights(s.Weights)
	if err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	s.ParsedWeights = weights

	learningSteps, err := ParseSteps(s.LearningStepsRaw)
	if err != nil {
		return fmt.Errorf("learning_steps: %w", err)
	}
	s.LearningSteps = learningSteps

	relearningSteps, err := ParseSteps(s.RelearningStepsRaw)
	if err != nil {
		return fmt.Errorf("relearning_steps: %w", err)
	}
	s.RelearningSteps = relearningSteps

	return nil
}

// ParseWeights parses a comma-separated string of floats into a slice. It
// does not check the slice length — fsrs.NewEngine enforces the
// length-17 contract — so config can be validated before an engine is
// even built.
func ParseWeights(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	weights := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		weights = append(weights, v)
	}
	return weights, nil
}

// ParseSteps parses a comma-separated string of durations (e.g. "1m,10m")
// into a slice of time.Duration. An empty string returns a nil slice.
func ParseSteps(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	steps := make([]time.Duration, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		steps = append(steps, d)
	}
	return steps, nil
}
