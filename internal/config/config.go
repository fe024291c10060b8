// Package config loads the host application's configuration: the FSRS
// Parameters the engine is built from, and the ambient logging settings.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	SRS SRSConfig `yaml:"srs"`
	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds the FSRS scheduling parameters a host loads from YAML
// or ENV before building an fsrs.Engine.
//
// LearningStepsRaw, RelearningStepsRaw, EnableFuzzing, and Step are
// accepted for round-trip fidelity with the wire format a host might
// already have, but the scheduling arithmetic in internal/fsrs never
// reads them — internal/fsrs does not even import this package. They are
// parsed into typed fields purely so a host can inspect or re-serialize
// them.
type SRSConfig struct {
	Weights            string  `yaml:"weights"             env:"FSRS_WEIGHTS"             env-default:"0.4872,1.4003,3.7145,13.8206,5.1618,1.2298,0.8975,0.031,1.6474,0.1367,1.0461,2.1072,0.0793,0.3246,1.587,0.2272,2.8755"`
	RequestRetention   float64 `yaml:"request_retention"   env:"FSRS_REQUEST_RETENTION"   env-default:"0.9"`
	MaximumInterval    int     `yaml:"maximum_interval"    env:"FSRS_MAXIMUM_INTERVAL"    env-default:"36500"`
	LearningStepsRaw   string  `yaml:"learning_steps"      env:"FSRS_LEARNING_STEPS"      env-default:"1m,10m"`
	RelearningStepsRaw string  `yaml:"relearning_steps"    env:"FSRS_RELEARNING_STEPS"    env-default:"10m"`
	EnableFuzzing      bool    `yaml:"enable_fuzzing"      env:"FSRS_ENABLE_FUZZING"      env-default:"false"`
	Step               int     `yaml:"step"                env:"FSRS_STEP"               env-default:"0"`

	// ParsedWeights is populated from Weights during validation.
	ParsedWeights []float64 `yaml:"-" env:"-"`
	// LearningSteps is populated from LearningStepsRaw during validation.
	LearningSteps []time.Duration `yaml:"-" env:"-"`
	// RelearningSteps is populated from RelearningStepsRaw during validation.
	RelearningSteps []time.Duration `yaml:"-" env:"-"`
}
