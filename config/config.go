// Package config provides configuration loading for votesim.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/votesim/strategic"
)

// Score distributions understood by ScoresConfig.Distribution.
const (
	DistNormal  = "normal"
	DistUniform = "uniform"
	DistTenths  = "tenths"
)

// Graph models understood by GraphConfig.Model.
const (
	GraphDegree   = "degree"
	GraphSparse   = "sparse"
	GraphRegular  = "regular"
	GraphRing     = "ring"
	GraphStar     = "star"
	GraphComplete = "complete"
	GraphEmpty    = "empty"
)

// Defaults mirror the legacy driver.
const (
	DefaultVoters     = 20
	DefaultCandidates = 5
	DefaultSeed       = 1052
)

// Config holds the settings for one simulation run.
type Config struct {
	// Voters is the population size.
	Voters int `json:"voters" yaml:"voters"`

	// Candidates is the number of candidates, ids 1..Candidates.
	Candidates int `json:"candidates" yaml:"candidates"`

	// Seed drives every random draw of a run.
	Seed int64 `json:"seed" yaml:"seed"`

	Scores ScoresConfig `json:"scores" yaml:"scores"`

	Graph GraphConfig `json:"graph" yaml:"graph"`

	Strategic StrategicConfig `json:"strategic" yaml:"strategic"`

	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// ScoresConfig selects the cardinal score generator.
type ScoresConfig struct {
	// Distribution is one of normal, uniform or tenths.
	Distribution string `json:"distribution" yaml:"distribution"`

	// Mean and StdDev parametrise the normal distribution.
	Mean   float64 `json:"mean,omitempty" yaml:"mean,omitempty"`
	StdDev float64 `json:"stddev,omitempty" yaml:"stddev,omitempty"`

	// Min and Max bound the uniform distribution.
	Min float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// GraphConfig selects the social graph generator.
type GraphConfig struct {
	// Model is one of degree, sparse, regular, ring, star, complete or empty.
	Model string `json:"model" yaml:"model"`

	// Probability is the per-edge probability of the sparse model.
	Probability float64 `json:"probability,omitempty" yaml:"probability,omitempty"`

	// Degree is the out-degree of the regular and ring models.
	Degree int `json:"degree,omitempty" yaml:"degree,omitempty"`

	// Hub is the observed voter of the star model.
	Hub int `json:"hub,omitempty" yaml:"hub,omitempty"`
}

// StrategicConfig tunes the strategic voting simulator.
type StrategicConfig struct {
	// Semantics is early-break or batched.
	Semantics string `json:"semantics" yaml:"semantics"`

	// MaxRounds caps the simulation; 0 means 10 rounds per voter.
	MaxRounds int `json:"max_rounds,omitempty" yaml:"max_rounds,omitempty"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is warn, info, debug or trace. Empty means info.
	Level string `json:"level" yaml:"level"`

	// Format is text or json. Empty means text.
	Format string `json:"format" yaml:"format"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Voters:     DefaultVoters,
		Candidates: DefaultCandidates,
		Seed:       DefaultSeed,
		Scores: ScoresConfig{
			Distribution: DistNormal,
			Mean:         50,
			StdDev:       20,
			Min:          0,
			Max:          100,
		},
		Graph: GraphConfig{
			Model:       GraphDegree,
			Probability: 0.1,
			Degree:      2,
			Hub:         0,
		},
		Strategic: StrategicConfig{
			Semantics: strategic.EarlyBreak.String(),
			MaxRounds: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the effective configuration: defaults, then the file at path
// (or ~/.votesim/config.yaml when path is empty and that file exists), then
// environment overrides.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(homeDir, ".votesim", "config.yaml")
			if _, statErr := os.Stat(candidate); statErr == nil {
				path = candidate
			}
		}
	}

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Voters < 1 {
		return fmt.Errorf("voters must be at least 1, got %d", c.Voters)
	}
	if c.Candidates < 1 {
		return fmt.Errorf("candidates must be at least 1, got %d", c.Candidates)
	}

	switch c.Scores.Distribution {
	case DistNormal:
		if c.Scores.StdDev < 0 {
			return fmt.Errorf("scores.stddev must be non-negative, got %g", c.Scores.StdDev)
		}
	case DistUniform:
		if c.Scores.Min < 0 || c.Scores.Max > 100 || c.Scores.Min > c.Scores.Max {
			return fmt.Errorf("scores.min/max must satisfy 0 <= min <= max <= 100, got %g..%g", c.Scores.Min, c.Scores.Max)
		}
	case DistTenths:
	default:
		return fmt.Errorf("invalid score distribution: %s (valid: normal, uniform, tenths)", c.Scores.Distribution)
	}

	switch c.Graph.Model {
	case GraphDegree, GraphComplete, GraphEmpty:
	case GraphSparse:
		if c.Graph.Probability < 0 || c.Graph.Probability > 1 {
			return fmt.Errorf("graph.probability must be between 0 and 1, got %g", c.Graph.Probability)
		}
	case GraphRegular:
		if c.Graph.Degree < 0 || c.Graph.Degree >= c.Voters {
			return fmt.Errorf("graph.degree must be in [0,%d) for the regular model, got %d", c.Voters, c.Graph.Degree)
		}
	case GraphRing:
		if c.Graph.Degree < 1 || c.Graph.Degree >= c.Voters {
			return fmt.Errorf("graph.degree must be in [1,%d) for the ring model, got %d", c.Voters, c.Graph.Degree)
		}
	case GraphStar:
		if c.Graph.Hub < 0 || c.Graph.Hub >= c.Voters {
			return fmt.Errorf("graph.hub must be in [0,%d), got %d", c.Voters, c.Graph.Hub)
		}
	default:
		return fmt.Errorf("invalid graph model: %s (valid: degree, sparse, regular, ring, star, complete, empty)", c.Graph.Model)
	}

	if _, err := strategic.ParseSemantics(c.Strategic.Semantics); err != nil {
		return fmt.Errorf("invalid strategic semantics: %s (valid: early-break, batched)", c.Strategic.Semantics)
	}
	if c.Strategic.MaxRounds < 0 {
		return fmt.Errorf("strategic.max_rounds must be non-negative, got %d", c.Strategic.MaxRounds)
	}

	validLevels := map[string]bool{"warn": true, "info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: warn, info, debug, trace, or empty for default)", c.Logging.Level)
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if c.Logging.Format != "" && !validFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s (valid: text, json, or empty for default)", c.Logging.Format)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// applyEnvOverrides applies VOTESIM_* environment variables. Unparsable
// numbers are ignored.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("VOTESIM_VOTERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Voters = n
		}
	}

	if v := os.Getenv("VOTESIM_CANDIDATES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Candidates = n
		}
	}

	if v := os.Getenv("VOTESIM_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Seed = n
		}
	}

	if v := os.Getenv("VOTESIM_GRAPH_MODEL"); v != "" {
		config.Graph.Model = v
	}

	if v := os.Getenv("VOTESIM_SEMANTICS"); v != "" {
		config.Strategic.Semantics = v
	}

	if v := os.Getenv("VOTESIM_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
