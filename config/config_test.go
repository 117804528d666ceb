package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points HOME at an empty directory and clears every override.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{
		"VOTESIM_VOTERS", "VOTESIM_CANDIDATES", "VOTESIM_SEED",
		"VOTESIM_GRAPH_MODEL", "VOTESIM_SEMANTICS", "VOTESIM_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	config := Default()

	assert.Equal(t, 20, config.Voters)
	assert.Equal(t, 5, config.Candidates)
	assert.Equal(t, int64(1052), config.Seed)
	assert.Equal(t, DistNormal, config.Scores.Distribution)
	assert.Equal(t, 50.0, config.Scores.Mean)
	assert.Equal(t, 20.0, config.Scores.StdDev)
	assert.Equal(t, GraphDegree, config.Graph.Model)
	assert.Equal(t, "early-break", config.Strategic.Semantics)
	assert.Zero(t, config.Strategic.MaxRounds)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
	assert.NoError(t, config.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
voters: 40
candidates: 3
seed: 7
scores:
  distribution: uniform
  min: 10
  max: 90
graph:
  model: sparse
  probability: 0.25
strategic:
  semantics: batched
  max_rounds: 100
logging:
  level: debug
  format: json
`)

	config, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 40, config.Voters)
	assert.Equal(t, 3, config.Candidates)
	assert.Equal(t, int64(7), config.Seed)
	assert.Equal(t, ScoresConfig{Distribution: DistUniform, Mean: 50, StdDev: 20, Min: 10, Max: 90}, config.Scores)
	assert.Equal(t, GraphConfig{Model: GraphSparse, Probability: 0.25, Degree: 2}, config.Graph)
	assert.Equal(t, StrategicConfig{Semantics: "batched", MaxRounds: 100}, config.Strategic)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, config.Logging)
	assert.NoError(t, config.Validate())
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	config, err := LoadFromFile(writeConfig(t, "voters: 8\n"))
	require.NoError(t, err)

	want := Default()
	want.Voters = 8
	assert.Equal(t, want, config)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")

	_, err = LoadFromFile(writeConfig(t, "voters: [unclosed\n"))
	assert.ErrorContains(t, err, "parsing config file")
}

func TestLoad_NoFile(t *testing.T) {
	isolate(t)

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestLoad_HomeFile(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".votesim"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".votesim", "config.yaml"), []byte("candidates: 9\n"), 0600))

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, config.Candidates)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "loading config file")
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("VOTESIM_VOTERS", "100")
	t.Setenv("VOTESIM_CANDIDATES", "4")
	t.Setenv("VOTESIM_SEED", "-3")
	t.Setenv("VOTESIM_GRAPH_MODEL", "complete")
	t.Setenv("VOTESIM_SEMANTICS", "batched")
	t.Setenv("VOTESIM_LOG_LEVEL", "trace")

	config, err := Load(writeConfig(t, "voters: 8\ncandidates: 2\n"))
	require.NoError(t, err)

	assert.Equal(t, 100, config.Voters)
	assert.Equal(t, 4, config.Candidates)
	assert.Equal(t, int64(-3), config.Seed)
	assert.Equal(t, GraphComplete, config.Graph.Model)
	assert.Equal(t, "batched", config.Strategic.Semantics)
	assert.Equal(t, "trace", config.Logging.Level)
}

func TestEnvOverrides_IgnoresBadNumbers(t *testing.T) {
	isolate(t)
	t.Setenv("VOTESIM_VOTERS", "many")
	t.Setenv("VOTESIM_SEED", "0x10")

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultVoters, config.Voters)
	assert.Equal(t, int64(DefaultSeed), config.Seed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"default", func(*Config) {}, ""},
		{"zero voters", func(c *Config) { c.Voters = 0 }, "voters must be at least 1"},
		{"zero candidates", func(c *Config) { c.Candidates = 0 }, "candidates must be at least 1"},
		{"negative stddev", func(c *Config) { c.Scores.StdDev = -1 }, "scores.stddev"},
		{"uniform inverted", func(c *Config) {
			c.Scores.Distribution = DistUniform
			c.Scores.Min, c.Scores.Max = 60, 40
		}, "scores.min/max"},
		{"uniform above range", func(c *Config) {
			c.Scores.Distribution = DistUniform
			c.Scores.Max = 101
		}, "scores.min/max"},
		{"tenths", func(c *Config) { c.Scores.Distribution = DistTenths }, ""},
		{"bad distribution", func(c *Config) { c.Scores.Distribution = "poisson" }, "invalid score distribution"},
		{"sparse probability", func(c *Config) {
			c.Graph.Model = GraphSparse
			c.Graph.Probability = 1.5
		}, "graph.probability"},
		{"empty graph", func(c *Config) { c.Graph.Model = GraphEmpty }, ""},
		{"regular", func(c *Config) { c.Graph.Model = GraphRegular }, ""},
		{"regular degree too high", func(c *Config) {
			c.Graph.Model = GraphRegular
			c.Graph.Degree = c.Voters
		}, "graph.degree"},
		{"ring", func(c *Config) { c.Graph.Model = GraphRing }, ""},
		{"ring degree zero", func(c *Config) {
			c.Graph.Model = GraphRing
			c.Graph.Degree = 0
		}, "graph.degree"},
		{"star", func(c *Config) { c.Graph.Model = GraphStar }, ""},
		{"star hub out of range", func(c *Config) {
			c.Graph.Model = GraphStar
			c.Graph.Hub = -1
		}, "graph.hub"},
		{"bad graph", func(c *Config) { c.Graph.Model = "ring" }, "invalid graph model"},
		{"bad semantics", func(c *Config) { c.Strategic.Semantics = "async" }, "invalid strategic semantics"},
		{"empty semantics", func(c *Config) { c.Strategic.Semantics = "" }, ""},
		{"negative rounds", func(c *Config) { c.Strategic.MaxRounds = -1 }, "max_rounds"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
		{"empty level", func(c *Config) { c.Logging.Level = "" }, ""},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestMarshal_RoundTrips(t *testing.T) {
	c := Default()
	c.Graph.Model = GraphSparse

	data, err := c.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "model: sparse")

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, *c, back)
}
