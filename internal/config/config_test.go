package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 10.0, cfg.Normalizer.GroundBallMaxAngle)
	assert.Equal(t, 25.0, cfg.Normalizer.FlyBallMinAngle)
	assert.Equal(t, 95.0, cfg.Aggregator.BarrelMinVelo)
	assert.Equal(t, 10.0, cfg.Aggregator.Points.Barrel)
	assert.True(t, cfg.Scoring.CompositeWeights.IsValid())
	assert.Equal(t, 4, cfg.Pipeline.MaxConcurrency)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted angle thresholds", func(c *Config) {
			c.Normalizer.GroundBallMaxAngle = 30
			c.Normalizer.FlyBallMinAngle = 10
		}},
		{"empty optimal window", func(c *Config) {
			c.Aggregator.OptimalAngleMin = 30
			c.Aggregator.OptimalAngleMax = 10
		}},
		{"non-decreasing points", func(c *Config) {
			c.Aggregator.Points.Foul = c.Aggregator.Points.InPlay
		}},
		{"weights not summing to one", func(c *Config) {
			c.Scoring.CompositeWeights.Brain = 0.5
		}},
		{"negative weight", func(c *Config) {
			c.Scoring.CompositeWeights.Brain = -0.2
			c.Scoring.CompositeWeights.Body = 0.75
		}},
		{"profile thresholds inverted", func(c *Config) {
			c.Scoring.ProfileHighPoints = 3
		}},
		{"efficiency uplift below one", func(c *Config) {
			c.Kinetic.EfficiencyUplift = 0.9
		}},
		{"empty mph clamp range", func(c *Config) {
			c.Kinetic.MinMph = 130
		}},
		{"zero concurrency", func(c *Config) {
			c.Pipeline.MaxConcurrency = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestCompositeWeightsTolerance(t *testing.T) {
	w := CompositeWeights{Brain: 0.333, Body: 0.333, Bat: 0.333, Ball: 0.0}
	assert.True(t, w.IsValid(), "sum 0.999 is inside the tolerance")

	w.Ball = 0.1
	assert.False(t, w.IsValid())
}

func TestLoadOverlaysYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
aggregator:
  barrel_min_velo: 97
scoring:
  composite_weights:
    brain: 0.25
    body: 0.25
    bat: 0.25
    ball: 0.25
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 97.0, cfg.Aggregator.BarrelMinVelo)
	assert.Equal(t, 0.25, cfg.Scoring.CompositeWeights.Brain)
	// Untouched values keep their defaults.
	assert.Equal(t, 90.0, cfg.Aggregator.QualityHitMinVelo)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Aggregator.BarrelMinVelo, cfg.Aggregator.BarrelMinVelo)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SWINGLAB_AGGREGATOR_BARREL_MIN_VELO", "96")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 96.0, cfg.Aggregator.BarrelMinVelo)
}

func TestLoadRejectsInvalidOverlay(t *testing.T) {
	t.Setenv("SWINGLAB_PIPELINE_MAX_CONCURRENCY", "0")

	_, err := Load("")
	assert.Error(t, err)
}
