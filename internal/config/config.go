// Package config holds every tuning value the scoring pipeline depends on.
//
// The threshold literals (velocity bands, launch-angle windows, weights,
// points) are coaching-staff-owned numbers, not business logic, so they live
// here as configuration with sensible defaults: Default() first, then an
// optional YAML file, then environment variables, each layer overriding the
// last.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete tuning surface of the scoring pipeline.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Normalizer NormalizerConfig `yaml:"normalizer" envconfig:"NORMALIZER"`
	Aggregator AggregatorConfig `yaml:"aggregator" envconfig:"AGGREGATOR"`
	Scoring    ScoringConfig    `yaml:"scoring" envconfig:"SCORING"`
	Kinetic    KineticConfig    `yaml:"kinetic" envconfig:"KINETIC"`
	Pipeline   PipelineConfig   `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig configures the slog logger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"` // console, file, both
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// NormalizerConfig holds the launch-angle thresholds used to derive a
// batted-ball type when the vendor does not supply one.
type NormalizerConfig struct {
	GroundBallMaxAngle float64 `yaml:"ground_ball_max_angle" envconfig:"GROUND_BALL_MAX_ANGLE"`
	FlyBallMinAngle    float64 `yaml:"fly_ball_min_angle" envconfig:"FLY_BALL_MIN_ANGLE"`
}

// AggregatorConfig holds the session-statistics thresholds and the ball-score
// points system.
type AggregatorConfig struct {
	OptimalAngleMin float64 `yaml:"optimal_angle_min" envconfig:"OPTIMAL_ANGLE_MIN"`
	OptimalAngleMax float64 `yaml:"optimal_angle_max" envconfig:"OPTIMAL_ANGLE_MAX"`

	QualityHitMinVelo  float64 `yaml:"quality_hit_min_velo" envconfig:"QUALITY_HIT_MIN_VELO"`
	QualityHitAngleMin float64 `yaml:"quality_hit_angle_min" envconfig:"QUALITY_HIT_ANGLE_MIN"`
	QualityHitAngleMax float64 `yaml:"quality_hit_angle_max" envconfig:"QUALITY_HIT_ANGLE_MAX"`

	BarrelMinVelo  float64 `yaml:"barrel_min_velo" envconfig:"BARREL_MIN_VELO"`
	BarrelAngleMin float64 `yaml:"barrel_angle_min" envconfig:"BARREL_ANGLE_MIN"`
	BarrelAngleMax float64 `yaml:"barrel_angle_max" envconfig:"BARREL_ANGLE_MAX"`

	Points PointsConfig `yaml:"points" envconfig:"POINTS"`

	// ScorePerPoint maps points-per-swing onto the 0-100 ball score before
	// clamping.
	ScorePerPoint float64 `yaml:"score_per_point" envconfig:"SCORE_PER_POINT"`
}

// PointsConfig assigns the per-swing point value of each quality tier. The
// values must be strictly decreasing from barrel to miss.
type PointsConfig struct {
	Barrel     float64 `yaml:"barrel" envconfig:"BARREL"`
	QualityHit float64 `yaml:"quality_hit" envconfig:"QUALITY_HIT"`
	InPlay     float64 `yaml:"in_play" envconfig:"IN_PLAY"`
	Foul       float64 `yaml:"foul" envconfig:"FOUL"`
	Miss       float64 `yaml:"miss" envconfig:"MISS"`
}

// ScoringConfig holds the composite weights and motor-profile vote
// thresholds. Per-sub-metric band tables live in the scoring package as a
// declarative table and are not environment-tunable.
type ScoringConfig struct {
	CompositeWeights CompositeWeights `yaml:"composite_weights" envconfig:"COMPOSITE_WEIGHTS"`

	ProfileHighPoints   float64 `yaml:"profile_high_points" envconfig:"PROFILE_HIGH_POINTS"`
	ProfileMediumPoints float64 `yaml:"profile_medium_points" envconfig:"PROFILE_MEDIUM_POINTS"`
}

// CompositeWeights are the fixed weights combining the four category scores
// into the composite KRS. They must sum to 1.
type CompositeWeights struct {
	Brain float64 `yaml:"brain" envconfig:"BRAIN"`
	Body  float64 `yaml:"body" envconfig:"BODY"`
	Bat   float64 `yaml:"bat" envconfig:"BAT"`
	Ball  float64 `yaml:"ball" envconfig:"BALL"`
}

// IsValid reports whether the weights are non-negative and sum to 1, with a
// small tolerance for floating point error.
func (w CompositeWeights) IsValid() bool {
	if w.Brain < 0 || w.Body < 0 || w.Bat < 0 || w.Ball < 0 {
		return false
	}
	sum := w.Brain + w.Body + w.Bat + w.Ball
	return math.Abs(sum-1.0) < 0.01
}

// KineticConfig holds the kinetic-potential projection constants and the
// population defaults used when player size is not supplied.
type KineticConfig struct {
	DefaultWeightLbs    float64 `yaml:"default_weight_lbs" envconfig:"DEFAULT_WEIGHT_LBS"`
	DefaultHeightInches float64 `yaml:"default_height_inches" envconfig:"DEFAULT_HEIGHT_INCHES"`

	BaselineMph      float64 `yaml:"baseline_mph" envconfig:"BASELINE_MPH"`
	EnergyScale      float64 `yaml:"energy_scale" envconfig:"ENERGY_SCALE"`
	LeverPerInch     float64 `yaml:"lever_per_inch" envconfig:"LEVER_PER_INCH"`
	LeverNeutralIn   float64 `yaml:"lever_neutral_in" envconfig:"LEVER_NEUTRAL_IN"`
	EfficiencyUplift float64 `yaml:"efficiency_uplift" envconfig:"EFFICIENCY_UPLIFT"`

	MinMph float64 `yaml:"min_mph" envconfig:"MIN_MPH"`
	MaxMph float64 `yaml:"max_mph" envconfig:"MAX_MPH"`

	// MinSwings is the data-completeness floor below which the projection is
	// flagged lower confidence.
	MinSwings int `yaml:"min_swings" envconfig:"MIN_SWINGS"`
}

// PipelineConfig bounds the batch processor.
type PipelineConfig struct {
	MaxConcurrency int `yaml:"max_concurrency" envconfig:"MAX_CONCURRENCY"`
}

// Default returns the current coaching-staff tuning values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/swinglab.log",
		},
		Normalizer: NormalizerConfig{
			GroundBallMaxAngle: 10,
			FlyBallMinAngle:    25,
		},
		Aggregator: AggregatorConfig{
			OptimalAngleMin:    10,
			OptimalAngleMax:    30,
			QualityHitMinVelo:  90,
			QualityHitAngleMin: 8,
			QualityHitAngleMax: 32,
			BarrelMinVelo:      95,
			BarrelAngleMin:     10,
			BarrelAngleMax:     30,
			Points: PointsConfig{
				Barrel:     10,
				QualityHit: 7,
				InPlay:     4,
				Foul:       1,
				Miss:       0,
			},
			ScorePerPoint: 10,
		},
		Scoring: ScoringConfig{
			CompositeWeights: CompositeWeights{
				Brain: 0.20,
				Body:  0.35,
				Bat:   0.30,
				Ball:  0.15,
			},
			ProfileHighPoints:   6,
			ProfileMediumPoints: 4,
		},
		Kinetic: KineticConfig{
			DefaultWeightLbs:    180,
			DefaultHeightInches: 71,
			BaselineMph:         62,
			EnergyScale:         18,
			LeverPerInch:        0.005,
			LeverNeutralIn:      70,
			EfficiencyUplift:    1.25,
			MinMph:              40,
			MaxMph:              125,
			MinSwings:           3,
		},
		Pipeline: PipelineConfig{
			MaxConcurrency: 4,
		},
	}
}

// Load builds the effective configuration: defaults, overlaid by the YAML
// file at path (if path is non-empty and the file exists), overlaid by
// SWINGLAB_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := envconfig.Process("SWINGLAB", cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the invariants the scoring math depends on.
func (c *Config) Validate() error {
	if c.Normalizer.GroundBallMaxAngle >= c.Normalizer.FlyBallMinAngle {
		return fmt.Errorf("normalizer: ground-ball max angle %.1f must be below fly-ball min angle %.1f",
			c.Normalizer.GroundBallMaxAngle, c.Normalizer.FlyBallMinAngle)
	}
	if c.Aggregator.OptimalAngleMin >= c.Aggregator.OptimalAngleMax {
		return fmt.Errorf("aggregator: optimal angle window [%.1f, %.1f] is empty",
			c.Aggregator.OptimalAngleMin, c.Aggregator.OptimalAngleMax)
	}
	p := c.Aggregator.Points
	if !(p.Barrel > p.QualityHit && p.QualityHit > p.InPlay && p.InPlay > p.Foul && p.Foul > p.Miss) {
		return fmt.Errorf("aggregator: tier points must strictly decrease from barrel to miss")
	}
	if c.Aggregator.ScorePerPoint <= 0 {
		return fmt.Errorf("aggregator: score per point must be positive")
	}
	if !c.Scoring.CompositeWeights.IsValid() {
		return fmt.Errorf("scoring: composite weights must be non-negative and sum to 1")
	}
	if c.Scoring.ProfileHighPoints <= c.Scoring.ProfileMediumPoints {
		return fmt.Errorf("scoring: profile high-confidence threshold must exceed medium threshold")
	}
	if c.Kinetic.DefaultWeightLbs <= 0 || c.Kinetic.DefaultHeightInches <= 0 {
		return fmt.Errorf("kinetic: population defaults must be positive")
	}
	if c.Kinetic.EfficiencyUplift < 1 {
		return fmt.Errorf("kinetic: efficiency uplift must be at least 1")
	}
	if c.Kinetic.MinMph >= c.Kinetic.MaxMph {
		return fmt.Errorf("kinetic: mph clamp range [%.0f, %.0f] is empty", c.Kinetic.MinMph, c.Kinetic.MaxMph)
	}
	if c.Pipeline.MaxConcurrency <= 0 {
		return fmt.Errorf("pipeline: max concurrency must be positive")
	}
	return nil
}
