// Package scoring turns one session's normalized data into the four-category
// score report: Brain (plate discipline), Body (rotational kinematics), Bat
// (energy delivery), Ball (batted-ball results), the composite, and the
// motor-profile and consistency reads on top.
//
// Scoring is deterministic: the same inputs always produce a bit-identical
// report. Missing inputs never fail a run; the affected category is omitted
// and a warning explains what was missing.
package scoring

import (
	"fmt"
	"log/slog"

	"swinglab/internal/config"
	"swinglab/pkg/contracts/domain"
)

// Input is everything one scoring run consumes. Any field may be absent;
// each category scores from whichever inputs exist.
type Input struct {
	Matched    []domain.MatchedSwing
	Session    *domain.SessionStats
	Discipline *domain.DisciplineMetrics
	Player     domain.PlayerContext
}

// Engine evaluates scoring runs against a fixed band set and weight
// configuration.
type Engine struct {
	cfg    config.ScoringConfig
	bands  Bands
	logger *slog.Logger
}

// NewEngine builds an engine on the default band tables.
func NewEngine(cfg config.ScoringConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, bands: DefaultBands(), logger: logger}
}

// Score runs the four categories over the input and assembles the report.
// The composite and grade are present only when all four categories scored.
func (e *Engine) Score(in Input) *domain.RebootScores {
	ik := SummarizeKinematics(in.Matched)
	me := SummarizeEnergy(in.Matched)

	out := &domain.RebootScores{
		PerCategory: make(map[domain.Category]domain.ScoreComponents, 4),
	}

	if in.Discipline != nil {
		out.PerCategory[domain.CategoryBrain] = e.scoreBrain(*in.Discipline)
	} else {
		out.Warnings = append(out.Warnings, "brain not scored: no plate-discipline metrics supplied")
	}

	if body, ok := e.scoreBody(ik); ok {
		out.PerCategory[domain.CategoryBody] = body
	} else {
		out.Warnings = append(out.Warnings, "body not scored: no kinematics data")
	}

	if bat, ok := e.scoreBat(ik, me); ok {
		out.PerCategory[domain.CategoryBat] = bat
	} else {
		out.Warnings = append(out.Warnings, "bat not scored: no energy-transfer data")
	}

	if ball, ok := e.scoreBall(in.Session); ok {
		out.PerCategory[domain.CategoryBall] = ball
	} else {
		out.Warnings = append(out.Warnings, "ball not scored: no batted-ball data")
	}

	if len(out.PerCategory) == len(domain.Categories) {
		composite := e.composite(out.PerCategory)
		out.Composite = &composite
		out.Grade = GradeFor(composite)
	} else {
		out.Warnings = append(out.Warnings,
			fmt.Sprintf("composite not computed: %d of %d categories scored",
				len(out.PerCategory), len(domain.Categories)))
	}

	out.WeakestCategory = weakestCategory(out.PerCategory)
	out.Consistency = e.consistency(in.Session, me)
	out.MotorProfile = e.motorProfile(ik, me, in.Session, in.Player, out.PerCategory)

	e.logger.Debug("scoring run complete",
		slog.Int("categories", len(out.PerCategory)),
		slog.Bool("composite", out.Composite != nil),
		slog.Int("warnings", len(out.Warnings)))

	return out
}

func (e *Engine) scoreBrain(d domain.DisciplineMetrics) domain.ScoreComponents {
	c := newCategory()
	c.add("strikeout_rate", d.StrikeoutRate, e.bands.KRate, 0.25)
	c.add("walk_rate", d.WalkRate, e.bands.WalkRate, 0.20)
	c.add("chase_rate", d.ChaseRate, e.bands.ChaseRate, 0.20)
	c.add("contact_rate", d.ContactRate, e.bands.ContactRate, 0.15)
	c.add("discipline_ratio", d.DisciplineRatio, e.bands.DisciplineRatio, 0.20)
	sc, _ := c.result()
	return sc
}

func (e *Engine) scoreBody(ik *KinematicSummary) (domain.ScoreComponents, bool) {
	if ik == nil {
		return domain.ScoreComponents{}, false
	}
	c := newCategory()
	c.addOpt("pelvis_velo", ik.PelvisVelo, e.bands.PelvisVelo, 0.25)
	c.addOpt("torso_velo", ik.TorsoVelo, e.bands.TorsoVelo, 0.25)
	c.addOpt("hip_shoulder_separation", ik.HipShoulderSep, e.bands.HipShoulderSep, 0.20)
	c.addOpt("lead_knee_extension", ik.LeadKneeExt, e.bands.LeadKneeExt, 0.15)
	c.addOpt("posture_stability", ik.PostureTilt, e.bands.PostureSway, 0.15)
	return c.result()
}

// scoreBat is driven by the energy data; the kinematics summary is accepted
// for symmetry but not currently consulted.
func (e *Engine) scoreBat(_ *KinematicSummary, me *EnergySummary) (domain.ScoreComponents, bool) {
	if me == nil {
		return domain.ScoreComponents{}, false
	}
	c := newCategory()
	c.addOpt("bat_speed", me.BatSpeedMph, e.bands.BatSpeed, 0.30)
	c.addOpt("transfer_efficiency", me.TransferEfficiency, e.bands.TransferEfficiency, 0.30)
	c.addOpt("bat_energy", me.BatEnergy, e.bands.BatEnergy, 0.20)
	c.addOpt("swing_consistency", me.BatEnergyStdDev, e.bands.SwingVariability, 0.20)
	return c.result()
}

func (e *Engine) scoreBall(s *domain.SessionStats) (domain.ScoreComponents, bool) {
	if s == nil || s.BallsInPlay == 0 {
		return domain.ScoreComponents{}, false
	}
	inPlay := float64(s.BallsInPlay)
	barrelRate := float64(s.Barrels) / inPlay * 100
	optimalRate := float64(s.OptimalWindowCount) / inPlay * 100
	hardHitRate := float64(s.Count90Plus) / inPlay * 100

	c := newCategory()
	c.addOpt("avg_exit_velo", s.AvgExitVelo, e.bands.AvgExitVelo, 0.25)
	c.addOpt("max_exit_velo", s.MaxExitVelo, e.bands.MaxExitVelo, 0.20)
	c.add("barrel_rate", barrelRate, e.bands.BarrelRate, 0.25)
	c.add("optimal_launch_rate", optimalRate, e.bands.OptimalLaunchRate, 0.15)
	c.add("hard_hit_rate", hardHitRate, e.bands.HardHitRate, 0.15)
	return c.result()
}

func (e *Engine) composite(per map[domain.Category]domain.ScoreComponents) float64 {
	w := e.cfg.CompositeWeights
	composite := per[domain.CategoryBrain].Score*w.Brain +
		per[domain.CategoryBody].Score*w.Body +
		per[domain.CategoryBat].Score*w.Bat +
		per[domain.CategoryBall].Score*w.Ball
	return clampScore(composite)
}

func (e *Engine) consistency(s *domain.SessionStats, me *EnergySummary) domain.Consistency {
	var c domain.Consistency
	if s != nil && s.ExitVeloStdDev != nil {
		sd := *s.ExitVeloStdDev
		c.ExitVeloStdDev = &sd
		score := e.bands.ExitVeloSpread.Score(sd)
		c.Score = &score
	}
	if me != nil && me.BatEnergyStdDev != nil {
		sd := *me.BatEnergyStdDev
		c.BatEnergyStdDev = &sd
	}
	return c
}

// categoryBuilder accumulates a category's sub-scores. Weights are
// renormalized over the sub-metrics actually present, so a missing optional
// measurement shrinks the category's evidence rather than dragging it down.
type categoryBuilder struct {
	components  map[string]domain.SubScore
	weightedSum float64
	weightTotal float64
}

func newCategory() *categoryBuilder {
	return &categoryBuilder{components: make(map[string]domain.SubScore)}
}

func (c *categoryBuilder) add(name string, raw float64, table BandTable, weight float64) {
	score := table.Score(raw)
	c.components[name] = domain.SubScore{Raw: raw, Score: score, Weight: weight}
	c.weightedSum += score * weight
	c.weightTotal += weight
}

func (c *categoryBuilder) addOpt(name string, raw *float64, table BandTable, weight float64) {
	if raw != nil {
		c.add(name, *raw, table, weight)
	}
}

func (c *categoryBuilder) result() (domain.ScoreComponents, bool) {
	if c.weightTotal == 0 {
		return domain.ScoreComponents{}, false
	}
	return domain.ScoreComponents{
		Score:      clampScore(c.weightedSum / c.weightTotal),
		Components: c.components,
	}, true
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
