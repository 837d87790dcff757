// Package aggregate reduces a batch of normalized swings into one
// session-level statistics object. Aggregation is a pure function of its
// input list and is recomputed wholesale on every call.
package aggregate

import (
	"math"
	"sort"

	"swinglab/internal/config"
	"swinglab/pkg/contracts/domain"
)

// Quality-tier names used in the ball-score breakdown maps.
const (
	TierBarrel     = "barrel"
	TierQualityHit = "quality_hit"
	TierInPlay     = "in_play"
	TierFoul       = "foul"
	TierMiss       = "miss"
)

// Aggregate computes SessionStats over one upload batch. An empty input
// yields zero counts with every rate and average field absent; no field is
// ever NaN.
func Aggregate(swings []domain.SwingRecord, brand domain.Brand, cfg config.AggregatorConfig) domain.SessionStats {
	stats := domain.SessionStats{Brand: brand, TotalSwings: len(swings)}
	if len(swings) == 0 {
		return stats
	}

	var velos, angles, distances []float64
	totalPoints := 0.0
	tierCounts := make(map[string]int, 5)
	tierPoints := make(map[string]float64, 5)

	for _, s := range swings {
		switch s.Outcome {
		case domain.OutcomeMiss:
			stats.Misses++
		case domain.OutcomeFoul:
			stats.Fouls++
		case domain.OutcomeInPlay:
			stats.BallsInPlay++
		}

		if s.InPlay() {
			if s.ExitVelo != nil {
				v := *s.ExitVelo
				velos = append(velos, v)
				if v >= 100 {
					stats.Count100Plus++
				}
				if v >= 95 {
					stats.Count95Plus++
				}
				if v >= 90 {
					stats.Count90Plus++
				}
			}
			if s.LaunchAngle != nil {
				a := *s.LaunchAngle
				angles = append(angles, a)
				if a >= cfg.OptimalAngleMin && a <= cfg.OptimalAngleMax {
					stats.OptimalWindowCount++
				}
			}
			if s.Distance != nil {
				distances = append(distances, *s.Distance)
			}

			switch s.BattedBall {
			case domain.BattedBallGround:
				stats.GroundBalls++
			case domain.BattedBallLine:
				stats.LineDrives++
			case domain.BattedBallFly:
				stats.FlyBalls++
			}

			if isBarrel(s, cfg) {
				stats.Barrels++
			}
			if isQualityHit(s, cfg) {
				stats.QualityHits++
			}
		}

		tier := tierOf(s, cfg)
		pts := tierPointValue(tier, cfg.Points)
		tierCounts[tier]++
		tierPoints[tier] += pts
		totalPoints += pts
	}

	contact := float64(len(swings)-stats.Misses) / float64(len(swings))
	stats.ContactRate = &contact

	if len(velos) > 0 {
		stats.AvgExitVelo = ptr(mean(velos))
		stats.MedianExitVelo = ptr(median(velos))
		stats.MaxExitVelo = ptr(maxOf(velos))
		stats.MinExitVelo = ptr(minOf(velos))
		stats.ExitVeloStdDev = ptr(stdDev(velos))
	}
	if len(angles) > 0 {
		stats.AvgLaunchAngle = ptr(mean(angles))
	}
	if len(distances) > 0 {
		stats.AvgDistance = ptr(mean(distances))
		stats.MaxDistance = ptr(maxOf(distances))
	}

	pps := totalPoints / float64(len(swings))
	stats.PointsPerSwing = &pps
	stats.BallScore = ptr(clamp(pps*cfg.ScorePerPoint, 0, 100))
	stats.TierCounts = tierCounts
	stats.TierPoints = tierPoints

	return stats
}

// tierOf assigns the quality tier a swing scores points under. Tiers are
// mutually exclusive: a barrel is not also counted as a quality hit.
func tierOf(s domain.SwingRecord, cfg config.AggregatorConfig) string {
	switch s.Outcome {
	case domain.OutcomeMiss:
		return TierMiss
	case domain.OutcomeFoul:
		return TierFoul
	}
	if isBarrel(s, cfg) {
		return TierBarrel
	}
	if isQualityHit(s, cfg) {
		return TierQualityHit
	}
	return TierInPlay
}

func tierPointValue(tier string, pts config.PointsConfig) float64 {
	switch tier {
	case TierBarrel:
		return pts.Barrel
	case TierQualityHit:
		return pts.QualityHit
	case TierInPlay:
		return pts.InPlay
	case TierFoul:
		return pts.Foul
	default:
		return pts.Miss
	}
}

func isBarrel(s domain.SwingRecord, cfg config.AggregatorConfig) bool {
	return s.ExitVelo != nil && s.LaunchAngle != nil &&
		*s.ExitVelo >= cfg.BarrelMinVelo &&
		*s.LaunchAngle >= cfg.BarrelAngleMin && *s.LaunchAngle <= cfg.BarrelAngleMax
}

func isQualityHit(s domain.SwingRecord, cfg config.AggregatorConfig) bool {
	return s.ExitVelo != nil && s.LaunchAngle != nil &&
		*s.ExitVelo >= cfg.QualityHitMinVelo &&
		*s.LaunchAngle >= cfg.QualityHitAngleMin && *s.LaunchAngle <= cfg.QualityHitAngleMax
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func stdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	sum := 0.0
	for _, v := range vals {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(vals)))
}

func maxOf(vals []float64) float64 {
	out := vals[0]
	for _, v := range vals[1:] {
		if v > out {
			out = v
		}
	}
	return out
}

func minOf(vals []float64) float64 {
	out := vals[0]
	for _, v := range vals[1:] {
		if v < out {
			out = v
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ptr(v float64) *float64 { return &v }
