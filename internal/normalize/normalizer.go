package normalize

import (
	"fmt"
	"strings"

	"swinglab/internal/classify"
	"swinglab/internal/config"
	"swinglab/pkg/contracts/domain"
)

// Result carries the normalized swings plus the count of rows that had to
// be dropped. Dropped rows are a data-quality signal for the caller, not a
// failure.
type Result struct {
	Swings  []domain.SwingRecord
	Dropped int
}

// LaunchMonitor converts the rows of a classified launch-monitor table into
// SwingRecords. A row is dropped when neither its result column nor its
// exit-velocity column can be interpreted. The error return is reserved for
// contract violations (wrong schema kind, unusable column map).
func LaunchMonitor(table domain.RawTable, det domain.DetectionResult, cfg config.NormalizerConfig) (Result, error) {
	if det.SchemaKind != domain.SchemaLaunchMonitor {
		return Result{}, fmt.Errorf("%w: launch monitor normalizer got %s", ErrWrongSchema, det.SchemaKind)
	}
	if _, ok := det.ColumnMap[classify.FieldExitVelo]; !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrMissingColumn, classify.FieldExitVelo)
	}

	res := Result{Swings: make([]domain.SwingRecord, 0, len(table.Rows))}

	for _, row := range table.Rows {
		velo, veloOK := cellNumber(row, det.ColumnMap, classify.FieldExitVelo)
		angle, angleOK := cellNumber(row, det.ColumnMap, classify.FieldLaunchAngle)
		dist, distOK := cellNumber(row, det.ColumnMap, classify.FieldDistance)
		result := cellString(row, det.ColumnMap, classify.FieldResult)

		outcome, ok := outcomeOf(result, velo, veloOK)
		if !ok {
			res.Dropped++
			continue
		}

		rec := domain.SwingRecord{Outcome: outcome}
		if outcome != domain.OutcomeMiss {
			// A miss never carries measurements; anything the vendor wrote
			// there is sensor noise.
			if veloOK {
				rec.ExitVelo = ptr(velo)
			}
			if angleOK {
				rec.LaunchAngle = ptr(angle)
			}
			if distOK {
				rec.Distance = ptr(dist)
			}
		}

		if outcome == domain.OutcomeInPlay {
			rec.BattedBall = battedBallType(
				cellString(row, det.ColumnMap, classify.FieldBattedType), rec.LaunchAngle, cfg)
		}

		res.Swings = append(res.Swings, rec)
	}

	return res, nil
}

// outcomeOf interprets the vendor result cell, falling back to the
// exit-velocity reading when the result column is absent or unrecognized.
func outcomeOf(result string, velo float64, veloOK bool) (domain.Outcome, bool) {
	r := strings.ToLower(result)

	switch {
	case strings.Contains(r, "miss") || strings.Contains(r, "whiff") || strings.Contains(r, "strikeout"):
		return domain.OutcomeMiss, true
	case strings.Contains(r, "foul"):
		return domain.OutcomeFoul, true
	case r != "" && inPlayResult(r):
		return domain.OutcomeInPlay, true
	}

	// Unrecognized or missing result: fall back to the velocity reading.
	if !veloOK {
		return "", false
	}
	if velo <= 0 {
		return domain.OutcomeMiss, true
	}
	return domain.OutcomeInPlay, true
}

// inPlayResult recognizes the outcome words launch-monitor vendors use for
// balls in play.
func inPlayResult(r string) bool {
	for _, word := range []string{
		"single", "double", "triple", "home", "hr",
		"out", "ground", "fly", "line", "pop", "bunt",
		"hit", "error", "fielder", "sac", "play",
	} {
		if strings.Contains(r, word) {
			return true
		}
	}
	return false
}

// battedBallType prefers the vendor's own type column and derives from
// launch angle only when the vendor did not supply one.
func battedBallType(vendorType string, angle *float64, cfg config.NormalizerConfig) domain.BattedBallType {
	switch t := strings.ToLower(vendorType); {
	case strings.Contains(t, "ground"):
		return domain.BattedBallGround
	case strings.Contains(t, "line"):
		return domain.BattedBallLine
	case strings.Contains(t, "fly") || strings.Contains(t, "pop"):
		return domain.BattedBallFly
	}

	if angle == nil {
		return domain.BattedBallUnknown
	}
	switch {
	case *angle < cfg.GroundBallMaxAngle:
		return domain.BattedBallGround
	case *angle > cfg.FlyBallMinAngle:
		return domain.BattedBallFly
	default:
		return domain.BattedBallLine
	}
}

func ptr(v float64) *float64 { return &v }
