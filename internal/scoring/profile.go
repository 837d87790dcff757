package scoring

import "swinglab/pkg/contracts/domain"

// profileOrder fixes tie-breaking for the motor-profile vote.
var profileOrder = []domain.MotorProfileLabel{
	domain.ProfileSpinner,
	domain.ProfileWhipper,
	domain.ProfileSlingshotter,
	domain.ProfileTitan,
}

// profileVote tallies weighted evidence for one label.
type profileVote struct {
	points          float64
	characteristics []string
}

func (v *profileVote) award(points float64, characteristic string) {
	v.points += points
	v.characteristics = append(v.characteristics, characteristic)
}

// motorProfile classifies how the hitter generates power by voting over the
// kinematic and energy summaries. Every rule that fires adds points to its
// label; the highest total wins, ties resolving by the fixed label order.
// Returns nil when no motion-capture evidence exists at all.
func (e *Engine) motorProfile(
	ik *KinematicSummary,
	me *EnergySummary,
	session *domain.SessionStats,
	player domain.PlayerContext,
	per map[domain.Category]domain.ScoreComponents,
) *domain.MotorProfile {
	if ik == nil && me == nil {
		return nil
	}

	votes := map[domain.MotorProfileLabel]*profileVote{}
	for _, label := range profileOrder {
		votes[label] = &profileVote{}
	}

	bodyScore, bodyOK := scoreOf(per, domain.CategoryBody)
	batScore, batOK := scoreOf(per, domain.CategoryBat)

	// Spinner: rotation-dominant, output varies swing to swing.
	if ik != nil && ik.PelvisVelo != nil && *ik.PelvisVelo >= 600 {
		votes[domain.ProfileSpinner].award(2, "high pelvis rotational velocity")
	}
	if session != nil && session.ExitVeloStdDev != nil && *session.ExitVeloStdDev >= 6 {
		votes[domain.ProfileSpinner].award(2, "wide exit-velocity spread")
	}
	if session != nil && session.BallsInPlay > 0 {
		gbRate := float64(session.GroundBalls) / float64(session.BallsInPlay) * 100
		if gbRate < 30 {
			votes[domain.ProfileSpinner].award(1, "low ground-ball rate")
		}
	}
	if bodyOK && batOK && bodyScore-batScore >= 8 {
		votes[domain.ProfileSpinner].award(3, "body score outpaces bat score")
	}

	// Whipper: sequencing-driven, converts separation into barrel speed.
	if ik != nil && ik.HipShoulderSep != nil && *ik.HipShoulderSep >= 32 {
		votes[domain.ProfileWhipper].award(3, "large hip-shoulder separation")
	}
	if me != nil && me.TransferEfficiency != nil && *me.TransferEfficiency >= 0.70 {
		votes[domain.ProfileWhipper].award(2, "efficient energy transfer")
	}
	if bodyOK && batOK && batScore-bodyScore >= 8 {
		votes[domain.ProfileWhipper].award(2, "bat score outpaces body score")
	}
	if ik != nil && ik.TorsoVelo != nil && *ik.TorsoVelo >= 850 {
		votes[domain.ProfileWhipper].award(1, "high torso rotational velocity")
	}

	// Slingshotter: stores energy in a stretched lower half, releases late.
	if ik != nil && ik.HipShoulderSep != nil && *ik.HipShoulderSep >= 40 {
		votes[domain.ProfileSlingshotter].award(2, "extreme hip-shoulder separation")
	}
	if ik != nil && ik.LeadKneeExt != nil && *ik.LeadKneeExt >= 350 {
		votes[domain.ProfileSlingshotter].award(2, "strong lead-knee extension")
	}
	if me != nil && me.TransferEfficiency != nil &&
		*me.TransferEfficiency >= 0.55 && *me.TransferEfficiency <= 0.75 {
		votes[domain.ProfileSlingshotter].award(1, "mid-range transfer efficiency")
	}
	if ik != nil && ik.TorsoVelo != nil && ik.PelvisVelo != nil && *ik.PelvisVelo > 0 &&
		*ik.TorsoVelo / *ik.PelvisVelo >= 1.4 {
		votes[domain.ProfileSlingshotter].award(3, "torso velocity well above pelvis velocity")
	}

	// Titan: raw output carries the profile even at modest efficiency.
	if me != nil && me.BatEnergy != nil && *me.BatEnergy >= 250 {
		votes[domain.ProfileTitan].award(3, "high peak bat energy")
	}
	if session != nil && session.MaxExitVelo != nil && *session.MaxExitVelo >= 98 {
		votes[domain.ProfileTitan].award(2, "elite top-end exit velocity")
	}
	if me != nil && me.TransferEfficiency != nil && *me.TransferEfficiency < 0.65 {
		votes[domain.ProfileTitan].award(1, "output despite modest transfer efficiency")
	}
	if player.WeightLbs != nil && *player.WeightLbs >= 200 {
		votes[domain.ProfileTitan].award(2, "heavy frame")
	}

	var winner, runnerUp domain.MotorProfileLabel
	var winPts, runPts float64
	for _, label := range profileOrder {
		pts := votes[label].points
		if pts > winPts {
			runnerUp, runPts = winner, winPts
			winner, winPts = label, pts
		} else if pts > runPts {
			runnerUp, runPts = label, pts
		}
	}

	if winPts == 0 {
		return nil
	}

	profile := &domain.MotorProfile{
		Label:           winner,
		Confidence:      e.profileConfidence(winPts),
		Characteristics: votes[winner].characteristics,
	}
	if runPts > 0 {
		profile.Secondary = runnerUp
	}
	return profile
}

func (e *Engine) profileConfidence(points float64) domain.Confidence {
	switch {
	case points >= e.cfg.ProfileHighPoints:
		return domain.ConfidenceHigh
	case points >= e.cfg.ProfileMediumPoints:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func scoreOf(per map[domain.Category]domain.ScoreComponents, c domain.Category) (float64, bool) {
	sc, ok := per[c]
	return sc.Score, ok
}
