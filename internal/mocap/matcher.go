// Package mocap pairs kinematics (IK) and momentum-energy (ME) frame sets
// into per-swing matched records.
package mocap

import (
	"fmt"
	"strconv"

	"swinglab/pkg/contracts/domain"
)

// MatchResult carries the paired swings plus any count-mismatch warnings.
// Mismatches are never an error; the longer side's unmatched groups are
// dropped, not merged.
type MatchResult struct {
	Swings   []domain.MatchedSwing
	Warnings []string
}

// frameGroup is one movement's worth of frames from a single export side.
type frameGroup[F any] struct {
	id     string
	frames []F
}

// Match groups each side's frames into movements and pairs the groups.
// Pairing uses the shared movement identifier when both sides carry one,
// and positional order otherwise. A movement identifier never yields more
// than one MatchedSwing per call.
func Match(ik []domain.KinematicFrame, me []domain.EnergyFrame) MatchResult {
	ikGroups := groupFrames(ik, func(f domain.KinematicFrame) (string, *float64) {
		return f.MovementID, f.TimeSec
	})
	meGroups := groupFrames(me, func(f domain.EnergyFrame) (string, *float64) {
		return f.MovementID, f.TimeSec
	})

	// One side entirely absent: every group on the other side becomes a
	// single-sided record. Downstream scoring branches on the Has flags.
	if len(meGroups) == 0 {
		return kinematicsOnly(ikGroups)
	}
	if len(ikGroups) == 0 {
		return energyOnly(meGroups)
	}

	if bothHaveIDs(ikGroups, meGroups) {
		if res, ok := matchByID(ikGroups, meGroups); ok {
			return res
		}
		// No identifier overlap between the sides; treat the ids as
		// vendor-local and fall through to positional pairing.
	}
	return matchByPosition(ikGroups, meGroups)
}

// groupFrames splits a frame list into movements. Explicit identifiers win;
// without them a drop in the time column marks a new movement; with neither,
// the whole side is one movement.
func groupFrames[F any](frames []F, keyOf func(F) (string, *float64)) []frameGroup[F] {
	if len(frames) == 0 {
		return nil
	}

	hasIDs := false
	for _, f := range frames {
		if id, _ := keyOf(f); id != "" {
			hasIDs = true
			break
		}
	}

	var groups []frameGroup[F]

	if hasIDs {
		index := make(map[string]int, len(frames))
		for _, f := range frames {
			id, _ := keyOf(f)
			if i, ok := index[id]; ok {
				groups[i].frames = append(groups[i].frames, f)
				continue
			}
			index[id] = len(groups)
			groups = append(groups, frameGroup[F]{id: id, frames: []F{f}})
		}
		return groups
	}

	// No identifiers: split on time resets.
	var prev *float64
	for _, f := range frames {
		_, t := keyOf(f)
		newGroup := len(groups) == 0 || (t != nil && prev != nil && *t < *prev)
		if newGroup {
			groups = append(groups, frameGroup[F]{})
		}
		g := &groups[len(groups)-1]
		g.frames = append(g.frames, f)
		if t != nil {
			prev = t
		}
	}
	for i := range groups {
		groups[i].id = "movement_" + strconv.Itoa(i+1)
	}
	return groups
}

func bothHaveIDs(ik []frameGroup[domain.KinematicFrame], me []frameGroup[domain.EnergyFrame]) bool {
	return len(ik) > 0 && len(me) > 0 &&
		ik[0].frames[0].MovementID != "" && me[0].frames[0].MovementID != ""
}

// matchByID pairs groups sharing a movement identifier, in kinematics-side
// order. Groups whose identifier appears on only one side are dropped with
// a warning. Reports ok=false when the sides share no identifiers at all.
func matchByID(ik []frameGroup[domain.KinematicFrame], me []frameGroup[domain.EnergyFrame]) (MatchResult, bool) {
	meByID := make(map[string]frameGroup[domain.EnergyFrame], len(me))
	for _, g := range me {
		meByID[g.id] = g
	}

	var res MatchResult
	matchedME := make(map[string]bool, len(me))

	for _, g := range ik {
		eg, ok := meByID[g.id]
		if !ok {
			continue
		}
		matchedME[g.id] = true
		res.Swings = append(res.Swings, domain.MatchedSwing{
			MovementID:    g.id,
			Kinematics:    g.frames,
			Energy:        eg.frames,
			HasKinematics: true,
			HasEnergy:     true,
		})
	}

	if len(res.Swings) == 0 {
		return MatchResult{}, false
	}

	if len(res.Swings) < len(ik) || len(res.Swings) < len(me) {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"movement identifiers matched %d of %d kinematics and %d of %d energy groups; unmatched groups dropped",
			len(res.Swings), len(ik), len(res.Swings), len(me)))
	}
	return res, true
}

// matchByPosition pairs the Nth group on each side, truncating to the
// shorter side.
func matchByPosition(ik []frameGroup[domain.KinematicFrame], me []frameGroup[domain.EnergyFrame]) MatchResult {
	n := len(ik)
	if len(me) < n {
		n = len(me)
	}

	var res MatchResult
	for i := 0; i < n; i++ {
		id := ik[i].id
		if id == "" {
			id = me[i].id
		}
		res.Swings = append(res.Swings, domain.MatchedSwing{
			MovementID:    id,
			Kinematics:    ik[i].frames,
			Energy:        me[i].frames,
			HasKinematics: true,
			HasEnergy:     true,
		})
	}

	if len(ik) != len(me) {
		longer, side := len(ik), "kinematics"
		if len(me) > len(ik) {
			longer, side = len(me), "energy"
		}
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"paired %d of %d %s groups; %d trailing %s groups dropped",
			n, longer, side, longer-n, side))
	}
	return res
}

func kinematicsOnly(groups []frameGroup[domain.KinematicFrame]) MatchResult {
	var res MatchResult
	for _, g := range groups {
		res.Swings = append(res.Swings, domain.MatchedSwing{
			MovementID:    g.id,
			Kinematics:    g.frames,
			HasKinematics: true,
		})
	}
	return res
}

func energyOnly(groups []frameGroup[domain.EnergyFrame]) MatchResult {
	var res MatchResult
	for _, g := range groups {
		res.Swings = append(res.Swings, domain.MatchedSwing{
			MovementID: g.id,
			Energy:     g.frames,
			HasEnergy:  true,
		})
	}
	return res
}
