package scoring

import (
	"math"

	"swinglab/pkg/contracts/domain"
)

// KinematicSummary is the session-level reduction of the IK frame data: for
// each metric, the per-swing peak is taken over a movement's frames, then
// peaks are averaged across swings. Fields are nil when no frame in the
// session carried the measurement.
type KinematicSummary struct {
	SwingCount int

	PelvisVelo     *float64
	TorsoVelo      *float64
	HipShoulderSep *float64
	LeadKneeExt    *float64
	PostureTilt    *float64
}

// EnergySummary is the session-level reduction of the ME frame data, built
// the same way as KinematicSummary. BatEnergyStdDev is the spread of the
// per-swing bat-energy peaks and needs at least two swings.
type EnergySummary struct {
	SwingCount int

	BatEnergy          *float64
	TotalBodyEnergy    *float64
	TransferEfficiency *float64
	PeakBatPower       *float64
	BatSpeedMph        *float64

	BatEnergyStdDev *float64
}

// SummarizeKinematics reduces the kinematics side of the matched swings.
// Returns nil when no swing carries kinematics frames.
func SummarizeKinematics(swings []domain.MatchedSwing) *KinematicSummary {
	var (
		sum    KinematicSummary
		pelvis perSwingMean
		torso  perSwingMean
		sep    perSwingMean
		knee   perSwingMean
		tilt   perSwingMean
	)

	for _, s := range swings {
		if !s.HasKinematics {
			continue
		}
		sum.SwingCount++
		pelvis.add(peakOver(s.Kinematics, func(f domain.KinematicFrame) *float64 { return f.PelvisAngularVelo }))
		torso.add(peakOver(s.Kinematics, func(f domain.KinematicFrame) *float64 { return f.TorsoAngularVelo }))
		sep.add(peakOver(s.Kinematics, func(f domain.KinematicFrame) *float64 { return f.HipShoulderSeparation }))
		knee.add(peakOver(s.Kinematics, func(f domain.KinematicFrame) *float64 { return f.LeadKneeExtensionVelo }))
		tilt.add(peakOver(s.Kinematics, func(f domain.KinematicFrame) *float64 { return f.PostureTilt }))
	}

	if sum.SwingCount == 0 {
		return nil
	}
	sum.PelvisVelo = pelvis.value()
	sum.TorsoVelo = torso.value()
	sum.HipShoulderSep = sep.value()
	sum.LeadKneeExt = knee.value()
	sum.PostureTilt = tilt.value()
	return &sum
}

// SummarizeEnergy reduces the energy side of the matched swings. Returns nil
// when no swing carries energy frames.
func SummarizeEnergy(swings []domain.MatchedSwing) *EnergySummary {
	var (
		sum   EnergySummary
		bat   perSwingMean
		body  perSwingMean
		eff   perSwingMean
		power perSwingMean
		speed perSwingMean
	)

	for _, s := range swings {
		if !s.HasEnergy {
			continue
		}
		sum.SwingCount++
		bat.add(peakOver(s.Energy, func(f domain.EnergyFrame) *float64 { return f.BatEnergy }))
		body.add(peakOver(s.Energy, totalBodyEnergy))
		eff.add(peakOver(s.Energy, func(f domain.EnergyFrame) *float64 { return f.TransferEfficiency }))
		power.add(peakOver(s.Energy, func(f domain.EnergyFrame) *float64 { return f.PeakBatPower }))
		speed.add(peakOver(s.Energy, func(f domain.EnergyFrame) *float64 { return f.BatSpeedMph }))
	}

	if sum.SwingCount == 0 {
		return nil
	}
	sum.BatEnergy = bat.value()
	sum.TotalBodyEnergy = body.value()
	sum.TransferEfficiency = eff.value()
	sum.PeakBatPower = power.value()
	sum.BatSpeedMph = speed.value()
	sum.BatEnergyStdDev = bat.spread()
	return &sum
}

// totalBodyEnergy sums the segment energies present on a frame. Nil when the
// frame carries none of them.
func totalBodyEnergy(f domain.EnergyFrame) *float64 {
	total, any := 0.0, false
	for _, e := range []*float64{f.PelvisEnergy, f.TorsoEnergy, f.ArmEnergy, f.BatEnergy} {
		if e != nil {
			total += *e
			any = true
		}
	}
	if !any {
		return nil
	}
	return &total
}

// peakOver returns the maximum of a metric over a movement's frames, or nil
// when no frame carries it.
func peakOver[F any](frames []F, metric func(F) *float64) *float64 {
	var peak *float64
	for _, f := range frames {
		v := metric(f)
		if v == nil {
			continue
		}
		if peak == nil || *v > *peak {
			val := *v
			peak = &val
		}
	}
	return peak
}

// perSwingMean accumulates one per-swing peak series. A swing whose frames
// all lack the metric contributes nothing.
type perSwingMean struct {
	vals []float64
}

func (m *perSwingMean) add(v *float64) {
	if v != nil {
		m.vals = append(m.vals, *v)
	}
}

func (m *perSwingMean) value() *float64 {
	if len(m.vals) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range m.vals {
		sum += v
	}
	mean := sum / float64(len(m.vals))
	return &mean
}

func (m *perSwingMean) spread() *float64 {
	if len(m.vals) < 2 {
		return nil
	}
	mean := *m.value()
	sum := 0.0
	for _, v := range m.vals {
		sum += (v - mean) * (v - mean)
	}
	sd := math.Sqrt(sum / float64(len(m.vals)))
	return &sd
}
