// Package kinetic projects a hitter's current exit-velocity capability and
// ceiling from the momentum-energy data and body size.
package kinetic

import (
	"math"

	"swinglab/internal/config"
	"swinglab/pkg/contracts/domain"
)

const lbsToKg = 0.45359237

// EnergyMetrics is the slice of the session's energy summary the projection
// consumes: per-swing peak averages plus the swing count behind them.
type EnergyMetrics struct {
	AvgBatEnergy       *float64 // joules
	AvgTotalBodyEnergy *float64 // joules
	TransferEfficiency *float64 // 0..1
	SwingCount         int
}

// Projector computes kinetic-potential estimates under a fixed constant set.
type Projector struct {
	cfg config.KineticConfig
}

// NewProjector builds a projector on the given constants.
func NewProjector(cfg config.KineticConfig) *Projector {
	return &Projector{cfg: cfg}
}

// Project estimates current and ceiling exit velocity. Returns nil when the
// session has no energy data to project from. Missing body size falls back
// to population defaults and is flagged in Warnings rather than refusing the
// projection.
func (p *Projector) Project(em EnergyMetrics, player domain.PlayerContext) *domain.KineticPotential {
	if em.AvgTotalBodyEnergy == nil && em.AvgBatEnergy == nil {
		return nil
	}

	var warnings []string

	weightLbs := p.cfg.DefaultWeightLbs
	if player.WeightLbs != nil {
		weightLbs = *player.WeightLbs
	} else {
		warnings = append(warnings, "player weight not supplied; projection uses population default")
	}
	heightIn := p.cfg.DefaultHeightInches
	if player.HeightInches != nil {
		heightIn = *player.HeightInches
	} else {
		warnings = append(warnings, "player height not supplied; projection uses population default")
	}

	totalEnergy := 0.0
	if em.AvgTotalBodyEnergy != nil {
		totalEnergy = *em.AvgTotalBodyEnergy
	} else {
		totalEnergy = *em.AvgBatEnergy
		warnings = append(warnings, "total body energy unavailable; projection uses bat energy only")
	}

	efficiency := 0.0
	if em.TransferEfficiency != nil {
		efficiency = clamp(*em.TransferEfficiency, 0, 1)
	} else if em.AvgBatEnergy != nil && totalEnergy > 0 {
		efficiency = clamp(*em.AvgBatEnergy/totalEnergy, 0, 1)
	}

	if em.SwingCount < p.cfg.MinSwings {
		warnings = append(warnings, "fewer swings than the projection confidence floor")
	}

	massKg := weightLbs * lbsToKg
	massAdjusted := totalEnergy / massKg
	leverIndex := 1 + (heightIn-p.cfg.LeverNeutralIn)*p.cfg.LeverPerInch

	current := (p.cfg.BaselineMph + p.cfg.EnergyScale*math.Sqrt(massAdjusted)*efficiency) * leverIndex
	current = clamp(current, p.cfg.MinMph, p.cfg.MaxMph)

	ceilingEff := math.Min(1, efficiency*p.cfg.EfficiencyUplift)
	ceiling := (p.cfg.BaselineMph + p.cfg.EnergyScale*math.Sqrt(massAdjusted)*ceilingEff) * leverIndex
	ceiling = clamp(ceiling, p.cfg.MinMph, p.cfg.MaxMph)

	left := ceiling - current
	if left < 0 {
		left = 0
	}

	return &domain.KineticPotential{
		CurrentEstimateMph: current,
		CeilingMph:         ceiling,
		MphLeftOnTable:     left,
		MassAdjustedEnergy: massAdjusted,
		LeverIndex:         leverIndex,
		EfficiencyRatio:    efficiency,
		Warnings:           warnings,
	}
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
