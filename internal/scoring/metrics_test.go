package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swinglab/pkg/contracts/domain"
)

func TestSummarizeKinematicsTakesPerSwingPeaks(t *testing.T) {
	swings := []domain.MatchedSwing{
		{
			HasKinematics: true,
			Kinematics: []domain.KinematicFrame{
				{PelvisAngularVelo: fptr(400)},
				{PelvisAngularVelo: fptr(650)}, // peak of swing one
				{PelvisAngularVelo: fptr(500)},
			},
		},
		{
			HasKinematics: true,
			Kinematics: []domain.KinematicFrame{
				{PelvisAngularVelo: fptr(550)}, // peak of swing two
			},
		},
	}

	sum := SummarizeKinematics(swings)

	require.NotNil(t, sum)
	assert.Equal(t, 2, sum.SwingCount)
	require.NotNil(t, sum.PelvisVelo)
	assert.InDelta(t, 600.0, *sum.PelvisVelo, 1e-9)
	assert.Nil(t, sum.TorsoVelo, "unmeasured metrics stay absent")
}

func TestSummarizeKinematicsNilWithoutData(t *testing.T) {
	assert.Nil(t, SummarizeKinematics(nil))
	assert.Nil(t, SummarizeKinematics([]domain.MatchedSwing{{HasEnergy: true}}))
}

func TestSummarizeEnergyTotalsAndSpread(t *testing.T) {
	swings := []domain.MatchedSwing{
		{
			HasEnergy: true,
			Energy: []domain.EnergyFrame{{
				PelvisEnergy: fptr(100),
				TorsoEnergy:  fptr(150),
				ArmEnergy:    fptr(80),
				BatEnergy:    fptr(240),
			}},
		},
		{
			HasEnergy: true,
			Energy: []domain.EnergyFrame{{
				PelvisEnergy: fptr(100),
				TorsoEnergy:  fptr(150),
				ArmEnergy:    fptr(80),
				BatEnergy:    fptr(260),
			}},
		},
	}

	sum := SummarizeEnergy(swings)

	require.NotNil(t, sum)
	assert.Equal(t, 2, sum.SwingCount)
	require.NotNil(t, sum.BatEnergy)
	assert.InDelta(t, 250.0, *sum.BatEnergy, 1e-9)
	require.NotNil(t, sum.TotalBodyEnergy)
	assert.InDelta(t, 580.0, *sum.TotalBodyEnergy, 1e-9)
	require.NotNil(t, sum.BatEnergyStdDev)
	assert.InDelta(t, 10.0, *sum.BatEnergyStdDev, 1e-9)
}

func TestSummarizeEnergySpreadNeedsTwoSwings(t *testing.T) {
	swings := []domain.MatchedSwing{
		{HasEnergy: true, Energy: []domain.EnergyFrame{{BatEnergy: fptr(240)}}},
	}

	sum := SummarizeEnergy(swings)

	require.NotNil(t, sum)
	assert.Nil(t, sum.BatEnergyStdDev)
}
