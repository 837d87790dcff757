package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swinglab/internal/config"
	"swinglab/pkg/contracts/domain"
)

func TestMotorProfileWhipper(t *testing.T) {
	e := newTestEngine(t)

	// Large separation, efficient transfer, fast torso: a sequencing-driven
	// swing.
	out := e.Score(Input{
		Matched:    []domain.MatchedSwing{fullSwing("sw_1"), fullSwing("sw_2")},
		Session:    eliteSession(),
		Discipline: eliteDiscipline(),
	})

	require.NotNil(t, out.MotorProfile)
	assert.Equal(t, domain.ProfileWhipper, out.MotorProfile.Label)
	assert.Equal(t, domain.ConfidenceHigh, out.MotorProfile.Confidence)
	assert.NotEmpty(t, out.MotorProfile.Characteristics)
	assert.NotEqual(t, out.MotorProfile.Label, out.MotorProfile.Secondary)
}

func TestMotorProfileTitan(t *testing.T) {
	e := newTestEngine(t)

	swing := domain.MatchedSwing{
		MovementID: "sw_1",
		Energy: []domain.EnergyFrame{{
			MovementID:         "sw_1",
			BatEnergy:          fptr(300),
			TransferEfficiency: fptr(0.55),
		}},
		HasEnergy: true,
	}
	session := &domain.SessionStats{
		BallsInPlay: 8,
		GroundBalls: 4,
		MaxExitVelo: fptr(102),
	}

	out := e.Score(Input{
		Matched: []domain.MatchedSwing{swing},
		Session: session,
		Player:  domain.PlayerContext{WeightLbs: fptr(215)},
	})

	require.NotNil(t, out.MotorProfile)
	// Bat energy (3) + top-end velocity (2) + modest efficiency (1) +
	// heavy frame (2) = 8 points.
	assert.Equal(t, domain.ProfileTitan, out.MotorProfile.Label)
	assert.Equal(t, domain.ConfidenceHigh, out.MotorProfile.Confidence)
}

func TestMotorProfileSpinner(t *testing.T) {
	e := newTestEngine(t)

	swing := domain.MatchedSwing{
		MovementID: "sw_1",
		Kinematics: []domain.KinematicFrame{{
			MovementID:        "sw_1",
			PelvisAngularVelo: fptr(650),
			TorsoAngularVelo:  fptr(700),
		}},
		HasKinematics: true,
	}
	session := &domain.SessionStats{
		BallsInPlay:    10,
		GroundBalls:    1,
		ExitVeloStdDev: fptr(7.5),
	}

	out := e.Score(Input{
		Matched: []domain.MatchedSwing{swing},
		Session: session,
	})

	require.NotNil(t, out.MotorProfile)
	// Pelvis velocity (2) + velocity spread (2) + air-ball tendency (1).
	assert.Equal(t, domain.ProfileSpinner, out.MotorProfile.Label)
	assert.Equal(t, domain.ConfidenceMedium, out.MotorProfile.Confidence)
}

func TestMotorProfileNoEvidence(t *testing.T) {
	e := newTestEngine(t)

	out := e.Score(Input{
		Session:    eliteSession(),
		Discipline: eliteDiscipline(),
	})

	assert.Nil(t, out.MotorProfile, "profile needs motion-capture data")
}

func TestProfileConfidenceThresholds(t *testing.T) {
	e := NewEngine(config.Default().Scoring, nil)

	assert.Equal(t, domain.ConfidenceHigh, e.profileConfidence(6))
	assert.Equal(t, domain.ConfidenceMedium, e.profileConfidence(4))
	assert.Equal(t, domain.ConfidenceLow, e.profileConfidence(3))
}
