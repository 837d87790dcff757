package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swinglab/internal/config"
	"swinglab/pkg/contracts/domain"
)

func fptr(v float64) *float64 { return &v }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(config.Default().Scoring, nil)
}

// fullSwing builds one matched swing with elite kinematics and energy values.
func fullSwing(id string) domain.MatchedSwing {
	return domain.MatchedSwing{
		MovementID: id,
		Kinematics: []domain.KinematicFrame{{
			MovementID:            id,
			PelvisAngularVelo:     fptr(700),
			TorsoAngularVelo:      fptr(950),
			HipShoulderSeparation: fptr(40),
			LeadKneeExtensionVelo: fptr(450),
			PostureTilt:           fptr(4),
		}},
		Energy: []domain.EnergyFrame{{
			MovementID:         id,
			BatEnergy:          fptr(280),
			TransferEfficiency: fptr(0.8),
			BatSpeedMph:        fptr(75),
		}},
		HasKinematics: true,
		HasEnergy:     true,
	}
}

func eliteDiscipline() *domain.DisciplineMetrics {
	return &domain.DisciplineMetrics{
		StrikeoutRate:   15,
		WalkRate:        12,
		ChaseRate:       20,
		ContactRate:     88,
		DisciplineRatio: 0.8,
	}
}

func eliteSession() *domain.SessionStats {
	return &domain.SessionStats{
		TotalSwings:        12,
		BallsInPlay:        10,
		AvgExitVelo:        fptr(90),
		MaxExitVelo:        fptr(100),
		Barrels:            2,
		OptimalWindowCount: 4,
		Count90Plus:        5,
	}
}

func TestScoreFullInput(t *testing.T) {
	e := newTestEngine(t)

	out := e.Score(Input{
		Matched:    []domain.MatchedSwing{fullSwing("sw_1"), fullSwing("sw_2")},
		Session:    eliteSession(),
		Discipline: eliteDiscipline(),
	})

	require.Len(t, out.PerCategory, 4)

	brain, ok := out.CategoryScore(domain.CategoryBrain)
	require.True(t, ok)
	assert.InDelta(t, 90.0, brain, 1e-9)

	body, ok := out.CategoryScore(domain.CategoryBody)
	require.True(t, ok)
	assert.InDelta(t, 93.5, body, 1e-9)

	bat, ok := out.CategoryScore(domain.CategoryBat)
	require.True(t, ok)
	assert.InDelta(t, 93.0, bat, 1e-9)

	ball, ok := out.CategoryScore(domain.CategoryBall)
	require.True(t, ok)
	assert.InDelta(t, 94.25, ball, 1e-9)

	require.NotNil(t, out.Composite)
	assert.InDelta(t, 92.7625, *out.Composite, 1e-9)
	assert.Equal(t, domain.GradePlusPlus, out.Grade)
	assert.Equal(t, domain.CategoryBrain, out.WeakestCategory)
}

func TestScoreBrainSubComponents(t *testing.T) {
	e := newTestEngine(t)

	out := e.Score(Input{Discipline: eliteDiscipline()})

	brain := out.PerCategory[domain.CategoryBrain]
	require.Len(t, brain.Components, 5)
	assert.Equal(t, 15.0, brain.Components["strikeout_rate"].Raw)
	assert.Equal(t, 90.0, brain.Components["strikeout_rate"].Score)
	assert.Equal(t, 0.25, brain.Components["strikeout_rate"].Weight)
}

func TestScoreMissingEnergyOmitsBatAndComposite(t *testing.T) {
	e := newTestEngine(t)

	swing := fullSwing("sw_1")
	swing.Energy = nil
	swing.HasEnergy = false

	out := e.Score(Input{
		Matched:    []domain.MatchedSwing{swing},
		Session:    eliteSession(),
		Discipline: eliteDiscipline(),
	})

	_, ok := out.CategoryScore(domain.CategoryBat)
	assert.False(t, ok)
	assert.Nil(t, out.Composite)
	assert.Empty(t, out.Grade)
	assert.Contains(t, out.Warnings, "bat not scored: no energy-transfer data")
}

func TestScoreNoInputs(t *testing.T) {
	e := newTestEngine(t)

	out := e.Score(Input{})

	assert.Empty(t, out.PerCategory)
	assert.Nil(t, out.Composite)
	assert.Nil(t, out.MotorProfile)
	assert.Empty(t, out.WeakestCategory)
	assert.Len(t, out.Warnings, 5)
}

func TestScoreDeterministic(t *testing.T) {
	e := newTestEngine(t)
	in := Input{
		Matched:    []domain.MatchedSwing{fullSwing("sw_1"), fullSwing("sw_2")},
		Session:    eliteSession(),
		Discipline: eliteDiscipline(),
	}

	first := e.Score(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Score(in))
	}
}

func TestWeightRenormalizationOnPartialKinematics(t *testing.T) {
	e := newTestEngine(t)

	// Only pelvis velocity was captured; the category scores on that alone
	// instead of averaging in zeros.
	swing := domain.MatchedSwing{
		MovementID: "sw_1",
		Kinematics: []domain.KinematicFrame{{
			MovementID:        "sw_1",
			PelvisAngularVelo: fptr(700),
		}},
		HasKinematics: true,
	}

	out := e.Score(Input{Matched: []domain.MatchedSwing{swing}})

	body := out.PerCategory[domain.CategoryBody]
	require.Len(t, body.Components, 1)
	assert.InDelta(t, 95.0, body.Score, 1e-9)
}

func TestGradeLadder(t *testing.T) {
	tests := []struct {
		composite float64
		want      domain.Grade
	}{
		{100, domain.GradePlusPlus},
		{80, domain.GradePlusPlus},
		{79.99, domain.GradePlus},
		{70, domain.GradePlus},
		{69.99, domain.GradeAboveAverage},
		{60, domain.GradeAboveAverage},
		{59.99, domain.GradeAverage},
		{50, domain.GradeAverage},
		{49.99, domain.GradeBelowAverage},
		{40, domain.GradeBelowAverage},
		{39.99, domain.GradeNeedsDevelopment},
		{0, domain.GradeNeedsDevelopment},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.composite), "composite %.2f", tt.composite)
	}
}

func TestWeakestCategoryTieBreaksByOrder(t *testing.T) {
	per := map[domain.Category]domain.ScoreComponents{
		domain.CategoryBrain: {Score: 50},
		domain.CategoryBody:  {Score: 50},
		domain.CategoryBat:   {Score: 70},
		domain.CategoryBall:  {Score: 80},
	}
	assert.Equal(t, domain.CategoryBrain, weakestCategory(per))

	per[domain.CategoryBall] = domain.ScoreComponents{Score: 30}
	assert.Equal(t, domain.CategoryBall, weakestCategory(per))
}

func TestBandTableDirections(t *testing.T) {
	bands := DefaultBands()

	// Lower is better: strikeout rate.
	assert.Equal(t, 90.0, bands.KRate.Score(15))
	assert.Equal(t, 80.0, bands.KRate.Score(15.01))
	assert.Equal(t, 35.0, bands.KRate.Score(40))

	// Higher is better: walk rate.
	assert.Equal(t, 90.0, bands.WalkRate.Score(12))
	assert.Equal(t, 80.0, bands.WalkRate.Score(11.99))
	assert.Equal(t, 35.0, bands.WalkRate.Score(1))
}

func TestConsistencyFromSession(t *testing.T) {
	e := newTestEngine(t)

	session := eliteSession()
	session.ExitVeloStdDev = fptr(3.5)

	out := e.Score(Input{Session: session})

	require.NotNil(t, out.Consistency.ExitVeloStdDev)
	assert.Equal(t, 3.5, *out.Consistency.ExitVeloStdDev)
	require.NotNil(t, out.Consistency.Score)
	assert.Equal(t, 90.0, *out.Consistency.Score)
}
