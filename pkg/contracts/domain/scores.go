package domain

// Category is one of the four 4B scoring categories.
type Category string

const (
	CategoryBrain Category = "brain"
	CategoryBody  Category = "body"
	CategoryBat   Category = "bat"
	CategoryBall  Category = "ball"
)

// Categories lists the four categories in their fixed priority order, used
// for deterministic weakest-link tie-breaking.
var Categories = []Category{CategoryBrain, CategoryBody, CategoryBat, CategoryBall}

// Grade is the letter-grade tier a composite score maps onto.
type Grade string

const (
	GradePlusPlus         Grade = "Plus-Plus"
	GradePlus             Grade = "Plus"
	GradeAboveAverage     Grade = "Above Average"
	GradeAverage          Grade = "Average"
	GradeBelowAverage     Grade = "Below Average"
	GradeNeedsDevelopment Grade = "Needs Development"
)

// SubScore is one named sub-component of a category score: the raw metric it
// was evaluated from, the 0-100 score the band table assigned, and the fixed
// weight used to combine it into the category score.
type SubScore struct {
	Raw    float64 `json:"raw"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// ScoreComponents is a category's 0-100 score plus its sub-component
// breakdown.
type ScoreComponents struct {
	Score      float64             `json:"score"`
	Components map[string]SubScore `json:"components"`
}

// MotorProfileLabel is a coarse power-generation style classification.
type MotorProfileLabel string

const (
	ProfileSpinner      MotorProfileLabel = "spinner"
	ProfileWhipper      MotorProfileLabel = "whipper"
	ProfileSlingshotter MotorProfileLabel = "slingshotter"
	ProfileTitan        MotorProfileLabel = "titan"
)

// MotorProfile is the outcome of the motor-profile vote. Secondary is the
// runner-up label, retained as context but never the primary result.
type MotorProfile struct {
	Label           MotorProfileLabel `json:"label"`
	Secondary       MotorProfileLabel `json:"secondary,omitempty"`
	Confidence      Confidence        `json:"confidence"`
	Characteristics []string          `json:"characteristics,omitempty"`
}

// KineticPotential is the projector's current-vs-ceiling power estimate.
// Warnings flag defaulted body size or thin energy data; the projection is
// still returned in those cases.
type KineticPotential struct {
	CurrentEstimateMph float64  `json:"current_estimate_mph"`
	CeilingMph         float64  `json:"ceiling_mph"`
	MphLeftOnTable     float64  `json:"mph_left_on_table"`
	MassAdjustedEnergy float64  `json:"mass_adjusted_energy"` // J/kg
	LeverIndex         float64  `json:"lever_index"`
	EfficiencyRatio    float64  `json:"efficiency_ratio"` // 0..1
	Warnings           []string `json:"warnings,omitempty"`
}

// Consistency holds swing-to-swing variability metrics.
type Consistency struct {
	ExitVeloStdDev  *float64 `json:"exit_velo_std_dev,omitempty"`
	BatEnergyStdDev *float64 `json:"bat_energy_std_dev,omitempty"`
	Score           *float64 `json:"score,omitempty"`
}

// RebootScores is the scoring engine's output for one scoring run. It is
// built once from immutable inputs; a new run produces an entirely new
// value.
//
// PerCategory holds only the categories whose inputs were available.
// Composite (the KRS) and Grade are present only when all four categories
// could be scored; otherwise Warnings explains what was missing.
type RebootScores struct {
	PerCategory map[Category]ScoreComponents `json:"per_category"`

	Composite *float64 `json:"composite,omitempty"`
	Grade     Grade    `json:"grade,omitempty"`

	WeakestCategory Category `json:"weakest_category,omitempty"`

	MotorProfile *MotorProfile `json:"motor_profile,omitempty"`
	Consistency  Consistency   `json:"consistency"`

	KineticPotential *KineticPotential `json:"kinetic_potential,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// CategoryScore returns the named category score and whether it was scored.
func (r RebootScores) CategoryScore(c Category) (float64, bool) {
	sc, ok := r.PerCategory[c]
	return sc.Score, ok
}
