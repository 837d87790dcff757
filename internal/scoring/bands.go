package scoring

// Direction says which way a band table reads its raw metric.
type Direction int

const (
	// LowerIsBetter tables award the band whose limit the value stays at or
	// under (strikeout rate, chase rate, variability).
	LowerIsBetter Direction = iota
	// HigherIsBetter tables award the band whose limit the value reaches
	// (walk rate, exit velocity, rotational speed).
	HigherIsBetter
)

// Band is one threshold step: values on the qualifying side of Limit earn
// Score.
type Band struct {
	Limit float64
	Score float64
}

// BandTable is a monotone step function from a raw metric to a 0-100
// sub-score. Bands must be ordered best-first (ascending limits for
// lower-is-better, descending for higher-is-better); Default is the score
// for values that qualify for no band.
type BandTable struct {
	Direction Direction
	Bands     []Band
	Default   float64
}

// Score maps a raw metric value onto the table.
func (t BandTable) Score(v float64) float64 {
	for _, b := range t.Bands {
		if t.Direction == LowerIsBetter && v <= b.Limit {
			return b.Score
		}
		if t.Direction == HigherIsBetter && v >= b.Limit {
			return b.Score
		}
	}
	return t.Default
}

// Bands holds every sub-metric band table the engine evaluates. The limits
// are domain-typical reference values owned by the coaching staff; changing
// a band is a data change here, never a code change in the engine.
type Bands struct {
	// Brain
	KRate           BandTable
	WalkRate        BandTable
	ChaseRate       BandTable
	ContactRate     BandTable
	DisciplineRatio BandTable

	// Body
	PelvisVelo     BandTable
	TorsoVelo      BandTable
	HipShoulderSep BandTable
	LeadKneeExt    BandTable
	PostureSway    BandTable

	// Bat
	BatSpeed           BandTable
	TransferEfficiency BandTable
	BatEnergy          BandTable
	SwingVariability   BandTable

	// Ball
	AvgExitVelo       BandTable
	MaxExitVelo       BandTable
	BarrelRate        BandTable
	OptimalLaunchRate BandTable
	HardHitRate       BandTable

	// Consistency
	ExitVeloSpread BandTable
}

// DefaultBands returns the current reference thresholds.
func DefaultBands() Bands {
	return Bands{
		KRate: BandTable{LowerIsBetter, []Band{
			{15, 90}, {18, 80}, {22, 65}, {26, 50},
		}, 35},
		WalkRate: BandTable{HigherIsBetter, []Band{
			{12, 90}, {9, 80}, {6, 65}, {4, 50},
		}, 35},
		ChaseRate: BandTable{LowerIsBetter, []Band{
			{20, 90}, {25, 80}, {30, 65}, {35, 50},
		}, 35},
		ContactRate: BandTable{HigherIsBetter, []Band{
			{88, 90}, {82, 80}, {76, 65}, {70, 50},
		}, 35},
		DisciplineRatio: BandTable{HigherIsBetter, []Band{
			{0.75, 90}, {0.60, 80}, {0.45, 65}, {0.30, 50},
		}, 35},

		PelvisVelo: BandTable{HigherIsBetter, []Band{
			{700, 95}, {600, 85}, {500, 70}, {400, 55},
		}, 40},
		TorsoVelo: BandTable{HigherIsBetter, []Band{
			{950, 95}, {850, 85}, {750, 70}, {650, 55},
		}, 40},
		HipShoulderSep: BandTable{HigherIsBetter, []Band{
			{40, 95}, {32, 85}, {25, 70}, {18, 55},
		}, 40},
		LeadKneeExt: BandTable{HigherIsBetter, []Band{
			{450, 90}, {350, 80}, {250, 65}, {150, 50},
		}, 35},
		PostureSway: BandTable{LowerIsBetter, []Band{
			{4, 90}, {7, 80}, {10, 65}, {14, 50},
		}, 35},

		BatSpeed: BandTable{HigherIsBetter, []Band{
			{75, 95}, {70, 85}, {65, 70}, {60, 55},
		}, 40},
		TransferEfficiency: BandTable{HigherIsBetter, []Band{
			{0.80, 95}, {0.70, 85}, {0.60, 70}, {0.50, 55},
		}, 40},
		BatEnergy: BandTable{HigherIsBetter, []Band{
			{280, 90}, {230, 80}, {180, 65}, {130, 50},
		}, 35},
		SwingVariability: BandTable{LowerIsBetter, []Band{
			{15, 90}, {25, 80}, {40, 65}, {60, 50},
		}, 35},

		AvgExitVelo: BandTable{HigherIsBetter, []Band{
			{90, 95}, {85, 85}, {80, 70}, {74, 55},
		}, 40},
		MaxExitVelo: BandTable{HigherIsBetter, []Band{
			{100, 95}, {95, 85}, {90, 70}, {84, 55},
		}, 40},
		BarrelRate: BandTable{HigherIsBetter, []Band{
			{12, 95}, {8, 85}, {5, 70}, {2, 55},
		}, 40},
		OptimalLaunchRate: BandTable{HigherIsBetter, []Band{
			{40, 90}, {30, 80}, {22, 65}, {15, 50},
		}, 35},
		HardHitRate: BandTable{HigherIsBetter, []Band{
			{45, 95}, {35, 85}, {25, 70}, {15, 55},
		}, 40},

		ExitVeloSpread: BandTable{LowerIsBetter, []Band{
			{4, 90}, {6, 80}, {9, 65}, {12, 50},
		}, 35},
	}
}
