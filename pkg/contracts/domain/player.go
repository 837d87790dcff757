package domain

// PlayerContext carries the optional player attributes supplied by the
// caller. Absence of any field never prevents scoring; size-dependent
// metrics fall back to population defaults and are flagged lower confidence.
type PlayerContext struct {
	HeightInches *float64 `json:"height_inches,omitempty" validate:"omitempty,gte=48,lte=90"`
	WeightLbs    *float64 `json:"weight_lbs,omitempty" validate:"omitempty,gte=60,lte=400"`
	DominantHand string   `json:"dominant_hand,omitempty" validate:"omitempty,oneof=left right switch"`
	Level        string   `json:"level,omitempty" validate:"omitempty,oneof=youth high_school college pro"`
}

// DisciplineMetrics are the plate-discipline rates behind the Brain
// category. They come from game data the caller supplies, not from any
// device export. Rates are percentages except DisciplineRatio (0..1).
type DisciplineMetrics struct {
	StrikeoutRate   float64 `json:"strikeout_rate" validate:"gte=0,lte=100"`
	WalkRate        float64 `json:"walk_rate" validate:"gte=0,lte=100"`
	ChaseRate       float64 `json:"chase_rate" validate:"gte=0,lte=100"`
	ContactRate     float64 `json:"contact_rate" validate:"gte=0,lte=100"`
	DisciplineRatio float64 `json:"discipline_ratio" validate:"gte=0,lte=1"`
}
