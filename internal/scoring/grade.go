package scoring

import "swinglab/pkg/contracts/domain"

// gradeLadder maps composite floors to grades, best first. Floors are
// inclusive: exactly 80.0 is Plus-Plus.
var gradeLadder = []struct {
	floor float64
	grade domain.Grade
}{
	{80, domain.GradePlusPlus},
	{70, domain.GradePlus},
	{60, domain.GradeAboveAverage},
	{50, domain.GradeAverage},
	{40, domain.GradeBelowAverage},
}

// GradeFor maps a composite score onto the grade ladder.
func GradeFor(composite float64) domain.Grade {
	for _, step := range gradeLadder {
		if composite >= step.floor {
			return step.grade
		}
	}
	return domain.GradeNeedsDevelopment
}

// weakestCategory picks the strictly lowest-scoring category among those
// scored. Ties resolve by the fixed category order, so repeated runs over
// the same data always name the same category.
func weakestCategory(per map[domain.Category]domain.ScoreComponents) domain.Category {
	var (
		weakest domain.Category
		low     float64
		found   bool
	)
	for _, cat := range domain.Categories {
		sc, ok := per[cat]
		if !ok {
			continue
		}
		if !found || sc.Score < low {
			weakest, low, found = cat, sc.Score, true
		}
	}
	return weakest
}
