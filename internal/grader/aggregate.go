package grader

import (
	"math"

	"github.com/Bahjat/website-grader/internal/model"
)

// Aggregate combines category scores into the weighted overall score and its
// letter grade: round(Σ score·weight / Σ weight).
func Aggregate(scores map[model.Category]model.CategoryScore) (int, string) {
	var weighted, total int
	for c, cs := range scores {
		w := model.WeightPoints(c)
		weighted += cs.Score * w
		total += w
	}
	if total == 0 {
		return 0, model.GradeFor(0)
	}

	overall := int(math.Round(float64(weighted) / float64(total)))
	return overall, model.GradeFor(overall)
}
