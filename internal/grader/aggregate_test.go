package grader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bahjat/website-grader/internal/model"
)

func uniformScores(score int) map[model.Category]model.CategoryScore {
	out := map[model.Category]model.CategoryScore{}
	for _, c := range model.Categories {
		out[c] = model.NewCategoryScore(c, score, nil)
	}
	return out
}

func TestAggregate_Uniform(t *testing.T) {
	for _, s := range []int{0, 35, 50, 64, 95, 100} {
		overall, grade := Aggregate(uniformScores(s))
		assert.Equal(t, s, overall)
		assert.Equal(t, model.GradeFor(s), grade)
	}
}

func TestAggregate_Weighted(t *testing.T) {
	scores := uniformScores(100)
	scores[model.CategorySEO] = model.NewCategoryScore(model.CategorySEO, 70, nil)
	scores[model.CategorySecurity] = model.NewCategoryScore(model.CategorySecurity, 50, nil)

	// (70*20 + 100*20 + 100*15 + 50*15 + 100*15 + 100*15) / 100 = 86.5 -> 87
	overall, grade := Aggregate(scores)
	assert.Equal(t, 87, overall)
	assert.Equal(t, model.GradeA, grade)
}

func TestAggregate_RoundsHalfUp(t *testing.T) {
	scores := uniformScores(0)
	// 3*20 / 100 = 0.6 -> 1
	scores[model.CategorySEO] = model.NewCategoryScore(model.CategorySEO, 3, nil)
	overall, _ := Aggregate(scores)
	assert.Equal(t, 1, overall)

	// 15*10 / 100 = 1.5 -> 2
	scores = uniformScores(0)
	scores[model.CategoryMobile] = model.NewCategoryScore(model.CategoryMobile, 10, nil)
	overall, _ = Aggregate(scores)
	assert.Equal(t, 2, overall)
}

func TestAggregate_Bounds(t *testing.T) {
	for a := 0; a <= 100; a += 7 {
		for b := 0; b <= 100; b += 13 {
			scores := uniformScores(a)
			scores[model.CategoryPerformance] = model.NewCategoryScore(model.CategoryPerformance, b, nil)
			overall, _ := Aggregate(scores)
			assert.GreaterOrEqual(t, overall, 0)
			assert.LessOrEqual(t, overall, 100)
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	overall, grade := Aggregate(nil)
	assert.Equal(t, 0, overall)
	assert.Equal(t, model.GradeF, grade)
}
