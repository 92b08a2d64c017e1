package model

// Letter grades, best first.
const (
	GradeAPlus = "A+"
	GradeA     = "A"
	GradeBPlus = "B+"
	GradeB     = "B"
	GradeC     = "C"
	GradeD     = "D"
	GradeF     = "F"
)

// gradeThresholds are inclusive lower bounds, evaluated top-down.
var gradeThresholds = []struct {
	min   int
	grade string
}{
	{95, GradeAPlus},
	{85, GradeA},
	{75, GradeBPlus},
	{65, GradeB},
	{50, GradeC},
	{35, GradeD},
}

// GradeFor maps a 0-100 score to its letter grade.
func GradeFor(score int) string {
	for _, t := range gradeThresholds {
		if score >= t.min {
			return t.grade
		}
	}
	return GradeF
}

// GradeColor returns the display color a UI should use for grade.
// It has no effect on scoring.
func GradeColor(grade string) string {
	switch grade {
	case GradeAPlus, GradeA:
		return "green"
	case GradeBPlus, GradeB:
		return "blue"
	case GradeC:
		return "orange"
	case GradeD, GradeF:
		return "red"
	default:
		return "gray"
	}
}
