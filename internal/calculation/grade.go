package calculation

import "github.com/lifeplan/planner/internal/domain"

// gradeThresholds is ordered from the highest bar down; the first threshold
// the readiness percent reaches wins.
var gradeThresholds = []struct {
	minPercent int
	grade      domain.Grade
}{
	{100, domain.GradeA},
	{80, domain.GradeB},
	{60, domain.GradeC},
	{40, domain.GradeD},
}

// GradeFor maps a whole readiness percent to its letter grade.
func GradeFor(percent int) domain.Grade {
	for _, t := range gradeThresholds {
		if percent >= t.minPercent {
			return t.grade
		}
	}
	return domain.GradeF
}
