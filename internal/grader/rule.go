package grader

import (
	"net/http"
	"time"

	"github.com/Bahjat/website-grader/internal/model"
)

// Input is everything an analyzer may inspect. It is shared read-only by all
// analyzers of one request.
type Input struct {
	URL      string // normalized URL as requested
	FinalURL string // URL after redirects; empty when unknown
	Doc      Document
	HTML     string
	Headers  http.Header
	LoadTime time.Duration
}

// Outcome is one scored observation: a finding and the points it costs.
type Outcome struct {
	Penalty int
	Finding model.Finding
}

// Rule inspects the input and reports zero or more outcomes.
type Rule func(in *Input) []Outcome

// Analyzer scores one category by folding its rules in order.
type Analyzer struct {
	Category model.Category
	Rules    []Rule
}

// Run starts at 100, subtracts every outcome's penalty and collects findings in
// detection order.
func (a Analyzer) Run(in *Input) model.CategoryScore {
	score := 100
	findings := []model.Finding{}
	for _, rule := range a.Rules {
		for _, o := range rule(in) {
			score -= o.Penalty
			findings = append(findings, o.Finding)
		}
	}
	return model.NewCategoryScore(a.Category, score, findings)
}

// Analyzers returns the six category analyzers in report order.
func Analyzers() []Analyzer {
	return []Analyzer{
		SEOAnalyzer,
		PerformanceAnalyzer,
		MobileAnalyzer,
		SecurityAnalyzer,
		AccessibilityAnalyzer,
		UIUXAnalyzer,
	}
}

func pass(title, description string) Outcome {
	return Outcome{Finding: model.Finding{
		Type:        model.FindingSuccess,
		Title:       title,
		Description: description,
		Impact:      model.ImpactLow,
	}}
}

func warn(penalty int, impact model.Impact, title, description string) Outcome {
	return Outcome{Penalty: penalty, Finding: model.Finding{
		Type:        model.FindingWarning,
		Title:       title,
		Description: description,
		Impact:      impact,
	}}
}

func fail(penalty int, impact model.Impact, title, description string) Outcome {
	return Outcome{Penalty: penalty, Finding: model.Finding{
		Type:        model.FindingError,
		Title:       title,
		Description: description,
		Impact:      impact,
	}}
}

// withCode attaches a suggested markup snippet to the outcome's finding.
func withCode(o Outcome, code string) Outcome {
	o.Finding.Code = code
	return o
}

func one(o Outcome) []Outcome {
	return []Outcome{o}
}
