package model

import "time"

// Category identifies one of the six independent analysis dimensions.
type Category string

const (
	CategorySEO           Category = "seo"
	CategoryPerformance   Category = "performance"
	CategoryMobile        Category = "mobile"
	CategorySecurity      Category = "security"
	CategoryAccessibility Category = "accessibility"
	CategoryUIUX          Category = "uiux"
)

// Categories lists every category in report order.
var Categories = []Category{
	CategorySEO,
	CategoryPerformance,
	CategoryMobile,
	CategorySecurity,
	CategoryAccessibility,
	CategoryUIUX,
}

// categoryWeights holds each category's weight in basis points of the overall
// score. Integer points keep the weighted average exact; they sum to 100.
var categoryWeights = map[Category]int{
	CategorySEO:           20,
	CategoryPerformance:   20,
	CategoryMobile:        15,
	CategorySecurity:      15,
	CategoryAccessibility: 15,
	CategoryUIUX:          15,
}

// WeightPoints returns the category weight in hundredths. Unknown categories weigh 0.
func WeightPoints(c Category) int {
	return categoryWeights[c]
}

// Weight returns the category weight as a fraction of 1.
func Weight(c Category) float64 {
	return float64(categoryWeights[c]) / 100
}

// FindingType classifies a finding as a pass, a warning, or an issue.
type FindingType string

const (
	FindingSuccess FindingType = "success"
	FindingWarning FindingType = "warning"
	FindingError   FindingType = "error"
)

// Impact describes how much a finding matters to the page's quality.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Finding is a single detected fact about the analyzed page.
type Finding struct {
	Type        FindingType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Impact      Impact      `json:"impact"`
	Code        string      `json:"code,omitempty"`
}

// CategoryScore is the outcome of one category analyzer.
type CategoryScore struct {
	Score           int       `json:"score"`
	Grade           string    `json:"grade"`
	Findings        []Finding `json:"findings"`
	Recommendations []string  `json:"recommendations"`
	Weight          float64   `json:"weight"`
}

// NewCategoryScore clamps score to [0, 100] and derives the grade, the weight and
// the recommendations (descriptions of non-success findings, in finding order).
func NewCategoryScore(c Category, score int, findings []Finding) CategoryScore {
	score = max(0, min(100, score))

	if findings == nil {
		findings = []Finding{}
	}
	recommendations := []string{}
	for _, f := range findings {
		if f.Type != FindingSuccess {
			recommendations = append(recommendations, f.Description)
		}
	}

	return CategoryScore{
		Score:           score,
		Grade:           GradeFor(score),
		Findings:        findings,
		Recommendations: recommendations,
		Weight:          Weight(c),
	}
}

// WebsiteAnalysis is the complete report for one graded website.
type WebsiteAnalysis struct {
	ID             string                     `json:"id"`
	URL            string                     `json:"url"`
	Domain         string                     `json:"domain"`
	AnalyzedAt     time.Time                  `json:"analyzedAt"`
	OverallScore   int                        `json:"overallScore"`
	LetterGrade    string                     `json:"letterGrade"`
	GradeColor     string                     `json:"gradeColor"`
	Categories     map[Category]CategoryScore `json:"categories"`
	LoadTimeMillis int64                      `json:"loadTime"`
}

// GradeRequest is the JSON body accepted by the grading endpoint.
type GradeRequest struct {
	URL string `json:"url"`
}

// GradeResponse is the JSON shape returned on success.
type GradeResponse struct {
	Success bool             `json:"success"`
	Data    *WebsiteAnalysis `json:"data"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}
