package analyzer

import (
	"context"

	"github.com/Bahjat/website-grader/internal/model"
)

// GradeProvider defines the contract for any website grading engine.
type GradeProvider interface {
	Analyze(ctx context.Context, targetURL string) (*model.WebsiteAnalysis, error)
}
