package grader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Bahjat/website-grader/internal/model"
	"github.com/Bahjat/website-grader/internal/platform/errs"
)

// Engine runs the grading pipeline: normalize, fetch, parse, analyze, aggregate.
type Engine struct {
	fetcher   Fetcher
	analyzers []Analyzer
	now       func() time.Time
	newID     func() string
}

// NewEngine returns an Engine backed by the given Fetcher and the six
// category analyzers.
func NewEngine(fetcher Fetcher) *Engine {
	return &Engine{
		fetcher:   fetcher,
		analyzers: Analyzers(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Analyze grades the website at rawURL. Any normalization or fetch failure
// aborts the run; no partial report is returned.
func (e *Engine) Analyze(ctx context.Context, rawURL string) (*model.WebsiteAnalysis, error) {
	target, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	if err := target.validate(); err != nil {
		return nil, err
	}

	page, err := e.fetcher.Fetch(ctx, target.URL)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(page.HTML)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.ParsingFailed,
			Message: "Failed to parse the website's HTML.",
			Cause:   err,
		}
	}

	in := &Input{
		URL:      target.URL,
		FinalURL: page.FinalURL,
		Doc:      doc,
		HTML:     page.HTML,
		Headers:  page.Headers,
		LoadTime: page.LoadTime,
	}

	categories, err := e.runConcurrently(ctx, in)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.Unknown,
			Message: "The analysis was cancelled before it completed.",
			Cause:   err,
		}
	}
	overall, grade := Aggregate(categories)

	return &model.WebsiteAnalysis{
		ID:             e.newID(),
		URL:            target.URL,
		Domain:         target.Domain,
		AnalyzedAt:     e.now().UTC(),
		OverallScore:   overall,
		LetterGrade:    grade,
		GradeColor:     model.GradeColor(grade),
		Categories:     categories,
		LoadTimeMillis: page.LoadTime.Milliseconds(),
	}, nil
}

// RunAll scores every category sequentially.
func RunAll(analyzers []Analyzer, in *Input) map[model.Category]model.CategoryScore {
	out := make(map[model.Category]model.CategoryScore, len(analyzers))
	for _, a := range analyzers {
		out[a.Category] = a.Run(in)
	}
	return out
}

// runConcurrently scores every category in parallel. Analyzers share the input
// read-only, so the result equals RunAll's.
func (e *Engine) runConcurrently(ctx context.Context, in *Input) (map[model.Category]model.CategoryScore, error) {
	results := make([]model.CategoryScore, len(e.analyzers))

	g, gctx := errgroup.WithContext(ctx)
	for i, a := range e.analyzers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.Run(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[model.Category]model.CategoryScore, len(results))
	for i, a := range e.analyzers {
		out[a.Category] = results[i]
	}
	return out, nil
}
