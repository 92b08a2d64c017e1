package analyzer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Bahjat/website-grader/internal/model"
	"github.com/Bahjat/website-grader/internal/platform/errs"
	"github.com/Bahjat/website-grader/internal/platform/requestid"
)

// Service orchestrates a GradeProvider and logs results.
type Service struct {
	provider GradeProvider
	logger   *slog.Logger
}

// NewService creates a Service backed by the given provider.
func NewService(provider GradeProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Analyze delegates to the provider and logs the outcome. Errors caused by the
// caller's deadline are reported as timeouts.
func (s *Service) Analyze(ctx context.Context, targetURL string) (*model.WebsiteAnalysis, error) {
	logger := s.logger.With("url", targetURL, requestid.Attr(ctx))

	result, err := s.provider.Analyze(ctx, targetURL)
	if err != nil {
		var appErr *errs.AppError
		if !errors.As(err, &appErr) {
			appErr = &errs.AppError{Kind: errs.Unknown, Message: "An unexpected error occurred.", Cause: err}
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && appErr.Kind != errs.Timeout {
			appErr = &errs.AppError{
				Kind:    errs.Timeout,
				Message: "The analysis took too long to complete. Please try again.",
				Cause:   err,
			}
		}

		attrs := []any{"error", appErr, "kind", appErr.Kind.String(), "fetch_failure", appErr.IsFetchFailure()}
		if appErr.UpstreamStatus != 0 {
			attrs = append(attrs, "target_status", appErr.UpstreamStatus)
		}
		if appErr.Kind == errs.InvalidInput {
			logger.Warn("analysis rejected", attrs...)
		} else {
			logger.Error("analysis failed", attrs...)
		}
		return nil, appErr
	}

	categories := make([]any, 0, len(result.Categories))
	for _, c := range model.Categories {
		categories = append(categories, slog.Int(string(c), result.Categories[c].Score))
	}
	logger.Info("analysis complete",
		"report_id", result.ID,
		"domain", result.Domain,
		"overall_score", result.OverallScore,
		"letter_grade", result.LetterGrade,
		"load_time_ms", result.LoadTimeMillis,
		slog.Group("category_scores", categories...),
	)
	return result, nil
}
