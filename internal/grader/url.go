package grader

import (
	"net/url"
	"strings"

	"github.com/Bahjat/website-grader/internal/platform/errs"
)

const msgInvalidURL = "Please enter a valid website URL (e.g., example.com)."

// NormalizedURL is a fetchable absolute URL plus the host shown in reports.
type NormalizedURL struct {
	URL    string
	Domain string
}

// NormalizeURL trims raw, defaults the scheme to https when neither http:// nor
// https:// is given, and extracts the hostname. Domain extraction never fails:
// if the URL does not parse, the normalized string itself is the domain.
func NormalizeURL(raw string) (NormalizedURL, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NormalizedURL{}, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Please enter a website URL to analyze.",
		}
	}

	if !hasHTTPScheme(s) {
		s = "https://" + s
	}

	return NormalizedURL{URL: s, Domain: domainOf(s)}, nil
}

// validate rejects normalized URLs that cannot possibly be fetched.
func (n NormalizedURL) validate() error {
	u, err := url.Parse(n.URL)
	if err != nil {
		return &errs.AppError{Kind: errs.InvalidInput, Message: msgInvalidURL, Cause: err}
	}
	if u.Hostname() == "" {
		return &errs.AppError{Kind: errs.InvalidInput, Message: msgInvalidURL}
	}
	return nil
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func domainOf(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return s
	}
	return u.Hostname()
}
