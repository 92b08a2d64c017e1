package grader

import (
	"fmt"
	"strings"

	"github.com/Bahjat/website-grader/internal/model"
)

// securityHeaders are the response headers the grader tracks.
var securityHeaders = []string{
	"X-Frame-Options",
	"X-Content-Type-Options",
	"X-XSS-Protection",
	"Strict-Transport-Security",
	"Content-Security-Policy",
}

// SecurityAnalyzer checks transport security and protective response headers.
var SecurityAnalyzer = Analyzer{
	Category: model.CategorySecurity,
	Rules: []Rule{
		securityHTTPS,
		securityHeadersPresent,
		securityHSTS,
	},
}

// effectiveURL is the URL the page was actually served from.
func (in *Input) effectiveURL() string {
	if in.FinalURL != "" {
		return in.FinalURL
	}
	return in.URL
}

func securityHTTPS(in *Input) []Outcome {
	if !strings.HasPrefix(strings.ToLower(in.effectiveURL()), "https://") {
		return one(fail(30, model.ImpactHigh, "Not served over HTTPS",
			"Serve the site over HTTPS and redirect HTTP traffic to it. Browsers flag plain HTTP pages as not secure."))
	}
	return one(pass("HTTPS enabled", "The page is served over an encrypted connection."))
}

func securityHeadersPresent(in *Input) []Outcome {
	var missing []string
	for _, h := range securityHeaders {
		if in.Headers.Get(h) == "" {
			missing = append(missing, h)
		}
	}
	present := len(securityHeaders) - len(missing)

	switch {
	case present == len(securityHeaders):
		return one(pass("Security headers configured", "All tracked security headers are present."))
	case present >= 3:
		return one(warn(10, model.ImpactMedium, "Some security headers missing",
			"Add the missing security headers: "+strings.Join(missing, ", ")+"."))
	default:
		return one(fail(20, model.ImpactHigh, "Security headers missing",
			fmt.Sprintf("Only %d of %d security headers are set. Add: %s.", present, len(securityHeaders), strings.Join(missing, ", "))))
	}
}

func securityHSTS(in *Input) []Outcome {
	if v := in.Headers.Get("Strict-Transport-Security"); v != "" {
		return one(pass("HSTS enabled", "Strict-Transport-Security: "+v))
	}
	return nil
}
