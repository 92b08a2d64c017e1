package grader

import (
	"regexp"
	"strings"

	"github.com/Bahjat/website-grader/internal/model"
)

// responsivePatterns match breakpoint utility classes (Tailwind, Bootstrap)
// and CSS media queries.
var responsivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:sm|md|lg|xl|2xl):[a-z-]`),
	regexp.MustCompile(`\bcol-(?:xs|sm|md|lg|xl|xxl)-`),
	regexp.MustCompile(`\b(?:d|flex)-(?:sm|md|lg|xl)-`),
	regexp.MustCompile(`(?i)@media[^{]*\(`),
	regexp.MustCompile(`(?i)<link[^>]+media\s*=\s*["'][^"']*(?:max|min)-width`),
}

// MobileAnalyzer checks whether the page adapts to small screens.
var MobileAnalyzer = Analyzer{
	Category: model.CategoryMobile,
	Rules: []Rule{
		mobileViewport,
		mobileResponsive,
		mobileAppMeta,
	},
}

func mobileViewport(in *Input) []Outcome {
	n := in.Doc.SelectFirst(`meta[name="viewport"]`)
	if n == nil {
		return one(withCode(fail(25, model.ImpactHigh, "Missing viewport meta tag",
			"Add a viewport meta tag so mobile browsers render the page at device width instead of a zoomed-out desktop layout."),
			`<meta name="viewport" content="width=device-width, initial-scale=1">`))
	}

	content := strings.ToLower(strings.ReplaceAll(attr(n, "content"), " ", ""))
	if !strings.Contains(content, "width=device-width") {
		return one(withCode(warn(10, model.ImpactMedium, "Viewport not set to device width",
			"Set width=device-width in the viewport meta tag so the layout matches the screen."),
			`<meta name="viewport" content="width=device-width, initial-scale=1">`))
	}
	return one(pass("Viewport configured", "The viewport meta tag uses width=device-width."))
}

func mobileResponsive(in *Input) []Outcome {
	markup := in.Doc.Markup()
	for _, p := range responsivePatterns {
		if p.MatchString(markup) {
			return one(pass("Responsive design detected",
				"The page uses responsive breakpoints or media queries."))
		}
	}
	return one(warn(15, model.ImpactHigh, "No responsive design detected",
		"No media queries or responsive utility classes were found. Make the layout adapt to phone and tablet widths."))
}

func mobileAppMeta(in *Input) []Outcome {
	if in.Doc.SelectFirst(`meta[name="theme-color"], meta[name="apple-mobile-web-app-capable"], meta[name="apple-mobile-web-app-title"], meta[name="apple-mobile-web-app-status-bar-style"]`) != nil {
		return one(pass("Mobile app meta tags", "Theme color or Apple web app meta tags are present."))
	}
	return nil
}
