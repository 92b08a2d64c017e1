package grader

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/Bahjat/website-grader/internal/model"
)

var ctaClassPattern = regexp.MustCompile(`(?i)btn|button|cta|primary`)

// signal is an informational pattern reported when found in the markup.
type signal struct {
	name    string
	pattern *regexp.Regexp
}

var frameworkSignals = []signal{
	{"Next.js", regexp.MustCompile(`__next|/_next/`)},
	{"Nuxt", regexp.MustCompile(`__nuxt|/_nuxt/`)},
	{"React", regexp.MustCompile(`data-reactroot|react-dom`)},
	{"Vue", regexp.MustCompile(`\bdata-v-[0-9a-f]{6,}|\bv-cloak\b`)},
	{"Angular", regexp.MustCompile(`\bng-version=|\b_ngcontent-`)},
	{"Svelte", regexp.MustCompile(`\bsvelte-[a-z0-9]{5,}`)},
	{"Gatsby", regexp.MustCompile(`___gatsby`)},
}

var (
	animationPattern  = regexp.MustCompile(`(?i)\banimate-[a-z]|\btransition(?:-[a-z]+)?\b|@keyframes|data-aos|\bgsap\b|framer-motion|\blottie`)
	modernGridPattern = regexp.MustCompile(`class="[^"]*\b(?:flex|grid|inline-flex|inline-grid|d-flex|d-grid)\b|display\s*:\s*(?:flex|grid)`)
)

var socialPlatforms = []struct {
	name string
	host string
}{
	{"Facebook", "facebook.com"},
	{"Instagram", "instagram.com"},
	{"LinkedIn", "linkedin.com"},
	{"X (Twitter)", "twitter.com"},
	{"X (Twitter)", "x.com"},
	{"YouTube", "youtube.com"},
	{"TikTok", "tiktok.com"},
	{"Pinterest", "pinterest.com"},
}

// UIUXAnalyzer checks for the page elements that guide a visitor to convert.
var UIUXAnalyzer = Analyzer{
	Category: model.CategoryUIUX,
	Rules: []Rule{
		uiuxCallToAction,
		uiuxNavigation,
		uiuxFooter,
		uiuxModernSignals,
		uiuxSocialLinks,
	},
}

func uiuxCallToAction(in *Input) []Outcome {
	clickables := in.Doc.SelectAll(`button, a, input[type="submit"], input[type="button"]`)
	for _, n := range clickables {
		if ctaClassPattern.MatchString(attr(n, "class")) {
			return one(pass("Call-to-action found", "The page has clearly styled call-to-action buttons."))
		}
	}

	if len(clickables) > 0 {
		return one(withCode(warn(10, model.ImpactMedium, "No prominent call-to-action",
			"Links and buttons exist but none is styled as a call to action. Give the primary action a distinct button style."),
			`<a href="/contact" class="btn btn-primary">Get a free quote</a>`))
	}
	return one(fail(20, model.ImpactHigh, "No call-to-action",
		"The page has no buttons or links. Add a clear call to action such as \"Contact us\" or \"Get a quote\"."))
}

func uiuxNavigation(in *Input) []Outcome {
	if in.Doc.SelectFirst(`nav, [role="navigation"], header`) != nil {
		return one(pass("Navigation present", "The page has a navigation area."))
	}
	return one(warn(15, model.ImpactHigh, "No navigation",
		"Add a navigation menu so visitors can find the rest of the site."))
}

func uiuxFooter(in *Input) []Outcome {
	if in.Doc.SelectFirst(`footer, [role="contentinfo"]`) != nil {
		return one(pass("Footer present", "The page has a footer."))
	}
	return one(warn(5, model.ImpactLow, "No footer",
		"Add a footer with contact details, key links and legal information."))
}

func uiuxModernSignals(in *Input) []Outcome {
	markup := in.Doc.Markup()
	var out []Outcome

	var frameworks []string
	for _, s := range frameworkSignals {
		if s.pattern.MatchString(markup) {
			frameworks = append(frameworks, s.name)
		}
	}
	if len(frameworks) > 0 {
		out = append(out, pass("Modern framework", "Built with "+strings.Join(frameworks, ", ")+"."))
	}
	if animationPattern.MatchString(markup) {
		out = append(out, pass("Animations and transitions", "The page uses CSS transitions or animation libraries."))
	}
	if modernGridPattern.MatchString(markup) {
		out = append(out, pass("Modern layout", "The layout uses flexbox or CSS grid."))
	}
	return out
}

func uiuxSocialLinks(in *Input) []Outcome {
	seen := map[string]bool{}
	var found []string
	for _, a := range in.Doc.SelectAll("a[href]") {
		host := linkHost(attr(a, "href"))
		for _, p := range socialPlatforms {
			if (host == p.host || strings.HasSuffix(host, "."+p.host)) && !seen[p.name] {
				seen[p.name] = true
				found = append(found, p.name)
			}
		}
	}

	if len(found) == 0 {
		return nil
	}
	return one(pass("Social media links", "Links to "+strings.Join(found, ", ")+"."))
}

// linkHost returns the lowercase host of an absolute or protocol-relative href.
func linkHost(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
