package grader

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Bahjat/website-grader/internal/model"
)

const (
	maxTitleLength       = 60
	maxDescriptionLength = 160
)

// SEOAnalyzer checks the on-page signals search engines and social previews read.
var SEOAnalyzer = Analyzer{
	Category: model.CategorySEO,
	Rules: []Rule{
		seoTitle,
		seoMetaDescription,
		seoH1,
		seoOpenGraph,
		seoCanonical,
		seoStructuredData,
	},
}

func seoTitle(in *Input) []Outcome {
	var title string
	if n := in.Doc.SelectFirst("head > title"); n != nil {
		title = strings.TrimSpace(n.Text())
	}
	length := utf8.RuneCountInString(title)

	switch {
	case length == 0:
		return one(withCode(fail(15, model.ImpactHigh, "Missing title tag",
			"Add a descriptive <title> tag. It is the headline shown in search results and browser tabs."),
			"<title>Your Brand | What You Do</title>"))
	case length > maxTitleLength:
		return one(warn(5, model.ImpactMedium, "Title tag too long",
			fmt.Sprintf("Shorten the title to %d characters or fewer (currently %d) so search results do not truncate it.", maxTitleLength, length)))
	default:
		return one(pass("Title tag optimized",
			fmt.Sprintf("Title is %d characters: %q", length, title)))
	}
}

func seoMetaDescription(in *Input) []Outcome {
	desc := attr(in.Doc.SelectFirst(`meta[name="description"]`), "content")
	length := utf8.RuneCountInString(desc)

	switch {
	case length == 0:
		return one(withCode(fail(15, model.ImpactHigh, "Missing meta description",
			"Add a meta description summarizing the page. Search engines use it as the result snippet."),
			`<meta name="description" content="A concise summary of your page.">`))
	case length > maxDescriptionLength:
		return one(warn(5, model.ImpactMedium, "Meta description too long",
			fmt.Sprintf("Trim the meta description to %d characters or fewer (currently %d).", maxDescriptionLength, length)))
	default:
		return one(pass("Meta description present",
			fmt.Sprintf("Meta description is %d characters.", length)))
	}
}

func seoH1(in *Input) []Outcome {
	count := len(in.Doc.SelectAll("h1"))

	switch {
	case count == 0:
		return one(fail(10, model.ImpactHigh, "Missing H1 heading",
			"Add exactly one H1 heading that states the main topic of the page."))
	case count > 1:
		return one(warn(5, model.ImpactMedium, "Multiple H1 headings",
			fmt.Sprintf("Use a single H1 per page (found %d) and demote the others to H2.", count)))
	default:
		return one(pass("Single H1 heading", "The page has exactly one H1 heading."))
	}
}

var openGraphProperties = []string{"og:title", "og:description", "og:image"}

func seoOpenGraph(in *Input) []Outcome {
	var missing []string
	for _, prop := range openGraphProperties {
		if attr(in.Doc.SelectFirst(fmt.Sprintf(`meta[property=%q]`, prop)), "content") == "" {
			missing = append(missing, prop)
		}
	}

	if len(missing) > 0 {
		return one(withCode(warn(5, model.ImpactMedium, "Incomplete Open Graph tags",
			"Add the missing Open Graph tags so shared links render a rich preview: "+strings.Join(missing, ", ")+"."),
			`<meta property="og:title" content="..."><meta property="og:description" content="..."><meta property="og:image" content="https://...">`))
	}
	return one(pass("Open Graph tags complete", "Title, description and image are set for social sharing."))
}

func seoCanonical(in *Input) []Outcome {
	href := attr(in.Doc.SelectFirst(`link[rel="canonical"]`), "href")
	if href == "" {
		return one(withCode(warn(5, model.ImpactLow, "Missing canonical link",
			"Add a canonical link to tell search engines which URL is the preferred version of this page."),
			fmt.Sprintf(`<link rel="canonical" href=%q>`, in.URL)))
	}
	return one(pass("Canonical URL set", "Canonical URL: "+href))
}

func seoStructuredData(in *Input) []Outcome {
	count := len(in.Doc.SelectAll(`script[type="application/ld+json"]`))
	if count == 0 {
		return one(warn(5, model.ImpactLow, "No structured data",
			"Add JSON-LD structured data (for example Organization or LocalBusiness) to qualify for rich results."))
	}
	return one(pass("Structured data found",
		fmt.Sprintf("Found %d JSON-LD block(s).", count)))
}
