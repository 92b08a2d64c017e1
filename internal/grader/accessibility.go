package grader

import (
	"fmt"
	"strings"

	"github.com/Bahjat/website-grader/internal/model"
)

const (
	landmarkSelector = `main, nav, header, footer, [role="main"], [role="navigation"], [role="banner"], [role="contentinfo"]`
	headingSelector  = "h1, h2, h3, h4, h5, h6"
	fieldSelector    = "input, select, textarea"
)

// AccessibilityAnalyzer checks the markup assistive technology depends on.
var AccessibilityAnalyzer = Analyzer{
	Category: model.CategoryAccessibility,
	Rules: []Rule{
		a11yImageAlt,
		a11yLandmarks,
		a11ySkipLink,
		a11yFormLabels,
		a11yHeadingOrder,
	},
}

func a11yImageAlt(in *Input) []Outcome {
	images := in.Doc.SelectAll("img")
	if len(images) == 0 {
		return one(pass("No images to check", "The page has no <img> elements."))
	}

	var missing int
	for _, img := range images {
		if _, ok := img.Attr("alt"); !ok {
			missing++
		}
	}
	if missing == 0 {
		return one(pass("All images have alt text", fmt.Sprintf("All %d images have an alt attribute.", len(images))))
	}
	return one(withCode(fail(min(25, missing*5), model.ImpactHigh, "Images missing alt text",
		fmt.Sprintf("Add alt text to %d of %d images so screen readers can describe them. Use alt=\"\" for purely decorative images.", missing, len(images))),
		`<img src="team.jpg" alt="Our team at the office">`))
}

func a11yLandmarks(in *Input) []Outcome {
	count := len(in.Doc.SelectAll(landmarkSelector))

	switch {
	case count >= 3:
		return one(pass("Landmark regions present", fmt.Sprintf("Found %d landmark regions.", count)))
	case count > 0:
		return one(warn(10, model.ImpactMedium, "Few landmark regions",
			fmt.Sprintf("Only %d landmark region(s) found. Wrap the page in <header>, <nav>, <main> and <footer> so screen reader users can jump between sections.", count)))
	default:
		return one(fail(15, model.ImpactHigh, "No landmark regions",
			"Use <header>, <nav>, <main> and <footer> (or matching ARIA roles) so screen reader users can navigate the page."))
	}
}

func a11ySkipLink(in *Input) []Outcome {
	for _, a := range in.Doc.SelectAll(`a[href^="#"]`) {
		text := strings.ToLower(a.Text() + " " + attr(a, "class") + " " + attr(a, "aria-label"))
		if strings.Contains(text, "skip") {
			return one(pass("Skip link present", "Keyboard users can skip straight to the main content."))
		}
	}
	return one(withCode(warn(5, model.ImpactLow, "No skip link",
		"Add a \"Skip to content\" link as the first focusable element for keyboard users."),
		`<a href="#main" class="skip-link">Skip to content</a>`))
}

func a11yFormLabels(in *Input) []Outcome {
	labelled := map[string]bool{}
	for _, l := range in.Doc.SelectAll("label[for]") {
		if id := attr(l, "for"); id != "" {
			labelled[id] = true
		}
	}

	var fields, unlabeled int
	for _, f := range in.Doc.SelectAll(fieldSelector) {
		if f.Tag() == "input" {
			switch strings.ToLower(attr(f, "type")) {
			case "hidden", "submit", "button":
				continue
			}
		}
		fields++

		if id := attr(f, "id"); id != "" && labelled[id] {
			continue
		}
		if attr(f, "aria-label") != "" || attr(f, "aria-labelledby") != "" {
			continue
		}
		unlabeled++
	}

	switch {
	case fields == 0:
		return nil
	case unlabeled == 0:
		return one(pass("Form fields labeled", fmt.Sprintf("All %d form fields have an associated label.", fields)))
	default:
		return one(withCode(warn(min(15, unlabeled*5), model.ImpactMedium, "Form fields without labels",
			fmt.Sprintf("Associate a label with %d of %d form fields using <label for>, aria-label or aria-labelledby.", unlabeled, fields)),
			`<label for="email">Email</label><input id="email" type="email">`))
	}
}

func a11yHeadingOrder(in *Input) []Outcome {
	prev := 0
	for _, h := range in.Doc.SelectAll(headingSelector) {
		level := int(h.Tag()[1] - '0')
		if prev > 0 && level > prev+1 {
			return one(warn(10, model.ImpactMedium, "Heading levels skipped",
				fmt.Sprintf("An h%d follows an h%d. Keep heading levels sequential so the outline makes sense to screen readers.", level, prev)))
		}
		prev = level
	}
	return one(pass("Heading structure", "Heading levels follow a logical order."))
}
