package grader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bahjat/website-grader/internal/model"
)

func TestAccessibility_PerfectPage(t *testing.T) {
	cs := AccessibilityAnalyzer.Run(newInput(t, perfectPage()))
	assert.Equal(t, 100, cs.Score)
	assert.Equal(t, []string{
		"All images have alt text",
		"Landmark regions present",
		"Skip link present",
		"Form fields labeled",
		"Heading structure",
	}, findingTitles(cs))
}

func TestAccessibility_ImageAlt(t *testing.T) {
	withAlt := `<img src="a.jpg" alt="A">`
	decorative := `<img src="b.jpg" alt="">`
	noAlt := `<img src="c.jpg">`

	tests := []struct {
		name      string
		images    string
		wantScore int
		wantTitle string
	}{
		{name: "no images", images: "", wantScore: 100, wantTitle: "No images to check"},
		{name: "empty alt counts as present", images: withAlt + decorative, wantScore: 100, wantTitle: "All images have alt text"},
		{name: "ten images three missing", images: strings.Repeat(withAlt, 7) + strings.Repeat(noAlt, 3), wantScore: 85, wantTitle: "Images missing alt text"},
		{name: "penalty capped at 25", images: strings.Repeat(noAlt, 9), wantScore: 75, wantTitle: "Images missing alt text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := without(t, perfectBody, `<img src="/hero.jpg" alt="Team at work" loading="lazy">`) + tt.images
			cs := AccessibilityAnalyzer.Run(newInput(t, htmlPage(perfectHead, body)))
			assert.Equal(t, tt.wantScore, cs.Score)
			findingByTitle(t, cs, tt.wantTitle)
		})
	}
}

func TestAccessibility_TenImagesThreeMissingGradesA(t *testing.T) {
	body := without(t, perfectBody, `<img src="/hero.jpg" alt="Team at work" loading="lazy">`) +
		strings.Repeat(`<img src="a.jpg" alt="A">`, 7) + strings.Repeat(`<img src="c.jpg">`, 3)

	cs := AccessibilityAnalyzer.Run(newInput(t, htmlPage(perfectHead, body)))
	assert.Equal(t, 85, cs.Score)
	assert.Equal(t, model.GradeA, cs.Grade)
	assert.Equal(t, model.FindingError, findingByTitle(t, cs, "Images missing alt text").Type)
}

func TestAccessibility_Landmarks(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantScore int
		wantTitle string
	}{
		{name: "roles count", body: `<div role="banner"></div><div role="navigation"></div><div role="main"></div>`, wantScore: 100, wantTitle: "Landmark regions present"},
		{name: "tag with role counted once", body: `<nav role="navigation"></nav><main></main>`, wantScore: 90, wantTitle: "Few landmark regions"},
		{name: "one landmark", body: `<main></main>`, wantScore: 90, wantTitle: "Few landmark regions"},
		{name: "none", body: `<div></div>`, wantScore: 85, wantTitle: "No landmark regions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `<a href="#c" class="skip">Skip</a>` + tt.body
			cs := AccessibilityAnalyzer.Run(newInput(t, htmlPage("", body)))
			assert.Equal(t, tt.wantScore, cs.Score)
			findingByTitle(t, cs, tt.wantTitle)
		})
	}
}

func TestAccessibility_SkipLink(t *testing.T) {
	landmarks := `<header></header><main id="c"></main><footer></footer>`

	tests := []struct {
		name string
		link string
		want int
	}{
		{name: "text", link: `<a href="#c">Skip to main content</a>`, want: 100},
		{name: "class", link: `<a href="#c" class="skip-nav visually-hidden">Jump</a>`, want: 100},
		{name: "not an in-page link", link: `<a href="/skip">Skip</a>`, want: 95},
		{name: "absent", link: ``, want: 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := AccessibilityAnalyzer.Run(newInput(t, htmlPage("", tt.link+landmarks)))
			assert.Equal(t, tt.want, cs.Score)
		})
	}
}

func TestAccessibility_FormLabels(t *testing.T) {
	base := `<a href="#m" class="skip">Skip</a><header></header><main id="m"></main><footer></footer>`

	tests := []struct {
		name      string
		form      string
		wantScore int
		wantTitle string
	}{
		{name: "no fields", form: `<form><input type="hidden"><input type="submit"><input type="button"></form>`, wantScore: 100},
		{name: "label for", form: `<label for="n">Name</label><input id="n">`, wantScore: 100, wantTitle: "Form fields labeled"},
		{name: "aria-label", form: `<input aria-label="Search">`, wantScore: 100, wantTitle: "Form fields labeled"},
		{name: "aria-labelledby", form: `<span id="l">Email</span><textarea aria-labelledby="l"></textarea>`, wantScore: 100, wantTitle: "Form fields labeled"},
		{name: "one unlabeled select", form: `<select><option>a</option></select>`, wantScore: 95, wantTitle: "Form fields without labels"},
		{name: "label for other id", form: `<label for="x">X</label><input id="y">`, wantScore: 95, wantTitle: "Form fields without labels"},
		{name: "penalty capped at 15", form: strings.Repeat(`<input type="text">`, 5), wantScore: 85, wantTitle: "Form fields without labels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := AccessibilityAnalyzer.Run(newInput(t, htmlPage("", base+tt.form)))
			assert.Equal(t, tt.wantScore, cs.Score)
			if tt.wantTitle == "" {
				assert.NotContains(t, findingTitles(cs), "Form fields labeled")
				assert.NotContains(t, findingTitles(cs), "Form fields without labels")
				return
			}
			f := findingByTitle(t, cs, tt.wantTitle)
			if f.Type != model.FindingSuccess {
				assert.Equal(t, model.FindingWarning, f.Type)
			}
		})
	}
}

func TestAccessibility_HeadingOrder(t *testing.T) {
	base := `<a href="#m" class="skip">Skip</a><header></header><main id="m"></main><footer></footer>`

	tests := []struct {
		name     string
		headings string
		want     int
	}{
		{name: "sequential", headings: `<h1>a</h1><h2>b</h2><h3>c</h3><h2>d</h2><h3>e</h3>`, want: 100},
		{name: "going back up is fine", headings: `<h1>a</h1><h2>b</h2><h3>c</h3><h1>d</h1>`, want: 100},
		{name: "h1 to h3", headings: `<h1>a</h1><h3>b</h3>`, want: 90},
		{name: "nested skip", headings: `<h2>a</h2><section><h4>b</h4></section>`, want: 90},
		{name: "single skip penalized once", headings: `<h1>a</h1><h3>b</h3><h5>c</h5>`, want: 90},
		{name: "no headings", headings: ``, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := AccessibilityAnalyzer.Run(newInput(t, htmlPage("", base+tt.headings)))
			assert.Equal(t, tt.want, cs.Score)
		})
	}
}
