package grader

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Bahjat/website-grader/internal/model"
)

const perfectHead = `<meta charset="utf-8">
<title>Acme Digital | Web Design Agency</title>
<meta name="description" content="Acme Digital designs fast, accessible websites that turn visitors into customers.">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="theme-color" content="#0f172a">
<meta property="og:title" content="Acme Digital">
<meta property="og:description" content="Websites that convert.">
<meta property="og:image" content="https://acme.example/og.png">
<link rel="canonical" href="https://acme.example/">
<script type="application/ld+json">{"@context":"https://schema.org","@type":"Organization","name":"Acme Digital"}</script>`

const perfectBody = `<a href="#main" class="skip-link">Skip to content</a>
<header class="flex items-center"><nav><a href="/">Home</a><a href="/work">Work</a></nav></header>
<main id="main" class="md:grid md:grid-cols-2">
<h1>We build websites that grow your business</h1>
<h2>Services</h2><h3>Design</h3><h2>Contact</h2>
<img src="/hero.jpg" alt="Team at work" loading="lazy">
<form>
<label for="email">Email</label><input id="email" type="email">
<input type="hidden" name="source" value="home">
<button type="submit" class="btn btn-primary">Get a quote</button>
</form>
</main>
<footer><a href="https://www.linkedin.com/company/acme">LinkedIn</a></footer>`

func htmlPage(head, body string) string {
	return "<!DOCTYPE html><html lang=\"en\"><head>" + head + "</head><body>" + body + "</body></html>"
}

func perfectPage() string {
	return htmlPage(perfectHead, perfectBody)
}

func secureHeaders() http.Header {
	h := http.Header{}
	h.Set("X-Frame-Options", "SAMEORIGIN")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-XSS-Protection", "1; mode=block")
	h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
	h.Set("Content-Security-Policy", "default-src 'self'")
	return h
}

// newInput parses html into an Input that passes every non-markup check.
func newInput(t *testing.T, html string) *Input {
	t.Helper()
	doc, err := Parse(html)
	require.NoError(t, err)
	return &Input{
		URL:      "https://acme.example",
		FinalURL: "https://acme.example/",
		Doc:      doc,
		HTML:     html,
		Headers:  secureHeaders(),
		LoadTime: 300 * time.Millisecond,
	}
}

// without removes the first occurrence of fragment from s and fails the test
// when it is absent, so fixtures cannot silently drift.
func without(t *testing.T, s, fragment string) string {
	t.Helper()
	require.Contains(t, s, fragment)
	return strings.Replace(s, fragment, "", 1)
}

func findingTitles(cs model.CategoryScore) []string {
	titles := make([]string, 0, len(cs.Findings))
	for _, f := range cs.Findings {
		titles = append(titles, f.Title)
	}
	return titles
}

func findingByTitle(t *testing.T, cs model.CategoryScore, title string) model.Finding {
	t.Helper()
	for _, f := range cs.Findings {
		if f.Title == title {
			return f
		}
	}
	require.Failf(t, "finding not found", "%q not in %v", title, findingTitles(cs))
	return model.Finding{}
}
