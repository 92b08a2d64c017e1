package grader

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is the read-only query surface analyzers see. Any HTML parser can
// back it; analyzers never touch the concrete tree.
type Document interface {
	// SelectFirst returns the first node matching selector, or nil.
	SelectFirst(selector string) Node
	// SelectAll returns every node matching selector in document order.
	SelectAll(selector string) []Node
	// Markup returns the serialized document for pattern-based heuristics.
	Markup() string
}

// Node is a single element of a Document.
type Node interface {
	Attr(name string) (string, bool)
	Text() string
	OuterHTML() string
	Tag() string
}

// Parse builds a Document from raw HTML. Malformed markup is repaired the way
// browsers repair it, so in practice only a failing reader produces an error.
func Parse(html string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	markup, err := doc.Html()
	if err != nil {
		markup = html
	}
	return &goqueryDocument{doc: doc, markup: markup}, nil
}

type goqueryDocument struct {
	doc    *goquery.Document
	markup string
}

func (d *goqueryDocument) SelectFirst(selector string) Node {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil
	}
	return goqueryNode{sel: sel}
}

func (d *goqueryDocument) SelectAll(selector string) []Node {
	sel := d.doc.Find(selector)
	nodes := make([]Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, goqueryNode{sel: s})
	})
	return nodes
}

func (d *goqueryDocument) Markup() string {
	return d.markup
}

type goqueryNode struct {
	sel *goquery.Selection
}

func (n goqueryNode) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n goqueryNode) Text() string {
	return n.sel.Text()
}

func (n goqueryNode) OuterHTML() string {
	s, err := goquery.OuterHtml(n.sel)
	if err != nil {
		return ""
	}
	return s
}

func (n goqueryNode) Tag() string {
	return goquery.NodeName(n.sel)
}

// attr returns the trimmed value of name on n, or "" when n is nil or the
// attribute is absent.
func attr(n Node, name string) string {
	if n == nil {
		return ""
	}
	v, _ := n.Attr(name)
	return strings.TrimSpace(v)
}
