// Package dom parses rendered component markup and evaluates queries
// against it. It is internal to the compmatch module.
package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed markup fragment. The parsed nodes hang off a
// synthetic body element that is never itself a query result.
type Document struct {
	root *html.Node
	raw  string
}

// Parse parses markup as the content of a body element.
func Parse(markup string) (*Document, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return nil, &Error{Op: "parse", Err: err}
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return &Document{root: body, raw: markup}, nil
}

// Select returns every element matching the CSS selector, in document order.
func (d *Document) Select(selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, &Error{Op: "select", Selector: selector, Err: err}
	}
	var matches []*html.Node
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		matches = append(matches, sel.MatchAll(c)...)
	}
	return matches, nil
}

// Find returns every element satisfying pred, depth-first pre-order.
func (d *Document) Find(pred func(*html.Node) bool) []*html.Node {
	var matches []*html.Node
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		walk(c, func(n *html.Node) {
			if n.Type == html.ElementNode && pred(n) {
				matches = append(matches, n)
			}
		})
	}
	return matches
}

// HTML renders the document back to markup.
func (d *Document) HTML() string {
	var b strings.Builder
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		// Rendering into a strings.Builder cannot fail.
		_ = html.Render(&b, c)
	}
	return b.String()
}

// Raw returns the markup the document was parsed from.
func (d *Document) Raw() string {
	return d.raw
}

// Attr returns the value of the named attribute of n.
func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// Error represents a markup parse or query failure.
type Error struct {
	Op       string
	Selector string
	Err      error
}

func (e *Error) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("dom %s %q failed: %v", e.Op, e.Selector, e.Err)
	}
	return fmt.Sprintf("dom %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
