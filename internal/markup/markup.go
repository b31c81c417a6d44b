// Package markup wraps golang.org/x/net/html with a small typed tree that
// can be queried with structural matchers instead of ad hoc string checks.
package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Node is an element or text node in a parsed document
type Node struct {
	n *html.Node
}

// Matcher reports whether a node satisfies a structural condition
type Matcher func(*Node) bool

// Parse reads an HTML document into a tree
func Parse(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	return &Node{n: doc}, nil
}

// ParseString is Parse for an in-memory document
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// Tag returns the lower-case element name, or "" for non-element nodes
func (n *Node) Tag() string {
	if n.n.Type != html.ElementNode {
		return ""
	}
	return n.n.Data
}

// Attr returns the value of the named attribute
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Classes returns the whitespace separated entries of the class attribute
func (n *Node) Classes() []string {
	class, ok := n.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}

// HasClass reports whether class is one of the node's classes
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns the first descendant, in document order, matching m
func (n *Node) Find(m Matcher) (*Node, bool) {
	var found *Node
	n.walk(func(d *Node) bool {
		if m(d) {
			found = d
			return false
		}
		return true
	})
	return found, found != nil
}

// FindAll returns every descendant matching m, in document order
func (n *Node) FindAll(m Matcher) []*Node {
	var found []*Node
	n.walk(func(d *Node) bool {
		if m(d) {
			found = append(found, d)
		}
		return true
	})
	return found
}

// walk visits descendants depth first until visit returns false
func (n *Node) walk(visit func(*Node) bool) bool {
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		child := &Node{n: c}
		if !visit(child) || !child.walk(visit) {
			return false
		}
	}
	return true
}

// Text returns the text of all descendants, each piece trimmed of
// surrounding whitespace, concatenated in document order.
// "<h3>6:42 <b>am</b></h3>" yields "6:42am".
func (n *Node) Text() string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(h *html.Node) {
		switch h.Type {
		case html.TextNode:
			sb.WriteString(strings.TrimSpace(h.Data))
		case html.CommentNode:
			return
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n.n)
	return sb.String()
}

// Element matches elements with the given tag name
func Element(tag string) Matcher {
	tag = strings.ToLower(tag)
	return func(n *Node) bool {
		return n.Tag() == tag
	}
}

// Class matches elements carrying the given class
func Class(class string) Matcher {
	return func(n *Node) bool {
		return n.Tag() != "" && n.HasClass(class)
	}
}

// All matches nodes satisfying every matcher
func All(ms ...Matcher) Matcher {
	return func(n *Node) bool {
		for _, m := range ms {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// Any matches nodes satisfying at least one matcher
func Any(ms ...Matcher) Matcher {
	return func(n *Node) bool {
		for _, m := range ms {
			if m(n) {
				return true
			}
		}
		return false
	}
}
