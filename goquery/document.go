// Package goquery provides HTML extraction of listing pages using goquery.
package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/langex"
	"golang.org/x/net/html"
)

// NodeKind distinguishes the node variants a parsed document is made of.
type NodeKind int

// NodeKind constants.
const (
	KindText NodeKind = iota + 1
	KindElement
)

// Node is a child node of an element: either an Element or a Text.
type Node interface {
	Kind() NodeKind
}

var (
	_ Node = Element{}
	_ Node = Text{}
)

// Text is a character data node.
type Text struct {
	Data string
}

// Kind returns KindText.
func (Text) Kind() NodeKind { return KindText }

// Element is an element node of a parsed document.
// The zero value is not usable; obtain elements from a Document.
type Element struct {
	node *html.Node
}

// Kind returns KindElement.
func (Element) Kind() NodeKind { return KindElement }

// Document is a parsed, read-only HTML document.
type Document struct {
	doc *goquery.Document
}

// Parse builds a queryable document from raw HTML.
func Parse(b []byte) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, langex.Errorf(langex.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Root returns the document node, the ancestor of every element.
func (d *Document) Root() Element {
	return Element{node: d.doc.Nodes[0]}
}

func (e Element) selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(e.node).Selection
}

// Tag returns the element's tag name in lower case.
func (e Element) Tag() string {
	return e.node.Data
}

// FindAll returns every descendant with the given tag in document order.
// A non-empty class restricts the match to elements whose class attribute
// contains that token.
func (e Element) FindAll(tag, class string) []Element {
	sel := e.selection().Find(tag)
	if class != "" {
		sel = sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.HasClass(class)
		})
	}
	return elements(sel)
}

// FirstDescendant returns the first descendant with the given tag.
func (e Element) FirstDescendant(tag string) (Element, bool) {
	sel := e.selection().Find(tag).First()
	if sel.Length() == 0 {
		return Element{}, false
	}
	return Element{node: sel.Nodes[0]}, true
}

// Nodes returns the direct children as typed nodes.
// Comments and doctype nodes are not part of the listing markup and are omitted.
func (e Element) Nodes() []Node {
	var nodes []Node
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			nodes = append(nodes, Element{node: c})
		case html.TextNode:
			nodes = append(nodes, Text{Data: c.Data})
		}
	}
	return nodes
}

// Children returns the direct element children. Text nodes, including
// whitespace between tags, are never included, so positions are stable.
func (e Element) Children() []Element {
	var children []Element
	for _, n := range e.Nodes() {
		if el, ok := n.(Element); ok {
			children = append(children, el)
		}
	}
	return children
}

// ChildrenByTag returns the direct element children with the given tag.
func (e Element) ChildrenByTag(tag string) []Element {
	var children []Element
	for _, c := range e.Children() {
		if c.Tag() == tag {
			children = append(children, c)
		}
	}
	return children
}

// Text returns the concatenated text content of the element and its descendants.
func (e Element) Text() string {
	return e.selection().Text()
}

// Attr returns the value of the named attribute.
func (e Element) Attr(name string) (string, bool) {
	return e.selection().Attr(name)
}

func elements(sel *goquery.Selection) []Element {
	out := make([]Element, 0, sel.Length())
	for _, n := range sel.Nodes {
		out = append(out, Element{node: n})
	}
	return out
}
