// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package domtree

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tagsift/tagsift/internal/log"
	"github.com/tagsift/tagsift/strainer"
)

// multiValued lists the HTML attributes whose values are whitespace-separated
// sequences rather than single strings.
var multiValued = map[string]bool{
	"accept-charset": true,
	"accesskey":      true,
	"class":          true,
	"headers":        true,
	"rel":            true,
	"rev":            true,
}

// Element adapts an element node to the strainer's Tag view.
type Element struct {
	node *html.Node
}

// NewElement wraps an element node. Returns an error for any other node
// type.
func NewElement(n *html.Node) (*Element, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, errors.New("node is not an element")
	}
	return &Element{node: n}, nil
}

// Node returns the underlying parse-tree node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Name returns the element's local name, without any namespace prefix.
func (e *Element) Name() string {
	_, local := splitName(e.node.Data)
	return local
}

// Prefix returns the element's namespace prefix, or "".
func (e *Element) Prefix() string {
	prefix, _ := splitName(e.node.Data)
	return prefix
}

// Attr returns the named attribute's values in document order. Multi-valued
// attributes such as class are split on whitespace.
func (e *Element) Attr(name string) ([]string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return attrValues(name, a.Val), true
		}
	}
	return nil, false
}

// Text returns the element's associated string content: the single string
// reached by descending through only children. A tag with several children,
// or none, has no associated string.
func (e *Element) Text() (string, bool) {
	n := e.node
	for n != nil {
		first := n.FirstChild
		if first == nil || first.NextSibling != nil {
			return "", false
		}
		if first.Type == html.TextNode {
			return first.Data, true
		}
		if first.Type != html.ElementNode {
			return "", false
		}
		n = first
	}
	return "", false
}

// TextNode adapts a string node to the strainer's Text view.
type TextNode struct {
	node *html.Node
}

// Node returns the underlying parse-tree node.
func (t *TextNode) Node() *html.Node {
	return t.node
}

// Text returns the node's string content.
func (t *TextNode) Text() string {
	return t.node.Data
}

// Parse builds a parse tree from the reader.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// FindAll walks the tree depth-first and offers every element and text node
// to the strainer. It returns the matching nodes in document order along
// with the number of nodes offered.
func FindAll(root *html.Node, s *strainer.Strainer) ([]*html.Node, int, error) {
	var matches []*html.Node
	offered := 0

	var walk func(n *html.Node) error
	walk = func(n *html.Node) error {
		var view any
		switch n.Type {
		case html.ElementNode:
			view = &Element{node: n}
		case html.TextNode:
			view = &TextNode{node: n}
		}

		if view != nil {
			offered++
			found, err := s.Search(view)
			if err != nil {
				return err
			}
			if found != nil {
				matches = append(matches, n)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, 0, err
	}

	log.Debugf("find walked: offered=%d matched=%d", offered, len(matches))
	return matches, offered, nil
}

// Scan tokenizes the reader and offers every start tag to the strainer's
// parse-time admission check, without building a tree. It returns the names
// of the admitted tags and the total number of start tags seen. This is the
// preview of what a filtered parse would bother constructing.
func Scan(r io.Reader, s *strainer.Strainer) (admitted []string, total int, err error) {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				log.Debugf("scan done: admitted=%d total=%d", len(admitted), total)
				return admitted, total, nil
			}
			return nil, 0, z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			total++

			prefix, local := splitName(tok.Data)
			attrs := make(map[string][]string, len(tok.Attr))
			for _, a := range tok.Attr {
				attrs[a.Key] = append(attrs[a.Key], attrValues(a.Key, a.Val)...)
			}

			if s.AllowTagCreation(prefix, local, attrs) {
				admitted = append(admitted, tok.Data)
			}
		}
	}
}

// splitName splits a node name into its namespace prefix and local name.
func splitName(name string) (prefix, local string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// attrValues presents one attribute value the way the strainer expects it:
// multi-valued attributes become their whitespace-separated elements, in
// document order, and everything else is a one-element sequence.
func attrValues(name, val string) []string {
	if multiValued[name] {
		if fields := strings.Fields(val); len(fields) > 0 {
			return fields
		}
		return []string{""}
	}
	return []string{val}
}
