package ddf

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// localName returns the lowercased local tag name of an element node.
func localName(n *xmlquery.Node) string { return strings.ToLower(n.Data) }

// firstChild returns the first direct child element of n with the given
// lowercase local name, or nil.
func firstChild(n *xmlquery.Node, name string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && localName(c) == name {
			return c
		}
	}
	return nil
}

// firstChildText returns the trimmed text content of the first direct child
// element with the given lowercase local name, or "".
func firstChildText(n *xmlquery.Node, name string) string {
	c := firstChild(n, name)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.InnerText())
}
