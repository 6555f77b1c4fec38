package ddf

import (
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

// ErrNoMgmtTree is returned by Parse for documents without a <MgmtTree>
// element.
var ErrNoMgmtTree = errors.New("no MgmtTree element found")

var xpMgmtTree = xpath.MustCompile(`//*[local-name()='MgmtTree']`)

// Parse reads a DDF XML document and returns the top-level management tree
// nodes. Each returned node is the root of an independent subtree; a
// document may declare more than one.
func Parse(r io.Reader) ([]*Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing DDF document")
	}
	mgmt := xmlquery.QuerySelector(doc, xpMgmtTree)
	if mgmt == nil {
		return nil, ErrNoMgmtTree
	}
	var roots []*Node
	for c := mgmt.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && localName(c) == "node" {
			roots = append(roots, buildNode(c))
		}
	}
	return roots, nil
}

func buildNode(el *xmlquery.Node) *Node {
	n := &Node{
		Name: firstChildText(el, "nodename"),
		Path: firstChildText(el, "path"),
	}
	if dfp := firstChild(el, "dfproperties"); dfp != nil {
		n.Properties = buildProperties(dfp)
	}
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && localName(c) == "node" {
			n.Children = append(n.Children, buildNode(c))
		}
	}
	return n
}

func buildProperties(dfp *xmlquery.Node) *Properties {
	p := &Properties{
		Description:  firstChildText(dfp, "description"),
		DefaultValue: firstChildText(dfp, "defaultvalue"),
	}
	if access := firstChild(dfp, "accesstype"); access != nil {
		for c := access.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xmlquery.ElementNode {
				p.AccessTypes = append(p.AccessTypes, localName(c))
			}
		}
	}
	if df := firstChild(dfp, "dfformat"); df != nil {
		p.Format = formatTag(df)
	}
	if app := firstChild(dfp, "applicability"); app != nil {
		p.OSBuildVersion = firstChildText(app, "osbuildversion")
	}
	return p
}

// formatTag returns the declared data format: DFFormat usually wraps an
// empty element (<chr/>, <int/>) but some documents carry text content
// instead.
func formatTag(df *xmlquery.Node) string {
	for c := df.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return localName(c)
		}
	}
	return strings.ToLower(strings.TrimSpace(df.InnerText()))
}
