package extract

import (
	"strings"

	"github.com/AdamBaali/windows-mdm-commands/ddf"
)

// Chain is the DFProperties lineage for a node, ordered nearest first: the
// node's own block when present, then each ancestor's block from closest to
// farthest. A chain never contains blocks from descendants or unrelated
// branches.
type Chain []*ddf.Properties

// push returns a new chain with p at the front. The receiver is not
// modified; sibling subtrees share the parent chain.
func (c Chain) push(p *ddf.Properties) Chain {
	out := make(Chain, 0, len(c)+1)
	out = append(out, p)
	return append(out, c...)
}

// Resolve walks the chain nearest first and returns the first value of get
// that is non-empty after whitespace normalization, or "" when no block in
// the chain carries one.
func (c Chain) Resolve(get func(*ddf.Properties) string) string {
	for _, p := range c {
		if p == nil {
			continue
		}
		if v := normalize(get(p)); v != "" {
			return v
		}
	}
	return ""
}

// normalize collapses internal whitespace runs to single spaces and trims
// the ends.
func normalize(s string) string { return strings.Join(strings.Fields(s), " ") }
