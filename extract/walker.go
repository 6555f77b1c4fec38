package extract

import (
	"github.com/AdamBaali/windows-mdm-commands/ddf"
	"github.com/AdamBaali/windows-mdm-commands/syncml"
)

// accessExec is the AccessType operation marking a node Exec-capable.
const accessExec = "exec"

// Walker collects Exec-capable nodes from parsed DDF trees. The zero value
// is not usable; construct with NewWalker. A Walker holds no per-document
// state and may be shared across concurrent Document calls.
type Walker struct {
	ownBlockOnly  bool
	inheritFormat bool
	cmdID         syncml.CmdIDFunc
}

// NewWalker returns a Walker applying the given options.
func NewWalker(opts ...Option) *Walker {
	w := &Walker{cmdID: syncml.NewCmdID}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Document walks every top-level node of one parsed document and returns a
// record for each Exec-capable node, in visit order. source identifies the
// document in the emitted records.
func (w *Walker) Document(source string, roots []*ddf.Node) []Record {
	var out []Record
	for _, root := range roots {
		out = w.walk(root, "", nil, source, out)
	}
	return out
}

func (w *Walker) walk(n *ddf.Node, prefix string, chain Chain, source string, out []Record) []Record {
	if n.Path != "" {
		// an explicit Path replaces the inherited prefix
		prefix = n.Path
	}
	uri := JoinURI(prefix, n.Name)

	here := chain
	if n.Properties != nil {
		here = chain.push(n.Properties)
	}

	if eff := w.effective(n, here); eff != nil && eff.HasAccess(accessExec) {
		out = append(out, w.record(source, n.Name, uri, eff, here))
	}
	for _, child := range n.Children {
		out = w.walk(child, uri, here, source, out)
	}
	return out
}

// effective returns the block used for capability, format and default
// decisions: the node's own block, else (unless ownBlockOnly) the nearest
// block on the chain.
func (w *Walker) effective(n *ddf.Node, chain Chain) *ddf.Properties {
	if n.Properties != nil {
		return n.Properties
	}
	if w.ownBlockOnly || len(chain) == 0 {
		return nil
	}
	return chain[0]
}

func (w *Walker) record(source, name, uri string, eff *ddf.Properties, chain Chain) Record {
	format := eff.Format
	defaultValue := eff.DefaultValue
	if w.inheritFormat {
		format = chain.Resolve(func(p *ddf.Properties) string { return p.Format })
		defaultValue = chain.Resolve(func(p *ddf.Properties) string { return p.DefaultValue })
	}
	return Record{
		Source:         source,
		CommandName:    name,
		OMAURI:         uri,
		MinOSVersion:   chain.Resolve(func(p *ddf.Properties) string { return p.OSBuildVersion }),
		Description:    chain.Resolve(func(p *ddf.Properties) string { return p.Description }),
		DeclaredFormat: format,
		DefaultValue:   defaultValue,
		Exec:           syncml.BuildExec(uri, format, defaultValue, w.cmdID),
	}
}
