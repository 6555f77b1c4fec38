package extract

import "github.com/AdamBaali/windows-mdm-commands/syncml"

// Option is a Walker option function
type Option func(*Walker)

// WithOwnBlockOnly restricts Exec detection to nodes carrying their own
// DFProperties block. By default a node without one is judged against the
// nearest ancestor's block instead.
func WithOwnBlockOnly() Option { return func(w *Walker) { w.ownBlockOnly = true } }

// WithInheritedFormat lets DeclaredFormat and DefaultValue fall back to the
// property chain when the effective block does not declare them. By default
// only Description and MinOSVersion are inherited.
func WithInheritedFormat() Option { return func(w *Walker) { w.inheritFormat = true } }

// WithCmdID replaces the CmdID generator used for synthesized payloads.
// Tests use this to make payloads deterministic.
func WithCmdID(fn syncml.CmdIDFunc) Option { return func(w *Walker) { w.cmdID = fn } }
