package extract

// Record describes one Exec-capable node found in a DDF document. Records
// are immutable once emitted by the walker; field names match the JSON
// output consumed by downstream tooling.
type Record struct {
	// Source is the base name of the DDF file the node came from
	Source string `json:"Source"`
	// CommandName is the node's local name
	CommandName string `json:"CommandName"`
	// OMAURI is the fully qualified node address
	OMAURI string `json:"OMA_URI"`
	// MinOSVersion is the minimum Windows build, resolved through the
	// property chain; empty when no ancestor declares one
	MinOSVersion string `json:"MinOSVersion,omitempty"`
	// Description is the node description, resolved through the property
	// chain; empty when no ancestor declares one
	Description string `json:"Description,omitempty"`
	// DeclaredFormat is the DFFormat tag of the effective block. It and
	// DefaultValue feed payload synthesis and are not serialized; the
	// payload already names the effective format and carries any default.
	DeclaredFormat string `json:"-"`
	// DefaultValue is the DefaultValue of the effective block
	DefaultValue string `json:"-"`
	// Exec is the synthesized SyncML payload, one line per element
	Exec []string `json:"Exec"`
}
