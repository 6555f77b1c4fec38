package ddf

// Properties holds the DFProperties metadata block attached to a node.
// Every field is optional; an empty string means the document did not
// declare a value.
type Properties struct {
	// Description is the human readable node description
	Description string
	// OSBuildVersion is the minimum Windows build declared under
	// Applicability/OsBuildVersion
	OSBuildVersion string
	// Format is the lowercased DFFormat tag ("chr", "int", "null", ...)
	Format string
	// DefaultValue is the DefaultValue text
	DefaultValue string
	// AccessTypes contains the lowercased local names of the operations
	// declared under AccessType ("get", "exec", ...)
	AccessTypes []string
}

// HasAccess reports whether the block declares the given access operation.
// op must be a lowercase local name such as "exec".
func (p *Properties) HasAccess(op string) bool {
	for _, have := range p.AccessTypes {
		if have == op {
			return true
		}
	}
	return false
}

// Node is one element of the DDF management tree.
type Node struct {
	// Name is the NodeName text
	Name string
	// Path is the explicit path override, empty when the node inherits
	// its parent's address
	Path string
	// Properties is the node's own DFProperties block, nil when absent
	Properties *Properties
	// Children are the node's child nodes in document order
	Children []*Node
}
