package extract

import "strings"

// JoinURI joins a DDF path prefix and a node name into a full OMA-URI.
// An empty prefix yields name unchanged and an empty name yields prefix
// unchanged; otherwise the segments are joined by exactly one slash and
// trailing slashes are stripped from the result.
func JoinURI(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	}
	return strings.TrimRight(strings.TrimRight(prefix, "/")+"/"+name, "/")
}
