// Package syncml renders SyncML protocol fragments for MDM Exec commands.
//
// Fragments follow the shape of Microsoft's published SyncML examples: an
// <Exec> envelope carrying a fresh CmdID, the target OMA-URI, a metadata
// block naming the data format, and an optional <Data> element.
package syncml

import (
	"strings"

	"github.com/google/uuid"
)

// DFFormat tags seen in DDF documents.
const (
	FormatBool = "bool"
	FormatChr  = "chr"
	FormatInt  = "int"
	FormatNull = "null"
)

// CmdIDFunc supplies the CmdID for a synthesized payload. Implementations
// must return a fresh identifier on every call.
type CmdIDFunc func() string

// NewCmdID is the default CmdIDFunc, returning a random UUID.
func NewCmdID() string { return uuid.NewString() }

// BuildExec renders a multi-line <Exec> fragment targeting uri. An empty
// format falls back to FormatChr. A <Data> line is emitted only when the
// effective format is FormatNull or a default value exists; it carries the
// default value unless the format is FormatNull, in which case it is empty.
// A nil cmdID uses NewCmdID.
func BuildExec(uri, format, defaultValue string, cmdID CmdIDFunc) []string {
	if cmdID == nil {
		cmdID = NewCmdID
	}
	eff := strings.ToLower(format)
	if eff == "" {
		eff = FormatChr
	}
	lines := []string{
		"<Exec>",
		"  <CmdID>" + cmdID() + "</CmdID>",
		"  <Item>",
		"    <Target>",
		"      <LocURI>" + strings.TrimSpace(uri) + "</LocURI>",
		"    </Target>",
		"    <Meta>",
		`      <Format xmlns="syncml:metinf">` + eff + `</Format>`,
		"      <Type>text/plain</Type>",
		"    </Meta>",
	}
	if eff == FormatNull || defaultValue != "" {
		if defaultValue != "" && eff != FormatNull {
			lines = append(lines, "    <Data>"+defaultValue+"</Data>")
		} else {
			lines = append(lines, "    <Data></Data>")
		}
	}
	return append(lines, "  </Item>", "</Exec>")
}
