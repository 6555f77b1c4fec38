package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordJSONFields(t *testing.T) {
	a := assert.New(t)
	r := Record{
		Source:         "Reboot.xml",
		CommandName:    "RebootNow",
		OMAURI:         "./Device/Vendor/MSFT/Reboot/RebootNow",
		MinOSVersion:   "10.0.14393",
		Description:    "Reboots the device",
		DeclaredFormat: "null",
		DefaultValue:   "0",
		Exec:           []string{"<Exec>", "</Exec>"},
	}

	raw, err := json.Marshal(r)
	a.NoError(err)

	var got map[string]interface{}
	a.NoError(json.Unmarshal(raw, &got))

	// the serialized shape carries exactly the published field set; the
	// format and default only surface inside the payload lines
	a.ElementsMatch(
		[]string{"Source", "CommandName", "OMA_URI", "MinOSVersion", "Description", "Exec"},
		keys(got))
	a.Equal("./Device/Vendor/MSFT/Reboot/RebootNow", got["OMA_URI"])
}

func keys(m map[string]interface{}) (out []string) {
	for k := range m {
		out = append(out, k)
	}
	return out
}
