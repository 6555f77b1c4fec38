package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinURI(t *testing.T) {
	for _, tc := range []struct {
		prefix, name, want string
	}{
		{prefix: "", name: "", want: ""},
		{prefix: "", name: "Reboot", want: "Reboot"},
		{prefix: "./Device/Vendor/MSFT", name: "", want: "./Device/Vendor/MSFT"},
		{prefix: "a", name: "b", want: "a/b"},
		{prefix: "a/", name: "b", want: "a/b"},
		{prefix: "a//", name: "b", want: "a/b"},
		{prefix: "a", name: "b/", want: "a/b"},
		{prefix: "./Device/Vendor/MSFT/Reboot", name: "RebootNow", want: "./Device/Vendor/MSFT/Reboot/RebootNow"},
		// trailing separator on the prefix survives when name is empty
		{prefix: "a/", name: "", want: "a/"},
	} {
		t.Run(tc.prefix+"+"+tc.name, func(t *testing.T) {
			a := assert.New(t)
			got := JoinURI(tc.prefix, tc.name)
			a.Equal(tc.want, got)
			// idempotent under re-application with an empty name
			a.Equal(got, JoinURI(got, ""))
		})
	}
}
