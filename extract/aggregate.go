package extract

import (
	"sort"
	"strings"
)

// Dedupe orders records by (Source, OMA_URI) ascending and keeps the first
// record seen for each distinct OMA-URI under that order. Addresses are
// compared trimmed; records whose address is empty or whitespace are
// dropped. The input slice is not modified; the result is in the same
// (Source, OMA_URI) order.
func Dedupe(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Source != sorted[j].Source {
			return sorted[i].Source < sorted[j].Source
		}
		return sorted[i].OMAURI < sorted[j].OMAURI
	})

	seen := make(map[string]struct{}, len(sorted))
	out := make([]Record, 0, len(sorted))
	for _, r := range sorted {
		uri := strings.TrimSpace(r.OMAURI)
		if uri == "" {
			continue
		}
		if _, dup := seen[uri]; dup {
			continue
		}
		seen[uri] = struct{}{}
		out = append(out, r)
	}
	return out
}
