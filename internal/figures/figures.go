// Package figures builds draw specifications for the five manuscript
// figures. Builders consume projector views and emit render.Figure values;
// every number they place on a figure traces to one field of the results
// document or an auxiliary input. They never compute statistics and never
// touch the filesystem.
package figures

import (
	"strconv"
	"strings"
)

// Output basenames, fixed by the manuscript build.
const (
	NameDiscovery   = "figure1_discovery_rates"
	NameHeatmap     = "figure2_heatmap"
	NameModel       = "figure3_model"
	NameWee1Profile = "figure4_wee1_profile"
	NameValidation  = "figure5_validation"
)

// comma renders n with thousands separators (10000 → "10,000").
func comma(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// safeName converts a tissue name to a filename fragment.
func safeName(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}
