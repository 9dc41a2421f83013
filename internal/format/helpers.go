package format

import "fmt"

// Percent renders a rate already scaled to percent ("9.7" → "9.7%").
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Hours renders an eigenperiod value ("23.8" → "23.8h").
func Hours(v float64) string {
	return fmt.Sprintf("%.1fh", v)
}

// PValue renders a p-value in scientific notation ("0.000012" → "1.2e-05").
func PValue(p float64) string {
	return fmt.Sprintf("%.1e", p)
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
