package report

import "fmt"

// FmtCoef formats a regression coefficient with six significant digits,
// keeping exact zeros visually distinct.
func FmtCoef(v float64) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%.6g", v)
}

// FmtR2 formats a coefficient of determination to four decimals.
func FmtR2(v float64) string {
	return fmt.Sprintf("%.4f", v)
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

// Mark returns "ok" or "missing" for dependency check rows.
func Mark(present bool) string {
	if present {
		return "ok"
	}
	return "missing"
}
