package tui

import (
	"fmt"
	"unicode/utf8"
)

// formatPrice renders a price for display, always with two decimals.
func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}
