package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Base styles — neutral storefront palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Brand
	brandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0b429")).
			Bold(true)

	// Accent / action styles
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0b429"))

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	// Search / filters
	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0b429")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a0e0")).
			Bold(true)

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Cart badge in the header
	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0a0a10")).
			Background(lipgloss.Color("#f0b429")).
			Bold(true).
			Padding(0, 1)
)

// renderBrand renders the spaced SHOPFRONT wordmark in alternating amber.
func renderBrand() string {
	const text = "SHOPFRONT"
	colors := [2]lipgloss.Color{"#f0b429", "#d49214"}

	var out string
	for i, ch := range text {
		out += lipgloss.NewStyle().Bold(true).Foreground(colors[i%2]).Render(string(ch))
		if i < len(text)-1 {
			out += " "
		}
	}
	return out
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
