package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func printHelp() {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f0b429")).
		Bold(true).
		Render("S H O P F R O N T")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Browse the catalog, fill your cart, place orders. All from the terminal.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	commands := []struct{ cmd, desc string }{
		{"shopfront", "Open the storefront (interactive TUI)"},
		{"shopfront login", "Sign in with username and password"},
		{"shopfront logout", "Clear your session"},
		{"shopfront --version", "Show version"},
		{"shopfront help", "You are here"},
	}

	fmt.Printf("\n  %s\n\n  %s\n\n  Commands:\n", title, tagline)
	for _, c := range commands {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}

	envStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	fmt.Printf("\n  Environment:\n")
	envs := []struct{ name, desc string }{
		{"SHOP_API_URL", "API root (default: hosted backend)"},
		{"SHOP_STATE_DIR", "State directory (default: ~/.shopfront)"},
		{"SHOP_LOG_LEVEL", "Log level (default: info)"},
		{"SHOP_HTTP_TIMEOUT", "Request timeout (default: 30s)"},
	}
	for _, e := range envs {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", e.name)), envStyle.Render(e.desc))
	}
	fmt.Println()
}
