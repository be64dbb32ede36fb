package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"dhanesh.dev/internal/handlers"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bb86fc"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#03dac6")).Width(14)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0a0"))
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routes the server answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), formatRoutes(cfg.ShowExperience))
		return nil
	},
}

func formatRoutes(showExperience bool) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Pages") + "\n")
	for i, item := range handlers.NavItems(showExperience) {
		b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, pathStyle.Render(item.Path), item.Name))
	}
	b.WriteString(headerStyle.Render("Other") + "\n")
	for _, line := range []struct{ path, desc string }{
		{"/theme.css", "generated stylesheet"},
		{"/static/*", "static assets"},
		{"/api/projects", "project list (JSON)"},
		{"/api/health", "health check"},
		{"*", "not found page (404)"},
	} {
		b.WriteString("  " + pathStyle.Render(line.path) + " " + dimStyle.Render(line.desc) + "\n")
	}
	return b.String()
}
