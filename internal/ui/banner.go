package ui

import "github.com/charmbracelet/lipgloss"

// ShowBrandBanner renders the tool's single-line masthead for the
// interactive picker's header.
func ShowBrandBanner() string {
	title := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Render("appsize")
	subtitle := MutedStyle().Render(" — installed app disk usage")
	return "  " + title + subtitle + "\n"
}
