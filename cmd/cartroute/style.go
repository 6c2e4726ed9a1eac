package main

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorWarn   = lipgloss.Color("#F4D03F")
	colorError  = lipgloss.Color("#E74C3C")
)

var styles = struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Muted  lipgloss.Style
	Warn   lipgloss.Style
	Error  lipgloss.Style
	Box    lipgloss.Style
	Cell   lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Header: lipgloss.NewStyle().Bold(true),
	Muted:  lipgloss.NewStyle().Foreground(colorMuted),
	Warn:   lipgloss.NewStyle().Foreground(colorWarn),
	Error:  lipgloss.NewStyle().Foreground(colorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1),
	Cell: lipgloss.NewStyle().Width(4).Align(lipgloss.Right),
}
