package main

import "github.com/charmbracelet/glamour"

// renderMarkdown renders markdown for terminal display with automatic
// light/dark styling.
func renderMarkdown(markdown string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
