package upnext

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"upnext/style"
)

// RenderFooter renders a footer with the position, view summary and source.
func RenderFooter(current, total int, summary, source string, width int) string {

	left := fmt.Sprintf("%d/%d  %s", current, total, summary)
	right := source

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.FooterStyle.Render(left + strings.Repeat(" ", padding) + right)
}

// RenderSearch renders the search line around the rendered input.
func RenderSearch(rendered string, editing bool) string {

	if !editing && rendered == "" {
		return style.MutedStyle.Render("/ to search")
	}
	return style.SearchStyle.Render("/") + rendered
}
