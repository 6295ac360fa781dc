package style

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	nt "upnext/entity"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	FooterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	SearchStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c"))
	CursorStyle      = lipgloss.NewStyle().Reverse(true)
	UnStyle          = lipgloss.NewStyle()
)

// TypeColors tint the type column
var TypeColors = map[nt.Type]string{
	nt.TypeAnime:  "#8b5cf6",
	nt.TypeManga:  "#ec4899",
	nt.TypeBook:   "#3b82f6",
	nt.TypeMovie:  "#ef4444",
	nt.TypeSeries: "#f59e0b",
}

// StatusColors tint the status column
var StatusColors = map[nt.Status]string{
	nt.StatusPlanning:     "#52525b",
	nt.StatusInProgress:   "#0284c7",
	nt.StatusDropped:      "#b91c1c",
	nt.StatusOnHold:       "#c2410c",
	nt.StatusAnticipating: "#9333ea",
	nt.StatusCompleted:    "#059669",
}

// RowStyler returns a StyleFunc that highlights the selected row
func RowStyler(selectedRow int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		if row == selectedRow {
			return HlRowStyle
		}
		return UnStyle
	}
}

// Tint renders str in the color found for key, plain when there is none
func Tint[K comparable](colors map[K]string, key K, str string) string {

	color, ok := colors[key]
	if !ok {
		return str
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(str)
}

// Stars renders a rating as filled and empty stars, blank when unrated
func Stars(rating int) string {

	if rating < 1 || rating > nt.MaxRating {
		return ""
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", nt.MaxRating-rating)
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(TableBorderStyle)
}
