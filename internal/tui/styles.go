package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-travel-journal/internal/utils"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// tagStyles follow the palette order of the web pages.
var tagStyles = func() []lipgloss.Style {
	colors := []string{"4", "2", "5", "3", "6", "1"}
	styles := make([]lipgloss.Style, 0, utils.TagPaletteSize)
	for i := 0; i < utils.TagPaletteSize; i++ {
		styles = append(styles, lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i%len(colors)])))
	}
	return styles
}()

func renderTag(tag string) string {
	return tagStyles[utils.TagColorIndex(tag, len(tagStyles))].Render("#" + tag)
}
