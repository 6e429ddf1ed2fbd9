// Package styles provides shared lipgloss styles for console output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorBlue  = lipgloss.Color("#7aa2f7")
	ColorGray  = lipgloss.Color("#565f89")
	ColorWhite = lipgloss.Color("#c0caf5")
)

// Card holds the styles for a bordered key/value card. Styles are bound to
// a renderer so colour support follows the destination writer.
type Card struct {
	Box   lipgloss.Style
	Title lipgloss.Style
	Key   lipgloss.Style
	Value lipgloss.Style
	Empty lipgloss.Style
}

// NewCard builds card styles for the given renderer.
func NewCard(r *lipgloss.Renderer) Card {
	return Card{
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1),
		Title: r.NewStyle().
			Foreground(ColorBlue).
			Bold(true),
		Key: r.NewStyle().
			Foreground(ColorGray),
		Value: r.NewStyle().
			Foreground(ColorWhite),
		Empty: r.NewStyle().
			Foreground(ColorGray).
			Italic(true),
	}
}
