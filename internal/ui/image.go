package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/metsearch/internal/met"
)

// renderImage renders the image element of an object: its source with the
// alt text (classification) and title (object name). When the source is the
// fallback path a placeholder frame names the local asset instead.
func (m Model) renderImage(obj met.Object, width int) []string {
	styles := m.theme.Styles()
	src := obj.PrimaryImageSmall()

	var lines []string
	if src != "" && src == m.ctrl.FallbackImage() {
		frame := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.theme.Border)).
			Foreground(lipgloss.Color(m.theme.Muted)).
			Padding(0, 2).
			Render("No image available")
		lines = append(lines, frame)
	}

	labelWidth := 7
	valueWidth := max(width-labelWidth, 1)
	field := func(label, value string) string {
		return styles.FaintText.Render(padRight(label, labelWidth)) +
			styles.Text.Render(truncateMiddle(value, valueWidth))
	}
	lines = append(lines,
		field("src", src),
		field("alt", obj.Classification()),
		field("title", obj.ObjectName()),
	)
	return lines
}
