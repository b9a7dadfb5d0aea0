package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/five82/metsearch/internal/met"
)

// WelcomePrompt is shown in the detail panel until an object is loaded.
const WelcomePrompt = "Welcome to the Metropolitan Museum Of Art. Please Type in Your Search"

// initDetailViewport creates the scrollable detail viewport.
func (m *Model) initDetailViewport() {
	w, h := m.detailSize()
	m.detailViewport = viewport.New(w, h)
}

// detailSize returns the viewport size inside the detail pane.
func (m Model) detailSize() (int, int) {
	width := m.width - resultsWidth(m.width) - 4 // borders and one column of padding each side
	height := bodyHeight(m.height) - 2
	return max(width, 1), max(height, 1)
}

// updateDetailViewport re-renders the selected object into the viewport.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	m.detailViewport.SetContent(m.renderDetailContent(m.detailViewport.Width))
}

func (m Model) detailTitle() string {
	if !m.snapshot.HasSelection() {
		return "Details"
	}
	if id := m.snapshot.Selected.ID().String(); id != "" {
		return "Object " + id
	}
	return "Details"
}

// renderDetailPane renders the viewport with a one column left margin.
func (m Model) renderDetailPane() string {
	lines := strings.Split(m.detailViewport.View(), "\n")
	for i, line := range lines {
		lines[i] = " " + line
	}
	return strings.Join(lines, "\n")
}

// renderDetailContent renders the selected object, or the welcome prompt
// when nothing has been selected yet. It reads the record as stored; image
// substitution already happened at ingestion.
func (m Model) renderDetailContent(width int) string {
	styles := m.theme.Styles()

	if !m.snapshot.HasSelection() {
		return strings.Join(styleLines(wrap(WelcomePrompt, width), styles.Heading), "\n")
	}
	obj := m.snapshot.Selected

	var lines []string

	// Heading
	lines = append(lines, styleLines(wrap(obj.Title(), width), styles.Heading)...)
	lines = append(lines, "")

	// Artist
	lines = append(lines, styleLines(wrap(obj.ArtistDisplayName(), width), styles.Text.Bold(true))...)
	lines = append(lines, styleLines(wrap(obj.ArtistDisplayBio(), width), styles.MutedText)...)
	lines = append(lines, "")

	// Image
	lines = append(lines, m.renderImage(obj, width)...)
	lines = append(lines, "")

	// Definitions
	lines = append(lines, m.renderDefinition("Medium:", width, obj.Medium())...)
	lines = append(lines, m.renderDefinition("Dimension:", width, obj.Dimensions())...)
	lines = append(lines, m.renderDefinition("Culture:", width, obj.Culture(), obj.Period())...)

	return strings.Join(lines, "\n")
}

// renderDefinition renders a term followed by its indented values. Empty
// values keep their line so the layout does not shift between objects.
func (m Model) renderDefinition(term string, width int, values ...string) []string {
	styles := m.theme.Styles()
	lines := []string{styles.AccentText.Render(term)}
	for _, value := range values {
		wrapped := wrap(value, max(width-2, 1))
		if len(wrapped) == 0 {
			lines = append(lines, "")
			continue
		}
		for _, line := range wrapped {
			lines = append(lines, "  "+styles.Text.Render(line))
		}
	}
	return lines
}

// selectedField returns a string field of the selected object, or "" when
// nothing is selected.
func (m Model) selectedField(field string) string {
	if !m.snapshot.HasSelection() {
		return ""
	}
	return m.snapshot.Selected.String(field)
}

// selectedID returns the object id of the current selection.
func (m Model) selectedID() string {
	return m.selectedField(met.FieldObjectID)
}
