package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	markGlyph   = "●"
	unmarkGlyph = " "
)

// handleResultsKey processes keyboard input for the result list.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clampCursor()
	count := len(m.snapshot.Results)
	if count == 0 {
		return m, nil
	}

	page := max(m.listHeight()-1, 1)
	switch {
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, count-1)
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = count - 1
	case key.Matches(msg, m.keys.PageDown):
		m.cursor = min(m.cursor+page, count-1)
	case key.Matches(msg, m.keys.PageUp):
		m.cursor = max(m.cursor-page, 0)
	case key.Matches(msg, m.keys.Submit):
		id := m.snapshot.Results[m.cursor]
		return m, selectObjectCmd(m.ctx, m.ctrl, id)
	}
	m.ensureCursorVisible()
	return m, nil
}

// listHeight is the number of rows visible in the results pane.
func (m Model) listHeight() int {
	return max(bodyHeight(m.height)-2, 1)
}

// clampCursor keeps the cursor and scroll offset inside the current result
// list.
func (m *Model) clampCursor() {
	last := max(len(m.snapshot.Results)-1, 0)
	m.cursor = min(max(m.cursor, 0), last)
	m.offset = min(max(m.offset, 0), m.cursor)
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls the list so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	rows := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(m.offset, 0)
}

// resultsTitle returns the results pane title with counts.
func (m Model) resultsTitle() string {
	count := len(m.snapshot.Results)
	if count == 0 {
		return "Results"
	}
	return fmt.Sprintf("Results %d/%d", m.cursor+1, count)
}

// renderResults renders the visible window of result rows.
func (m Model) renderResults(width int, bgColor string) string {
	results := m.snapshot.Results
	if len(results) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Muted)).
			Background(lipgloss.Color(bgColor)).
			Render("No results")
	}

	end := min(m.offset+m.listHeight(), len(results))
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.formatResultRow(i, width, bgColor))
	}
	return strings.Join(lines, "\n")
}

// formatResultRow renders one identifier with its selection marker.
// Format: "● 436535"
func (m Model) formatResultRow(i, width int, bgColor string) string {
	id := m.snapshot.Results[i]
	marked := m.snapshot.IsMarked(id)

	glyph := unmarkGlyph
	if marked {
		glyph = markGlyph
	}
	label := truncate(id.String(), max(width-2, 1))

	if i == m.cursor {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		bg := NewBgStyle(m.theme.SelectionBg)
		content := bg.Render(glyph, selText) + bg.Space() + bg.Render(label, selText.Bold(marked))
		return bg.FillLine(content, width)
	}

	styles := m.theme.Styles()
	bg := NewBgStyle(bgColor)
	labelStyle := styles.Text
	if marked {
		labelStyle = styles.MutedText
	}
	content := bg.Render(glyph, styles.Marker) + bg.Space() + bg.Render(label, labelStyle)
	return bg.FillLine(content, width)
}
