package ui

import "fmt"

const appTitle = "The Metropolitan Museum of Art"

// renderHeader renders the title bar with result counts and activity.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render(appTitle, styles.Logo)}

	if n := len(m.snapshot.Results); n > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d results", n), styles.Text))
	}
	if n := len(m.snapshot.Marked); n > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d viewed", n), styles.MutedText))
	}
	if m.snapshot.Pending > 0 {
		// Activity only; failures are never surfaced here.
		parts = append(parts, m.spinner.View()+bg.Space()+bg.Render("loading", styles.AccentText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  ·  "))
}

// renderFooter renders the action status, or the short key help when there
// is none.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	content := m.help.View(m.keys)
	if m.status != "" {
		content = styles.WarningText.Render(m.status)
	}
	return styles.Footer.Width(m.width).Render(content)
}
