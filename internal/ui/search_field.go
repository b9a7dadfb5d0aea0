package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const searchPlaceholder = "Looking For"

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = "› "
	return ti
}

// handleSearchKey routes keys to the search field. The field is controlled:
// after every edit its value is written to the store, and the field is
// reset from the store whenever a snapshot arrives.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		// No validation and no debouncing: an empty query is sent as is.
		return m, runSearchCmd(m.ctx, m.ctrl)
	case key.Matches(msg, m.keys.Escape):
		return m, m.setFocus(paneResults)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.snapshot.Query {
		m.ctrl.SetQuery(value)
		cmd = tea.Batch(cmd, m.applySnapshot(m.ctrl.Snapshot()))
	}
	return m, cmd
}

// renderSearchField renders the search box.
func (m Model) renderSearchField() string {
	return m.renderTitledBox("Search", m.input.View(), m.width, searchHeight, m.focus == paneSearch)
}
