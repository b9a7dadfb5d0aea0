package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/metsearch/internal/met"
	"github.com/five82/metsearch/internal/prefs"
	"github.com/five82/metsearch/internal/state"
)

// pane identifies which part of the screen receives keys.
type pane int

const (
	paneSearch pane = iota
	paneResults
	paneDetail
)

var paneOrder = []pane{paneSearch, paneResults, paneDetail}

// Controller is the part of collection.Controller the UI drives. All API
// I/O happens behind it.
type Controller interface {
	Snapshot() state.Snapshot
	Subscribe(fn state.Listener) func()
	SetQuery(query string)
	RunSearch(ctx context.Context) error
	SelectObject(ctx context.Context, id met.ObjectID) error
	FallbackImage() string
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller Controller
	ThemeName  string
	PrefsPath  string
	Logger     *slog.Logger

	// Opener shows a file or URL in the system viewer. Defaults to
	// openExternal.
	Opener func(target string) error
	// Clipboard writes text to the system clipboard. Defaults to
	// clipboard.WriteAll.
	Clipboard func(text string) error

	// InitialQuery is typed into the search field and submitted on start
	// when non-empty.
	InitialQuery string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	ctrl      Controller
	prefsPath string
	logger    *slog.Logger
	opener    func(string) error
	clip      func(string) error
	autorun   bool

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	focus    pane
	showHelp bool
	status   string

	// Data state
	snapshot state.Snapshot

	// Components
	input          textinput.Model
	cursor         int
	offset         int
	detailViewport viewport.Model
	spinner        spinner.Model
	spinning       bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultThemeName
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	opener := opts.Opener
	if opener == nil {
		opener = openExternal
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = writeClipboard
	}

	query := strings.TrimSpace(opts.InitialQuery)
	if query != "" {
		opts.Controller.SetQuery(query)
	}

	m := Model{
		ctx:       ctx,
		ctrl:      opts.Controller,
		prefsPath: prefsPath,
		logger:    logger,
		opener:    opener,
		clip:      clip,
		autorun:   query != "",
		keys:      DefaultKeyMap(),
		help:      help.New(),
		focus:     paneSearch,
		snapshot:  opts.Controller.Snapshot(),
		input:     newSearchInput(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.applyTheme(GetTheme(themeName))
	m.input.SetValue(m.snapshot.Query)
	m.input.Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.autorun {
		cmds = append(cmds, runSearchCmd(m.ctx, m.ctrl))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initDetailViewport()
		}
		m.ready = true
		m.resize()
		return m, nil

	case snapshotMsg:
		// Notifications are delivered from goroutines and may arrive out of
		// order; an older version never replaces a newer one.
		if msg.Version < m.snapshot.Version {
			return m, nil
		}
		return m, m.applySnapshot(state.Snapshot(msg))

	case requestDoneMsg:
		return m, m.applySnapshot(m.ctrl.Snapshot())

	case actionMsg:
		m.status = msg.text
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.Pending == 0 {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.cycleFocus(-1)
	}

	// The search field owns every other key while focused.
	if m.focus == paneSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Search):
		return m, m.setFocus(paneSearch)
	case key.Matches(msg, m.keys.CopyID):
		return m, m.copySelectedID()
	case key.Matches(msg, m.keys.CopyImage):
		return m, m.copySelectedImage()
	case key.Matches(msg, m.keys.OpenImage):
		return m, m.openSelectedImage()
	}

	switch m.focus {
	case paneResults:
		return m.handleResultsKey(msg)
	case paneDetail:
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// cycleFocus moves focus step panes forward (or backward when negative).
func (m *Model) cycleFocus(step int) tea.Cmd {
	idx := slices.Index(paneOrder, m.focus)
	next := (idx + step + len(paneOrder)) % len(paneOrder)
	return m.setFocus(paneOrder[next])
}

func (m *Model) setFocus(p pane) tea.Cmd {
	m.focus = p
	if p == paneSearch {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
	m.updateDetailViewport()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// applyTheme restyles the bubbles components for t.
func (m *Model) applyTheme(t Theme) {
	m.theme = t
	styles := t.Styles()
	m.spinner.Style = styles.AccentText
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

// applySnapshot makes s the rendered state and starts the activity spinner
// when requests are in flight.
func (m *Model) applySnapshot(s state.Snapshot) tea.Cmd {
	prev := m.snapshot
	m.snapshot = s

	if !slices.Equal(prev.Results, s.Results) {
		m.cursor = 0
		m.offset = 0
	}
	m.clampCursor()
	if m.input.Value() != s.Query {
		m.input.SetValue(s.Query)
	}
	m.updateDetailViewport()
	if !reflect.DeepEqual(prev.Selected, s.Selected) {
		m.detailViewport.GotoTop()
	}

	if s.Pending > 0 && !m.spinning {
		m.spinning = true
		return m.spinner.Tick
	}
	return nil
}

// resize applies the current terminal size to the components.
func (m *Model) resize() {
	m.input.Width = max(m.width-8, 1)
	m.help.Width = m.width
	w, h := m.detailSize()
	m.detailViewport.Width = w
	m.detailViewport.Height = h
	m.ensureCursorVisible()
	m.updateDetailViewport()
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	if m.width < LayoutMinWidth {
		return m.theme.Styles().MutedText.Render("Terminal too narrow")
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderSearchField())
	b.WriteString("\n")

	b.WriteString(m.renderBody())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

// Messages

// snapshotMsg carries the store state after a mutation.
type snapshotMsg state.Snapshot

// requestDoneMsg is returned when a controller call finishes, whatever its
// outcome.
type requestDoneMsg struct{}

// actionMsg reports the result of a clipboard or open action.
type actionMsg struct {
	text string
}

// Commands

func runSearchCmd(ctx context.Context, ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		// Failures are logged by the controller and never shown.
		_ = ctrl.RunSearch(ctx)
		return requestDoneMsg{}
	}
}

func selectObjectCmd(ctx context.Context, ctrl Controller, id met.ObjectID) tea.Cmd {
	return func() tea.Msg {
		_ = ctrl.SelectObject(ctx, id)
		return requestDoneMsg{}
	}
}

// Run starts the Bubble Tea program and feeds it store changes until it
// exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))

	// Listeners run inside store mutations, some of which happen during
	// Update, so Send must not block the caller.
	unsubscribe := opts.Controller.Subscribe(func(s state.Snapshot) {
		go p.Send(snapshotMsg(s))
	})
	defer unsubscribe()

	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
