package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nkarpov/mariosim/internal/sim"
	"github.com/nkarpov/mariosim/internal/storage"
)

// appState identifies which screen the app is currently showing.
type appState int

const (
	stateSetup appState = iota
	stateSession
	stateHistory
)

// AppModel manages the full flow: setup menu -> session -> setup, with a
// detour to the history screen. It is the top-level model for both local
// play and SSH sessions.
type AppModel struct {
	sess     *sim.Session
	store    *storage.Store
	width    int
	height   int
	state    appState
	setup    SetupModel
	session  *SessionModel
	history  *HistoryModel
	quitting bool
}

// NewAppModel creates an app model around the given session and store.
// The store may be nil; session history is then disabled.
func NewAppModel(sess *sim.Session, store *storage.Store, width, height int) AppModel {
	return AppModel{
		sess:   sess,
		store:  store,
		width:  width,
		height: height,
		setup:  NewSetupModel(sess, width, height),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.setup.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track terminal size globally so screen switches get current dimensions.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.state {
	case stateSession:
		return m.updateSession(msg)
	case stateHistory:
		return m.updateHistory(msg)
	default:
		return m.updateSetup(msg)
	}
}

// updateSetup handles updates while the setup menu is showing.
func (m AppModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setup, ok := newSetup.(SetupModel); ok {
		m.setup = setup
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.setup.Started() {
		m.sess.Start()
		session := NewSessionModel(m.sess, m.store, m.width, m.height)
		m.session = &session
		m.state = stateSession
		return m, m.session.Init()
	}

	if m.setup.WantsHistory() {
		history := NewHistoryModel(m.store, m.width, m.height)
		m.history = &history
		m.state = stateHistory
		return m, m.history.Init()
	}

	return m, cmd
}

// updateSession handles updates while a session is running.
func (m AppModel) updateSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.session.Update(msg)
	if session, ok := newModel.(SessionModel); ok {
		m.session = &session
	}

	if m.session.BackToSetup() {
		m.session = nil
		m.setup = NewSetupModel(m.sess, m.width, m.height)
		m.state = stateSetup
		return m, m.setup.Init()
	}

	if m.session.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateHistory handles updates while the history screen is showing.
func (m AppModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if history, ok := newModel.(HistoryModel); ok {
		m.history = &history
	}

	if m.history.WantsBack() {
		m.history = nil
		m.setup = NewSetupModel(m.sess, m.width, m.height)
		m.state = stateSetup
		return m, m.setup.Init()
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateSession:
		return m.session.View()
	case stateHistory:
		return m.history.View()
	default:
		return m.setup.View()
	}
}

// Run starts the Bubble Tea program with the app model and blocks until
// the user quits.
func Run(sess *sim.Session, store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewAppModel(sess, store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
