package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nkarpov/mariosim/internal/core"
	"github.com/nkarpov/mariosim/internal/sim"
	"github.com/nkarpov/mariosim/internal/storage"
)

// helpRows is the number of terminal rows reserved for the help bar.
const helpRows = 2

// sessionKeyMap defines the key bindings shown in the session help bar.
type sessionKeyMap struct {
	Action  key.Binding
	Random  key.Binding
	Auto    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Variant key.Binding
	Scheme  key.Binding
	Speed   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the compact help view.
func (k sessionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Random, k.Auto, k.Pause, k.Speed, k.Back}
}

// FullHelp returns key bindings for the expanded help view.
func (k sessionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Action, k.Random, k.Auto, k.Pause},
		{k.Variant, k.Scheme, k.Speed},
		{k.Restart, k.Back, k.Quit},
	}
}

func defaultSessionKeyMap() sessionKeyMap {
	return sessionKeyMap{
		Action: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="),
			key.WithHelp("1-9", "action"),
		),
		Random: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "random step"),
		),
		Auto: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "auto-play"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Variant: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "variant"),
		),
		Scheme: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "controls"),
		),
		Speed: key.NewBinding(
			key.WithKeys("[", "]"),
			key.WithHelp("[/]", "speed"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "setup"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionModel is the Bubble Tea model for a running session.
type SessionModel struct {
	sess        *sim.Session
	screen      *core.Screen
	store       *storage.Store
	keyMapper   *KeyMapper
	keys        sessionKeyMap
	help        help.Model
	width       int
	height      int
	lastAction  sim.Action
	saved       bool // Session already recorded for the current game over
	backToSetup bool
	quitting    bool
}

// NewSessionModel creates a session model. The session itself is owned and
// configured by the caller; the model only drives it.
func NewSessionModel(sess *sim.Session, store *storage.Store, width, height int) SessionModel {
	return SessionModel{
		sess:       sess,
		screen:     core.NewScreen(width, max(1, height-helpRows)),
		store:      store,
		keyMapper:  NewKeyMapper(),
		keys:       defaultSessionKeyMap(),
		help:       help.New(),
		width:      width,
		height:     height,
		lastAction: sim.ActionNoop,
	}
}

// Init arms the auto-play timer when auto-play is already enabled.
func (m SessionModel) Init() tea.Cmd {
	if m.sess.AutoPlay() {
		return autoTickCmd(m.sess.Snapshot().Speed)
	}
	return nil
}

// Update handles messages.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-helpRows))
		return m, nil
	case AutoTickMsg:
		return m.handleAutoTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Action keys first so digits are not shadowed by controls
	if action, ok := m.keyMapper.MapAction(msg, m.sess.Snapshot().Scheme); ok {
		res := m.sess.Tick(action)
		m.lastAction = res.Action
		m.maybeSave(res.State)
		return m, nil
	}

	switch m.keyMapper.MapControl(msg) {
	case ControlQuit:
		m.quitting = true
		return m, tea.Quit

	case ControlBack:
		m.backToSetup = true
		return m, nil

	case ControlRandomTick:
		res := m.sess.Tick(m.sess.RandomAction())
		m.lastAction = res.Action
		m.maybeSave(res.State)

	case ControlToggleAuto:
		m.sess.SetAutoPlay(!m.sess.AutoPlay())
		if m.sess.AutoPlay() {
			return m, autoTickCmd(m.sess.Snapshot().Speed)
		}

	case ControlPause:
		m.sess.TogglePause()

	case ControlRestart:
		m.sess.Start()
		m.saved = false
		m.lastAction = sim.ActionNoop
		if m.sess.AutoPlay() {
			return m, autoTickCmd(m.sess.Snapshot().Speed)
		}

	case ControlCycleVariant:
		m.sess.CycleVariant(1)

	case ControlCycleScheme:
		m.sess.CycleScheme(1)

	case ControlSpeedSlower:
		m.sess.AdjustSpeed(1)

	case ControlSpeedFaster:
		m.sess.AdjustSpeed(-1)
	}

	return m, nil
}

// handleAutoTick runs one auto-play tick and re-arms the timer while the
// session can still advance.
func (m SessionModel) handleAutoTick() (tea.Model, tea.Cmd) {
	if !m.sess.AutoPlay() {
		return m, nil
	}

	res := m.sess.AutoTick()
	m.lastAction = res.Action
	m.maybeSave(res.State)

	// Lives exhausted: the timer stops until the user restarts
	if res.State.Done {
		return m, nil
	}
	return m, autoTickCmd(res.State.Speed)
}

// maybeSave records the finished session once per game over.
func (m *SessionModel) maybeSave(st sim.State) {
	if !st.Done || m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveSession(storage.SessionRecord{
		Score:     st.Score,
		Steps:     st.Steps,
		LivesLost: m.sess.Tuning().Session.Lives - st.Lives,
		Variant:   string(st.Variant),
		Scheme:    string(st.Scheme),
		AutoPlay:  st.AutoPlay,
	})
}

// View renders the frame, the HUD, and the help bar.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	m.sess.Render(m.screen)
	m.drawHUD()

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// drawHUD overlays the counters readout and state messages on the frame.
func (m SessionModel) drawHUD() {
	st := m.sess.Snapshot()

	counters := fmt.Sprintf(" Score: %d  Lives: %d  Steps: %d  X: %d ",
		st.Score, st.Lives, st.Steps, st.MarioX)
	m.screen.DrawText(1, 0, counters)

	mode := fmt.Sprintf(" %s | %s ", st.Variant.Title(), st.Scheme.Title())
	m.screen.DrawText(max(0, m.screen.Width()-len(mode)-1), 0, mode)

	status := fmt.Sprintf(" %s  auto: %s  speed: %.2fs/tick  last: %s ",
		statusText(st), onOff(st.AutoPlay), st.Speed, m.lastAction)
	m.screen.DrawText(1, 1, status)

	if st.Paused {
		m.drawCenteredMessage("PAUSED", "Press P to resume")
	}
	if st.Done {
		m.drawCenteredMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", st.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (m SessionModel) drawCenteredMessage(title, subtitle string) {
	w, h := m.screen.Width(), m.screen.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	m.screen.FillRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box)
	m.screen.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	m.screen.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// BackToSetup reports whether the user asked to return to the setup menu.
func (m SessionModel) BackToSetup() bool {
	return m.backToSetup
}

// IsQuitting reports whether the user asked to exit entirely.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

func statusText(st sim.State) string {
	switch {
	case st.Done:
		return "game over"
	case st.Paused:
		return "paused"
	case st.Running:
		return "running"
	default:
		return "idle"
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
