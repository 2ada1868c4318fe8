package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nkarpov/mariosim/internal/sim"
)

// Setup menu rows, in display order.
const (
	rowVariant = iota
	rowScheme
	rowAutoPlay
	rowSpeed
	rowStart
	rowHistory
	rowQuit
	rowCount
)

var (
	setupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	setupSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15"))

	setupDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// SetupModel is the Bubble Tea model for the pre-session widget menu:
// display variant, control scheme, auto-play toggle and speed slider.
// The widgets mutate the session's settings directly, so whatever the user
// picked is live the moment the session starts.
type SetupModel struct {
	sess      *sim.Session
	keyMapper *KeyMapper
	cursor    int
	width     int
	height    int
	started   bool
	history   bool
	quitting  bool
}

// NewSetupModel creates a setup model for the given session.
func NewSetupModel(sess *sim.Session, width, height int) SetupModel {
	return SetupModel{
		sess:      sess,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the setup menu.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

// handleKey processes menu navigation and widget adjustment.
func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < rowCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionSelect:
		switch m.cursor {
		case rowStart:
			m.started = true
		case rowHistory:
			m.history = true
		case rowQuit:
			m.quitting = true
			return m, tea.Quit
		case rowAutoPlay:
			m.sess.SetAutoPlay(!m.sess.AutoPlay())
		default:
			m.adjust(1)
		}
	}

	return m, nil
}

// adjust changes the widget value under the cursor by delta positions.
func (m *SetupModel) adjust(delta int) {
	switch m.cursor {
	case rowVariant:
		m.sess.CycleVariant(delta)
	case rowScheme:
		m.sess.CycleScheme(delta)
	case rowAutoPlay:
		m.sess.SetAutoPlay(!m.sess.AutoPlay())
	case rowSpeed:
		m.sess.AdjustSpeed(delta)
	}
}

// View renders the setup menu.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	st := m.sess.Snapshot()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(setupTitleStyle.Render("S U P E R   M A R I O   B R O S"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(setupDimStyle.Render("simulated session demo"), m.width))
	b.WriteString("\n\n")

	rows := []string{
		widgetRow("Display variant", fmt.Sprintf("‹ %s ›", st.Variant.Title())),
		widgetRow("Control scheme", fmt.Sprintf("‹ %s ›", st.Scheme.Title())),
		widgetRow("Auto-play", fmt.Sprintf("[%s]", onOff(st.AutoPlay))),
		widgetRow("Speed", speedSlider(st, m.sess)),
		"Start session",
		"Session history",
		"Quit",
	}

	for i, row := range rows {
		cursor := "  "
		line := row
		if i == m.cursor {
			cursor = "> "
			line = setupSelectedStyle.Render(row)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(setupDimStyle.Render(st.Variant.EnvID()), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: navigate  |  Left/Right: adjust  |  Enter: select  |  Q: quit"
	b.WriteString(centerText(setupDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// widgetRow formats a label/value pair with a fixed-width label column.
func widgetRow(label, value string) string {
	return fmt.Sprintf("%-16s %s", label, value)
}

// speedSlider renders the speed setting as a text slider between the
// configured bounds.
func speedSlider(st sim.State, sess *sim.Session) string {
	bounds := sess.Tuning().Speed
	span := bounds.Max - bounds.Min
	const width = 10

	pos := 0
	if span > 0 {
		pos = int((st.Speed - bounds.Min) / span * float64(width-1))
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		if i == pos {
			b.WriteRune('●')
		} else {
			b.WriteRune('─')
		}
	}
	return fmt.Sprintf("%s %.2fs/tick", b.String(), st.Speed)
}

// centerText centers text within the given width, ignoring ANSI sequences
// via lipgloss width accounting.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// Started reports whether the user selected "Start session".
func (m SetupModel) Started() bool {
	return m.started
}

// WantsHistory reports whether the user selected the history screen.
func (m SetupModel) WantsHistory() bool {
	return m.history
}

// IsQuitting reports whether the user asked to exit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}
