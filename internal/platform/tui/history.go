package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nkarpov/mariosim/internal/storage"
)

const historyPageSize = 15

// HistoryModel is the Bubble Tea model for the session history screen:
// a table of recent sessions plus aggregate stats per display variant.
type HistoryModel struct {
	store     *storage.Store
	keyMapper *KeyMapper
	table     table.Model
	stats     []storage.VariantStats
	loadErr   error
	width     int
	height    int
	back      bool
	quitting  bool
}

// NewHistoryModel creates a history model backed by the given store.
// A nil store yields an empty screen with a hint instead of an error.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:     store,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}
	m.table = newHistoryTable(nil, height)
	m.reload()
	return m
}

// reload refreshes the table rows and stats from the store.
func (m *HistoryModel) reload() {
	if m.store == nil {
		return
	}

	records, err := m.store.RecentSessions(historyPageSize)
	if err != nil {
		m.loadErr = err
		return
	}
	m.stats, m.loadErr = m.store.StatsByVariant()

	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, table.Row{
			rec.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", rec.Score),
			fmt.Sprintf("%d", rec.Steps),
			fmt.Sprintf("%d", rec.LivesLost),
			rec.Variant,
			rec.Scheme,
			onOff(rec.AutoPlay),
		})
	}
	m.table = newHistoryTable(rows, m.height)
}

func newHistoryTable(rows []table.Row, height int) table.Model {
	columns := []table.Column{
		{Title: "When", Width: 17},
		{Title: "Score", Width: 7},
		{Title: "Steps", Width: 7},
		{Title: "Lives lost", Width: 10},
		{Title: "Variant", Width: 12},
		{Title: "Scheme", Width: 9},
		{Title: "Auto", Width: 4},
	}

	tableHeight := height - 10
	if tableHeight < 3 {
		tableHeight = 3
	}
	if tableHeight > historyPageSize+1 {
		tableHeight = historyPageSize + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("15")).
		Bold(true)
	t.SetStyles(styles)

	return t
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation within the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapControl(msg) {
		case ControlQuit:
			m.quitting = true
			return m, tea.Quit
		case ControlBack:
			m.back = true
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history table and per-variant stats.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(setupTitleStyle.Render("Session history"), m.width))
	b.WriteString("\n\n")

	switch {
	case m.store == nil:
		b.WriteString(centerText(setupDimStyle.Render("history unavailable: no database configured"), m.width))
		b.WriteString("\n")
	case m.loadErr != nil:
		b.WriteString(centerText(setupDimStyle.Render("history unavailable: "+m.loadErr.Error()), m.width))
		b.WriteString("\n")
	case len(m.table.Rows()) == 0:
		b.WriteString(centerText(setupDimStyle.Render("no sessions recorded yet"), m.width))
		b.WriteString("\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(m.statsView())
	}

	b.WriteString("\n")
	controls := "Up/Down: scroll  |  B/Esc: back  |  Q: quit"
	b.WriteString(centerText(setupDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// statsView formats the per-variant aggregate line(s).
func (m HistoryModel) statsView() string {
	if len(m.stats) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, s := range m.stats {
		line := fmt.Sprintf("%-14s %3d sessions  high %5d  avg score %7.1f  avg steps %6.1f",
			s.Variant, s.Sessions, s.HighScore, s.AvgScore, s.AvgSteps)
		b.WriteString("  ")
		b.WriteString(setupDimStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// WantsBack reports whether the user asked to return to the setup menu.
func (m HistoryModel) WantsBack() bool {
	return m.back
}

// IsQuitting reports whether the user asked to exit.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}
