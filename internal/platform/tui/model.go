package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vovakirdan/geocoin/internal/core"
	"github.com/vovakirdan/geocoin/internal/events"
	"github.com/vovakirdan/geocoin/internal/game"
	"github.com/vovakirdan/geocoin/internal/storage"
)

// Layout constants
const (
	sidebarWidth  = 30 // Width of the stats sidebar, border included
	footerHeight  = 2  // Status line and help line
	recentEvents  = 6  // Messages kept for the sidebar
	hereCoinsShow = 4  // Coins of the current cache listed in the sidebar
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for one player's game session.
type Model struct {
	session  *game.Session
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	status   *StatusLog
	seq      int // Number of handled actions, ties flashes to their action
	runID    string
	quitting bool
}

// NewModel creates a new Bubble Tea model driving session.
// store may be nil, in which case the run is not recorded.
func NewModel(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	status := NewStatusLog(recentEvents)
	session.Bus().AddObserver(status)

	m := Model{
		session: session,
		store:   store,
		config:  cfg,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		status:  status,
	}
	m.screen = core.NewScreen(m.mapSize())
	m.help.Width = cfg.ScreenW
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(m.mapSize())
		m.help.Width = msg.Width
		return m, nil

	case FlashExpiredMsg:
		if msg.Seq == m.seq {
			m.status.ClearFlash()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if !action.Mutates() {
		return m, nil
	}

	m.apply(action)
	m.seq++
	return m, flashCmd(m.seq)
}

// apply runs a mutating action on the session. Failures are published on
// the bus and show up on the status line.
func (m Model) apply(action core.Action) {
	if dir, ok := action.Direction(); ok {
		m.session.Move(dir)
		return
	}

	var err error
	switch action {
	case core.ActionCollect:
		err = m.session.CollectFirst()
	case core.ActionDeposit:
		err = m.session.DepositLast()
	case core.ActionSave:
		m.session.Save()
	case core.ActionUndo:
		err = m.session.Undo()
	case core.ActionReset:
		m.session.Reset()
	}
	if err != nil {
		m.logger.Debug("action rejected", "action", action, "error", err)
	}
}

// recordRun stores the final score once.
func (m *Model) recordRun() {
	if m.store == nil || m.runID != "" {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		Player:       m.config.Player,
		Score:        m.session.Score(),
		Coins:        len(m.session.Inventory()),
		CellsVisited: m.session.CellsVisited(),
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.runID = id
	m.logger.Info("run recorded", "id", id, "player", m.config.Player, "score", m.session.Score())
}

// RunID returns the ID of the recorded run, or "" if none was recorded.
func (m Model) RunID() string {
	return m.runID
}

// mapSize returns the screen size left for the map.
func (m Model) mapSize() (int, int) {
	return max(m.config.ScreenW-sidebarWidth, 0), max(m.config.ScreenH-footerHeight, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawMap(m.screen, m.session)
	body := lipgloss.JoinHorizontal(lipgloss.Top, RenderScreen(m.screen), m.renderSidebar())

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderSidebar renders player stats, the cache underfoot and recent events.
func (m Model) renderSidebar() string {
	s := m.session
	inner := sidebarWidth - 4 // Border and padding

	var b strings.Builder
	b.WriteString(titleStyle.Render("GEOCOIN"))
	b.WriteString("\n\n")

	pos := s.Position()
	rows := [][2]string{
		{"Player", m.config.Player},
		{"Cell", s.Cell().String()},
		{"Lat", fmt.Sprintf("%.6f", pos.Lat)},
		{"Lng", fmt.Sprintf("%.6f", pos.Lng)},
		{"Coins", fmt.Sprintf("%d", len(s.Inventory()))},
		{"Score", fmt.Sprintf("%d", s.Score())},
		{"Saves", fmt.Sprintf("%d", s.HistoryLen())},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-7s", r[0])))
		b.WriteString(fit(r[1], inner-7))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Here"))
	b.WriteString("\n")
	if site, ok := s.Site(s.Cell()); ok && len(site.Coins) > 0 {
		for i, c := range site.Coins {
			if i == hereCoinsShow {
				b.WriteString(fmt.Sprintf("  +%d more\n", len(site.Coins)-i))
				break
			}
			b.WriteString(fit("  "+c.String(), inner))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(labelStyle.Render("  nothing"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Recent"))
	for _, line := range m.status.Lines() {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(line, inner))
	}

	_, h := m.mapSize()
	return sidebarStyle.Width(sidebarWidth - 2).Height(max(h-2, 0)).Render(b.String())
}

// renderStatus renders the latest event, highlighting failures.
func (m Model) renderStatus() string {
	msg, kind := m.status.Flash()
	if msg == "" {
		return ""
	}
	msg = fit(msg, m.config.ScreenW)
	switch kind {
	case events.NotFound, events.EmptyHistory:
		return warnStyle.Render(msg)
	}
	return statusStyle.Render(msg)
}

// fit shortens s to width columns, marking the cut with an ellipsis.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// Run starts the Bubble Tea program for session and records the run on quit.
// It returns the recorded run ID, empty when nothing was recorded.
func Run(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (string, error) {
	model := NewModel(session, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(Model); ok {
		return m.RunID(), nil
	}
	return "", nil
}
