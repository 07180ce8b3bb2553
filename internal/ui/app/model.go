package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	deckdto "swipescoop/internal/modules/deck/dto"
	progressdto "swipescoop/internal/modules/progress/dto"
	reportdto "swipescoop/internal/modules/report/dto"
	apperrors "swipescoop/internal/platform/errors"
	"swipescoop/internal/ui/components"
	"swipescoop/internal/ui/theme"
	deckview "swipescoop/internal/ui/views/deck"
	progressview "swipescoop/internal/ui/views/progress"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type progressPort interface {
	Start(ctx context.Context) (progressdto.StartOutput, error)
	Accept(ctx context.Context, itemID, title, sourceName, url, category string) (progressdto.AcceptOutput, error)
	Reject(ctx context.Context, itemID, title string) error
	ResetStreak(ctx context.Context) (progressdto.StreakOutput, error)
	ResetAll(ctx context.Context) (progressdto.SnapshotOutput, error)
	Snapshot(ctx context.Context) (progressdto.SnapshotOutput, error)
}

type deckPort interface {
	Load(ctx context.Context, category string) (deckdto.DeckOutput, error)
	Categories() []string
}

type reportPort interface {
	Write(ctx context.Context) (reportdto.ReportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDeck tabID = iota
	tabProgress
	tabCount
)

var tabLabels = [tabCount]string{"Deck", "Progress"}

// ─── async messages ──────────────────────────────────────────────────────────

type startedMsg struct {
	out progressdto.StartOutput
	err error
}

type acceptedMsg struct {
	out progressdto.AcceptOutput
	err error
}

type rejectedMsg struct{ err error }

type streakResetMsg struct {
	out progressdto.StreakOutput
	err error
}

type fullResetMsg struct{ err error }

type reportWrittenMsg struct {
	out reportdto.ReportOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Save     key.Binding
	Skip     key.Binding
	Category key.Binding
	Reload   key.Binding
	Reset    key.Binding
	Tab      key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Save:     key.NewBinding(key.WithKeys("right", "l", "s"), key.WithHelp("→/s", "save")),
		Skip:     key.NewBinding(key.WithKeys("left", "h", "x"), key.WithHelp("←/x", "skip")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next category")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload deck")),
		Reset:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset streak")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Skip, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Skip, k.Category, k.Reload},
		{k.Reset, k.Tab},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It turns key presses into engine
// events; nothing reaches the engine until the start-up evaluation is done.
type Model struct {
	progress progressPort
	deck     deckPort
	report   reportPort

	deckView     deckview.Model
	progressView progressview.Model

	categories []string
	category   int
	started    bool

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(progress progressPort, deck deckPort, report reportPort, colors map[string]string) Model {
	palette := components.NewPalette()
	categories := deck.Categories()
	palette.SetCategories(categories)
	return Model{
		progress:     progress,
		deck:         deck,
		report:       report,
		deckView:     deckview.New(deck, theme.CategoryColors(colors)),
		progressView: progressview.New(progress, theme.CategoryColors(colors)),
		categories:   categories,
		activeTab:    tabDeck,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      palette,
		status:       "starting",
	}
}

func (m Model) Init() tea.Cmd {
	return m.startCmd()
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
		m.deckView, _ = m.deckView.Update(sz)
		m.progressView, _ = m.progressView.Update(sz)
		return m, nil

	case startedMsg:
		if msg.err != nil && !errors.Is(msg.err, apperrors.ErrStorage) {
			m.status = "start failed: " + msg.err.Error()
			return m, nil
		}
		m.started = true
		m.status = describeStart(msg.out)
		if msg.err != nil {
			m.status += "  (not saved: " + msg.err.Error() + ")"
		}
		return m, tea.Batch(m.deckView.Load(m.currentCategory()), m.progressView.Refresh())

	case acceptedMsg:
		switch {
		case msg.err != nil && !msg.out.Placed:
			m.status = "save failed: " + msg.err.Error()
		case msg.out.GridFull:
			m.status = "grid full, nothing recorded"
		default:
			m.status = fmt.Sprintf("saved %q (%d today)", msg.out.Label, msg.out.TodaySaves)
			if !msg.out.Durable {
				m.status += "  (not saved to disk)"
			}
		}
		return m, m.progressView.Refresh()

	case rejectedMsg:
		if msg.err != nil {
			m.status = "skip failed: " + msg.err.Error()
		} else {
			m.status = "skipped"
		}
		return m, nil

	case streakResetMsg:
		if msg.err != nil {
			m.status = "streak reset: " + msg.err.Error()
		} else {
			m.status = "streak reset"
		}
		return m, m.progressView.Refresh()

	case fullResetMsg:
		if msg.err != nil {
			m.status = "reset: " + msg.err.Error()
		} else {
			m.status = "progress cleared"
		}
		return m, m.progressView.Refresh()

	case reportWrittenMsg:
		if msg.err != nil {
			m.status = "report: " + msg.err.Error()
		} else {
			m.status = "report written to " + msg.out.Path
		}
		return m, nil

	case deckview.LoadedMsg:
		if msg.Err != nil {
			m.status = "deck: " + msg.Err.Error()
		} else if msg.Deck.Offline {
			m.status = msg.Deck.Notice
		}
		m.deckView, _ = m.deckView.Update(msg)
		return m, nil

	case progressview.SnapshotMsg:
		m.progressView, _ = m.progressView.Update(msg)
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		case key.Matches(msg, m.keys.Tab):
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		}
		if !m.started {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Save):
			cmds = append(cmds, m.save())
		case key.Matches(msg, m.keys.Skip):
			cmds = append(cmds, m.skip())
		case key.Matches(msg, m.keys.Category):
			cmds = append(cmds, m.selectCategory((m.category+1)%max(len(m.categories), 1)))
		case key.Matches(msg, m.keys.Reload):
			cmds = append(cmds, m.deckView.Load(m.currentCategory()))
		case key.Matches(msg, m.keys.Reset):
			cmds = append(cmds, m.resetStreakCmd())
		}
	}

	var cmd tea.Cmd
	m.deckView, cmd = m.deckView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.activeTab == tabProgress:
		content = m.progressView.View()
	default:
		content = lipgloss.JoinVertical(lipgloss.Left,
			theme.Pane.Render(progressview.RenderStreak(m.snapshotOrEmpty())),
			m.deckView.View(),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) snapshotOrEmpty() progressdto.SnapshotOutput {
	return progressdto.SnapshotOutput{Streak: m.progressView.Streak()}
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	bar := "SwipeScoop  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("→:save  ←:skip  c:category  ?:help  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	if !m.started {
		m.status = "still starting"
		return m, nil
	}
	switch parts[0] {
	case "save":
		return m, m.save()
	case "skip":
		return m, m.skip()
	case "category":
		if len(parts) < 2 {
			m.status = "usage: category <name>"
			return m, nil
		}
		for i, c := range m.categories {
			if c == strings.ToLower(parts[1]) {
				return m, m.selectCategory(i)
			}
		}
		m.status = "unknown category: " + parts[1]
	case "deck:reload":
		return m, m.deckView.Load(m.currentCategory())
	case "streak:reset":
		return m, m.resetStreakCmd()
	case "progress:reset-all":
		return m, m.resetAllCmd()
	case "report:write":
		return m, m.writeReportCmd()
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func describeStart(out progressdto.StartOutput) string {
	switch {
	case out.StreakAdvanced:
		return fmt.Sprintf("welcome back, streak is now %d", out.Streak)
	case out.StreakRestarted:
		return "new streak started"
	default:
		return fmt.Sprintf("streak %d", out.Streak)
	}
}

func (m Model) currentCategory() string {
	if len(m.categories) == 0 {
		return ""
	}
	return m.categories[m.category]
}

func (m *Model) selectCategory(i int) tea.Cmd {
	m.category = i
	m.status = "category: " + m.currentCategory()
	return m.deckView.Load(m.currentCategory())
}

// save accepts the top card. The item is translated here, once, from the
// deck's article shape to the engine's accepted-item fields. The offline
// placeholder is never saved.
func (m *Model) save() tea.Cmd {
	if m.deckView.Offline() {
		m.status = "offline: nothing to save"
		return nil
	}
	article, ok := m.deckView.Current()
	if !ok {
		m.status = "no card to save"
		return nil
	}
	m.deckView.Advance()
	port := m.progress
	return func() tea.Msg {
		out, err := port.Accept(context.Background(), article.ID, article.Title, article.SourceName, article.URL, article.Category)
		return acceptedMsg{out: out, err: err}
	}
}

func (m *Model) skip() tea.Cmd {
	article, ok := m.deckView.Current()
	if !ok {
		m.status = "no card to skip"
		return nil
	}
	m.deckView.Advance()
	port := m.progress
	return func() tea.Msg {
		return rejectedMsg{err: port.Reject(context.Background(), article.ID, article.Title)}
	}
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) startCmd() tea.Cmd {
	port := m.progress
	return func() tea.Msg {
		out, err := port.Start(context.Background())
		return startedMsg{out: out, err: err}
	}
}

func (m Model) resetStreakCmd() tea.Cmd {
	port := m.progress
	return func() tea.Msg {
		out, err := port.ResetStreak(context.Background())
		return streakResetMsg{out: out, err: err}
	}
}

func (m Model) resetAllCmd() tea.Cmd {
	port := m.progress
	return func() tea.Msg {
		_, err := port.ResetAll(context.Background())
		return fullResetMsg{err: err}
	}
}

func (m Model) writeReportCmd() tea.Cmd {
	port := m.report
	return func() tea.Msg {
		if port == nil {
			return reportWrittenMsg{err: fmt.Errorf("report adapter not configured")}
		}
		out, err := port.Write(context.Background())
		return reportWrittenMsg{out: out, err: err}
	}
}
