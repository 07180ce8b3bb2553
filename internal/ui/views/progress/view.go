package progress

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "swipescoop/internal/modules/progress/dto"
	"swipescoop/internal/ui/theme"
)

const (
	gridColumns = 10
	barWidth    = 20
)

type ProgressPort interface {
	Snapshot(ctx context.Context) (progressdto.SnapshotOutput, error)
}

type SnapshotMsg struct {
	Snapshot progressdto.SnapshotOutput
	Err      error
}

// Model renders streak, placement grid and the rolling window.
type Model struct {
	port   ProgressPort
	snap   progressdto.SnapshotOutput
	colors theme.CategoryColors
	err    error
	width  int
}

func New(port ProgressPort, colors theme.CategoryColors) Model {
	return Model{port: port, colors: colors}
}

// Refresh re-reads the engine snapshot.
func (m Model) Refresh() tea.Cmd {
	if m.port == nil {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		snap, err := port.Snapshot(context.Background())
		return SnapshotMsg{Snapshot: snap, Err: err}
	}
}

func (m Model) Streak() int { return m.snap.Streak }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case SnapshotMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.snap = msg.Snapshot
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Pane.Render(theme.Bad.Render("progress: " + m.err.Error()))
	}
	streak := theme.Pane.Render(RenderStreak(m.snap))
	grid := theme.Pane.Render(theme.Title.Render("Your Reading Grid") + "\n\n" + RenderGrid(m.snap.Cells, m.colors) +
		"\n" + theme.Muted.Render(fmt.Sprintf("%d/%d", m.snap.Occupied, m.snap.Capacity)))
	chart := theme.Pane.Render(theme.Title.Render("Reading Trends") + "\n\n" + RenderWindow(m.snap.Window))
	if m.width > 0 && m.width < 90 {
		return lipgloss.JoinVertical(lipgloss.Left, streak, grid, chart)
	}
	return lipgloss.JoinVertical(lipgloss.Left, streak, lipgloss.JoinHorizontal(lipgloss.Top, grid, chart))
}

func RenderStreak(snap progressdto.SnapshotOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Hot.Render(fmt.Sprintf("%d day streak", snap.Streak)))
	for _, b := range snap.Badges {
		sb.WriteString("  " + theme.Badge(b).Render(b+" badge"))
	}
	return sb.String()
}

// RenderGrid draws each occupied cell in its category color.
func RenderGrid(cells []progressdto.CellOutput, colors theme.CategoryColors) string {
	var sb strings.Builder
	for i, c := range cells {
		if c.Empty {
			sb.WriteString(theme.Muted.Render("·"))
		} else {
			sb.WriteString(colors.Style(c.ColorTag).Render("■"))
		}
		if (i+1)%gridColumns == 0 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

func RenderWindow(values []int) string {
	peak := 0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	bar := lipgloss.NewStyle().Foreground(theme.Sapphire)
	var sb strings.Builder
	for i, v := range values {
		label := fmt.Sprintf("day %d", i+1)
		if i == len(values)-1 {
			label = "today"
		}
		width := v
		if peak > barWidth {
			width = (v*barWidth + peak - 1) / peak
		}
		sb.WriteString(theme.Muted.Render(label) + " " + bar.Render(strings.Repeat("█", width)) + fmt.Sprintf(" %d\n", v))
	}
	return sb.String()
}
