package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	deckdto "swipescoop/internal/modules/deck/dto"
	"swipescoop/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type DeckPort interface {
	Load(ctx context.Context, category string) (deckdto.DeckOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Deck deckdto.DeckOutput
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model shows one headline card at a time. Saving or skipping the card is
// decided by the parent; this view only tracks position in the deck.
type Model struct {
	port    DeckPort
	deck    deckdto.DeckOutput
	index   int
	colors  theme.CategoryColors
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
}

func New(port DeckPort, colors theme.CategoryColors) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Peach)
	return Model{port: port, colors: colors, spinner: sp}
}

// Load fetches the deck for category and resets the card position.
func (m *Model) Load(category string) tea.Cmd {
	if m.port == nil {
		return nil
	}
	m.loading = true
	port := m.port
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		deck, err := port.Load(context.Background(), category)
		return LoadedMsg{Deck: deck, Err: err}
	})
}

func (m Model) Category() string { return m.deck.Category }

// Current returns the card on top of the deck.
func (m Model) Current() (deckdto.ArticleOutput, bool) {
	if m.loading || m.index >= len(m.deck.Articles) {
		return deckdto.ArticleOutput{}, false
	}
	return m.deck.Articles[m.index], true
}

// Advance moves past the current card and reports whether one remains.
func (m *Model) Advance() bool {
	if m.index < len(m.deck.Articles) {
		m.index++
	}
	return m.index < len(m.deck.Articles)
}

func (m Model) Remaining() int {
	return len(m.deck.Articles) - m.index
}

func (m Model) Offline() bool { return m.deck.Offline }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.deck = msg.Deck
			m.index = 0
		}
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	w := m.width - 4
	if w < 30 {
		w = 60
	}
	var body string
	switch {
	case m.loading:
		body = m.spinner.View() + " loading articles"
	case m.err != nil:
		body = theme.Bad.Render("deck: " + m.err.Error())
	default:
		body = m.renderCard(w - 4)
	}
	header := theme.Title.Render("Discover News")
	if m.deck.Category != "" {
		header += "  " + m.colors.Style(m.deck.Category).Render("● "+m.deck.Category)
	}
	return theme.PaneActive.Width(w).Render(header + "\n\n" + body)
}

func (m Model) renderCard(width int) string {
	article, ok := m.Current()
	if !ok {
		if len(m.deck.Articles) == 0 {
			return theme.Muted.Render("no articles in this category")
		}
		return theme.Muted.Render("deck finished. pick another category or press r to reload")
	}
	var sb strings.Builder
	if m.deck.Notice != "" {
		sb.WriteString(theme.Bad.Render(m.deck.Notice) + "\n\n")
	}
	sb.WriteString(lipgloss.NewStyle().Bold(true).Width(width).Render(article.Title) + "\n")
	if article.SourceName != "" {
		sb.WriteString(theme.Muted.Render(article.SourceName) + "\n")
	}
	desc := article.Description
	if strings.TrimSpace(desc) == "" {
		desc = "No description available."
	}
	sb.WriteString("\n" + lipgloss.NewStyle().Width(width).Render(desc) + "\n")
	if article.URL != "" {
		sb.WriteString("\n" + theme.Muted.Render(article.URL) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render(fmt.Sprintf("card %d of %d", m.index+1, len(m.deck.Articles))))
	return sb.String()
}
