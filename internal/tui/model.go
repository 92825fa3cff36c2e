package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CyrilZ0817/tfidf-text-processing/internal/domain"
)

// Model is the Bubble Tea model for browsing per-document term rankings.
// Up/down switches documents; typing filters terms by prefix.
type Model struct {
	rankings []domain.RankedTerms
	input    textinput.Model
	viewport viewport.Model
	cursor   int
	topTerms int
	status   string
	ready    bool
}

// New creates a new TUI model over the pipeline's ranked output.
func New(rankings []domain.RankedTerms, topTerms int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a prefix to filter terms"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		rankings: rankings,
		input:    ti,
		viewport: vp,
		topTerms: topTerms,
		status:   fmt.Sprintf("%d documents scored. Up/down to browse, Ctrl+C to quit.", len(rankings)),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + qh + 1 // header + status + input frame + spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentDocument())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "down":
			if len(m.rankings) > 0 {
				m.cursor = (m.cursor + 1) % len(m.rankings)
				m.viewport.SetContent(m.renderCurrentDocument())
				return m, nil
			}
		case "up":
			if len(m.rankings) > 0 {
				m.cursor = (m.cursor - 1 + len(m.rankings)) % len(m.rankings)
				m.viewport.SetContent(m.renderCurrentDocument())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.viewport.SetContent(m.renderCurrentDocument())
	return m, cmd
}

// View renders the TUI layout and the current document's ranking.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("TF-IDF Term Rankings")
	results := resultBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderCurrentDocument() string {
	if len(m.rankings) == 0 {
		return "No documents."
	}
	r := m.rankings[m.cursor]
	title := fmt.Sprintf("Document %d/%d  %s", m.cursor+1, len(m.rankings), r.DocumentID)
	terms := m.filterTerms(r.Terms)
	if len(terms) == 0 {
		return title + "\n\nNo terms."
	}
	shown := len(terms)
	if m.topTerms > 0 && m.topTerms < shown {
		shown = m.topTerms
	}
	var b strings.Builder
	b.WriteString(title + "\n\n")
	for i, ts := range terms[:shown] {
		line := fmt.Sprintf("%2d. %-20s %.4f", i+1, ts.Term, ts.Score)
		if i == 0 {
			line = highlightStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) filterTerms(terms []domain.TermScore) []domain.TermScore {
	prefix := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if prefix == "" {
		return terms
	}
	var out []domain.TermScore
	for _, ts := range terms {
		if strings.HasPrefix(ts.Term, prefix) {
			out = append(out, ts)
		}
	}
	return out
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
