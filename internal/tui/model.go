package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"exsum/internal/domain"
	"exsum/internal/ranking"
	"exsum/internal/summarizer"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	Summarize(topN int, reorder bool) ([]domain.Sentence, error)
	Breakdown() (*summarizer.Scores, error)
	TopWords(n int) ([]ranking.WordFrequency, error)
}

const topWordsShown = 8

// Model is the Bubble Tea model for the summary browser.
type Model struct {
	service   SummaryPort
	title     string
	input     textinput.Model
	viewport  viewport.Model
	scores    *summarizer.Scores
	positions map[int]int // first token index -> sentence position
	summary   []domain.Sentence
	keywords  string
	topN      int
	reorder   bool
	status    string
	cursor    int
	ready     bool
}

// New creates a browser over the document already ingested by service.
func New(service SummaryPort, title string, topN int, reorder bool) Model {
	ti := textinput.New()
	ti.Prompt = "N> "
	ti.Placeholder = "Type a sentence count and press Enter"
	ti.Focus()
	ti.CharLimit = 6
	vp := viewport.New(0, 0)
	m := Model{service: service, title: title, input: ti, viewport: vp, topN: topN, reorder: reorder}
	m.load()
	m.resummarize()
	return m
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
		totalHeaderLines := 2 // header + keywords
		totalFooterLines := 1 // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrent())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" {
				return m, nil
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				m.status = fmt.Sprintf("Not a number: %q", raw)
				return m, nil
			}
			m.topN = n
			m.input.Reset()
			m.resummarize()
			return m, nil
		case "ctrl+r":
			m.reorder = !m.reorder
			m.resummarize()
			return m, nil
		case "down":
			if len(m.summary) > 0 {
				m.cursor = (m.cursor + 1) % len(m.summary)
				m.viewport.SetContent(m.renderCurrent())
				return m, nil
			}
		case "up":
			if len(m.summary) > 0 {
				m.cursor = (m.cursor - 1 + len(m.summary)) % len(m.summary)
				m.viewport.SetContent(m.renderCurrent())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the layout and the selected sentence.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Summary: " + m.title)
	keywords := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.keywords)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	body := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + keywords + "\n" + body + "\n" + input + "\n" + status
}

func (m *Model) load() {
	scores, err := m.service.Breakdown()
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.scores = scores
	m.positions = make(map[int]int)
	if scores != nil {
		for i, s := range scores.Sentences {
			if len(s.Tokens) > 0 {
				m.positions[s.Tokens[0].Index] = i
			}
		}
	}
	words, err := m.service.TopWords(topWordsShown)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.keywords = formatKeywords(words)
}

func (m *Model) resummarize() {
	summary, err := m.service.Summarize(m.topN, m.reorder)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.summary = nil
	} else {
		m.summary = summary
		order := "rank order"
		if m.reorder {
			order = "document order"
		}
		m.status = fmt.Sprintf("%d of %d sentences, %s. Up/Down browse, Ctrl+R reorder, Esc quit.",
			len(summary), m.numSentences(), order)
	}
	m.cursor = 0
	m.viewport.SetContent(m.renderCurrent())
}

func (m Model) numSentences() int {
	if m.scores == nil {
		return 0
	}
	return len(m.scores.Sentences)
}

func (m Model) renderCurrent() string {
	if len(m.summary) == 0 {
		return "No sentences selected."
	}
	s := m.summary[m.cursor]
	pos, ok := m.position(s)
	var b strings.Builder
	if ok {
		fmt.Fprintf(&b, "Sentence %d/%d  (#%d in document)  score=%.3f\n\n",
			m.cursor+1, len(m.summary), pos+1, m.scores.Total[pos])
	} else {
		fmt.Fprintf(&b, "Sentence %d/%d\n\n", m.cursor+1, len(m.summary))
	}
	b.WriteString(highlightStyle.Render(s.String()))
	if ok {
		b.WriteString("\n\n")
		b.WriteString(renderBreakdown(m.scores, pos))
	}
	return b.String()
}

func (m Model) position(s domain.Sentence) (int, bool) {
	if m.scores == nil || len(s.Tokens) == 0 {
		return 0, false
	}
	pos, ok := m.positions[s.Tokens[0].Index]
	return pos, ok
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	featureStyle   = lipgloss.NewStyle().Width(14)
)

func renderBreakdown(scores *summarizer.Scores, pos int) string {
	lines := make([]string, 0, len(scores.Features))
	for k, name := range scores.Features {
		v := scores.Vectors[k][pos]
		lines = append(lines, featureStyle.Render(name)+fmt.Sprintf("%6.3f %s", v, bar(v)))
	}
	return strings.Join(lines, "\n")
}

// bar draws a score in [0, 1] as up to ten blocks.
func bar(v float64) string {
	n := int(v*10 + 0.5)
	n = max(0, min(10, n))
	return strings.Repeat("█", n)
}

func formatKeywords(words []ranking.WordFrequency) string {
	if len(words) == 0 {
		return "No keywords."
	}
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%s(%d)", w.Word, w.Frequency)
	}
	return "Keywords: " + strings.Join(parts, " ")
}
