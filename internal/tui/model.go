package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leakgate/leakgate/internal/report"
	"github.com/leakgate/leakgate/internal/types"
)

const snippetRadius = 3

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sevHighStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	sevMedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	sevLowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	markerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Model is the findings browser state.
type Model struct {
	findings []types.Finding
	root     string // base dir for relative finding paths
	cursor   int
	snippet  viewport.Model
	width    int
	height   int
	ready    bool
	status   string
	rescan   func() ([]types.Finding, error)
}

func NewModel(findings []types.Finding, root string, rescan func() ([]types.Finding, error)) Model {
	return Model{findings: findings, root: root, rescan: rescan}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listHeight := m.listHeight()
		snippetHeight := m.height - listHeight - 4
		if snippetHeight < 3 {
			snippetHeight = 3
		}
		if !m.ready {
			m.snippet = viewport.New(m.width, snippetHeight)
			m.ready = true
		} else {
			m.snippet.Width = m.width
			m.snippet.Height = snippetHeight
		}
		m.refreshSnippet()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshSnippet()
			}
		case "down", "j":
			if m.cursor < len(m.findings)-1 {
				m.cursor++
				m.refreshSnippet()
			}
		case "c":
			m.copyLocation()
		case "r":
			m.doRescan()
		}
	}
	var cmd tea.Cmd
	m.snippet, cmd = m.snippet.Update(msg)
	return m, cmd
}

func (m *Model) copyLocation() {
	if len(m.findings) == 0 {
		return
	}
	f := m.findings[m.cursor]
	loc := fmt.Sprintf("%s:%d", f.Path, f.Line)
	if err := clipboard.WriteAll(loc); err != nil {
		m.status = "clipboard unavailable"
		return
	}
	m.status = "copied " + loc
}

func (m *Model) doRescan() {
	if m.rescan == nil {
		return
	}
	fs, err := m.rescan()
	if err != nil {
		m.status = "rescan failed: " + err.Error()
		return
	}
	m.findings = fs
	if m.cursor >= len(fs) {
		m.cursor = len(fs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.status = fmt.Sprintf("rescanned: %d findings", len(fs))
	m.refreshSnippet()
}

func (m *Model) listHeight() int {
	h := len(m.findings)
	max := m.height / 2
	if max < 5 {
		max = 5
	}
	if h > max {
		h = max
	}
	if h < 1 {
		h = 1
	}
	return h
}

// refreshSnippet loads the lines around the selected finding and syntax
// highlights them, marking the flagged line.
func (m *Model) refreshSnippet() {
	if !m.ready || len(m.findings) == 0 {
		return
	}
	f := m.findings[m.cursor]
	p := f.Path
	if m.root != "" && !filepath.IsAbs(p) {
		p = filepath.Join(m.root, p)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		m.snippet.SetContent(dimStyle.Render("(" + f.Path + " not readable)"))
		return
	}
	lines := strings.Split(string(b), "\n")
	start := f.Line - 1 - snippetRadius
	if start < 0 {
		start = 0
	}
	end := f.Line + snippetRadius
	if end > len(lines) {
		end = len(lines)
	}
	var sb strings.Builder
	for i := start; i < end; i++ {
		prefix := "  "
		text := highlightLine(lines[i], f.Path)
		if i == f.Line-1 {
			prefix = markerStyle.Render("» ")
			text = lines[i] // keep the flagged line unstyled so the match stands out
		}
		fmt.Fprintf(&sb, "%s%s %s\n", prefix, dimStyle.Render(fmt.Sprintf("%4d", i+1)), text)
	}
	m.snippet.SetContent(sb.String())
}

func (m Model) View() string {
	if len(m.findings) == 0 {
		return titleStyle.Render("leakgate") + "\n\n  No secrets found ✅\n\n" + statusStyle.Render("q quit · r rescan")
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("leakgate — %d findings", len(m.findings))))
	sb.WriteString("\n\n")

	listHeight := m.listHeight()
	first := 0
	if m.cursor >= listHeight {
		first = m.cursor - listHeight + 1
	}
	for i := first; i < len(m.findings) && i < first+listHeight; i++ {
		f := m.findings[i]
		row := fmt.Sprintf("%-6s %-20s %s:%d", f.Severity, f.Rule, f.Path, f.Line)
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + row))
		} else {
			sb.WriteString("  " + severityStyle(f.Severity).Render(row))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	if m.ready {
		sb.WriteString(m.snippet.View())
		sb.WriteString("\n")
	}
	f := m.findings[m.cursor]
	sb.WriteString(dimStyle.Render("  match: " + report.MaskValue(f.Match)))
	sb.WriteString("\n")
	help := "↑/↓ navigate · c copy location · r rescan · q quit"
	if m.status != "" {
		help = m.status + " · " + help
	}
	sb.WriteString(statusStyle.Render(help))
	return sb.String()
}

func severityStyle(s types.Severity) lipgloss.Style {
	switch s {
	case types.SevHigh:
		return sevHighStyle
	case types.SevMed:
		return sevMedStyle
	default:
		return sevLowStyle
	}
}
