// Package tui is an interactive scan form: a folder path, a "top N" count,
// a spinner while the scan runs and the rendered result.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/guidefari/projstats/internal/client"
	"github.com/guidefari/projstats/internal/core"
	"github.com/guidefari/projstats/internal/report"
)

const barWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6366f1"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type scanDoneMsg struct {
	report *core.ScanReport
	err    error
}

type Model struct {
	ctx       context.Context
	session   *client.Session
	renderer  *report.Renderer
	exportDir string

	path    textinput.Model
	top     textinput.Model
	focus   int
	spinner spinner.Model

	loading bool
	errMsg  string
	status  string
	view    *report.Presentation
}

func NewModel(ctx context.Context, session *client.Session, exportDir string) Model {
	path := textinput.New()
	path.Placeholder = "/path/to/project"
	path.Prompt = "Folder: "
	path.Focus()

	top := textinput.New()
	top.Prompt = "Top N:  "
	top.SetValue(strconv.Itoa(core.DefaultTopN))
	top.CharLimit = 4

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		session:   session,
		renderer:  report.NewRenderer(report.RandomPalette{}),
		exportDir: exportDir,
		path:      path,
		top:       top,
		spinner:   sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil
		case "enter":
			return m.startScan()
		case "ctrl+e":
			m.export()
			return m, nil
		}

	case scanDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = client.ErrorMessage(msg.err)
			return m, nil
		}
		view := m.renderer.Render(msg.report)
		m.view = &view
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.path, cmd = m.path.Update(msg)
	} else {
		m.top, cmd = m.top.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == 0 {
		m.focus = 1
		m.path.Blur()
		m.top.Focus()
		return
	}
	m.focus = 0
	m.top.Blur()
	m.path.Focus()
}

// startScan hides the previous result and error and runs one scan. It
// does nothing while a scan is outstanding.
func (m Model) startScan() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	path := strings.TrimSpace(m.path.Value())
	if path == "" {
		m.errMsg = "Please enter a folder path"
		return m, nil
	}

	m.loading = true
	m.errMsg = ""
	m.status = ""
	m.view = nil

	top := parseTop(m.top.Value())
	session, ctx := m.session, m.ctx
	scan := func() tea.Msg {
		rep, err := session.Scan(ctx, path, top)
		return scanDoneMsg{report: rep, err: err}
	}
	return m, tea.Batch(scan, m.spinner.Tick)
}

func (m *Model) export() {
	written, err := m.session.WriteReportFile(m.exportDir)
	switch {
	case err != nil:
		m.errMsg = fmt.Sprintf("export failed: %v", err)
	case written != "":
		m.status = "Report exported to " + written
	}
}

// parseTop reads a positive count; anything else means the default.
func parseTop(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return core.DefaultTopN
	}
	return n
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Project Stats") + "\n\n")
	b.WriteString(m.path.View() + "\n")
	b.WriteString(m.top.View() + "\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Scanning...\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString(okStyle.Render(m.status) + "\n")
	}
	if m.view != nil {
		b.WriteString(renderPresentation(*m.view))
	}

	b.WriteString(labelStyle.Render("\nenter scan • tab switch field • ctrl+e export • esc quit") + "\n")
	return b.String()
}

func renderPresentation(p report.Presentation) string {
	var b strings.Builder

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total files", p.TotalFiles),
		card("Total lines", p.TotalLines),
		card("Newest file", p.Newest.Value),
		card("Oldest file", p.Oldest.Value),
	)
	b.WriteString(cards + "\n\n")

	for _, run := range report.Bar(p.Segments, barWidth) {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(run.Color)).Render(strings.Repeat("█", run.Cells)))
	}
	b.WriteString("\n\n")

	for _, item := range p.Languages {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(item.Color)).Render("●")
		fmt.Fprintf(&b, "%s %s  %s\n", dot, item.Label, labelStyle.Render(item.Stats))
	}

	if len(p.LargestFiles) > 0 {
		b.WriteString("\n" + titleStyle.Render("Largest files") + "\n")
		for _, f := range p.LargestFiles {
			fmt.Fprintf(&b, "%3d  %s  %s\n", f.Rank, f.Path, labelStyle.Render(f.Lines))
		}
	}

	fmt.Fprintf(&b, "\nEmpty files: %d   Very small files: %d\n", p.EmptyFiles, p.SmallFiles)
	return b.String()
}

func card(title, value string) string {
	return cardStyle.Render(labelStyle.Render(title) + "\n" + value)
}

// Run starts the form; exports are written to exportDir.
func Run(ctx context.Context, session *client.Session, exportDir string) error {
	p := tea.NewProgram(NewModel(ctx, session, exportDir), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
