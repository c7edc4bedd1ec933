package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyshot/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// TitleModel is the Bubble Tea model for the title screen shown before a game.
type TitleModel struct {
	title    string
	width    int
	height   int
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	status   string
	quitting bool
	started  bool
}

// NewTitleModel creates a title screen for the named game.
func NewTitleModel(title string, cfg core.RuntimeConfig) TitleModel {
	h := help.New()
	h.ShowAll = true

	return TitleModel{
		title:  title,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// WithStatus returns a copy that shows status under the tagline.
func (m TitleModel) WithStatus(status string) TitleModel {
	m.status = status
	return m
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start), key.Matches(msg, m.keys.Shoot):
			m.started = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	spaced := strings.Join(strings.Split(strings.ToUpper(m.title), ""), " ")
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(centerText("  "+spaced+"  ", m.width)))
	b.WriteString("\n\n")

	for _, line := range []string{
		"Your runner never stops and gravity never rests.",
		"Shoot it from below to make it jump; dodge the blocks.",
		"Reach the green goal three screens to the right.",
	} {
		b.WriteString(taglineStyle.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(centerText(m.status, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Press Enter to start", m.width))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// Started returns true if the user chose to play.
func (m TitleModel) Started() bool {
	return m.started
}

// IsQuitting returns true if the user requested to quit.
func (m TitleModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m TitleModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// TitleResult holds the result of running the title screen.
type TitleResult struct {
	Config core.RuntimeConfig
	Quit   bool
}

// RunTitle shows the title screen and reports whether the user wants to play.
func RunTitle(title string, cfg core.RuntimeConfig) (TitleResult, error) {
	p := tea.NewProgram(
		NewTitleModel(title, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return TitleResult{Config: cfg}, err
	}

	m, ok := final.(TitleModel)
	if !ok {
		return TitleResult{Config: cfg, Quit: true}, nil
	}

	return TitleResult{Config: m.Config(), Quit: !m.Started()}, nil
}
