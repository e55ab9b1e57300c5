package main

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const artID = "art"

// Ticks carry the generation they were scheduled in. Replaying bumps the
// generation, so ticks from the previous run are ignored when they land.
type revealTickMsg struct{ gen int }

type fadeTickMsg struct {
	gen int
	id  string
}

func revealTick(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return revealTickMsg{gen: gen}
	})
}

func fadeTick(gen int, id string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return fadeTickMsg{gen: gen, id: id}
	})
}

type tuiModel struct {
	page    Page
	term    *Terminal
	help    lipgloss.Style
	gen     int
	shown   int
	visible map[string]bool
	vp      viewport.Model
	ready   bool
}

func newTUIModel(p Page) tuiModel {
	r := lipgloss.DefaultRenderer()
	return tuiModel{
		page:    p,
		term:    newTerminal(io.Discard, r),
		help:    r.NewStyle().Faint(true),
		visible: make(map[string]bool),
	}
}

func (m tuiModel) Init() tea.Cmd {
	return m.mount()
}

// mount schedules every animation of the current generation.
func (m tuiModel) mount() tea.Cmd {
	cmds := []tea.Cmd{fadeTick(m.gen, artID, m.page.ArtFade.Delay)}
	if m.page.Typer.Len() > 0 {
		cmds = append(cmds, revealTick(m.gen, m.page.Typer.Delay))
	}
	for _, s := range m.page.Sections() {
		cmds = append(cmds, fadeTick(m.gen, s.ID, s.Fade.Delay))
	}
	return tea.Batch(cmds...)
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.gen++
			m.shown = 0
			m.visible = make(map[string]bool)
			m.refresh()
			return m, m.mount()
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width, max(msg.Height-1, 0))
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = max(msg.Height-1, 0)
		}
		m.refresh()
		return m, nil
	case revealTickMsg:
		if msg.gen != m.gen || m.shown >= m.page.Typer.Len() {
			return m, nil
		}
		m.shown++
		m.refresh()
		if m.shown < m.page.Typer.Len() {
			return m, revealTick(m.gen, m.page.Typer.Delay)
		}
		return m, nil
	case fadeTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.visible[msg.id] = true
		m.refresh()
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *tuiModel) refresh() {
	if m.ready {
		m.vp.SetContent(m.content())
	}
}

func (m tuiModel) content() string {
	var out string
	if m.visible[artID] {
		out += m.term.art(m.page)
	}
	out += m.page.Typer.Prefix(m.shown) + m.page.Typer.cursor()
	out += m.term.promptLine(m.page)
	for _, s := range m.page.Sections() {
		if m.visible[s.ID] {
			out += m.term.section(m.page, s)
		}
	}
	if m.visible[m.page.Section(SectionContact).ID] {
		out += m.term.footer(m.page)
	}
	return out
}

func (m tuiModel) View() string {
	if !m.ready {
		return m.content()
	}
	return m.vp.View() + "\n" + m.help.Render("r replay • ↑/↓ scroll • q quit")
}

// RunTUI shows the page in an interactive full-screen program.
func RunTUI(p Page) error {
	_, err := tea.NewProgram(newTUIModel(p), tea.WithAltScreen()).Run()
	return err
}
