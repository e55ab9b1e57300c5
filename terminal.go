package main

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const terminalWidth = 72

type termStyles struct {
	art     lipgloss.Style
	tagline lipgloss.Style
	prompt  lipgloss.Style
	title   lipgloss.Style
	body    lipgloss.Style
	chip    lipgloss.Style
	name    lipgloss.Style
	faint   lipgloss.Style
	tech    lipgloss.Style
	accent  lipgloss.Style
}

func newTermStyles(r *lipgloss.Renderer) termStyles {
	return termStyles{
		art:     r.NewStyle().Bold(true),
		tagline: r.NewStyle(),
		prompt:  r.NewStyle().Faint(true),
		title:   r.NewStyle().Bold(true),
		body:    r.NewStyle().Width(terminalWidth),
		chip:    r.NewStyle().Reverse(true),
		name:    r.NewStyle().Bold(true),
		faint:   r.NewStyle().Faint(true),
		tech:    r.NewStyle().Faint(true).Italic(true),
		accent:  r.NewStyle().Foreground(lipgloss.Color("#ffffff")),
	}
}

// Terminal writes the page as styled text. With termenv.Ascii it produces
// plain text.
type Terminal struct {
	out   io.Writer
	flush func()
	clk   Clock
	st    termStyles
}

func NewTerminal(w io.Writer, profile termenv.Profile) *Terminal {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return newTerminal(w, r)
}

func newTerminal(w io.Writer, r *lipgloss.Renderer) *Terminal {
	return &Terminal{out: w, clk: SystemClock, st: newTermStyles(r)}
}

// WithClock sets the clock animations are scheduled on.
func (t *Terminal) WithClock(c Clock) *Terminal {
	t.clk = c
	return t
}

// WithFlush sets a function called after every write, such as
// http.Flusher.Flush.
func (t *Terminal) WithFlush(f func()) *Terminal {
	t.flush = f
	return t
}

// Static renders the whole page with every section visible.
func (t *Terminal) Static(p Page) string {
	var b strings.Builder
	b.WriteString(t.art(p))
	b.WriteString(t.st.tagline.Render(p.Typer.Text + p.Typer.cursor()))
	b.WriteString(t.promptLine(p))
	for _, s := range p.Sections() {
		b.WriteString(t.section(p, s))
	}
	b.WriteString(t.footer(p))
	return b.String()
}

// Play streams the page, animating it on the terminal's clock. It returns
// ctx.Err() if ctx ends first, and nothing is written after it returns.
func (t *Terminal) Play(ctx context.Context, p Page) error {
	sw := &streamWriter{w: t.out, flush: t.flush, failed: make(chan struct{})}
	mount := t.clk.Now()

	if err := t.await(ctx, mount, p.ArtFade.Delay); err != nil {
		return err
	}
	if err := sw.write(t.art(p)); err != nil {
		return err
	}

	if err := t.typeTagline(ctx, sw, p.Typer); err != nil {
		return err
	}
	if err := sw.write(t.promptLine(p)); err != nil {
		return err
	}

	for _, s := range p.Sections() {
		if err := t.await(ctx, mount, s.Fade.Delay); err != nil {
			return err
		}
		if err := sw.write(t.section(p, s)); err != nil {
			return err
		}
	}
	return sw.write(t.footer(p))
}

func (t *Terminal) typeTagline(ctx context.Context, sw *streamWriter, tw Typewriter) error {
	cursor := tw.cursor()
	back := strings.Repeat("\b", len([]rune(cursor)))
	if err := sw.write(cursor); err != nil {
		return err
	}
	rev := tw.Start(t.clk, func(prefix string, shown int) {
		r := []rune(prefix)
		sw.write(back + t.st.tagline.Render(string(r[shown-1])) + cursor)
	})
	defer rev.Stop()

	select {
	case <-rev.Done():
		return sw.err
	case <-sw.failed:
		return sw.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// await blocks until delay has passed since mount.
func (t *Terminal) await(ctx context.Context, mount time.Time, delay time.Duration) error {
	remaining := delay - t.clk.Now().Sub(mount)
	if remaining <= 0 {
		return ctx.Err()
	}
	f := Fade{Delay: remaining}.Start(t.clk, nil)
	defer f.Stop()
	select {
	case <-f.Shown():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Terminal) art(p Page) string {
	return t.st.art.Render(strings.Trim(p.Art, "\n")) + "\n\n"
}

func (t *Terminal) promptLine(p Page) string {
	return "\n\n" + t.st.prompt.Render("> "+p.Prompt) + "\n\n"
}

func (t *Terminal) heading(title string) string {
	label := "// " + title
	rule := strings.Repeat("─", terminalWidth)
	return t.st.title.Render(label) + "\n" + t.st.faint.Render(rule) + "\n"
}

func (t *Terminal) section(p Page, s Section) string {
	var b strings.Builder
	b.WriteString(t.heading(s.Title))
	switch s.Kind {
	case SectionAbout:
		for _, para := range p.About {
			b.WriteString(t.st.body.Render(paragraph(para)))
			b.WriteString("\n\n")
		}
	case SectionSkills:
		b.WriteString(t.skills(p.Skills))
		b.WriteString("\n\n")
	case SectionProjects:
		for _, pr := range p.Projects {
			b.WriteString(t.st.name.Render("► " + pr.Name))
			b.WriteString("\n  " + t.st.faint.Render(pr.Desc))
			b.WriteString("\n  " + t.st.tech.Render(strings.ToUpper(pr.Tech)))
			b.WriteString("\n\n")
		}
	case SectionExperience:
		for _, e := range p.Experience {
			b.WriteString("│ " + t.st.name.Render(e.Role) + "  " + t.st.faint.Render(e.Period))
			b.WriteString("\n│ " + t.st.faint.Render("@ "+e.Company))
			b.WriteString("\n│ " + t.st.faint.Render(e.Desc))
			b.WriteString("\n\n")
		}
	case SectionContact:
		for _, c := range p.Contact {
			b.WriteString(t.st.faint.Render(">") + " " + t.st.accent.Render(c.Label))
			if c.External {
				b.WriteString("  " + t.st.faint.Render(c.Href))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// skills lays the chips out in rows no wider than the terminal.
func (t *Terminal) skills(skills []Skill) string {
	var rows []string
	var row []string
	width := 0
	for _, s := range skills {
		chip := t.st.chip.Render(" " + string(s) + " ")
		w := lipgloss.Width(chip)
		if width > 0 && width+1+w > terminalWidth {
			rows = append(rows, strings.Join(row, " "))
			row, width = nil, 0
		}
		if width > 0 {
			width++
		}
		row = append(row, chip)
		width += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

func (t *Terminal) footer(p Page) string {
	var credits []string
	for _, c := range p.Credits {
		credits = append(credits, c.Prefix+" "+c.Handle)
	}
	return t.st.faint.Render(Divider) + "\n" +
		t.st.faint.Render(strings.Join(credits, " · ")) + "\n" +
		t.st.faint.Render("© "+strconv.Itoa(p.Year)+" — "+p.Motto) + "\n"
}

type streamWriter struct {
	w      io.Writer
	flush  func()
	err    error
	failed chan struct{}
}

// write records the first error and drops everything after it.
func (s *streamWriter) write(str string) error {
	if s.err != nil {
		return s.err
	}
	if _, err := io.WriteString(s.w, str); err != nil {
		s.err = err
		close(s.failed)
		return err
	}
	if s.flush != nil {
		s.flush()
	}
	return nil
}
