package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalStaticOneEntryPerItem(t *testing.T) {
	p := NewPage(DefaultProfile(), DefaultTiming())
	out := NewTerminal(&bytes.Buffer{}, termenv.Ascii).Static(p)

	assert.NotContains(t, out, "\x1b[", "ascii profile must not emit escapes")
	assert.Contains(t, out, "██╗   ██╗ █████╗")
	assert.Contains(t, out, "Software Engineer & Open Source Enthusiast_")
	assert.Contains(t, out, "> Building tools that respect the terminal")

	assertInOrder(t, out, []string{"// ABOUT", "// SKILLS", "// PROJECTS", "// EXPERIENCE", "// CONTACT"})

	var skills []string
	for _, s := range p.Skills {
		skills = append(skills, " "+string(s)+" ")
	}
	assertInOrder(t, out, skills)

	assert.Equal(t, len(p.Projects), strings.Count(out, "► "))
	var projects []string
	for _, pr := range p.Projects {
		projects = append(projects, "► "+pr.Name)
	}
	assertInOrder(t, out, projects)

	var companies []string
	for _, e := range p.Experience {
		companies = append(companies, "@ "+e.Company)
	}
	assert.Equal(t, len(p.Experience), strings.Count(out, "│ @ "))
	assertInOrder(t, out, companies)

	assertInOrder(t, out, []string{"> vasu@example.com", "> github.com/vasu", "> @Vasu_Devs"})
	assert.Contains(t, out, "Requested by @Vasu_Devs · Built by @clonkbot")
}

func TestTerminalSkillRowsFitWidth(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{}, termenv.Ascii)
	rows := strings.Split(term.skills(Skills), "\n")

	require.Greater(t, len(rows), 1)
	for _, r := range rows {
		assert.LessOrEqual(t, len([]rune(r)), terminalWidth)
	}
}

func TestTerminalANSIProfileStyles(t *testing.T) {
	out := NewTerminal(&bytes.Buffer{}, termenv.ANSI256).Static(NewPage(DefaultProfile(), DefaultTiming()))
	assert.Contains(t, out, "\x1b[")
}

// playWithManualClock runs Play in the background and advances clk until
// it returns.
func playWithManualClock(t *testing.T, ctx context.Context, term *Terminal, clk *manualClock, p Page) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- term.Play(ctx, p) }()

	deadline := time.After(10 * time.Second)
	for {
		select {
		case err := <-done:
			return err
		case <-deadline:
			t.Fatal("Play did not finish")
			return nil
		default:
			clk.Advance(5 * time.Millisecond)
			time.Sleep(50 * time.Microsecond)
		}
	}
}

func TestTerminalPlayStreamsWholePage(t *testing.T) {
	clk := newManualClock()
	var buf bytes.Buffer
	flushes := 0
	term := NewTerminal(&buf, termenv.Ascii).WithClock(clk).WithFlush(func() { flushes++ })
	p := NewPage(DefaultProfile(), DefaultTiming())

	err := playWithManualClock(t, context.Background(), term, clk, p)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "_\bS_\bo_\bf_\bt_")
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "All systems nominal"))
	assertInOrder(t, out, []string{"██╗", "\bS_", "// ABOUT", "// SKILLS", "// PROJECTS", "// EXPERIENCE", "// CONTACT", Divider})
	assert.Greater(t, flushes, p.Typer.Len())
	assert.Equal(t, 0, clk.Pending())
}

func TestTerminalPlayWaitsForSectionDelay(t *testing.T) {
	clk := newManualClock()
	buf := &lockedBuffer{}
	p := NewPage(DefaultProfile(), Timing{About: time.Second})
	p.Typer = NewTypewriter("", 0)
	term := NewTerminal(buf, termenv.Ascii).WithClock(clk)

	done := make(chan error, 1)
	go func() { done <- term.Play(context.Background(), p) }()

	require.Eventually(t, func() bool { return clk.Pending() == 1 }, time.Second, time.Millisecond)
	clk.Advance(999 * time.Millisecond)
	assert.NotContains(t, buf.String(), "// ABOUT")

	clk.Advance(time.Millisecond)
	require.NoError(t, <-done)
	assert.Contains(t, buf.String(), "// ABOUT")
}

func TestTerminalPlayCancelStopsWriting(t *testing.T) {
	clk := newManualClock()
	buf := &lockedBuffer{}
	term := NewTerminal(buf, termenv.Ascii).WithClock(clk)
	p := NewPage(DefaultProfile(), DefaultTiming())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- term.Play(ctx, p) }()

	// Art at 300ms, then a few characters of the tagline.
	require.Eventually(t, func() bool { return clk.Pending() == 1 }, time.Second, time.Millisecond)
	clk.Advance(300 * time.Millisecond)
	require.Eventually(t, func() bool { return clk.Pending() == 1 }, time.Second, time.Millisecond)
	clk.Advance(90 * time.Millisecond)

	cancel()
	err := <-done
	require.ErrorIs(t, err, context.Canceled)

	written := buf.String()
	assert.Contains(t, written, "\bS_\bo_\bf_")
	assert.Equal(t, 0, clk.Pending(), "every timer is released on cancel")

	clk.Advance(10 * time.Second)
	assert.Equal(t, written, buf.String(), "nothing written after Play returns")
}

func TestTerminalPlayWriteError(t *testing.T) {
	clk := newManualClock()
	term := NewTerminal(&failingWriter{after: 3}, termenv.Ascii).WithClock(clk)

	err := playWithManualClock(t, context.Background(), term, clk, NewPage(DefaultProfile(), DefaultTiming()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBrokenPipe))
	assert.Equal(t, 0, clk.Pending())
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var errBrokenPipe = errors.New("broken pipe")

// failingWriter accepts a few writes and then fails every one after.
type failingWriter struct {
	after int
	n     int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	if w.n > w.after {
		return 0, errBrokenPipe
	}
	return len(p), nil
}
