package main

import (
	"sync"
	"time"
)

const (
	DefaultTypeDelay = 50 * time.Millisecond
	DefaultCursor    = "_"
)

// Typewriter reveals Text one rune per Delay, followed by a cursor glyph.
type Typewriter struct {
	Text   string
	Delay  time.Duration
	Cursor string
}

// NewTypewriter returns a Typewriter with the default cursor.
func NewTypewriter(text string, delay time.Duration) Typewriter {
	return Typewriter{Text: text, Delay: delay, Cursor: DefaultCursor}
}

// Len is the number of runes in the text.
func (t Typewriter) Len() int {
	return len([]rune(t.Text))
}

// Duration is how long a full reveal takes.
func (t Typewriter) Duration() time.Duration {
	if t.Delay <= 0 {
		return 0
	}
	return time.Duration(t.Len()) * t.Delay
}

// Shown is the number of runes visible after elapsed time since mount.
func (t Typewriter) Shown(elapsed time.Duration) int {
	n := t.Len()
	if t.Delay <= 0 {
		return n
	}
	if elapsed < 0 {
		return 0
	}
	k := int(elapsed / t.Delay)
	if k > n {
		return n
	}
	return k
}

// Prefix returns the first k runes of the text.
func (t Typewriter) Prefix(k int) string {
	r := []rune(t.Text)
	if k <= 0 {
		return ""
	}
	if k >= len(r) {
		return t.Text
	}
	return string(r[:k])
}

// Frame is what the typewriter displays after elapsed time since mount.
func (t Typewriter) Frame(elapsed time.Duration) string {
	return t.Prefix(t.Shown(elapsed)) + t.cursor()
}

func (t Typewriter) cursor() string {
	if t.Cursor == "" {
		return DefaultCursor
	}
	return t.Cursor
}

// Start begins a live reveal on clk. onReveal is called with the visible
// prefix after every step. It may be nil and must not call back into the
// returned Reveal.
func (t Typewriter) Start(clk Clock, onReveal func(prefix string, shown int)) *Reveal {
	r := &Reveal{
		clk:      clk,
		delay:    t.Delay,
		runes:    []rune(t.Text),
		onReveal: onReveal,
		done:     make(chan struct{}),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.runes) == 0 {
		close(r.done)
		return r
	}
	r.schedule()
	return r
}

// Reveal is a running typewriter. At most one timer is pending at a time.
type Reveal struct {
	mu       sync.Mutex
	clk      Clock
	delay    time.Duration
	runes    []rune
	shown    int
	timer    Timer
	stopped  bool
	onReveal func(prefix string, shown int)
	done     chan struct{}
}

// schedule must be called with mu held.
func (r *Reveal) schedule() {
	d := r.delay
	if d < 0 {
		d = 0
	}
	r.timer = r.clk.AfterFunc(d, r.step)
}

func (r *Reveal) step() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || r.shown >= len(r.runes) {
		return
	}
	r.shown++
	if r.onReveal != nil {
		r.onReveal(string(r.runes[:r.shown]), r.shown)
	}
	if r.shown < len(r.runes) {
		r.schedule()
		return
	}
	r.timer = nil
	close(r.done)
}

// Stop cancels the reveal. Once Stop returns no callback is running and
// none will run.
func (r *Reveal) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// Shown is the number of runes revealed so far.
func (r *Reveal) Shown() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shown
}

// Text is the revealed prefix.
func (r *Reveal) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return string(r.runes[:r.shown])
}

// Done is closed once every rune has been revealed. It never closes for
// a reveal stopped early.
func (r *Reveal) Done() <-chan struct{} {
	return r.done
}
