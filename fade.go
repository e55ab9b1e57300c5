package main

import (
	"sync"
	"time"
)

// Fade shows an element once Delay has elapsed after mount.
type Fade struct {
	Delay time.Duration
}

// Visible reports whether the element is shown after elapsed time.
func (f Fade) Visible(elapsed time.Duration) bool {
	return elapsed >= f.Delay
}

// Millis is the delay in whole milliseconds, as the browser script wants it.
func (f Fade) Millis() int64 {
	return f.Delay.Milliseconds()
}

// Start mounts the element on clk. onShow runs once when it becomes
// visible. It may be nil and must not call back into the FadeIn.
func (f Fade) Start(clk Clock, onShow func()) *FadeIn {
	s := &FadeIn{onShow: onShow, shown: make(chan struct{})}
	d := f.Delay
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	s.timer = clk.AfterFunc(d, s.fire)
	s.mu.Unlock()
	return s
}

// FadeIn is a mounted fade. It flips from hidden to visible exactly once.
type FadeIn struct {
	mu      sync.Mutex
	timer   Timer
	visible bool
	stopped bool
	onShow  func()
	shown   chan struct{}
}

func (s *FadeIn) fire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.visible {
		return
	}
	s.visible = true
	s.timer = nil
	if s.onShow != nil {
		s.onShow()
	}
	close(s.shown)
}

// Visible reports whether the delay has elapsed.
func (s *FadeIn) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Shown is closed when the element becomes visible.
func (s *FadeIn) Shown() <-chan struct{} {
	return s.shown
}

// Stop unmounts the element. No callback runs after Stop returns.
func (s *FadeIn) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
