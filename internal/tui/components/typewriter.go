// Package components provides shared UI components for the TUI.
package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg reveals the next character of a Typewriter.
type TickMsg struct {
	gen int
}

// Typewriter reveals a text one rune at a time.
type Typewriter struct {
	text  []rune
	shown int
	gen   int

	delay time.Duration
	speed time.Duration
}

// NewTypewriter creates a typewriter that waits delay before the first rune
// and then reveals one rune every speed.
func NewTypewriter(delay, speed time.Duration) Typewriter {
	return Typewriter{delay: delay, speed: speed}
}

// Start replaces the text and replays the animation from the beginning.
// Ticks scheduled by earlier calls are ignored.
func (t *Typewriter) Start(text string) tea.Cmd {
	t.gen++
	t.text = []rune(text)
	t.shown = 0
	return t.tick(t.delay)
}

// Stop clears the text and invalidates pending ticks.
func (t *Typewriter) Stop() {
	t.gen++
	t.text = nil
	t.shown = 0
}

// Skip reveals the whole text immediately.
func (t *Typewriter) Skip() {
	t.shown = len(t.text)
}

// Done reports whether the whole text is visible.
func (t Typewriter) Done() bool {
	return t.shown >= len(t.text)
}

// Text returns the full text being revealed.
func (t Typewriter) Text() string {
	return string(t.text)
}

// Update advances the animation on its own ticks.
func (t Typewriter) Update(msg tea.Msg) (Typewriter, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.gen != t.gen || t.Done() {
		return t, nil
	}
	t.shown++
	if t.Done() {
		return t, nil
	}
	return t, t.tick(t.speed)
}

// View returns the revealed part of the text.
func (t Typewriter) View() string {
	return string(t.text[:t.shown])
}

func (t Typewriter) tick(d time.Duration) tea.Cmd {
	gen := t.gen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{gen: gen}
	})
}
