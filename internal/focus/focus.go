// Package focus implements the dashboard's pomodoro-style countdown.
package focus

import (
	"fmt"
	"time"
)

// Length is the duration of one focus block.
const Length = 25 * time.Minute

// Timer counts down from Length in one-second ticks. The zero value is not
// usable; call New.
type Timer struct {
	remaining time.Duration
	running   bool
}

func New() *Timer {
	return &Timer{remaining: Length}
}

func (t *Timer) Start() { t.running = true }
func (t *Timer) Pause() { t.running = false }

// Toggle starts a paused timer and pauses a running one.
func (t *Timer) Toggle() { t.running = !t.running }

// Reset stops the timer and restores the full block.
func (t *Timer) Reset() {
	t.running = false
	t.remaining = Length
}

func (t *Timer) Running() bool            { return t.running }
func (t *Timer) Remaining() time.Duration { return t.remaining }

// Tick advances a running timer by one second. It reports true when the
// block has just finished, in which case the timer is stopped and reset.
func (t *Timer) Tick() bool {
	if !t.running {
		return false
	}
	t.remaining -= time.Second
	if t.remaining > 0 {
		return false
	}
	t.Reset()
	return true
}

// Format renders the remaining time as m:ss.
func (t *Timer) Format() string {
	return Format(t.remaining)
}

// Format renders d as m:ss. Negative durations render as 0:00.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
