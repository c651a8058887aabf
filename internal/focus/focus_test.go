package focus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer_StartsPausedAtFullLength(t *testing.T) {
	tm := New()
	assert.False(t, tm.Running())
	assert.Equal(t, "25:00", tm.Format())
	assert.False(t, tm.Tick(), "paused timer does not move")
	assert.Equal(t, Length, tm.Remaining())
}

func TestTimer_ToggleAndTick(t *testing.T) {
	tm := New()
	tm.Toggle()
	assert.True(t, tm.Running())

	for range 61 {
		tm.Tick()
	}
	assert.Equal(t, "23:59", tm.Format())

	tm.Toggle()
	tm.Tick()
	assert.Equal(t, "23:59", tm.Format())

	tm.Start()
	tm.Tick()
	assert.Equal(t, "23:58", tm.Format())
	tm.Pause()
	assert.False(t, tm.Running())
}

func TestTimer_ExpiryStopsAndResets(t *testing.T) {
	tm := New()
	tm.Start()

	expired := 0
	for range int(Length / time.Second) {
		if tm.Tick() {
			expired++
		}
	}
	assert.Equal(t, 1, expired)
	assert.False(t, tm.Running())
	assert.Equal(t, "25:00", tm.Format())
}

func TestTimer_Reset(t *testing.T) {
	tm := New()
	tm.Start()
	tm.Tick()
	tm.Reset()
	assert.False(t, tm.Running())
	assert.Equal(t, Length, tm.Remaining())
}

func TestFormat(t *testing.T) {
	tests := map[time.Duration]string{
		0:                              "0:00",
		-time.Second:                   "0:00",
		9 * time.Second:                "0:09",
		time.Minute:                    "1:00",
		25 * time.Minute:               "25:00",
		90*time.Minute + 5*time.Second: "90:05",
	}
	for d, want := range tests {
		assert.Equal(t, want, Format(d), "Format(%s)", d)
	}
}
