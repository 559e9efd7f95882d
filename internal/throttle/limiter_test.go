package throttle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowFirstCallPasses(t *testing.T) {
	l := New(500 * time.Millisecond)
	ok, wait := l.Allow()
	assert.True(t, ok)
	assert.Zero(t, wait)
}

func TestAllowTripsWithinInterval(t *testing.T) {
	l := New(500 * time.Millisecond)
	now := time.Now()
	l.now = func() time.Time { return now }

	ok, _ := l.Allow()
	assert.True(t, ok)

	now = now.Add(200 * time.Millisecond)
	ok, wait := l.Allow()
	assert.False(t, ok)
	assert.Equal(t, 300*time.Millisecond, wait)

	// A tripped guard must not push the window forward.
	now = now.Add(300 * time.Millisecond)
	ok, _ = l.Allow()
	assert.True(t, ok)
}

func TestTimeSinceLastCall(t *testing.T) {
	l := New(time.Second)
	assert.Greater(t, l.TimeSinceLastCall(), time.Second)

	now := time.Now()
	l.now = func() time.Time { return now }
	l.RecordCall()

	now = now.Add(700 * time.Millisecond)
	assert.Equal(t, 700*time.Millisecond, l.TimeSinceLastCall())
}
