package timerstest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vcrobe/pagefx/timers"
)

func TestAfter_FiresOnce(t *testing.T) {
	s := New()
	n := 0
	s.After(100*time.Millisecond, func() { n++ })

	s.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, n)
	s.Advance(time.Millisecond)
	assert.Equal(t, 1, n)
	s.Advance(time.Second)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, s.Pending())
}

func TestEvery_StopsFromCallback(t *testing.T) {
	s := New()
	var ticks []time.Duration
	var tm timers.Timer
	tm = s.Every(20*time.Millisecond, func() {
		ticks = append(ticks, s.Now())
		if len(ticks) == 3 {
			tm.Stop()
		}
	})

	s.Advance(time.Second)
	assert.Equal(t, []time.Duration{20 * time.Millisecond, 40 * time.Millisecond, 60 * time.Millisecond}, ticks)
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, time.Second, s.Now())
}

func TestOrdering(t *testing.T) {
	s := New()
	var got []string
	s.After(50*time.Millisecond, func() { got = append(got, "b") })
	s.After(10*time.Millisecond, func() {
		got = append(got, "a")
		s.After(40*time.Millisecond, func() { got = append(got, "c") })
	})
	s.After(50*time.Millisecond, func() { got = append(got, "b2") })

	s.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "b2", "c"}, got)
}

func TestStopBeforeFire(t *testing.T) {
	s := New()
	fired := false
	tm := s.After(time.Millisecond, func() { fired = true })
	tm.Stop()
	tm.Stop()

	s.RunAll(time.Second)
	assert.False(t, fired)
}
