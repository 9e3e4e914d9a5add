package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.SetClock(clock.now)
	return fs, clock
}

func TestFixedStepFirstPollTicks(t *testing.T) {
	fs, _ := newTestStep(10)
	if !fs.ShouldStep() {
		t.Fatal("first poll should tick")
	}
	if fs.ShouldStep() {
		t.Fatal("second poll without elapsed time should not tick")
	}
}

func TestFixedStepPacesByRate(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()

	clock.advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("ticked after half a period")
	}
	clock.advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not tick after a full period")
	}

	ticks := 0
	for i := 0; i < 60; i++ {
		clock.advance(time.Second / 60)
		if fs.ShouldStep() {
			ticks++
		}
	}
	if ticks < 9 || ticks > 10 {
		t.Fatalf("ticks over one second at 60 polls = %d, want ~10", ticks)
	}
}

func TestFixedStepCapsBacklog(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()

	clock.advance(5 * time.Second)
	ticks := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			ticks++
		}
	}
	if ticks != 2 {
		t.Fatalf("ticks after a long stall = %d, want 2", ticks)
	}
}

func TestFixedStepReset(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()
	clock.advance(20 * time.Millisecond)
	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatal("poll after reset should tick")
	}
}

func TestFixedStepSetTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("default tps = %d, want 60", fs.TPS())
	}
	fs.SetTPS(25)
	if fs.TPS() != 25 {
		t.Fatalf("tps = %d, want 25", fs.TPS())
	}
}
