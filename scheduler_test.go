package main

import (
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

type countingMachine struct {
	steps  int
	ticks  int
	failAt int
}

var errTest = errors.New("step failed")

func (m *countingMachine) Step() error {
	m.steps++
	if m.steps == m.failAt {
		return errTest
	}
	return nil
}

func (m *countingMachine) TickTimers() {
	m.ticks++
}

func TestSchedulerRates(t *testing.T) {
	m := &countingMachine{}
	s := NewScheduler(m, 500)

	for i := 0; i < 50; i++ {
		assert.NoError(t, s.Advance(20*time.Millisecond))
	}

	assert.Equal(t, 500, m.steps)
	// 1s / (1s/60) leaves a rounding remainder of less than one tick
	assert.True(t, m.ticks == 60 || m.ticks == 59)
}

func TestSchedulerAccumulatesSmallSteps(t *testing.T) {
	m := &countingMachine{}
	s := NewScheduler(m, 500)

	assert.NoError(t, s.Advance(time.Millisecond))
	assert.Equal(t, 0, m.steps)

	assert.NoError(t, s.Advance(time.Millisecond))
	assert.Equal(t, 1, m.steps)
}

func TestSchedulerCapsBacklog(t *testing.T) {
	m := &countingMachine{}
	s := NewScheduler(m, 500)

	assert.NoError(t, s.Advance(10*time.Second))
	assert.Equal(t, 50, m.steps)
	assert.Equal(t, 6, m.ticks)
}

func TestSchedulerStopsOnError(t *testing.T) {
	m := &countingMachine{failAt: 3}
	s := NewScheduler(m, 500)

	err := s.Advance(20 * time.Millisecond)
	assert.True(t, errors.Is(err, errTest))
	assert.Equal(t, 3, m.steps)
	assert.Equal(t, 0, m.ticks)
}
