package main

import "time"

const (
	timerFrequency = 60

	// maxBacklog limits how much elapsed time a single Advance catches up on.
	maxBacklog = 100 * time.Millisecond
)

// machine is the part of the interpreter driven by the scheduler.
type machine interface {
	Step() error
	TickTimers()
}

// Scheduler converts elapsed wall time into instruction steps and 60 Hz
// timer ticks.
type Scheduler struct {
	machine             machine
	instructionInterval time.Duration
	timerInterval       time.Duration
	instructionAcc      time.Duration
	timerAcc            time.Duration
}

// NewScheduler creates a scheduler running ips instructions per second.
func NewScheduler(m machine, ips int) *Scheduler {
	return &Scheduler{
		machine:             m,
		instructionInterval: time.Second / time.Duration(ips),
		timerInterval:       time.Second / timerFrequency,
	}
}

// Advance runs all instructions and timer ticks that are due after elapsed
// time. The first step error stops the advance and is returned.
func (s *Scheduler) Advance(elapsed time.Duration) error {
	if elapsed > maxBacklog {
		elapsed = maxBacklog
	}
	s.instructionAcc += elapsed
	s.timerAcc += elapsed

	for s.instructionAcc >= s.instructionInterval {
		s.instructionAcc -= s.instructionInterval
		if err := s.machine.Step(); err != nil {
			return err
		}
	}

	for s.timerAcc >= s.timerInterval {
		s.timerAcc -= s.timerInterval
		s.machine.TickTimers()
	}
	return nil
}
