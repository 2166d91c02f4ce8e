package netsync

import "math"

// StepsPerSecond is the nominal simulation cadence.
const StepsPerSecond = 60

// SchedulerState is the lifecycle of a Scheduler.
type SchedulerState int

const (
	Uninitialized SchedulerState = iota
	Running
)

// Scheduler converts variable rendering-frame timestamps into a whole
// number of fixed simulation steps.
type Scheduler struct {
	state SchedulerState
	last  float64
	rate  float64
}

// NewScheduler returns a scheduler stepping at rate steps per second.
// A non-positive rate falls back to StepsPerSecond.
func NewScheduler(rate float64) *Scheduler {
	if rate <= 0 {
		rate = StepsPerSecond
	}
	return &Scheduler{rate: rate}
}

func (s *Scheduler) State() SchedulerState {
	return s.state
}

// Last returns the timestamp of the previous tick in seconds.
func (s *Scheduler) Last() float64 {
	return s.last
}

// Tick observes a rendering frame at now (seconds). The first tick only
// records a baseline. Later ticks run step round(elapsed*rate) times and
// then move the baseline to now. It returns the number of steps run.
func (s *Scheduler) Tick(now float64, step func()) int {
	if s.state == Uninitialized {
		s.state = Running
		s.last = now
		return 0
	}

	steps := int(math.Round((now - s.last) * s.rate))
	for i := 0; i < steps; i++ {
		step()
	}
	s.last = now
	if steps < 0 {
		return 0
	}
	return steps
}
